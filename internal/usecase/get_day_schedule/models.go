package get_day_schedule

import "time"

// Request модель запроса расписания на день
type Request struct {
	BranchID    int64     // ID филиала
	ResourceIDs []int64   // Конкретные ресурсы; пусто - весь филиал как пул
	Date        time.Time // Дата, на которую строится сетка (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	BranchID    int64     // ID филиала
	ResourceIDs []int64   // Ресурсы, по которым считалась занятость
	Date        time.Time // Дата сетки
	Slots       []Slot    // Сетка слотов в хронологическом порядке
}

// Slot модель одного слота сетки
type Slot struct {
	StartMinute int    // Начало слота в минутах от полуночи
	EndMinute   int    // Конец слота
	Label       string // Подпись вида "14:00 - 14:15"
	Free        bool   // Свободен ли слот
}
