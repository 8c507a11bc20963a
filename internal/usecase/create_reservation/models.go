package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID      *int64    // ID пользователя, nil для walk-in бронирования
	BranchID    int64     // ID филиала
	ResourceIDs []int64   // Пул ресурсов в порядке приоритета, минимум один
	Date        time.Time // Дата бронирования (без времени)
	StartMinute *int      // Начало диапазона в минутах от полуночи
	EndMinute   *int      // Конец диапазона в минутах от полуночи (не включается)
	IsPaid      bool      // Оплачено ли бронирование сразу (walk-in на кассе)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	ResourceID  int64     // Ресурс, на который легло бронирование
	BranchID    int64     // ID филиала
	UserID      *int64    // ID пользователя, nil для walk-in
	Date        time.Time // Дата бронирования
	StartMinute int       // Начало диапазона
	EndMinute   int       // Конец диапазона
	StartTime   string    // Начало в формате "HH:MM"
	EndTime     string    // Конец в формате "HH:MM"
	IsPaid      bool      // Признак оплаты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
