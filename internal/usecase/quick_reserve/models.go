package quick_reserve

import "time"

// Request модель запроса на мгновенное бронирование "с этого момента"
type Request struct {
	UserID          *int64  // ID пользователя, nil для walk-in бронирования
	BranchID        int64   // ID филиала
	ResourceIDs     []int64 // Пул ресурсов в порядке приоритета, минимум один
	DurationMinutes int     // Длительность, должна быть кратна ширине слота
	IsPaid          bool    // Оплачено ли бронирование сразу
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64     // ID созданного бронирования
	ResourceID  int64     // Ресурс, на который легло бронирование
	BranchID    int64     // ID филиала
	UserID      *int64    // ID пользователя, nil для walk-in
	Date        time.Time // Дата бронирования (сегодня)
	StartMinute int       // Начало диапазона, выровненное по сетке слотов
	EndMinute   int       // Конец диапазона
	StartTime   string    // Начало в формате "HH:MM"
	EndTime     string    // Конец в формате "HH:MM"
	IsPaid      bool      // Признак оплаты

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
