package create_reservation

import "errors"

var (
	// ErrIncompleteSelection возвращается, когда диапазон времени не выбран полностью
	ErrIncompleteSelection = errors.New("create_reservation: time range selection is incomplete")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrOutsideBusinessHours возвращается, когда диапазон выходит за рабочие часы
	ErrOutsideBusinessHours = errors.New("create_reservation: time range is outside business hours")

	// ErrResourceNotFound возвращается, когда один из ресурсов не найден
	ErrResourceNotFound = errors.New("create_reservation: resource not found")

	// ErrResourceBranchMismatch возвращается, когда ресурс принадлежит другому филиалу
	ErrResourceBranchMismatch = errors.New("create_reservation: resource belongs to another branch")

	// ErrSlotConflict возвращается, когда запрошенный диапазон пересекается
	// с существующим бронированием ресурса
	ErrSlotConflict = errors.New("create_reservation: time range conflicts with an existing reservation")

	// ErrNoResourceAvailable возвращается, когда в пуле нет свободного ресурса
	ErrNoResourceAvailable = errors.New("create_reservation: no resource available for the requested range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
