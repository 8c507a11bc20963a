package quick_reserve

import "errors"

var (
	// ErrOutsideBusinessHours возвращается, когда рассчитанный диапазон
	// не укладывается в рабочие часы
	ErrOutsideBusinessHours = errors.New("quick_reserve: time range is outside business hours")

	// ErrResourceNotFound возвращается, когда один из ресурсов не найден
	ErrResourceNotFound = errors.New("quick_reserve: resource not found")

	// ErrResourceBranchMismatch возвращается, когда ресурс принадлежит другому филиалу
	ErrResourceBranchMismatch = errors.New("quick_reserve: resource belongs to another branch")

	// ErrNoResourceAvailable возвращается, когда в пуле нет свободного ресурса
	ErrNoResourceAvailable = errors.New("quick_reserve: no resource available right now")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quick_reserve: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quick_reserve: internal error")
)
