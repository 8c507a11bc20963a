package get_day_schedule

import "errors"

var (
	// ErrBranchHasNoResources возвращается, когда у филиала нет ресурсов
	ErrBranchHasNoResources = errors.New("get_day_schedule: branch has no resources")

	// ErrResourceNotFound возвращается, когда один из ресурсов не найден
	ErrResourceNotFound = errors.New("get_day_schedule: resource not found")

	// ErrResourceBranchMismatch возвращается, когда ресурс принадлежит другому филиалу
	ErrResourceBranchMismatch = errors.New("get_day_schedule: resource belongs to another branch")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_day_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_schedule: internal error")
)
