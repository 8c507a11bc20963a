package occupancy

import "errors"

var (
	// ErrBranchNotTracked возвращается, когда филиал не удалось загрузить
	ErrBranchNotTracked = errors.New("branch is not tracked")

	// ErrNoResources возвращается, когда у филиала нет ресурсов
	ErrNoResources = errors.New("branch has no resources")

	// ErrInternal возвращается при внутренних ошибках трекера
	ErrInternal = errors.New("occupancy tracker: internal error")
)
