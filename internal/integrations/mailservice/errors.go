package mailservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("mailservice client: invalid response")

	// ErrUserNotFound возвращается, когда почтовый сервис не знает пользователя
	ErrUserNotFound = errors.New("mailservice client: user not found")
)
