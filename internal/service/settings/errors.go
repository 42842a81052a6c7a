package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных параметрах настроек
	ErrInvalidInput = errors.New("service/settings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service/settings: internal error")
)
