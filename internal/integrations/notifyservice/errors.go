package notifyservice

import "errors"

var (
	// ErrSendFailed возвращается, когда уведомление не удалось отправить
	ErrSendFailed = errors.New("notifyservice: failed to send notification")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifyservice: internal error")
)
