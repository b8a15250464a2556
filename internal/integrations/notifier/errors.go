package notifier

import "errors"

var (
	// ErrSend возвращается, если канал не смог доставить сообщение
	ErrSend = errors.New("notifier: failed to send")

	// ErrNoRecipient возвращается, если у бронирования нет адреса получателя
	ErrNoRecipient = errors.New("notifier: no recipient")
)
