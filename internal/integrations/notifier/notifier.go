package notifier

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Notifier рассылает подтверждение по всем настроенным каналам
// Ошибка одного канала не мешает остальным
type Notifier struct {
	renderer *Renderer
	channels []Channel
	log      Logger
}

// New создает notifier с набором каналов
func New(renderer *Renderer, log Logger, channels ...Channel) *Notifier {
	return &Notifier{
		renderer: renderer,
		channels: channels,
		log:      log,
	}
}

// Notify отправляет подтверждение созданного бронирования
func (n *Notifier) Notify(ctx context.Context, details *domain.BookingDetails) error {
	msg := n.renderer.Render(details)

	var errs []error
	for _, ch := range n.channels {
		if err := ch.Send(ctx, msg); err != nil {
			n.log.Error("Notify: channel %s failed for booking id=%d: %v", ch.Name(), details.Booking.ID, err)
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		n.log.Info("Notify: booking id=%d sent via %s", details.Booking.ID, ch.Name())
	}

	return errors.Join(errs...)
}
