package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// dateTimeFormat формат даты встречи в письме ("01/03/2025 à 10:00")
const dateTimeFormat = "02/01/2006 à 15:04"

const subject = "Confirmation de votre rendez-vous avec l'incubateur"

// Message подтверждение бронирования
type Message struct {
	To      string // email посетителя
	Subject string
	Body    string // письмо посетителю
	Summary string // короткое уведомление для сотрудников
}

// Channel канал доставки подтверждения
type Channel interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Renderer собирает текст подтверждения
type Renderer struct {
	publicURL string
	timezone  *time.Location
}

// NewRenderer создает renderer; publicURL без завершающего слэша
func NewRenderer(publicURL string, timezone *time.Location) *Renderer {
	return &Renderer{publicURL: publicURL, timezone: timezone}
}

// CancelLink ссылка для отмены или переноса
func (r *Renderer) CancelLink(token string) string {
	return r.publicURL + "/cancel/" + token
}

// Render подтверждение для бронирования
func (r *Renderer) Render(d *domain.BookingDetails) *Message {
	when := d.Slot.Start.In(r.timezone).Format(dateTimeFormat)
	place := d.Location.DisplayName()

	body := fmt.Sprintf("Bonjour %s,\n\n"+
		"Votre rendez-vous est confirmé pour le %s\n"+
		"Lieu : %s\n\n"+
		"Si vous souhaitez annuler ou reprogrammer votre rendez-vous, cliquez sur le lien suivant : %s\n\n"+
		"À bientôt !\nL'équipe de l'incubateur",
		d.Booking.FullName(), when, place, r.CancelLink(d.Booking.CancelToken))

	summary := fmt.Sprintf("Nouvelle demande de rendez-vous #%d\n%s, %s\n%s (%s, %s)",
		d.Booking.ID, place, when, d.Booking.FullName(), d.Booking.Email, d.Booking.Phone)

	return &Message{
		To:      d.Booking.Email,
		Subject: subject,
		Body:    body,
		Summary: summary,
	}
}
