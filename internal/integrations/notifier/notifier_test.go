package notifier

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

type channelMock struct {
	mock.Mock
	name string
}

func (m *channelMock) Name() string { return m.name }

func (m *channelMock) Send(ctx context.Context, msg *Message) error {
	return m.Called(ctx, msg).Error(0)
}

func details() *domain.BookingDetails {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.BookingDetails{
		Booking: domain.Booking{
			ID:          12,
			Name:        "Camille",
			Surname:     "Martin",
			Email:       "camille@example.fr",
			Phone:       "0600000000",
			CancelToken: "abc123",
		},
		Slot:     domain.Slot{ID: 3, Start: start, End: start.Add(time.Hour)},
		Location: domain.Location{ID: 2, Name: "Lyon", City: "Lyon"},
	}
}

func TestRenderer_Render(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	msg := NewRenderer("https://rdv.example.fr", paris).Render(details())

	assert.Equal(t, "camille@example.fr", msg.To)
	assert.Contains(t, msg.Subject, "Confirmation")
	assert.Contains(t, msg.Body, "Bonjour Camille Martin")
	assert.Contains(t, msg.Body, "01/03/2025 à 10:00")
	assert.Contains(t, msg.Body, "Lieu : Lyon, Lyon")
	assert.Contains(t, msg.Body, "https://rdv.example.fr/cancel/abc123")
	assert.Contains(t, msg.Summary, "#12")
	assert.NotContains(t, msg.Summary, "abc123")
}

func TestNotifier_AllChannelsTried(t *testing.T) {
	ctx := context.Background()
	failing := &channelMock{name: "smtp"}
	failing.On("Send", ctx, mock.Anything).Return(errors.New("connection refused")).Once()
	ok := &channelMock{name: "telegram"}
	ok.On("Send", ctx, mock.Anything).Return(nil).Once()

	n := New(NewRenderer("http://localhost:8080", time.UTC), logger.NewNop(), failing, ok)

	err := n.Notify(ctx, details())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp")

	failing.AssertExpectations(t)
	ok.AssertExpectations(t)
}

func TestNotifier_LogChannel(t *testing.T) {
	var buf bytes.Buffer
	log, err := logger.NewWithWriter(&buf, "info")
	require.NoError(t, err)
	n := New(NewRenderer("http://localhost:8080", time.UTC), log, NewLogChannel(log))

	require.NoError(t, n.Notify(context.Background(), details()))
	assert.Contains(t, buf.String(), "camille@example.fr")
	assert.Contains(t, buf.String(), "/cancel/abc123")
}

func TestTelegramChannel_DisabledIsNoop(t *testing.T) {
	ch, err := NewTelegramChannel("", 0, logger.NewNop())
	require.NoError(t, err)
	assert.NoError(t, ch.Send(context.Background(), &Message{Summary: "x"}))
}

func TestSMTPChannel_NoRecipient(t *testing.T) {
	ch := NewSMTPChannel(SMTPConfig{Server: "localhost", Port: 25, Timeout: time.Second})
	assert.ErrorIs(t, ch.Send(context.Background(), &Message{}), ErrNoRecipient)
}

func TestBuildMessage(t *testing.T) {
	raw := string(buildMessage("incubateur@example.fr", &Message{
		To:      "camille@example.fr",
		Subject: "Confirmation de votre rendez-vous",
		Body:    "À bientôt !",
	}))

	headers, body, found := strings.Cut(raw, "\r\n\r\n")
	require.True(t, found)
	assert.Contains(t, headers, "From: incubateur@example.fr")
	assert.Contains(t, headers, "To: camille@example.fr")
	assert.Contains(t, headers, "Content-Type: text/plain; charset=utf-8")
	assert.Equal(t, "À bientôt !\r\n", body)
}
