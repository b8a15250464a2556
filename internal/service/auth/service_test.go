package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/service/auth/models"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

func newService(t *testing.T, clock *fixedTime) *Service {
	t.Helper()
	svc, err := NewService("s3cret", "test-secret", time.Hour, logger.NewNop())
	require.NoError(t, err)
	return svc.WithTimeProvider(clock)
}

func TestService_Login(t *testing.T) {
	clock := &fixedTime{t: time.Now()}
	svc := newService(t, clock)

	_, err := svc.Login(&models.LoginRequest{Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredential)

	session, err := svc.Login(&models.LoginRequest{Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(time.Hour), session.ExpiresAt)
	assert.True(t, svc.Authorized(session.Token))
}

func TestService_RejectsExpiredSession(t *testing.T) {
	clock := &fixedTime{t: time.Now()}
	svc := newService(t, clock)

	session, err := svc.Login(&models.LoginRequest{Password: "s3cret"})
	require.NoError(t, err)

	clock.t = clock.t.Add(2 * time.Hour)
	assert.ErrorIs(t, svc.Verify(session.Token), ErrInvalidSession)
	assert.False(t, svc.Authorized(session.Token))
}

func TestService_RejectsForgedSession(t *testing.T) {
	clock := &fixedTime{t: time.Now()}
	svc := newService(t, clock)

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   staffSubject,
		ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
	}

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	assert.False(t, svc.Authorized(forged))

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	assert.False(t, svc.Authorized(unsigned))

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: staffSubject,
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	assert.False(t, svc.Authorized(noExpiry))

	assert.False(t, svc.Authorized(""))
	assert.False(t, svc.Authorized("not-a-token"))
}

func TestService_RandomSecretPerInstance(t *testing.T) {
	first, err := NewService("pw", "", time.Hour, logger.NewNop())
	require.NoError(t, err)
	second, err := NewService("pw", "", time.Hour, logger.NewNop())
	require.NoError(t, err)

	session, err := first.Login(&models.LoginRequest{Password: "pw"})
	require.NoError(t, err)
	assert.True(t, first.Authorized(session.Token))
	assert.False(t, second.Authorized(session.Token))
}
