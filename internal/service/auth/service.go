package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/incubator-booking/internal/service/auth/models"
)

const (
	issuer       = "incubator-booking"
	staffSubject = "staff"
	secretLength = 32
)

// Service проверка общего пароля сотрудников и сессии
// Учетных записей нет: любая валидная сессия дает полный доступ
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис; пустой secret заменяется случайным,
// тогда сессии не переживают перезапуск
func NewService(password, secret string, ttl time.Duration, logger Logger) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", ErrInternal, err)
	}

	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, secretLength)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("%w: generate session secret: %v", ErrInternal, err)
		}
		logger.Warn("Auth: session secret is not configured, generated a random one")
	}

	return &Service{
		passwordHash: hash,
		secret:       key,
		ttl:          ttl,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}, nil
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестов)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// TTL время жизни сессии
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Login сверяет пароль и выдает подписанную сессию
func (s *Service) Login(req *models.LoginRequest) (*models.SessionResponse, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(req.Password)); err != nil {
		s.logger.Warn("Login: incorrect credential")
		return nil, ErrInvalidCredential
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   staffSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign session: %v", err)
		return nil, fmt.Errorf("%w: sign session: %v", ErrInternal, err)
	}

	s.logger.Info("Login: staff session issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &models.SessionResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify проверяет подпись, срок действия и назначение сессии
func (s *Service) Verify(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidSession
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(staffSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			s.logger.Info("Verify: session expired")
		} else {
			s.logger.Warn("Verify: rejected session: %v", err)
		}
		return ErrInvalidSession
	}
	return nil
}

// Authorized true, если сессия дает доступ к операциям сотрудников
func (s *Service) Authorized(tokenString string) bool {
	return s.Verify(tokenString) == nil
}
