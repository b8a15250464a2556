package create_booking

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// UUIDTokenGenerator токены отмены из случайного UUIDv4 (32 hex символа)
type UUIDTokenGenerator struct{}

// NewToken возвращает новый токен отмены
func (UUIDTokenGenerator) NewToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
