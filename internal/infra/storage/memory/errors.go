package memory

import (
	"errors"
	"fmt"
)

// ErrForeignKeyViolation возвращается при удалении записи, на которую есть ссылки
var ErrForeignKeyViolation = errors.New("memory: foreign key violation")

func errForeignKey(ref string, id int64) error {
	return fmt.Errorf("%w: %s references id=%d", ErrForeignKeyViolation, ref, id)
}
