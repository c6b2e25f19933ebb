package geometry

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument возвращается конструкторами, когда значение параметра
// нарушает контракт (отрицательная скорость, неположительный размер).
type ErrInvalidArgument struct {
	Param string
	Value int
}

func (e ErrInvalidArgument) Error() string {
	return fmt.Sprintf("недопустимое значение параметра %s: %d", e.Param, e.Value)
}

// IsInvalidArgument проверяет, является ли ошибка нарушением контракта конструктора.
func IsInvalidArgument(err error) bool {
	var target ErrInvalidArgument
	return errors.As(err, &target)
}
