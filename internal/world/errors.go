package world

import "github.com/lanNo19/aposd-pong/internal/geometry"

// ErrInvalidArgument — ошибка нарушения контракта конструктора.
// Единственный вид ошибок в ядре: после успешного создания мира
// ни одна операция не возвращает ошибку, все граничные случаи отсекаются.
type ErrInvalidArgument = geometry.ErrInvalidArgument

// IsInvalidArgument проверяет, является ли ошибка нарушением контракта конструктора.
func IsInvalidArgument(err error) bool {
	return geometry.IsInvalidArgument(err)
}
