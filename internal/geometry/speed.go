package geometry

// Speed представляет скорость с величиной и направлением.
// Направление кодируется знаком: +1 — вправо/вниз, -1 — влево/вверх.
type Speed struct {
	value     int
	direction int
}

// NewSpeed создаёт скорость с заданной величиной и направлением.
// Величина не может быть отрицательной, иначе возвращается ErrInvalidArgument.
// Неположительное направление нормализуется к -1, положительное — к +1.
func NewSpeed(value, direction int) (*Speed, error) {
	if value < 0 {
		return nil, ErrInvalidArgument{Param: "value", Value: value}
	}
	return &Speed{value: value, direction: normalizeDirection(direction)}, nil
}

func normalizeDirection(direction int) int {
	if direction > 0 {
		return 1
	}
	return -1
}

// Value возвращает величину скорости.
func (s *Speed) Value() int {
	return s.value
}

// Direction возвращает направление (+1 или -1).
func (s *Speed) Direction() int {
	return s.direction
}

// Velocity возвращает скорость со знаком направления.
func (s *Speed) Velocity() int {
	return s.value * s.direction
}

// Reverse меняет направление на противоположное.
func (s *Speed) Reverse() {
	s.direction *= -1
}

// Increase увеличивает величину скорости.
func (s *Speed) Increase(amount int) {
	s.value += amount
}

// Decrease уменьшает величину скорости, но не ниже нуля.
func (s *Speed) Decrease(amount int) {
	s.value -= amount
	if s.value < 0 {
		s.value = 0
	}
}

// SetValue устанавливает величину скорости, отрицательные значения отсекаются в ноль.
func (s *Speed) SetValue(value int) {
	if value < 0 {
		value = 0
	}
	s.value = value
}

// SetDirection устанавливает направление с нормализацией к +1/-1.
func (s *Speed) SetDirection(direction int) {
	s.direction = normalizeDirection(direction)
}
