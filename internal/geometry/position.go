package geometry

// Position представляет позицию в игровом мире.
// Начало координат — в левом верхнем углу: x растёт вправо, y растёт вниз.
type Position struct {
	x int
	y int
}

// NewPosition создаёт позицию с заданными координатами.
func NewPosition(x, y int) Position {
	return Position{x: x, y: y}
}

// X возвращает координату по горизонтали.
func (p Position) X() int {
	return p.x
}

// Y возвращает координату по вертикали.
func (p Position) Y() int {
	return p.y
}

// SameCoordinates проверяет, совпадают ли координаты с другой позицией.
func (p Position) SameCoordinates(other Position) bool {
	return p.x == other.x && p.y == other.y
}

// Update устанавливает координаты в указанные значения.
func (p *Position) Update(x, y int) {
	p.x = x
	p.y = y
}

// UpdateFrom копирует координаты из другой позиции.
func (p *Position) UpdateFrom(other Position) {
	p.x = other.x
	p.y = other.y
}
