package world

import (
	"github.com/lanNo19/aposd-pong/internal/geometry"
)

// Paddle представляет ракетку, двигающуюся только по вертикали
// в пределах игрового поля. Горизонтальная позиция фиксируется при создании.
type Paddle struct {
	position geometry.Position
	height   int
	width    int
	speed    int
}

// NewPaddle создаёт ракетку с позицией, размерами и скоростью перемещения.
// Размеры и скорость должны быть положительными.
func NewPaddle(x, y, height, width, speed int) (*Paddle, error) {
	if height <= 0 {
		return nil, ErrInvalidArgument{Param: "height", Value: height}
	}
	if width <= 0 {
		return nil, ErrInvalidArgument{Param: "width", Value: width}
	}
	if speed <= 0 {
		return nil, ErrInvalidArgument{Param: "speed", Value: speed}
	}
	return &Paddle{
		position: geometry.NewPosition(x, y),
		height:   height,
		width:    width,
		speed:    speed,
	}, nil
}

// MoveUp сдвигает ракетку вверх на её шаг, не выходя за верхнюю границу.
func (p *Paddle) MoveUp(worldHeight int) {
	newY := p.position.Y() - p.speed
	if newY < 0 {
		newY = 0
	}
	p.position.Update(p.position.X(), newY)
}

// MoveDown сдвигает ракетку вниз на её шаг, не выходя за нижнюю границу.
func (p *Paddle) MoveDown(worldHeight int) {
	newY := p.position.Y() + p.speed
	if limit := worldHeight - p.height; newY > limit {
		newY = limit
	}
	p.position.Update(p.position.X(), newY)
}

// HitFactor вычисляет, в какое место ракетки пришёлся мяч.
// Возвращает значение в диапазоне [-1.0, 1.0]:
// -1.0 — верхний край, 0.0 — центр, 1.0 — нижний край.
func (p *Paddle) HitFactor(ballCenterY int) float64 {
	relative := float64(ballCenterY - p.position.Y())
	normalized := (relative/float64(p.height))*2 - 1
	if normalized < -1.0 {
		return -1.0
	}
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}

// Position возвращает копию позиции ракетки (левый верхний угол).
func (p *Paddle) Position() geometry.Position {
	return p.position
}

// Height возвращает высоту ракетки.
func (p *Paddle) Height() int { return p.height }

// Width возвращает ширину ракетки.
func (p *Paddle) Width() int { return p.width }

// Speed возвращает шаг перемещения ракетки за одну команду.
func (p *Paddle) Speed() int { return p.speed }
