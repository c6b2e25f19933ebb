package world

import (
	"math"
	"math/rand"

	"github.com/lanNo19/aposd-pong/internal/geometry"
)

// Ball представляет мяч — квадрат с независимыми горизонтальной
// и вертикальной скоростями.
type Ball struct {
	position   geometry.Position
	size       int
	horizontal *geometry.Speed
	vertical   *geometry.Speed

	baseSpeed      int
	maxSpeed       int
	speedIncrement int

	rnd *rand.Rand
}

// NewBall создаёт мяч с позицией, размером и параметрами скорости.
// Начальные направления по обеим осям выбираются случайно,
// вертикальная скорость на старте нулевая.
func NewBall(rnd *rand.Rand, x, y, size, initialSpeed, maxSpeed, speedIncrement int) (*Ball, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument{Param: "size", Value: size}
	}
	if initialSpeed <= 0 {
		return nil, ErrInvalidArgument{Param: "initialSpeed", Value: initialSpeed}
	}
	if maxSpeed <= 0 {
		return nil, ErrInvalidArgument{Param: "maxSpeed", Value: maxSpeed}
	}
	if speedIncrement <= 0 {
		return nil, ErrInvalidArgument{Param: "speedIncrement", Value: speedIncrement}
	}

	horizontal, err := geometry.NewSpeed(initialSpeed, randomDirection(rnd))
	if err != nil {
		return nil, err
	}
	vertical, err := geometry.NewSpeed(0, randomDirection(rnd))
	if err != nil {
		return nil, err
	}

	return &Ball{
		position:       geometry.NewPosition(x, y),
		size:           size,
		horizontal:     horizontal,
		vertical:       vertical,
		baseSpeed:      initialSpeed,
		maxSpeed:       maxSpeed,
		speedIncrement: speedIncrement,
		rnd:            rnd,
	}, nil
}

func randomDirection(rnd *rand.Rand) int {
	if rnd.Intn(2) == 0 {
		return -1
	}
	return 1
}

// UpdatePosition сдвигает мяч на текущие скорости по обеим осям.
// Интегрирование Эйлера без промежуточных шагов: на экстремальных
// скоростях мяч может проскочить тонкое препятствие за один тик.
func (b *Ball) UpdatePosition() {
	b.position.Update(
		b.position.X()+b.horizontal.Velocity(),
		b.position.Y()+b.vertical.Velocity(),
	)
}

// BounceHorizontal отражает мяч от горизонтальной поверхности (верхняя
// или нижняя стена): меняется только направление вертикальной скорости.
func (b *Ball) BounceHorizontal() {
	b.vertical.Reverse()
}

// BounceVertical отражает мяч от вертикальной поверхности (ракетки).
// hitFactor в диапазоне [-1.0, 1.0] задаёт угол отскока:
// чем дальше от центра ракетки пришёлся удар, тем круче отскок.
func (b *Ball) BounceVertical(hitFactor float64) {
	// Разворот по горизонтали с ускорением до предела
	b.horizontal.Reverse()
	newHSpeed := b.horizontal.Value() + b.speedIncrement
	if newHSpeed > b.maxSpeed {
		newHSpeed = b.maxSpeed
	}
	b.horizontal.SetValue(newHSpeed)

	// Желаемая вертикальная величина пропорциональна удалению от центра.
	// Берём максимум с текущей величиной: удар никогда не замедляет мяч
	// по вертикали, краевые удары доминируют.
	desired := math.Abs(hitFactor) * float64(b.maxSpeed)
	final := int(math.Max(float64(b.vertical.Value()), desired))
	if final > b.maxSpeed {
		final = b.maxSpeed
	}
	b.vertical.SetValue(final)

	// Удар точно в центр не меняет вертикальное направление.
	if hitFactor > 0 {
		b.vertical.SetDirection(1)
	} else if hitFactor < 0 {
		b.vertical.SetDirection(-1)
	}
}

// Reset возвращает мяч в заданную точку с базовой скоростью
// и новыми случайными направлениями по обеим осям.
func (b *Ball) Reset(x, y int) {
	b.position.Update(x, y)

	b.horizontal.SetValue(b.baseSpeed)
	b.horizontal.SetDirection(randomDirection(b.rnd))

	b.vertical.SetValue(0)
	b.vertical.SetDirection(randomDirection(b.rnd))
}

// Position возвращает копию позиции мяча (левый верхний угол квадрата).
func (b *Ball) Position() geometry.Position {
	return b.position
}

// Size возвращает сторону квадрата мяча.
func (b *Ball) Size() int { return b.size }

// HorizontalSpeed возвращает горизонтальную скорость мяча.
func (b *Ball) HorizontalSpeed() *geometry.Speed { return b.horizontal }

// VerticalSpeed возвращает вертикальную скорость мяча.
func (b *Ball) VerticalSpeed() *geometry.Speed { return b.vertical }
