// Package world содержит ядро игры: ракетки, мяч и правила их взаимодействия
package world

import (
	"fmt"
	"math/rand"
)

// Outcome — результат одного тика мира.
type Outcome int

const (
	// OutcomeContinue — раунд продолжается.
	OutcomeContinue Outcome = 0
	// OutcomePlayerOne — игрок 1 выиграл раунд.
	OutcomePlayerOne Outcome = 1
	// OutcomePlayerTwo — игрок 2 выиграл раунд.
	OutcomePlayerTwo Outcome = 2
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomePlayerOne:
		return "player1"
	case OutcomePlayerTwo:
		return "player2"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Config задаёт параметры мира. Все значения фиксируются при создании
// и не меняются до конца жизни мира.
type Config struct {
	Width  int
	Height int

	PaddleHeight int
	PaddleWidth  int
	PaddleSpeed  int
	// PaddleInset — отступ ракеток от боковых стен.
	PaddleInset int

	BallSize           int
	BallSpeed          int
	BallMaxSpeed       int
	BallSpeedIncrement int
}

// DefaultConfig возвращает параметры эталонной игры: поле 800x600,
// ракетки 100x15 с шагом 10, мяч 15 со скоростью 4..12 и приростом 1.
func DefaultConfig() Config {
	return Config{
		Width:              800,
		Height:             600,
		PaddleHeight:       100,
		PaddleWidth:        15,
		PaddleSpeed:        10,
		PaddleInset:        20,
		BallSize:           15,
		BallSpeed:          4,
		BallMaxSpeed:       12,
		BallSpeedIncrement: 1,
	}
}

// Validate проверяет, что все параметры положительны.
func (c Config) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"Width", c.Width},
		{"Height", c.Height},
		{"PaddleHeight", c.PaddleHeight},
		{"PaddleWidth", c.PaddleWidth},
		{"PaddleSpeed", c.PaddleSpeed},
		{"PaddleInset", c.PaddleInset},
		{"BallSize", c.BallSize},
		{"BallSpeed", c.BallSpeed},
		{"BallMaxSpeed", c.BallMaxSpeed},
		{"BallSpeedIncrement", c.BallSpeedIncrement},
	}
	for _, ch := range checks {
		if ch.value <= 0 {
			return ErrInvalidArgument{Param: ch.name, Value: ch.value}
		}
	}
	return nil
}

// PaddleSnapshot — снимок ракетки для слоя отрисовки.
type PaddleSnapshot struct {
	X      int
	Y      int
	Width  int
	Height int
}

// BallSnapshot — снимок мяча для слоя отрисовки.
type BallSnapshot struct {
	X    int
	Y    int
	Size int
}

// Snapshot — снимок состояния мира, отдаваемый наружу по значению.
// Внешние слои никогда не получают указателей на изменяемое состояние.
type Snapshot struct {
	Width       int
	Height      int
	LeftPaddle  PaddleSnapshot
	RightPaddle PaddleSnapshot
	Ball        BallSnapshot
}

// World — мир игры: две ракетки и мяч в прямоугольном поле.
// Мир монопольно владеет всеми тремя телами. Все изменения происходят
// синхронно внутри Update и команд перемещения; мир не создаёт горутин
// и не держит внешних ресурсов.
type World struct {
	width  int
	height int

	leftPaddle  *Paddle
	rightPaddle *Paddle
	ball        *Ball
}

// New создаёт мир с параметрами по умолчанию.
// Генератор случайных чисел передаётся снаружи, чтобы тесты могли
// получать детерминированное поведение.
func New(rnd *rand.Rand) (*World, error) {
	return NewWithConfig(rnd, DefaultConfig())
}

// NewWithConfig создаёт мир с заданными параметрами.
// Ракетки ставятся с отступом от боковых стен и центрируются по вертикали,
// мяч — в центре поля со случайными направлениями.
func NewWithConfig(rnd *rand.Rand, cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("проверка конфигурации мира: %w", err)
	}

	paddleY := (cfg.Height - cfg.PaddleHeight) / 2

	left, err := NewPaddle(cfg.PaddleInset, paddleY, cfg.PaddleHeight, cfg.PaddleWidth, cfg.PaddleSpeed)
	if err != nil {
		return nil, fmt.Errorf("создание левой ракетки: %w", err)
	}
	right, err := NewPaddle(cfg.Width-cfg.PaddleInset-cfg.PaddleWidth, paddleY, cfg.PaddleHeight, cfg.PaddleWidth, cfg.PaddleSpeed)
	if err != nil {
		return nil, fmt.Errorf("создание правой ракетки: %w", err)
	}
	ball, err := NewBall(rnd, cfg.Width/2, cfg.Height/2, cfg.BallSize, cfg.BallSpeed, cfg.BallMaxSpeed, cfg.BallSpeedIncrement)
	if err != nil {
		return nil, fmt.Errorf("создание мяча: %w", err)
	}

	return &World{
		width:       cfg.Width,
		height:      cfg.Height,
		leftPaddle:  left,
		rightPaddle: right,
		ball:        ball,
	}, nil
}

// Width возвращает ширину поля.
func (w *World) Width() int { return w.width }

// Height возвращает высоту поля.
func (w *World) Height() int { return w.height }

// Update выполняет один тик мира в строгом порядке: движение мяча,
// отражение от стен, столкновение с ракеткой по направлению движения,
// проверка гола. При голе мир немедленно перезапускает раунд сам;
// счёт ведёт вызывающая сторона.
func (w *World) Update() Outcome {
	w.ball.UpdatePosition()

	// Отражение от верхней и нижней стены с прижатием к границе
	if w.ball.position.Y() <= 0 || w.ball.position.Y() >= w.height-w.ball.size {
		w.ball.BounceHorizontal()
		if w.ball.position.Y() < 0 {
			w.ball.position.Update(w.ball.position.X(), 0)
		} else if w.ball.position.Y() > w.height-w.ball.size {
			w.ball.position.Update(w.ball.position.X(), w.height-w.ball.size)
		}
	}

	// Столкновения с ракетками проверяются только по направлению движения:
	// за один тик может сработать не более одной ракетки.
	if w.ball.horizontal.Direction() > 0 && w.collisionRight() {
		hitFactor := w.rightPaddle.HitFactor(w.ball.position.Y() + w.ball.size/2)
		w.ball.BounceVertical(hitFactor)
		// Выносим мяч вплотную к ракетке, чтобы он не застрял внутри
		w.ball.position.Update(w.rightPaddle.position.X()-w.ball.size, w.ball.position.Y())
	} else if w.ball.horizontal.Direction() < 0 && w.collisionLeft() {
		hitFactor := w.leftPaddle.HitFactor(w.ball.position.Y() + w.ball.size/2)
		w.ball.BounceVertical(hitFactor)
		w.ball.position.Update(w.leftPaddle.position.X()+w.leftPaddle.width, w.ball.position.Y())
	}

	// Гол проверяется после движения и столкновений
	if w.ball.position.X() < 0 {
		w.Restart()
		return OutcomePlayerTwo
	}
	if w.ball.position.X() > w.width {
		w.Restart()
		return OutcomePlayerOne
	}
	return OutcomeContinue
}

// collisionLeft проверяет столкновение с левой ракеткой. Помимо текущей
// позиции учитывается следующий шаг по x, чтобы мяч не проскочил
// плоскость ракетки за один тик.
func (w *World) collisionLeft() bool {
	p := w.leftPaddle
	b := w.ball
	face := p.position.X() + p.width
	return b.position.X() <= face &&
		b.position.X()+b.horizontal.Velocity() <= face &&
		b.position.Y()+b.size >= p.position.Y() &&
		b.position.Y() <= p.position.Y()+p.height
}

// collisionRight — симметричная проверка для правой ракетки.
func (w *World) collisionRight() bool {
	p := w.rightPaddle
	b := w.ball
	leading := b.position.X() + b.size
	return leading >= p.position.X() &&
		leading+b.horizontal.Velocity() >= p.position.X() &&
		b.position.Y()+b.size >= p.position.Y() &&
		b.position.Y() <= p.position.Y()+p.height
}

// MoveLeftPaddleUp сдвигает левую ракетку вверх на её шаг.
func (w *World) MoveLeftPaddleUp() {
	w.leftPaddle.MoveUp(w.height)
}

// MoveLeftPaddleDown сдвигает левую ракетку вниз на её шаг.
func (w *World) MoveLeftPaddleDown() {
	w.leftPaddle.MoveDown(w.height)
}

// MoveRightPaddleUp сдвигает правую ракетку вверх на её шаг.
func (w *World) MoveRightPaddleUp() {
	w.rightPaddle.MoveUp(w.height)
}

// MoveRightPaddleDown сдвигает правую ракетку вниз на её шаг.
func (w *World) MoveRightPaddleDown() {
	w.rightPaddle.MoveDown(w.height)
}

// Restart начинает новый раунд: ракетки центрируются по вертикали
// (горизонтальная позиция не меняется), мяч возвращается в центр поля
// с базовой скоростью и новыми случайными направлениями.
func (w *World) Restart() {
	w.leftPaddle.position.Update(
		w.leftPaddle.position.X(),
		(w.height-w.leftPaddle.height)/2,
	)
	w.rightPaddle.position.Update(
		w.rightPaddle.position.X(),
		(w.height-w.rightPaddle.height)/2,
	)
	w.ball.Reset(w.width/2, w.height/2)
}

// Snapshot возвращает снимок состояния мира для слоя отрисовки.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Width:  w.width,
		Height: w.height,
		LeftPaddle: PaddleSnapshot{
			X:      w.leftPaddle.position.X(),
			Y:      w.leftPaddle.position.Y(),
			Width:  w.leftPaddle.width,
			Height: w.leftPaddle.height,
		},
		RightPaddle: PaddleSnapshot{
			X:      w.rightPaddle.position.X(),
			Y:      w.rightPaddle.position.Y(),
			Width:  w.rightPaddle.width,
			Height: w.rightPaddle.height,
		},
		Ball: BallSnapshot{
			X:    w.ball.position.X(),
			Y:    w.ball.position.Y(),
			Size: w.ball.size,
		},
	}
}

// CheckInvariants проверяет инварианты мира: обе ракетки и мяч в пределах
// поля. Предназначена для тестов, в игровом цикле не вызывается.
func (w *World) CheckInvariants() error {
	if y := w.leftPaddle.position.Y(); y < 0 || y > w.height-w.leftPaddle.height {
		return fmt.Errorf("левая ракетка вне поля: y=%d", y)
	}
	if y := w.rightPaddle.position.Y(); y < 0 || y > w.height-w.rightPaddle.height {
		return fmt.Errorf("правая ракетка вне поля: y=%d", y)
	}
	if x := w.ball.position.X(); x < 0 || x > w.width {
		return fmt.Errorf("мяч вне поля по горизонтали: x=%d", x)
	}
	if y := w.ball.position.Y(); y < 0 || y > w.height {
		return fmt.Errorf("мяч вне поля по вертикали: y=%d", y)
	}
	return nil
}
