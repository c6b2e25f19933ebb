package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := New(rand.New(rand.NewSource(42)))
	require.NoError(t, err, "мир с параметрами по умолчанию должен создаваться")
	return w
}

func TestNewWithConfigValidation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	cfg := DefaultConfig()
	cfg.Width = 0
	_, err := NewWithConfig(rnd, cfg)
	require.Error(t, err, "нулевая ширина поля должна отклоняться")
	assert.True(t, IsInvalidArgument(err), "ошибка должна быть типа ErrInvalidArgument")

	cfg = DefaultConfig()
	cfg.BallMaxSpeed = -3
	_, err = NewWithConfig(rnd, cfg)
	require.Error(t, err, "отрицательный предел скорости мяча должен отклоняться")
	assert.True(t, IsInvalidArgument(err))
}

func TestWorldDefaultLayout(t *testing.T) {
	w := newTestWorld(t)
	snap := w.Snapshot()

	assert.Equal(t, 800, snap.Width, "ширина поля по умолчанию 800")
	assert.Equal(t, 600, snap.Height, "высота поля по умолчанию 600")
	assert.Equal(t, 20, snap.LeftPaddle.X, "левая ракетка с отступом 20 от стены")
	assert.Equal(t, 800-20-15, snap.RightPaddle.X, "правая ракетка с отступом 20 от стены")
	assert.Equal(t, 250, snap.LeftPaddle.Y, "левая ракетка центрирована по вертикали")
	assert.Equal(t, 250, snap.RightPaddle.Y, "правая ракетка центрирована по вертикали")
	assert.Equal(t, 400, snap.Ball.X, "мяч в центре поля")
	assert.Equal(t, 300, snap.Ball.Y, "мяч в центре поля")
	assert.Equal(t, 15, snap.Ball.Size, "размер мяча по умолчанию 15")
}

func TestWorldWallBounce(t *testing.T) {
	w := newTestWorld(t)

	// Мяч летит вверх и на следующем тике пересекает верхнюю стену
	w.ball.position.Update(400, 3)
	w.ball.horizontal.SetValue(4)
	w.ball.horizontal.SetDirection(1)
	w.ball.vertical.SetValue(5)
	w.ball.vertical.SetDirection(-1)

	outcome := w.Update()
	assert.Equal(t, OutcomeContinue, outcome, "отражение от стены не завершает раунд")
	assert.Equal(t, 0, w.ball.position.Y(), "мяч должен прижаться к верхней границе")
	assert.Equal(t, 1, w.ball.vertical.Direction(), "вертикальное направление должно развернуться")
	assert.Equal(t, 5, w.ball.vertical.Value(), "вертикальная величина не меняется")
	assert.Equal(t, 4, w.ball.horizontal.Value(), "горизонтальная скорость не затрагивается")
	assert.Equal(t, 1, w.ball.horizontal.Direction(), "горизонтальное направление не затрагивается")
}

func TestWorldRightPaddleBounce(t *testing.T) {
	w := newTestWorld(t)

	// Мяч перед правой ракеткой, летит вправо в её верхнюю половину
	w.ball.position.Update(745, 270)
	w.ball.horizontal.SetValue(8)
	w.ball.horizontal.SetDirection(1)
	w.ball.vertical.SetValue(0)
	w.ball.vertical.SetDirection(1)

	outcome := w.Update()
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, -1, w.ball.horizontal.Direction(), "мяч должен отскочить влево")
	assert.Equal(t, 9, w.ball.horizontal.Value(), "горизонтальная величина должна вырасти на прирост")
	assert.Equal(t, w.rightPaddle.position.X()-w.ball.size, w.ball.position.X(),
		"мяч должен быть вынесен вплотную к левой грани ракетки")
	assert.Equal(t, -1, w.ball.vertical.Direction(), "удар в верхнюю половину уводит мяч вверх")
}

func TestWorldLeftPaddleBounce(t *testing.T) {
	w := newTestWorld(t)

	// Мяч перед левой ракеткой, летит влево в её нижнюю половину
	w.ball.position.Update(40, 320)
	w.ball.horizontal.SetValue(8)
	w.ball.horizontal.SetDirection(-1)
	w.ball.vertical.SetValue(0)
	w.ball.vertical.SetDirection(-1)

	outcome := w.Update()
	assert.Equal(t, OutcomeContinue, outcome)
	assert.Equal(t, 1, w.ball.horizontal.Direction(), "мяч должен отскочить вправо")
	assert.Equal(t, w.leftPaddle.position.X()+w.leftPaddle.width, w.ball.position.X(),
		"мяч должен быть вынесен вплотную к правой грани ракетки")
	assert.Equal(t, 1, w.ball.vertical.Direction(), "удар в нижнюю половину уводит мяч вниз")
}

func TestWorldScoringPlayerOne(t *testing.T) {
	w := newTestWorld(t)

	// Уводим правую ракетку к верхней стене, освобождая путь мячу
	for i := 0; i < 30; i++ {
		w.MoveRightPaddleUp()
	}
	require.Equal(t, 0, w.rightPaddle.position.Y())

	// Мяч летит вправо по центру, ракетки на пути нет
	w.ball.position.Update(400, 300)
	w.ball.horizontal.SetValue(12)
	w.ball.horizontal.SetDirection(1)
	w.ball.vertical.SetValue(0)
	w.ball.vertical.SetDirection(1)

	var outcome Outcome
	ticks := 0
	for outcome = w.Update(); outcome == OutcomeContinue; outcome = w.Update() {
		ticks++
		require.Less(t, ticks, 100, "мяч обязан долететь до правой стены")
		require.LessOrEqual(t, w.ball.position.X(), w.width, "до гола мяч не выходит за поле")
	}

	assert.Equal(t, OutcomePlayerOne, outcome, "выход за правую стену — очко игрока 1")
	assert.Equal(t, 250, w.leftPaddle.position.Y(), "после гола левая ракетка центрируется")
	assert.Equal(t, 250, w.rightPaddle.position.Y(), "после гола правая ракетка центрируется")
	assert.Equal(t, 400, w.ball.position.X(), "после гола мяч возвращается в центр")
	assert.Equal(t, 300, w.ball.position.Y(), "после гола мяч возвращается в центр")
}

func TestWorldScoringPlayerTwo(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 30; i++ {
		w.MoveLeftPaddleDown()
	}
	require.Equal(t, w.height-w.leftPaddle.height, w.leftPaddle.position.Y())

	// Мяч летит влево вдоль верхней части поля, ракетка внизу
	w.ball.position.Update(400, 100)
	w.ball.horizontal.SetValue(12)
	w.ball.horizontal.SetDirection(-1)
	w.ball.vertical.SetValue(0)
	w.ball.vertical.SetDirection(1)

	var outcome Outcome
	ticks := 0
	for outcome = w.Update(); outcome == OutcomeContinue; outcome = w.Update() {
		ticks++
		require.Less(t, ticks, 100, "мяч обязан долететь до левой стены")
	}

	assert.Equal(t, OutcomePlayerTwo, outcome, "выход за левую стену — очко игрока 2")
	assert.NoError(t, w.CheckInvariants(), "после перезапуска инварианты должны выполняться")
}

func TestWorldRestartIdempotent(t *testing.T) {
	w := newTestWorld(t)

	for i := 0; i < 7; i++ {
		w.MoveLeftPaddleUp()
		w.MoveRightPaddleDown()
	}

	w.Restart()
	first := w.Snapshot()
	w.Restart()
	second := w.Snapshot()

	assert.Equal(t, 250, first.LeftPaddle.Y, "после перезапуска ракетка в центре")
	assert.Equal(t, first.LeftPaddle, second.LeftPaddle, "повторный перезапуск даёт те же позиции ракеток")
	assert.Equal(t, first.RightPaddle, second.RightPaddle, "повторный перезапуск даёт те же позиции ракеток")
	assert.Equal(t, first.Ball, second.Ball, "мяч оба раза в центре поля")
}

func TestWorldCommandsMoveOnlyTheirPaddle(t *testing.T) {
	w := newTestWorld(t)

	w.MoveLeftPaddleUp()
	assert.Equal(t, 240, w.leftPaddle.position.Y(), "левая ракетка сдвигается на свой шаг")
	assert.Equal(t, 250, w.rightPaddle.position.Y(), "правая ракетка не затрагивается")

	w.MoveRightPaddleDown()
	assert.Equal(t, 260, w.rightPaddle.position.Y(), "правая ракетка сдвигается на свой шаг")
	assert.Equal(t, 240, w.leftPaddle.position.Y(), "левая ракетка не затрагивается")
}
