package dialogue

import (
	"math/rand"
	"testing"
	"time"

	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lanNo19/aposd-pong/internal/config"
	"github.com/lanNo19/aposd-pong/internal/render"
)

// nullScreen — экран-заглушка: размеры есть, вывод никуда не идёт.
type nullScreen struct {
	cols, rows int
}

func (n *nullScreen) Size() (int, int)                                    { return n.cols, n.rows }
func (n *nullScreen) SetCell(x, y int, ch rune, fg, bg termbox.Attribute) {}
func (n *nullScreen) Clear()                                              {}
func (n *nullScreen) Flush() error                                        { return nil }

func newTestDeps(t *testing.T, winningScore int) Deps {
	t.Helper()
	screen := &nullScreen{cols: 80, rows: 24}
	cfg := config.Default()
	cfg.Game.WinningScore = winningScore
	return Deps{
		Master: NewMaster(time.Millisecond, nil, nil),
		Screen: screen,
		Drawer: render.NewDrawer(screen),
		Stars:  render.NewStarfield(1),
		Config: cfg,
		Rnd:    rand.New(rand.NewSource(5)),
		Logger: zap.NewNop().Sugar(),
	}
}

func keyEvent(key termbox.Key) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Key: key}
}

func charEvent(ch rune) termbox.Event {
	return termbox.Event{Type: termbox.EventKey, Ch: ch}
}

func TestGamePlaysToGameOver(t *testing.T) {
	deps := newTestDeps(t, 1)

	game, err := NewGame(deps)
	require.NoError(t, err, "матч с конфигурацией по умолчанию должен создаваться")
	deps.Master.Switch(game)
	require.NotEmpty(t, game.matchID, "после монтирования у матча должен быть идентификатор")

	// Уводим обе ракетки к верхней стене: мяч из центра летит
	// горизонтально и беспрепятственно доходит до стены
	for i := 0; i < 30; i++ {
		game.HandleKey(keyEvent(termbox.KeyArrowUp))
		game.HandleKey(charEvent('w'))
	}

	for tick := 0; tick < 500; tick++ {
		deps.Master.Current().Refresh(40 * time.Millisecond)
		if _, ok := deps.Master.Current().(*GameOver); ok {
			break
		}
	}

	gameOver, ok := deps.Master.Current().(*GameOver)
	require.True(t, ok, "при победном счёте 1 первый же гол заканчивает матч")
	assert.Contains(t, []int{1, 2}, gameOver.winner, "победителем должен быть игрок 1 или 2")
	assert.Equal(t, 1, gameOver.score[0]+gameOver.score[1], "в матче до 1 очка сыгран ровно один гол")
	assert.Equal(t, game.matchID, gameOver.matchID, "итоговый экран ссылается на тот же матч")
}

func TestGameKeysMovePaddles(t *testing.T) {
	deps := newTestDeps(t, 5)

	game, err := NewGame(deps)
	require.NoError(t, err)

	game.HandleKey(charEvent('w'))
	game.HandleKey(keyEvent(termbox.KeyArrowDown))

	snap := game.world.Snapshot()
	assert.Equal(t, 240, snap.LeftPaddle.Y, "w двигает левую ракетку вверх")
	assert.Equal(t, 260, snap.RightPaddle.Y, "стрелка вниз двигает правую ракетку вниз")

	// Не-клавиатурные события игнорируются
	game.HandleKey(termbox.Event{Type: termbox.EventResize})
	assert.Equal(t, snap.LeftPaddle.Y, game.world.Snapshot().LeftPaddle.Y)
}

func TestMainMenuNavigation(t *testing.T) {
	deps := newTestDeps(t, 5)

	menu := NewMainMenu(deps)
	deps.Master.Switch(menu)
	assert.Equal(t, 0, menu.selected, "меню открывается на первом пункте")

	menu.HandleKey(keyEvent(termbox.KeyArrowDown))
	assert.Equal(t, 1, menu.selected)
	menu.HandleKey(keyEvent(termbox.KeyArrowDown))
	assert.Equal(t, 0, menu.selected, "выбор зациклен")
	menu.HandleKey(keyEvent(termbox.KeyArrowUp))
	assert.Equal(t, 1, menu.selected, "выбор зациклен и вверх")

	// Enter на «Играть» переключает на матч
	menu.HandleKey(keyEvent(termbox.KeyArrowUp))
	require.Equal(t, 0, menu.selected)
	menu.HandleKey(keyEvent(termbox.KeyEnter))
	_, ok := deps.Master.Current().(*Game)
	assert.True(t, ok, "после Enter на «Играть» активен диалог матча")
}

func TestMainMenuQuit(t *testing.T) {
	deps := newTestDeps(t, 5)

	menu := NewMainMenu(deps)
	deps.Master.Switch(menu)

	menu.HandleKey(keyEvent(termbox.KeyArrowDown))
	menu.HandleKey(keyEvent(termbox.KeyEnter))

	select {
	case <-deps.Master.quit:
	default:
		t.Fatal("Enter на «Выход» должен останавливать цикл")
	}
}

func TestGameOverNavigation(t *testing.T) {
	deps := newTestDeps(t, 5)

	over := NewGameOver(deps, 2, [2]int{3, 5}, "match-1")
	deps.Master.Switch(over)

	// «В меню» возвращает в главное меню
	over.HandleKey(keyEvent(termbox.KeyArrowDown))
	over.HandleKey(keyEvent(termbox.KeyEnter))
	_, ok := deps.Master.Current().(*MainMenu)
	require.True(t, ok, "пункт «В меню» должен вести в главное меню")
}

func TestGameOverRetry(t *testing.T) {
	deps := newTestDeps(t, 5)

	over := NewGameOver(deps, 1, [2]int{5, 2}, "match-2")
	deps.Master.Switch(over)

	over.HandleKey(keyEvent(termbox.KeyEnter))
	_, ok := deps.Master.Current().(*Game)
	require.True(t, ok, "пункт «Ещё раз» должен начинать новый матч")
}
