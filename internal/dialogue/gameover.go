package dialogue

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
)

// GameOver — экран окончания матча с итоговым счётом.
type GameOver struct {
	deps Deps

	winner   int
	score    [2]int
	matchID  string
	options  []string
	selected int
}

// NewGameOver создаёт экран победы игрока winner (1 или 2).
func NewGameOver(deps Deps, winner int, score [2]int, matchID string) *GameOver {
	return &GameOver{
		deps:    deps,
		winner:  winner,
		score:   score,
		matchID: matchID,
		options: []string{"Ещё раз", "В меню"},
	}
}

func (g *GameOver) Mount() error {
	g.selected = 0
	return nil
}

func (g *GameOver) Unmount() {}

func (g *GameOver) HandleKey(ev termbox.Event) {
	if ev.Type != termbox.EventKey {
		return
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		g.selected = (g.selected - 1 + len(g.options)) % len(g.options)
	case termbox.KeyArrowDown:
		g.selected = (g.selected + 1) % len(g.options)
	case termbox.KeyEnter:
		g.confirm()
	}
}

func (g *GameOver) confirm() {
	switch g.selected {
	case 0:
		game, err := NewGame(g.deps)
		if err != nil {
			g.deps.Logger.Errorw("не удалось начать новый матч", "error", err)
			return
		}
		g.deps.Master.Switch(game)
	default:
		g.deps.Master.Switch(NewMainMenu(g.deps))
	}
}

func (g *GameOver) Refresh(dt time.Duration) {
	g.deps.Stars.Advance(dt)
	g.deps.Stars.Draw(g.deps.Screen)
	title := fmt.Sprintf("Игрок %d победил!", g.winner)
	summary := fmt.Sprintf("Счёт %d:%d · матч %s", g.score[0], g.score[1], g.matchID)
	g.deps.Drawer.DrawMenuOverlay(title, g.options, g.selected, summary)
}

func (g *GameOver) Name() string {
	return "game-over"
}
