package dialogue

import (
	"expvar"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nsf/termbox-go"

	"github.com/lanNo19/aposd-pong/internal/world"
)

const gameHelp = "w/s — левая ракетка, ↑/↓ — правая, Esc — выход"

// Счётчики матчей для /debug/vars
var (
	tickCount  = expvar.NewInt("pong_ticks")
	goalCount  = expvar.NewInt("pong_goals")
	matchCount = expvar.NewInt("pong_matches")
)

// Game — диалог идущего матча. Владеет миром и счётом; мир сам
// перезапускает раунд после гола, диалог только считает очки
// и переключает экран при победе.
type Game struct {
	deps Deps

	world        *world.World
	score        [2]int
	winningScore int
	matchID      string
}

// NewGame создаёт матч с новым миром по текущей конфигурации.
func NewGame(deps Deps) (*Game, error) {
	w, err := world.NewWithConfig(deps.Rnd, deps.Config.WorldConfig())
	if err != nil {
		return nil, fmt.Errorf("создание мира: %w", err)
	}
	return &Game{
		deps:         deps,
		world:        w,
		winningScore: deps.Config.Game.WinningScore,
	}, nil
}

func (g *Game) Mount() error {
	g.matchID = uuid.New().String()
	matchCount.Add(1)
	g.deps.Logger.Infow("матч начат",
		"match_id", g.matchID,
		"winning_score", g.winningScore,
	)
	return nil
}

func (g *Game) Unmount() {
	g.deps.Logger.Infow("матч завершён",
		"match_id", g.matchID,
		"score", fmt.Sprintf("%d:%d", g.score[0], g.score[1]),
	)
}

func (g *Game) HandleKey(ev termbox.Event) {
	if ev.Type != termbox.EventKey {
		return
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		g.world.MoveRightPaddleUp()
	case termbox.KeyArrowDown:
		g.world.MoveRightPaddleDown()
	}
	switch ev.Ch {
	case 'w', 'W':
		g.world.MoveLeftPaddleUp()
	case 's', 'S':
		g.world.MoveLeftPaddleDown()
	}
}

func (g *Game) Refresh(dt time.Duration) {
	outcome := g.world.Update()
	tickCount.Add(1)

	switch outcome {
	case world.OutcomePlayerOne:
		g.score[0]++
	case world.OutcomePlayerTwo:
		g.score[1]++
	}

	if outcome != world.OutcomeContinue {
		goalCount.Add(1)
		g.deps.Logger.Infow("гол",
			"match_id", g.matchID,
			"winner", outcome.String(),
			"score", fmt.Sprintf("%d:%d", g.score[0], g.score[1]),
		)
		if winner := g.winner(); winner != 0 {
			g.deps.Master.Switch(NewGameOver(g.deps, winner, g.score, g.matchID))
			return
		}
		// Мир уже перезапустил раунд внутри Update
	}

	g.deps.Drawer.DrawWorld(g.world.Snapshot(), g.score, gameHelp)
}

// winner возвращает 1 или 2, если кто-то набрал победный счёт, иначе 0.
func (g *Game) winner() int {
	if g.score[0] >= g.winningScore {
		return 1
	}
	if g.score[1] >= g.winningScore {
		return 2
	}
	return 0
}

func (g *Game) Name() string {
	return "game"
}
