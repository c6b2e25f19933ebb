package dialogue

import (
	"time"

	"github.com/nsf/termbox-go"
)

const menuHelp = "↑/↓ — выбор, Enter — подтвердить, Esc — выход"

// MainMenu — стартовое меню с пунктами «Играть» и «Выход».
type MainMenu struct {
	deps     Deps
	options  []string
	selected int
}

// NewMainMenu создаёт главное меню.
func NewMainMenu(deps Deps) *MainMenu {
	return &MainMenu{
		deps:    deps,
		options: []string{"Играть", "Выход"},
	}
}

func (m *MainMenu) Mount() error {
	m.selected = 0
	return nil
}

func (m *MainMenu) Unmount() {}

func (m *MainMenu) HandleKey(ev termbox.Event) {
	if ev.Type != termbox.EventKey {
		return
	}
	switch ev.Key {
	case termbox.KeyArrowUp:
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
	case termbox.KeyArrowDown:
		m.selected = (m.selected + 1) % len(m.options)
	case termbox.KeyEnter:
		m.confirm()
	}
}

func (m *MainMenu) confirm() {
	switch m.selected {
	case 0:
		game, err := NewGame(m.deps)
		if err != nil {
			m.deps.Logger.Errorw("не удалось начать матч", "error", err)
			return
		}
		m.deps.Master.Switch(game)
	default:
		m.deps.Master.Quit()
	}
}

func (m *MainMenu) Refresh(dt time.Duration) {
	m.deps.Stars.Advance(dt)
	m.deps.Stars.Draw(m.deps.Screen)
	m.deps.Drawer.DrawMenuOverlay("PONG", m.options, m.selected, menuHelp)
}

func (m *MainMenu) Name() string {
	return "main-menu"
}
