package dialogue

import (
	"context"
	"sync"
	"time"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"
)

// Master владеет текущим диалогом и крутит цикл с фиксированной частотой.
// Тики и клавиатурные события обрабатываются в одном select, поэтому
// команды всегда применяются между тиками, а не во время них.
type Master struct {
	tickDur time.Duration
	keys    <-chan termbox.Event
	logger  *zap.SugaredLogger

	current  Dialogue
	quit     chan struct{}
	quitOnce sync.Once
}

// NewMaster создаёт цикл с заданной длительностью тика и каналом
// клавиатурных событий. nil-логгер заменяется на заглушку.
func NewMaster(tick time.Duration, keys <-chan termbox.Event, logger *zap.SugaredLogger) *Master {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Master{
		tickDur: tick,
		keys:    keys,
		logger:  logger,
		quit:    make(chan struct{}),
	}
}

// Switch размонтирует текущий диалог и монтирует новый.
// Вызывается из Refresh активного диалога либо до запуска цикла.
func (m *Master) Switch(d Dialogue) {
	if m.current != nil {
		m.current.Unmount()
	}
	m.current = d
	if d == nil {
		return
	}
	if err := d.Mount(); err != nil {
		m.logger.Errorw("не удалось смонтировать диалог", "dialogue", d.Name(), "error", err)
		return
	}
	m.logger.Infow("диалог переключён", "dialogue", d.Name())
}

// Current возвращает активный диалог.
func (m *Master) Current() Dialogue {
	return m.current
}

// Quit останавливает цикл. Повторные вызовы безопасны.
func (m *Master) Quit() {
	m.quitOnce.Do(func() {
		close(m.quit)
	})
}

// Run крутит цикл до отмены ctx, вызова Quit или закрытия канала клавиш.
// Esc и Ctrl+C завершают приложение из любого диалога, остальные клавиши
// уходят активному диалогу.
func (m *Master) Run(ctx context.Context) {
	ticker := time.NewTicker(m.tickDur)
	defer ticker.Stop()

	defer func() {
		if m.current != nil {
			m.current.Unmount()
			m.current = nil
		}
	}()

	last := time.Now()
	for {
		select {
		case t := <-ticker.C:
			dt := t.Sub(last)
			last = t
			m.safeRefresh(dt)
		case ev, ok := <-m.keys:
			if !ok {
				m.logger.Infow("канал ввода закрыт, цикл остановлен")
				return
			}
			if ev.Type == termbox.EventKey && (ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC) {
				m.Quit()
				continue
			}
			if m.current != nil {
				m.current.HandleKey(ev)
			}
		case <-m.quit:
			m.logger.Infow("цикл диалогов остановлен")
			return
		case <-ctx.Done():
			m.logger.Infow("контекст отменён, цикл остановлен")
			return
		}
	}
}

// safeRefresh вызывает Refresh с перехватом паники, чтобы ошибка одного
// кадра не роняла приложение с испорченным терминалом.
func (m *Master) safeRefresh(dt time.Duration) {
	d := m.current
	if d == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Errorw("паника в диалоге", "dialogue", d.Name(), "panic", r)
		}
	}()
	d.Refresh(dt)
}
