package render

import (
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/nsf/termbox-go"
)

// Параметры шума Перлина для звёздного неба
const (
	starAlpha     = 2.0
	starBeta      = 2.0
	starOctaves   = 3
	starScale     = 10.0
	starThreshold = 0.15
	brightCutoff  = 0.35
)

// Starfield — мерцающий фон для экранов меню на основе шума Перлина.
// При фиксированном сиде картина детерминирована.
type Starfield struct {
	noise *perlin.Perlin
	t     float64
}

// NewStarfield создаёт фон с заданным сидом.
func NewStarfield(seed int64) *Starfield {
	return &Starfield{
		noise: perlin.NewPerlin(starAlpha, starBeta, starOctaves, seed),
	}
}

// Advance продвигает время мерцания.
func (s *Starfield) Advance(dt time.Duration) {
	s.t += dt.Seconds()
}

// Draw очищает экран и рисует звёзды. Вызывается до наложения меню.
func (s *Starfield) Draw(screen Screen) {
	screen.Clear()
	cols, rows := screen.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := s.noise.Noise3D(float64(x)/starScale, float64(y)/starScale, s.t/4)
			if v < starThreshold {
				continue
			}
			ch := '·'
			fg := termbox.ColorWhite
			if v > brightCutoff {
				ch = '✦'
				fg = termbox.ColorWhite | termbox.AttrBold
			}
			screen.SetCell(x, y, ch, fg, termbox.ColorDefault)
		}
	}
}
