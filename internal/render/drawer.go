package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/lanNo19/aposd-pong/internal/world"
)

// Символы игровых объектов
const (
	paddleRune = '█'
	ballRune   = '■'
	netRune    = '·'
	cursor     = "> "
)

// Drawer рисует мир и меню на экране, масштабируя игровые координаты
// в сетку ячеек терминала. Верхняя строка отводится под счёт,
// нижняя — под подсказку по клавишам.
type Drawer struct {
	screen Screen
}

// NewDrawer создаёт отрисовщик поверх экрана.
func NewDrawer(screen Screen) *Drawer {
	return &Drawer{screen: screen}
}

// DrawWorld отрисовывает один кадр игры: счёт, сетку, ракетки и мяч.
func (d *Drawer) DrawWorld(snap world.Snapshot, score [2]int, help string) {
	d.screen.Clear()

	cols, rows := d.screen.Size()
	arenaTop := 1
	arenaRows := rows - 2
	if cols < 2 || arenaRows < 2 {
		// Терминал слишком мал, рисовать нечего
		_ = d.screen.Flush()
		return
	}

	// Счёт по центру верхней строки
	scoreLine := fmt.Sprintf("%d : %d", score[0], score[1])
	d.drawTextCentered(0, cols, scoreLine, termbox.ColorWhite|termbox.AttrBold, termbox.ColorDefault)

	// Сетка посередине поля
	for row := 0; row < arenaRows; row += 2 {
		d.screen.SetCell(cols/2, arenaTop+row, netRune, termbox.ColorWhite, termbox.ColorDefault)
	}

	d.drawPaddle(snap, snap.LeftPaddle, cols, arenaTop, arenaRows)
	d.drawPaddle(snap, snap.RightPaddle, cols, arenaTop, arenaRows)

	// Мяч — одна ячейка по центру его квадрата
	ballX := scale(snap.Ball.X+snap.Ball.Size/2, snap.Width, cols)
	ballY := scale(snap.Ball.Y+snap.Ball.Size/2, snap.Height, arenaRows)
	d.screen.SetCell(ballX, arenaTop+ballY, ballRune, termbox.ColorYellow, termbox.ColorDefault)

	// Подсказка в нижней строке
	d.drawText(0, rows-1, help, termbox.ColorWhite, termbox.ColorDefault)

	_ = d.screen.Flush()
}

func (d *Drawer) drawPaddle(snap world.Snapshot, p world.PaddleSnapshot, cols, arenaTop, arenaRows int) {
	x := scale(p.X+p.Width/2, snap.Width, cols)
	top := scale(p.Y, snap.Height, arenaRows)
	bottom := scale(p.Y+p.Height, snap.Height, arenaRows)
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom && y < arenaRows; y++ {
		d.screen.SetCell(x, arenaTop+y, paddleRune, termbox.ColorCyan, termbox.ColorDefault)
	}
}

// DrawMenu отрисовывает заголовок и список пунктов, отмечая выбранный
// курсором "> ". Подсказка выводится в нижней строке.
func (d *Drawer) DrawMenu(title string, options []string, selected int, help string) {
	d.screen.Clear()
	d.drawMenuItems(title, options, selected, help)
	_ = d.screen.Flush()
}

// DrawMenuOverlay рисует меню без очистки экрана — поверх уже
// отрисованного фона (звёздного неба).
func (d *Drawer) DrawMenuOverlay(title string, options []string, selected int, help string) {
	d.drawMenuItems(title, options, selected, help)
	_ = d.screen.Flush()
}

func (d *Drawer) drawMenuItems(title string, options []string, selected int, help string) {
	cols, rows := d.screen.Size()

	titleY := rows/2 - len(options) - 2
	if titleY < 0 {
		titleY = 0
	}
	d.drawTextCentered(titleY, cols, title, termbox.ColorGreen|termbox.AttrBold, termbox.ColorDefault)

	for i, opt := range options {
		line := "  " + opt
		fg := termbox.ColorWhite
		if i == selected {
			line = cursor + opt
			fg = termbox.ColorYellow | termbox.AttrBold
		}
		d.drawTextCentered(titleY+2+i, cols, line, fg, termbox.ColorDefault)
	}

	if rows > 0 {
		d.drawText(0, rows-1, help, termbox.ColorWhite, termbox.ColorDefault)
	}
}

// drawText выводит текст начиная с ячейки (x, y), учитывая ширину рун.
func (d *Drawer) drawText(x, y int, text string, fg, bg termbox.Attribute) {
	cols, _ := d.screen.Size()
	for _, ch := range text {
		if x >= cols {
			break
		}
		d.screen.SetCell(x, y, ch, fg, bg)
		x += runewidth.RuneWidth(ch)
	}
}

// drawTextCentered выводит текст по центру строки y.
func (d *Drawer) drawTextCentered(y, cols int, text string, fg, bg termbox.Attribute) {
	x := (cols - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	d.drawText(x, y, text, fg, bg)
}

// scale переводит игровую координату в индекс ячейки экрана.
func scale(value, worldExtent, cells int) int {
	idx := value * cells / worldExtent
	if idx < 0 {
		return 0
	}
	if idx >= cells {
		return cells - 1
	}
	return idx
}
