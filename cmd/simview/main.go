package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/lanNo19/aposd-pong/internal/world"
)

const (
	gridWidth  = 78
	gridHeight = 22
)

var (
	ticks  = flag.Int("ticks", 2000, "Количество тиков симуляции")
	seed   = flag.Int64("seed", 0, "Сид генератора случайных чисел (0 = по времени)")
	every  = flag.Int("every", 250, "Печатать кадр каждые N тиков (0 = без кадров)")
	width  = flag.Int("width", 800, "Ширина игрового поля")
	height = flag.Int("height", 600, "Высота игрового поля")
)

func main() {
	// Парсим флаги командной строки
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	fmt.Printf("Seed: %d\n", *seed)

	cfg := world.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height

	w, err := world.NewWithConfig(rand.New(rand.NewSource(*seed)), cfg)
	if err != nil {
		log.Fatalf("[SimView] не удалось создать мир: %v", err)
	}

	goals := [2]int{}
	rounds := 0

	for tick := 1; tick <= *ticks; tick++ {
		driveLeftPaddle(w)
		driveRightPaddle(w, tick)

		outcome := w.Update()
		switch outcome {
		case world.OutcomePlayerOne:
			goals[0]++
			rounds++
			log.Printf("[SimView] тик %d: гол, %v (счёт %d:%d)", tick, outcome, goals[0], goals[1])
		case world.OutcomePlayerTwo:
			goals[1]++
			rounds++
			log.Printf("[SimView] тик %d: гол, %v (счёт %d:%d)", tick, outcome, goals[0], goals[1])
		}

		if err := w.CheckInvariants(); err != nil {
			log.Fatalf("[SimView] тик %d: нарушен инвариант: %v", tick, err)
		}

		if *every > 0 && tick%*every == 0 {
			fmt.Printf("\nТик %d:\n", tick)
			printFrame(w.Snapshot())
		}
	}

	fmt.Println("\nИтоги симуляции:")
	fmt.Printf("  Тиков:            %d\n", *ticks)
	fmt.Printf("  Сыграно раундов:  %d\n", rounds)
	fmt.Printf("  Очки игрока 1:    %d\n", goals[0])
	fmt.Printf("  Очки игрока 2:    %d\n", goals[1])
}

// driveLeftPaddle ведёт левую ракетку за мячом, как простейший автопилот.
func driveLeftPaddle(w *world.World) {
	snap := w.Snapshot()
	paddleCenter := snap.LeftPaddle.Y + snap.LeftPaddle.Height/2
	ballCenter := snap.Ball.Y + snap.Ball.Size/2
	if ballCenter < paddleCenter {
		w.MoveLeftPaddleUp()
	} else if ballCenter > paddleCenter {
		w.MoveLeftPaddleDown()
	}
}

// driveRightPaddle гоняет правую ракетку вверх-вниз по расписанию.
func driveRightPaddle(w *world.World, tick int) {
	if tick/50%2 == 0 {
		w.MoveRightPaddleUp()
	} else {
		w.MoveRightPaddleDown()
	}
}

// printFrame печатает ASCII-кадр поля в stdout.
func printFrame(snap world.Snapshot) {
	grid := make([][]byte, gridHeight)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", gridWidth))
	}

	drawColumn(grid, snap, snap.LeftPaddle)
	drawColumn(grid, snap, snap.RightPaddle)

	bx := scale(snap.Ball.X+snap.Ball.Size/2, snap.Width, gridWidth)
	by := scale(snap.Ball.Y+snap.Ball.Size/2, snap.Height, gridHeight)
	grid[by][bx] = 'o'

	border := "+" + strings.Repeat("-", gridWidth) + "+"
	fmt.Println(border)
	for _, row := range grid {
		fmt.Printf("|%s|\n", row)
	}
	fmt.Println(border)
}

func drawColumn(grid [][]byte, snap world.Snapshot, p world.PaddleSnapshot) {
	x := scale(p.X+p.Width/2, snap.Width, gridWidth)
	top := scale(p.Y, snap.Height, gridHeight)
	bottom := scale(p.Y+p.Height, snap.Height, gridHeight)
	if bottom <= top {
		bottom = top + 1
	}
	for y := top; y < bottom && y < gridHeight; y++ {
		grid[y][x] = '#'
	}
}

func scale(value, extent, cells int) int {
	idx := value * cells / extent
	if idx < 0 {
		return 0
	}
	if idx >= cells {
		return cells - 1
	}
	return idx
}
