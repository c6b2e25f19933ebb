// Package config загружает конфигурацию приложения из YAML-файла,
// накладывая её поверх значений по умолчанию.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lanNo19/aposd-pong/internal/world"
)

// WorldConfig — параметры игрового мира в файле конфигурации.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	PaddleHeight int `yaml:"paddle_height"`
	PaddleWidth  int `yaml:"paddle_width"`
	PaddleSpeed  int `yaml:"paddle_speed"`
	PaddleInset  int `yaml:"paddle_inset"`

	BallSize           int `yaml:"ball_size"`
	BallSpeed          int `yaml:"ball_speed"`
	BallMaxSpeed       int `yaml:"ball_max_speed"`
	BallSpeedIncrement int `yaml:"ball_speed_increment"`
}

// GameConfig — параметры матча и игрового цикла.
type GameConfig struct {
	// TickRate — частота тиков в герцах.
	TickRate int `yaml:"tick_rate"`
	// WinningScore — счёт, при котором матч заканчивается.
	WinningScore int `yaml:"winning_score"`
}

// Config — полная конфигурация приложения.
type Config struct {
	World WorldConfig `yaml:"world"`
	Game  GameConfig  `yaml:"game"`
}

// Default возвращает конфигурацию эталонной игры: мир 800x600 при 25 Гц,
// матч до 5 очков.
func Default() Config {
	wc := world.DefaultConfig()
	return Config{
		World: WorldConfig{
			Width:              wc.Width,
			Height:             wc.Height,
			PaddleHeight:       wc.PaddleHeight,
			PaddleWidth:        wc.PaddleWidth,
			PaddleSpeed:        wc.PaddleSpeed,
			PaddleInset:        wc.PaddleInset,
			BallSize:           wc.BallSize,
			BallSpeed:          wc.BallSpeed,
			BallMaxSpeed:       wc.BallMaxSpeed,
			BallSpeedIncrement: wc.BallSpeedIncrement,
		},
		Game: GameConfig{
			TickRate:     25,
			WinningScore: 5,
		},
	}
}

// Load читает конфигурацию из YAML-файла по указанному пути.
// Пустой путь или отсутствующий файл — не ошибка: возвращаются значения
// по умолчанию. Заданные в файле поля накладываются поверх них.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("чтение файла конфигурации %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("разбор файла конфигурации %s: %w", path, err)
	}
	return cfg, nil
}

// WorldConfig переводит конфигурацию в параметры ядра.
func (c Config) WorldConfig() world.Config {
	return world.Config{
		Width:              c.World.Width,
		Height:             c.World.Height,
		PaddleHeight:       c.World.PaddleHeight,
		PaddleWidth:        c.World.PaddleWidth,
		PaddleSpeed:        c.World.PaddleSpeed,
		PaddleInset:        c.World.PaddleInset,
		BallSize:           c.World.BallSize,
		BallSpeed:          c.World.BallSpeed,
		BallMaxSpeed:       c.World.BallMaxSpeed,
		BallSpeedIncrement: c.World.BallSpeedIncrement,
	}
}

// Validate проверяет согласованность конфигурации приложения.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("частота тиков должна быть положительной: %d", c.Game.TickRate)
	}
	if c.Game.WinningScore <= 0 {
		return fmt.Errorf("победный счёт должен быть положительным: %d", c.Game.WinningScore)
	}
	return c.WorldConfig().Validate()
}
