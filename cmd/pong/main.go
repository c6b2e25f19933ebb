package main

import (
	"context"
	"expvar"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nsf/termbox-go"
	"go.uber.org/zap"

	"github.com/lanNo19/aposd-pong/internal/config"
	"github.com/lanNo19/aposd-pong/internal/dialogue"
	"github.com/lanNo19/aposd-pong/internal/render"
)

var (
	configPath = flag.String("config", "", "Путь к YAML-файлу конфигурации")
	seed       = flag.Int64("seed", 0, "Сид генератора случайных чисел (0 = по времени)")
	tickRate   = flag.Int("tick", 0, "Частота тиков в герцах (0 = из конфигурации)")
	winScore   = flag.Int("score", 0, "Победный счёт матча (0 = из конфигурации)")
	logPath    = flag.String("log", "", "Файл для логов (пусто = логи выключены)")
	debugAddr  = flag.String("debug-addr", "", "Адрес отладочного HTTP-сервера со счётчиками /debug/vars (пусто = выключен)")
)

func main() {
	// Парсим флаги командной строки
	flag.Parse()

	// Если сид не указан, берём текущее время
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Загружаем конфигурацию и накладываем флаги поверх неё
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}
	if *tickRate > 0 {
		cfg.Game.TickRate = *tickRate
	}
	if *winScore > 0 {
		cfg.Game.WinningScore = *winScore
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Некорректная конфигурация: %v", err)
	}

	// Логи пишутся только в файл: терминал занят игрой
	logger := zap.NewNop()
	if *logPath != "" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{*logPath}
		zcfg.ErrorOutputPaths = []string{*logPath}
		logger, err = zcfg.Build()
		if err != nil {
			log.Fatalf("Не удалось открыть файл логов: %v", err)
		}
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Счётчики для /debug/vars
	expvar.NewInt("pong_seed").Set(*seed)
	if *debugAddr != "" {
		go func() {
			if err := http.ListenAndServe(*debugAddr, nil); err != nil {
				sugar.Errorw("отладочный HTTP-сервер остановлен", "error", err)
			}
		}()
	}

	// Инициализируем терминал
	if err := termbox.Init(); err != nil {
		log.Fatalf("Не удалось инициализировать терминал: %v", err)
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	// Обрабатываем сигналы для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		sugar.Infow("получен сигнал завершения")
		cancel()
		termbox.Interrupt()
	}()

	// Качаем события клавиатуры в канал мастера
	keyCh := make(chan termbox.Event, 8)
	go func() {
		defer close(keyCh)
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			select {
			case keyCh <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	rnd := rand.New(rand.NewSource(*seed))
	screen := render.NewTermboxScreen()

	tickDur := time.Second / time.Duration(cfg.Game.TickRate)
	master := dialogue.NewMaster(tickDur, keyCh, sugar)
	deps := dialogue.Deps{
		Master: master,
		Screen: screen,
		Drawer: render.NewDrawer(screen),
		Stars:  render.NewStarfield(*seed),
		Config: cfg,
		Rnd:    rnd,
		Logger: sugar,
	}

	sugar.Infow("игра запущена",
		"seed", *seed,
		"tick_rate", cfg.Game.TickRate,
		"winning_score", cfg.Game.WinningScore,
	)

	master.Switch(dialogue.NewMainMenu(deps))
	master.Run(ctx)

	// Освобождаем горутину ввода, зависшую в PollEvent
	cancel()
	termbox.Interrupt()
	sugar.Infow("игра завершила работу")
}
