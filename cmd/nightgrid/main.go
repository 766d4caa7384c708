package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/nightgrid/audio"
	"github.com/lixenwraith/nightgrid/config"
	"github.com/lixenwraith/nightgrid/engine"
	"github.com/lixenwraith/nightgrid/game"
	"github.com/lixenwraith/nightgrid/input"
	"github.com/lixenwraith/nightgrid/render"
	"github.com/lixenwraith/nightgrid/systems"
	"github.com/lixenwraith/nightgrid/vmath"
)

const frameTime = 16 * time.Millisecond

// frameSource hands the pipeline the snapshot the shell already
// drained this frame
type frameSource struct {
	state input.State
}

func (f *frameSource) Drain() input.State {
	st := f.state
	f.state = input.State{}
	return st
}

func main() {
	configPath := flag.String("config", "", "path to TOML config file")
	levelFlag := flag.Int("level", -1, "level index, overrides config")
	levelsPath := flag.String("levels", "", "path to YAML level file, overrides built-ins")
	debug := flag.Bool("debug", false, "write debug log to nightgrid.log")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *levelFlag >= 0 {
		cfg.Game.Level = *levelFlag
	}
	if *levelsPath != "" {
		cfg.Game.LevelsFile = *levelsPath
	}
	if *mute {
		cfg.Audio.Enabled = false
	}

	logger := newLogger(*debug, cfg.Log.Level)
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("fatal", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds a development logger writing to a file at debug,
// and a nop logger otherwise. The terminal belongs to the renderer,
// so nothing may log to stdout or stderr mid-game.
func newLogger(debug bool, level string) *zap.Logger {
	if !debug {
		return zap.NewNop()
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.OutputPaths = []string{"nightgrid.log"}
	zapCfg.ErrorOutputPaths = []string{"nightgrid.log"}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func run(cfg config.Config, logger *zap.Logger) error {
	levels := game.BuiltinLevels()
	if cfg.Game.LevelsFile != "" {
		loaded, err := game.LoadLevels(cfg.Game.LevelsFile)
		if err != nil {
			return err
		}
		levels = loaded
	}
	if cfg.Game.Level >= len(levels) {
		return fmt.Errorf("level %d out of range, have %d levels", cfg.Game.Level, len(levels))
	}

	cues, err := audio.NewEngine(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err != nil {
		// The game is playable silent
		logger.Warn("audio unavailable", zap.Error(err))
		cues = nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Restore the terminal before any panic reaches the user
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			panic(r)
		}
	}()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	world := engine.NewWorld()
	if err := game.Setup(world, levels, cfg.Game.Level); err != nil {
		return err
	}
	tuning := game.Tuning{
		PlayerSpeed:    cfg.Game.PlayerSpeed,
		EnemySpeed:     cfg.Game.EnemySpeed,
		DetectionRange: cfg.Game.DetectionRange,
	}
	game.ApplyTuning(world, tuning)

	src := &frameSource{}
	var cuePlayer systems.CuePlayer
	if cues != nil {
		cuePlayer = cues
	}
	pipeline := game.NewPipeline(src, vmath.NewFastRand(seed), cuePlayer)
	renderer := render.NewRenderer(screen)
	keyboard := input.NewKeyboard()
	levelName := levels[cfg.Game.Level].Name

	logger.Info("game start",
		zap.String("level", levelName),
		zap.Uint64("seed", seed),
		zap.Int("enemies", game.AliveEnemies(world)))

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	lastEnemies := game.AliveEnemies(world)
	wasAlive := true
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventKey:
				keyboard.HandleKey(e)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			st := keyboard.Drain()
			if st.Quit {
				logger.Info("quit")
				return nil
			}
			if st.Restart {
				if err := game.Restart(world, levels, cfg.Game.Level); err != nil {
					return err
				}
				game.ApplyTuning(world, tuning)
				lastEnemies = game.AliveEnemies(world)
				wasAlive = true
				logger.Info("restart", zap.String("level", levelName))
				st = input.State{}
			}

			src.state = st
			pipeline.Run(world, frameTime.Seconds())

			if n := game.AliveEnemies(world); n != lastEnemies {
				logger.Debug("enemy down", zap.Int("remaining", n))
				lastEnemies = n
			}
			if alive := game.PlayerAlive(world); alive != wasAlive {
				if !alive {
					logger.Debug("player down")
				}
				wasAlive = alive
			}

			renderer.Draw(world, levelName)
		}
	}
}
