package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/stride/internal/application/game"
	"github.com/younwookim/stride/internal/application/scene/playing"
	"github.com/younwookim/stride/internal/application/session"
	"github.com/younwookim/stride/internal/infrastructure/config"
	"github.com/younwookim/stride/internal/infrastructure/logger"
)

//go:embed configs
var configFS embed.FS

func main() {
	configDir := flag.String("config", "", "Config directory to load and watch (default: embedded configs)")
	levelFlag := flag.String("level", "demo", "Level to play")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded replay headless and print a summary")
	logLevel := flag.String("log-level", "", "Override the configured log level")
	logFile := flag.String("log-file", "", "Override the configured log file")
	flag.Parse()

	loader, err := newLoader(*configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open configs: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loader.LoadGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *logFile != "" {
		cfg.Logging.File = *logFile
	}

	log := logger.New(cfg.Logging)
	defer func() { _ = log.Sync() }()

	if *replayFlag != "" {
		if err := runReplay(os.Stdout, loader, *replayFlag, log); err != nil {
			log.Error("replay failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	if err := run(loader, *configDir, *levelFlag, *recordFlag, log); err != nil {
		log.Error("game exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys), nil
}

func run(loader *config.Loader, configDir, level, recordPath string, log *zap.Logger) error {
	cfg, levelCfg, err := loader.LoadAll(level)
	if err != nil {
		return err
	}

	sess, err := session.New(cfg, levelCfg, log)
	if err != nil {
		return err
	}

	scene := playing.New(sess, levelCfg, log.Named("playing"), recordPath)
	if configDir != "" {
		watcher, err := config.NewWatcher(configDir, filepath.Join(configDir, "levels"))
		if err != nil {
			log.Warn("hot reload disabled", zap.Error(err))
		} else {
			scene.EnableHotReload(loader, watcher)
			log.Info("watching configs", zap.String("dir", configDir))
		}
	}

	g := game.New(scene, cfg.Display)
	defer g.Close()

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Stride - " + sess.Level().Name)
	ebiten.SetTPS(cfg.Display.Framerate)

	return ebiten.RunGame(g)
}
