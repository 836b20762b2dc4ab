package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/llehouerou/pulse/internal/app"
	"github.com/llehouerou/pulse/internal/config"
	"github.com/llehouerou/pulse/internal/logging"
	"github.com/llehouerou/pulse/internal/meter"
	"github.com/llehouerou/pulse/internal/mpris"
	"github.com/llehouerou/pulse/internal/notify"
	"github.com/llehouerou/pulse/internal/nowplaying"
	"github.com/llehouerou/pulse/internal/playback"
	"github.com/llehouerou/pulse/internal/player"
	"github.com/llehouerou/pulse/internal/playlist"
	"github.com/llehouerou/pulse/internal/stderr"
)

// flags holds command line overrides.
type flags struct {
	configPath string
	logLevel   string
}

// appOptions is the dependency graph of the player. Hooks stop in reverse
// order, so remote control goes first and the audio device last.
func appOptions(f flags) fx.Option {
	return fx.Options(
		fx.Supply(f),
		fx.Provide(
			newConfig,
			newLogger,
			newStderrCapture,
			newSession,
			newOpener,
			app.BuildPlaylist,
			newPublisher,
			newEngine,
			newProgram,
		),
		fx.Invoke(startMPRIS),
	)
}

func newConfig(f flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

func newLogger(lc fx.Lifecycle, cfg *config.Config) (*zap.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level: cfg.GetLogLevel(),
		File:  cfg.GetLogFile(),
	})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			_ = logger.Sync()
			return nil
		},
	})
	return logger, nil
}

// newStderrCapture redirects C library noise to the log. The player keeps
// running without it when the redirect fails.
func newStderrCapture(lc fx.Lifecycle, logger *zap.Logger) *stderr.Capture {
	capture, err := stderr.Start(logger)
	if err != nil {
		logger.Warn("stderr capture unavailable", zap.Error(err))
		return nil
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			capture.Stop()
			return nil
		},
	})
	return capture
}

// newSession depends on the capture so the device opens after the redirect.
func newSession(lc fx.Lifecycle, cfg *config.Config, _ *stderr.Capture) (*player.Session, error) {
	audio := cfg.GetAudioConfig()
	session, err := player.OpenSession(audio.SampleRate, audio.Buffer())
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return session.Close()
		},
	})
	return session, nil
}

func newOpener(cfg *config.Config, session *player.Session) player.Opener {
	return player.NewBeepOpener(cfg.GetMusicDir(), session.SampleRate())
}

func newPublisher(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) nowplaying.Multi {
	pub := nowplaying.Multi{nowplaying.NewLogPublisher(logger)}
	if !cfg.NotificationsEnabled() {
		return pub
	}

	n, err := notify.New()
	if err != nil {
		logger.Warn("desktop notifications unavailable", zap.Error(err))
		return pub
	}
	np := nowplaying.NewNotifyPublisher(n, logger)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return np.Close()
		},
	})
	return append(pub, np)
}

func newEngine(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger *zap.Logger,
	opener player.Opener,
	pl *playlist.Playlist,
	pub nowplaying.Multi,
) *playback.Engine {
	m := cfg.GetMeterConfig()
	engine := playback.New(opener, pl,
		playback.WithLogger(logger.Named("playback")),
		playback.WithMeterInterval(m.Interval()),
		playback.WithNormalizer(meter.NewNormalizer(m.Gamma)),
		playback.WithArtwork(nowplaying.ResolveArtwork(cfg.Artwork, cfg.GetMusicDir())),
		playback.WithPublisher(pub),
	)
	logger.Info("engine ready",
		zap.Int("tracks", pl.Len()),
		zap.String("music_dir", cfg.GetMusicDir()))
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return engine.Close()
		},
	})
	return engine
}

// startMPRIS exposes the engine over D-Bus. A missing session bus only
// disables remote control.
func startMPRIS(lc fx.Lifecycle, cfg *config.Config, engine *playback.Engine, logger *zap.Logger) {
	if !cfg.MPRISEnabled() {
		return
	}
	adapter, err := mpris.New(engine, logger)
	if err != nil {
		logger.Warn("mpris unavailable", zap.Error(err))
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return adapter.Close()
		},
	})
}

func newProgram(engine *playback.Engine, logger *zap.Logger) *tea.Program {
	return tea.NewProgram(app.New(engine, logger, nil), tea.WithAltScreen())
}
