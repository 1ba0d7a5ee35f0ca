package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/younwookim/quizshow/internal/application/game"
	"github.com/younwookim/quizshow/internal/application/replay"
	"github.com/younwookim/quizshow/internal/application/scene"
	"github.com/younwookim/quizshow/internal/application/scene/gameover"
	"github.com/younwookim/quizshow/internal/application/scene/intro"
	"github.com/younwookim/quizshow/internal/application/scene/quizplay"
	"github.com/younwookim/quizshow/internal/application/state"
	"github.com/younwookim/quizshow/internal/application/system"
	"github.com/younwookim/quizshow/internal/domain/quiz"
	"github.com/younwookim/quizshow/internal/infrastructure/assets"
	"github.com/younwookim/quizshow/internal/infrastructure/config"
	"github.com/younwookim/quizshow/internal/infrastructure/sessionlog"
)

const defaultRedisTTL = 30 * 24 * time.Hour

type runOptions struct {
	questionsPath string
	recordPath    string
	replayPath    string
	seed          int64
}

func runGame(ctx context.Context, g *globalOptions, r *runOptions) error {
	cfg, err := g.loadSettings()
	if err != nil {
		return err
	}
	logger, err := g.logger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	seed := r.seed
	questionsName := cfg.Quiz.QuestionsPath
	if r.questionsPath != "" {
		questionsName = r.questionsPath
	}

	var recorded *replay.ReplayData
	if r.replayPath != "" {
		recorded, err = replay.LoadReplay(r.replayPath)
		if err != nil {
			return err
		}
		seed = recorded.Seed
		if r.questionsPath == "" && recorded.Questions != "" {
			questionsName = recorded.Questions
		}
		logger.Info("replaying", zap.String("file", r.replayPath), zap.Int("frames", recorded.TotalFrames))
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	pool := g.loadPool(questionsName, logger)

	decoded, err := assets.Decode(ctx, os.DirFS(cfg.Assets.ImagesDir), cfg.Assets.Themes, cfg.Assets.Placeholder, logger)
	if err != nil {
		return err
	}
	images := decoded.Upload(seed)
	logo := assets.LoadImage(os.DirFS("."), cfg.Assets.Logo, logger)

	results, closeSinks := newResultRecorder(cfg, logger)
	defer closeSinks()

	bindings, err := system.ParseBindings(cfg.Keys)
	if err != nil {
		return fmt.Errorf("invalid key bindings: %w", err)
	}
	var src game.InputSource = system.NewInputSystem(bindings, logger)
	if recorded != nil {
		src = replay.NewReplayer(*recorded).WithFallback(src)
	}

	machine := scene.NewMachine(logger)
	quizScene := quizplay.New(cfg, machine, quizplay.Deps{
		Pool:       pool,
		Randomizer: quiz.NewSeededRandomizer(seed),
		Sink:       results,
		Images:     images,
		Logger:     logger,
	})
	machine.Register(state.Intro, intro.New(cfg, machine, logo, logger))
	machine.Register(state.Quiz, quizScene)
	machine.Register(state.GameOver, gameover.New(cfg, machine, quizScene, logo, logger))

	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight
	gm, err := game.New(machine, state.Intro, src, w, h, logger)
	if err != nil {
		return err
	}
	gm.SetDT(cfg.Display.DT())

	var rec *replay.Recorder
	if r.recordPath != "" {
		rec = replay.NewRecorder(seed, questionsName)
		gm.SetRecorder(rec)
		logger.Info("recording enabled", zap.String("file", r.recordPath), zap.Int64("seed", seed))
	}

	scale := cfg.Display.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(w)*scale), int(float64(h)*scale))
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	runErr := ebiten.RunGame(gm)
	if rec != nil {
		saveRecording(rec, r.recordPath, logger)
	}
	return runErr
}

// newResultRecorder writes finished sessions to the day file and, when
// configured, to Redis.
func newResultRecorder(cfg *config.Settings, logger *zap.Logger) (*sessionlog.Recorder, func()) {
	sinks := []sessionlog.Sink{sessionlog.NewFileSink(cfg.Log.Dir, logger)}
	closeFn := func() {}

	if cfg.Log.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Log.RedisAddr,
			Password: cfg.Log.RedisPassword,
			DB:       cfg.Log.RedisDB,
		})
		sinks = append(sinks, sessionlog.NewRedisSink(client, cfg.Log.TTL(defaultRedisTTL)))
		closeFn = func() { _ = client.Close() }
	}
	return sessionlog.NewRecorder(logger, sinks...), closeFn
}

func saveRecording(rec *replay.Recorder, filename string, logger *zap.Logger) {
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	rec.Stop()
	err := rec.Save(filename)
	switch {
	case errors.Is(err, replay.ErrNoFrames):
		logger.Info("nothing recorded")
	case err != nil:
		logger.Error("failed to save recording", zap.Error(err))
	default:
		logger.Info("recording saved", zap.String("file", filename), zap.Int("frames", rec.FrameCount()))
	}
}
