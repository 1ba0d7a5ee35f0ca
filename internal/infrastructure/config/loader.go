package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// SettingsFile is the name of the base settings file inside the loader's filesystem
const SettingsFile = "settings.yaml"

// EnvPrefix prefixes environment overrides (QUIZ_QUIZ_SESSION_SIZE=5)
const EnvPrefix = "QUIZ"

// Loader loads settings from a base settings.yaml on an fs.FS,
// an optional override file and QUIZ_* environment variables.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS (e.g. embedded defaults)
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads the settings. overridePath may be empty.
func (l *Loader) Load(overridePath string) (*Settings, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)

	data, err := fs.ReadFile(l.fsys, SettingsFile)
	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", SettingsFile, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only
	default:
		return nil, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	if overridePath != "" {
		v.SetConfigFile(overridePath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", overridePath, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Settings
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the game loop cannot recover from
func (s *Settings) Validate() error {
	if s.Display.ScreenWidth <= 0 || s.Display.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", s.Display.ScreenWidth, s.Display.ScreenHeight)
	}
	if s.Display.Framerate <= 0 {
		return fmt.Errorf("invalid framerate %d", s.Display.Framerate)
	}
	if err := s.Palette.Validate(); err != nil {
		return fmt.Errorf("invalid palette: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.title", "Quiz")
	v.SetDefault("display.screen_width", 1280)
	v.SetDefault("display.screen_height", 720)
	v.SetDefault("display.scale", 1.0)
	v.SetDefault("display.framerate", 60)

	v.SetDefault("quiz.session_size", 10)
	v.SetDefault("quiz.questions_path", "questions.json")

	anim := func(key string, duration, delay float64, easing string) {
		v.SetDefault("animations."+key+".duration", duration)
		v.SetDefault("animations."+key+".delay", delay)
		v.SetDefault("animations."+key+".easing", easing)
	}
	anim("logo_fade", 2.0, 0.3, "easeInOut")
	anim("prompt_blink", 0.8, 0, "easeInOut")
	anim("screen_fade", 0.6, 0, "easeInOut")
	anim("question_fade", 0.5, 0, "easeOutQuad")
	anim("button_slide", 0.6, 0.1, "easeOutBack")
	anim("button_color", 0.6, 0, "easeInOut")
	anim("feedback", 1.5, 0, "linear")
	anim("result_fade", 3.0, 0, "easeInOut")
	anim("circle_grow", 4.0, 1.5, "easeInOut")
	anim("idle_return", 10.0, 0, "linear")

	v.SetDefault("palette.background", "#0090D3")
	v.SetDefault("palette.background_dark", "#007BB6")
	v.SetDefault("palette.intro_bg", "#D6E5BE")
	v.SetDefault("palette.text", "#FFFFFF")
	v.SetDefault("palette.correct", "#27A433")
	v.SetDefault("palette.wrong", "#EA3B2E")
	v.SetDefault("palette.option_a", "#EA3B2E")
	v.SetDefault("palette.option_b", "#0068CF")
	v.SetDefault("palette.option_c", "#27A433")
	v.SetDefault("palette.option_d", "#EEC62B")

	v.SetDefault("keys", map[string][]string{
		"option_a": {"A", "Digit1"},
		"option_b": {"B", "Digit2"},
		"option_c": {"C", "Digit3"},
		"option_d": {"D", "Digit4"},
		"confirm":  {"Enter", "Space"},
		"quit":     {"Escape"},
	})

	v.SetDefault("assets.images_dir", "assets/images/themes")
	v.SetDefault("assets.placeholder", "")
	v.SetDefault("assets.logo", "assets/images/logo.png")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.redis_addr", "")
	v.SetDefault("log.redis_password", "")
	v.SetDefault("log.redis_db", 0)
	v.SetDefault("log.redis_ttl", "720h")
}
