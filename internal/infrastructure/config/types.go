package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/younwookim/quizshow/internal/domain/animation"
)

// Settings is the root config for settings.yaml
type Settings struct {
	Display    DisplayConfig       `mapstructure:"display"`
	Quiz       QuizConfig          `mapstructure:"quiz"`
	Animations AnimationsConfig    `mapstructure:"animations"`
	Palette    PaletteConfig       `mapstructure:"palette"`
	Keys       map[string][]string `mapstructure:"keys"` // logical key -> ebiten key names
	Assets     AssetsConfig        `mapstructure:"assets"`
	Log        LogConfig           `mapstructure:"log"`
}

type DisplayConfig struct {
	Title        string  `mapstructure:"title"`
	ScreenWidth  int     `mapstructure:"screen_width"`
	ScreenHeight int     `mapstructure:"screen_height"`
	Scale        float64 `mapstructure:"scale"`
	Framerate    int     `mapstructure:"framerate"`
}

// DT returns the fixed timestep in seconds
func (d DisplayConfig) DT() float64 {
	if d.Framerate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(d.Framerate)
}

type QuizConfig struct {
	SessionSize   int    `mapstructure:"session_size"`
	QuestionsPath string `mapstructure:"questions_path"`
}

// AnimationConfig holds the timing of a single transition
type AnimationConfig struct {
	Duration float64 `mapstructure:"duration"` // seconds
	Delay    float64 `mapstructure:"delay"`    // seconds
	Easing   string  `mapstructure:"easing"`
}

// Spec builds an animation spec running from start to target with this timing
func (a AnimationConfig) Spec(start, target float64) animation.Spec {
	return animation.Spec{
		Start:    start,
		Target:   target,
		Duration: a.Duration,
		Delay:    a.Delay,
		Easing:   animation.ByName(a.Easing),
	}
}

// New creates an animation from start to target with this timing
func (a AnimationConfig) New(start, target float64) *animation.Animation {
	return animation.New(a.Spec(start, target))
}

type AnimationsConfig struct {
	LogoFade     AnimationConfig `mapstructure:"logo_fade"`
	PromptBlink  AnimationConfig `mapstructure:"prompt_blink"`
	ScreenFade   AnimationConfig `mapstructure:"screen_fade"`
	QuestionFade AnimationConfig `mapstructure:"question_fade"`
	ButtonSlide  AnimationConfig `mapstructure:"button_slide"`
	ButtonColor  AnimationConfig `mapstructure:"button_color"`
	Feedback     AnimationConfig `mapstructure:"feedback"`
	ResultFade   AnimationConfig `mapstructure:"result_fade"`
	CircleGrow   AnimationConfig `mapstructure:"circle_grow"`
	IdleReturn   AnimationConfig `mapstructure:"idle_return"`
}

// PaletteConfig holds colors as "#RRGGBB" or "#RRGGBBAA" strings
type PaletteConfig struct {
	Background     string `mapstructure:"background"`
	BackgroundDark string `mapstructure:"background_dark"`
	IntroBG        string `mapstructure:"intro_bg"`
	Text           string `mapstructure:"text"`
	Correct        string `mapstructure:"correct"`
	Wrong          string `mapstructure:"wrong"`
	OptionA        string `mapstructure:"option_a"`
	OptionB        string `mapstructure:"option_b"`
	OptionC        string `mapstructure:"option_c"`
	OptionD        string `mapstructure:"option_d"`
}

// Validate parses every palette entry
func (p PaletteConfig) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"background", p.Background},
		{"background_dark", p.BackgroundDark},
		{"intro_bg", p.IntroBG},
		{"text", p.Text},
		{"correct", p.Correct},
		{"wrong", p.Wrong},
		{"option_a", p.OptionA},
		{"option_b", p.OptionB},
		{"option_c", p.OptionC},
		{"option_d", p.OptionD},
	}
	for _, f := range fields {
		if _, err := ParseColor(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// Options returns the four option button colors in slot order
func (p PaletteConfig) Options() [4]color.RGBA {
	return [4]color.RGBA{
		MustColor(p.OptionA),
		MustColor(p.OptionB),
		MustColor(p.OptionC),
		MustColor(p.OptionD),
	}
}

type AssetsConfig struct {
	ImagesDir   string         `mapstructure:"images_dir"`
	Placeholder string         `mapstructure:"placeholder"`
	Logo        string         `mapstructure:"logo"`
	Themes      map[string]int `mapstructure:"themes"` // theme -> number of images
}

type LogConfig struct {
	Level         string `mapstructure:"level"`
	Dir           string `mapstructure:"dir"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisTTL      string `mapstructure:"redis_ttl"`
}

// TTL returns the Redis entry lifetime, or fallback when unset or invalid
func (l LogConfig) TTL(fallback time.Duration) time.Duration {
	if l.RedisTTL == "" {
		return fallback
	}
	if d, err := time.ParseDuration(l.RedisTTL); err == nil && d > 0 {
		return d
	}
	return fallback
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA"
func ParseColor(hex string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", hex)
	}
	if len(s) == 6 {
		s += "ff"
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustColor parses hex and falls back to magenta on error, matching the missing-asset placeholder.
// Loaded settings are already checked by Validate.
func MustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{255, 0, 255, 255}
	}
	return c
}
