package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadEmbeddedSettings(t *testing.T) {
	loader := NewLoader("../../../cmd/quiz/configs")

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Display.ScreenWidth)
	assert.Equal(t, 720, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 10, cfg.Quiz.SessionSize)
	assert.Equal(t, 2.0, cfg.Animations.LogoFade.Duration)
	assert.Equal(t, 1.5, cfg.Animations.CircleGrow.Delay)
	assert.Equal(t, "easeOutBack", cfg.Animations.ButtonSlide.Easing)
	assert.Equal(t, []string{"A", "Digit1"}, cfg.Keys["option_a"])
	assert.Equal(t, 3, cfg.Assets.Themes["science"])
}

func TestLoader_DefaultsWithoutFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "")

	cfg, err := loader.Load("")
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 10, cfg.Quiz.SessionSize)
	assert.Equal(t, 0.6, cfg.Animations.ScreenFade.Duration)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, []string{"Escape"}, cfg.Keys["quit"])
}

func TestLoader_FileOverridesDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		SettingsFile: {Data: []byte("quiz:\n  session_size: 5\ndisplay:\n  framerate: 30\n")},
	}

	cfg, err := NewFSLoader(fsys, "").Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Quiz.SessionSize)
	assert.Equal(t, 30, cfg.Display.Framerate)
	assert.Equal(t, 1280, cfg.Display.ScreenWidth, "unset keys keep defaults")
}

func TestLoader_OverrideFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "local.yaml")
	require.NoError(t, os.WriteFile(override, []byte("quiz:\n  session_size: 3\nlog:\n  dir: /tmp/quizlogs\n"), 0o600))

	t.Setenv("QUIZ_QUIZ_SESSION_SIZE", "7")

	cfg, err := NewFSLoader(fstest.MapFS{}, "").Load(override)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Quiz.SessionSize, "environment wins over files")
	assert.Equal(t, "/tmp/quizlogs", cfg.Log.Dir)
}

func TestLoader_MissingOverrideFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "").Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoader_InvalidSettings(t *testing.T) {
	fsys := fstest.MapFS{
		SettingsFile: {Data: []byte("display:\n  framerate: 0\n")},
	}

	_, err := NewFSLoader(fsys, "").Load("")
	assert.Error(t, err)
}

func TestLoader_InvalidPaletteColor(t *testing.T) {
	fsys := fstest.MapFS{
		SettingsFile: {Data: []byte("palette:\n  wrong: \"#12345\"\n")},
	}

	_, err := NewFSLoader(fsys, "").Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong")
}

func TestPaletteConfig_Validate(t *testing.T) {
	cfg, err := NewFSLoader(fstest.MapFS{}, "").Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Palette.Validate())

	p := cfg.Palette
	p.OptionC = "teal"
	assert.ErrorContains(t, p.Validate(), "option_c")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#0090D3", color.RGBA{0, 144, 211, 255}, false},
		{"27A433", color.RGBA{39, 164, 51, 255}, false},
		{"#00000080", color.RGBA{0, 0, 0, 128}, false},
		{"#123", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, color.RGBA{255, 0, 255, 255}, MustColor(tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnimationConfig_New(t *testing.T) {
	a := AnimationConfig{Duration: 2, Delay: 1, Easing: "linear"}.New(0, 255)

	a.Update(1)
	assert.Equal(t, 0.0, a.Value())
	a.Update(1)
	assert.InDelta(t, 127.5, a.Value(), 1e-9)
}

func TestDisplayConfig_DT(t *testing.T) {
	assert.InDelta(t, 1.0/30.0, DisplayConfig{Framerate: 30}.DT(), 1e-12)
	assert.InDelta(t, 1.0/60.0, DisplayConfig{}.DT(), 1e-12)
}

func TestLogConfig_TTL(t *testing.T) {
	fallback := 24 * time.Hour

	assert.Equal(t, fallback, LogConfig{}.TTL(fallback))
	assert.Equal(t, 90*time.Minute, LogConfig{RedisTTL: "90m"}.TTL(fallback))
	assert.Equal(t, fallback, LogConfig{RedisTTL: "soon"}.TTL(fallback))
	assert.Equal(t, fallback, LogConfig{RedisTTL: "-1h"}.TTL(fallback))
}
