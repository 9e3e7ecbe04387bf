package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if !cfg.Display.Colour {
		t.Error("Display.Colour should be true by default")
	}
	if cfg.Display.Unicode {
		t.Error("Display.Unicode should be false by default")
	}
	if !cfg.Display.HighlightLastMove {
		t.Error("Display.HighlightLastMove should be true by default")
	}
	if cfg.Perft.Workers != 0 {
		t.Errorf("Perft.Workers = %d, want 0", cfg.Perft.Workers)
	}
	if cfg.Perft.BufferSize != 64 {
		t.Errorf("Perft.BufferSize = %d, want 64", cfg.Perft.BufferSize)
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"silent", func(c *Config) { c.Verbosity = 0 }, false},
		{"commentary", func(c *Config) { c.Verbosity = 2 }, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }, true},
		{"negative workers", func(c *Config) { c.Perft.Workers = -2 }, true},
		{"zero buffer", func(c *Config) { c.Perft.BufferSize = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfig_SetStreams(t *testing.T) {
	cfg := NewConfig()
	out, log := &bytes.Buffer{}, &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

func TestConfigBuilder(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithVerbosity(2).
		WithOutput(out).
		WithLog(out).
		WithColour(false).
		WithUnicode(true).
		WithHighlight(false).
		WithWorkers(3).
		WithBufferSize(16).
		Build()

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if cfg.OutputFile != out || cfg.LogFile != out {
		t.Error("streams not set")
	}
	want := DisplayConfig{Unicode: true}
	if cfg.Display != want {
		t.Errorf("Display = %+v, want %+v", cfg.Display, want)
	}
	if cfg.Perft.Workers != 3 || cfg.Perft.BufferSize != 16 {
		t.Errorf("Perft = %+v, want {Workers:3 BufferSize:16}", cfg.Perft)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	writeFile(t, path, `{"verbosity": 2, "display": {"unicode": true}, "perft": {"workers": 6}}`)

	cfg := NewConfig()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}

	if cfg.Verbosity != 2 {
		t.Errorf("Verbosity = %d, want 2", cfg.Verbosity)
	}
	if !cfg.Display.Unicode {
		t.Error("Display.Unicode = false, want true")
	}
	if !cfg.Display.Colour {
		t.Error("Display.Colour absent from file should keep its default")
	}
	if cfg.Perft.Workers != 6 || cfg.Perft.BufferSize != 64 {
		t.Errorf("Perft = %+v, want {Workers:6 BufferSize:64}", cfg.Perft)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		content   string
		want      error
		wantParse bool
	}{
		{"malformed JSON", `{"verbosity": `, errors.ErrParseFailure, true},
		{"unknown field", `{"colour": true}`, errors.ErrParseFailure, true},
		{"wrong type", `{"verbosity": "loud"}`, errors.ErrParseFailure, true},
		{"invalid value", `{"perft": {"buffer_size": 0}}`, errors.ErrInvalidConfig, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			writeFile(t, path, tt.content)

			err := LoadFile(path, NewConfig())
			if !errors.Is(err, tt.want) {
				t.Fatalf("LoadFile() error = %v, want %v", err, tt.want)
			}
			var pe *errors.ParseError
			if got := errors.As(err, &pe); got != tt.wantParse {
				t.Errorf("errors.As(ParseError) = %v, want %v", got, tt.wantParse)
			}
			if tt.wantParse && pe.File != path {
				t.Errorf("ParseError.File = %q, want %q", pe.File, path)
			}
		})
	}

	if err := LoadFile(filepath.Join(dir, "missing.json"), NewConfig()); err == nil {
		t.Error("LoadFile(missing) error = nil")
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	saved := NewConfigBuilder().WithVerbosity(0).WithUnicode(true).WithWorkers(2).Build()

	if err := Save(path, saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	loaded := NewConfig()
	if err := LoadFile(path, loaded); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if loaded.Verbosity != 0 || loaded.Display != saved.Display || loaded.Perft != saved.Perft {
		t.Errorf("loaded %+v %+v %+v, want %+v %+v %+v",
			loaded.Verbosity, loaded.Display, loaded.Perft, saved.Verbosity, saved.Display, saved.Perft)
	}
}

// useConfigHome points the XDG lookups at a fresh directory.
func useConfigHome(t *testing.T) string {
	t.Helper()
	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", t.TempDir())
	xdg.Reload()
	return home
}

func TestLoad(t *testing.T) {
	home := useConfigHome(t)

	cfg := NewConfig()
	if err := Load(cfg); err != nil {
		t.Fatalf("Load() without a file = %v, want nil", err)
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want unchanged default", cfg.Verbosity)
	}

	writeFile(t, filepath.Join(home, RelativePath), `{"verbosity": 0}`)
	if err := Load(cfg); err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Verbosity != 0 {
		t.Errorf("Verbosity = %d, want 0 from file", cfg.Verbosity)
	}
}

func TestDefaultPath(t *testing.T) {
	home := useConfigHome(t)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() error: %v", err)
	}
	if want := filepath.Join(home, RelativePath); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
}
