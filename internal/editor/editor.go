package editor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/handiism/iopaint-config/internal/config"
	ioutils "github.com/handiism/iopaint-config/internal/io"
)

// InputMissingMessage is returned by Save when the configured input path
// does not exist.
const InputMissingMessage = "[Error] Input file or directory does not exist"

// LoadFailedMessage is logged when the config file is ignored in favor of
// the defaults.
const LoadFailedMessage = "Load config file failed, using default configs"

// Editor loads and saves one config file. The path is fixed at construction.
type Editor struct {
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides the clock used for status timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithLogger overrides the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// New creates an Editor for the config file at path.
func New(path string, opts ...Option) *Editor {
	e := &Editor{
		path:   path,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "editor", "config_file", path)
	return e
}

// Path returns the config file path as given to New.
func (e *Editor) Path() string {
	return e.path
}

// Load returns the settings stored in the config file.
//
// It never fails: a missing file yields the defaults, and a file that cannot
// be read, parsed or validated is ignored entirely (no partial merge) after
// logging a warning.
func (e *Editor) Load() *config.Settings {
	settings, _ := e.LoadWithWarning()
	return settings
}

// LoadWithWarning behaves like Load but also returns the reason the file was
// ignored, so an interactive caller can show it. The settings are never nil.
func (e *Editor) LoadWithWarning() (*config.Settings, error) {
	settings, err := config.Load(e.path)
	if err != nil {
		e.logger.Warn(LoadFailedMessage, "error", err)
		return config.DefaultSettings(), err
	}
	return settings, nil
}

// Save validates settings and writes them to the config file, returning the
// status message to show the user. It has three outcomes: a validation error
// (nothing written), a write error, or success with a timestamp and the
// absolute path written.
func (e *Editor) Save(settings *config.Settings) string {
	s := settings.Normalized()

	if s.Input != nil && !ioutils.Exists(*s.Input) {
		return InputMissingMessage
	}
	if err := s.Validate(); err != nil {
		return fmt.Sprintf("[Error] %v", err)
	}

	if err := s.Save(e.path); err != nil {
		e.logger.Error("save config failed", "error", err)
		return fmt.Sprintf("Save configure file failed: %v", err)
	}

	msg := fmt.Sprintf("[%s] Successful save config to: %s", e.now().Format("15:04:05"), ioutils.AbsPath(e.path))
	e.logger.Info(msg)
	return msg
}
