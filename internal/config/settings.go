package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pkg/errors"

	ioutils "github.com/handiism/iopaint-config/internal/io"
	"github.com/handiism/iopaint-config/internal/model"
)

// Quality and port bounds enforced by Validate.
const (
	MinQuality = 75
	MaxQuality = 100
	MaxPort    = 65535
)

// unsetPath is the current-directory sentinel that means "no path".
const unsetPath = "."

// Settings holds every option the inpainting server reads from its config
// file. The JSON field names are the contract with the server.
type Settings struct {
	// Server
	Host      string `json:"host"`
	Port      int    `json:"port"`
	InBrowser bool   `json:"inbrowser"`

	// Model selection
	Model  string       `json:"model"`
	Device model.Device `json:"device"`

	// Precision and memory
	NoHalf             bool `json:"no_half"`
	LowMem             bool `json:"low_mem"`
	CPUOffload         bool `json:"cpu_offload"`
	DisableNSFWChecker bool `json:"disable_nsfw_checker"`
	LocalFilesOnly     bool `json:"local_files_only"`
	CPUTextEncoder     bool `json:"cpu_textencoder"`

	// Input and output; nil means unset
	Input     *string `json:"input"`
	OutputDir *string `json:"output_dir"`
	Quality   int     `json:"quality"`

	// Interactive segmentation (Segment Anything)
	EnableInteractiveSeg bool                      `json:"enable_interactive_seg"`
	InteractiveSegModel  model.InteractiveSegModel `json:"interactive_seg_model"`
	InteractiveSegDevice model.Device              `json:"interactive_seg_device"`

	// Background removal and anime segmentation always run on CPU
	EnableRemoveBG bool                `json:"enable_remove_bg"`
	RemoveBGModel  model.RemoveBGModel `json:"remove_bg_model"`
	EnableAnimeSeg bool                `json:"enable_anime_seg"`

	// Super resolution
	EnableRealESRGAN bool                  `json:"enable_realesrgan"`
	RealESRGANDevice model.Device          `json:"realesrgan_device"`
	RealESRGANModel  model.RealESRGANModel `json:"realesrgan_model"`

	// Face restoration
	EnableGFPGAN        bool         `json:"enable_gfpgan"`
	GFPGANDevice        model.Device `json:"gfpgan_device"`
	EnableRestoreFormer bool         `json:"enable_restoreformer"`
	RestoreFormerDevice model.Device `json:"restoreformer_device"`

	ModelDir string `json:"model_dir"`
}

// settingsKeys holds the JSON name of every Settings field.
var settingsKeys = func() map[string]bool {
	keys := make(map[string]bool)
	typ := reflect.TypeOf(Settings{})
	for i := 0; i < typ.NumField(); i++ {
		name, _, _ := strings.Cut(typ.Field(i).Tag.Get("json"), ",")
		keys[name] = true
	}
	return keys
}()

// DefaultModelDir returns $XDG_CACHE_HOME, or ~/.cache when it is unset.
func DefaultModelDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return dir
	}
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".cache")
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Host:      "127.0.0.1",
		Port:      8080,
		InBrowser: true,

		Model:  model.DefaultModel,
		Device: model.DeviceCUDA,

		Quality: 95,

		InteractiveSegModel:  model.InteractiveSegVitB,
		InteractiveSegDevice: model.DeviceCPU,

		RemoveBGModel: model.RemoveBGBriaRMBG,

		RealESRGANDevice: model.DeviceCPU,
		RealESRGANModel:  model.RealESRGANGeneralX4V3,

		GFPGANDevice:        model.DeviceCPU,
		RestoreFormerDevice: model.DeviceCPU,

		ModelDir: DefaultModelDir(),
	}
}

// Load reads settings from a JSON file, overlaying it on the defaults.
//
// A missing file yields the defaults. Keys the file does not mention keep
// their default value and unknown keys are ignored. Malformed JSON, a value
// of the wrong type or a value that fails Validate is an error; callers
// that want the defaults in that case must substitute them themselves.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	// encoding/json matches keys case-insensitively; only exact names count.
	known := make(map[string]json.RawMessage, len(raw))
	for key, value := range raw {
		if settingsKeys[key] {
			known[key] = value
		}
	}
	filtered, err := json.Marshal(known)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(filtered, settings); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}

	return settings, nil
}

// Marshal returns the settings as 4-space indented JSON.
func (s *Settings) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "encode settings")
	}
	return data, nil
}

// Save writes settings to a JSON file, overwriting it in place.
func (s *Settings) Save(path string) error {
	if err := ioutils.EnsureParentDir(path); err != nil {
		return err
	}

	data, err := s.Marshal()
	if err != nil {
		return err
	}

	return ioutils.WriteFile(path, data)
}

// Validate checks ranges and enumerations.
func (s *Settings) Validate() error {
	if s.Port < 0 || s.Port > MaxPort {
		return errors.Errorf("port must be between 0 and %d, got %d", MaxPort, s.Port)
	}
	if s.Quality < MinQuality || s.Quality > MaxQuality {
		return errors.Errorf("quality must be between %d and %d, got %d", MinQuality, MaxQuality, s.Quality)
	}

	devices := []struct {
		key    string
		device model.Device
	}{
		{"device", s.Device},
		{"interactive_seg_device", s.InteractiveSegDevice},
		{"realesrgan_device", s.RealESRGANDevice},
		{"gfpgan_device", s.GFPGANDevice},
		{"restoreformer_device", s.RestoreFormerDevice},
	}
	for _, d := range devices {
		if !d.device.Valid() {
			return errors.Errorf("%s: unknown device %q", d.key, d.device)
		}
	}

	if !s.InteractiveSegModel.Valid() {
		return errors.Errorf("interactive_seg_model: unknown model %q", s.InteractiveSegModel)
	}
	if !s.RemoveBGModel.Valid() {
		return errors.Errorf("remove_bg_model: unknown model %q", s.RemoveBGModel)
	}
	if !s.RealESRGANModel.Valid() {
		return errors.Errorf("realesrgan_model: unknown model %q", s.RealESRGANModel)
	}
	if s.Model == "" {
		return errors.New("model must not be empty")
	}

	return nil
}

// Normalized returns a copy of s with "." input and output paths unset.
func (s *Settings) Normalized() *Settings {
	out := *s
	out.Input = normalizePath(s.Input)
	out.OutputDir = normalizePath(s.OutputDir)
	return &out
}

// OptionalPath converts form text into an optional path: empty means unset.
func OptionalPath(p string) *string {
	if p == "" {
		return nil
	}
	return &p
}

// PathValue returns the path or "" when unset.
func PathValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func normalizePath(p *string) *string {
	if p == nil || *p == unsetPath {
		return nil
	}
	v := *p
	return &v
}
