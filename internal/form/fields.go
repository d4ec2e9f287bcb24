package form

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/handiism/iopaint-config/internal/config"
	"github.com/handiism/iopaint-config/internal/model"
)

// Tab groups fields on screen.
type Tab int

const (
	TabCommon Tab = iota
	TabPlugins
)

// Tabs returns the tabs in display order.
func Tabs() []Tab { return []Tab{TabCommon, TabPlugins} }

func (t Tab) String() string {
	switch t {
	case TabCommon:
		return "Common"
	case TabPlugins:
		return "Plugins"
	}
	return "Unknown"
}

// Kind selects the widget used to edit a field.
type Kind int

const (
	KindText Kind = iota
	KindPath
	KindInt
	KindBool
	KindChoice
	KindRange
)

// Field binds one settings attribute to a form widget.
type Field struct {
	Key   string // JSON key in the config file
	Label string
	Help  string
	Tab   Tab
	Group string // plugin row; empty on the Common tab
	Kind  Kind

	Choices  []string // KindChoice
	Min, Max int      // KindInt and KindRange

	get func(*config.Settings) string
	set func(*config.Settings, string) error
}

// Value returns the field's current value in s as form text.
func (f Field) Value(s *config.Settings) string {
	return f.get(s)
}

// Apply parses v and stores it in s.
func (f Field) Apply(s *config.Settings, v string) error {
	if err := f.set(s, v); err != nil {
		return &FieldError{Key: f.Key, Label: f.Label, Err: err}
	}
	return nil
}

// FieldError reports a form value that failed to parse or validate.
type FieldError struct {
	Key   string
	Label string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Label + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

func text(key, label, help string, ptr func(*config.Settings) *string) Field {
	return Field{
		Key: key, Label: label, Help: help, Kind: KindText,
		get: func(s *config.Settings) string { return *ptr(s) },
		set: func(s *config.Settings, v string) error {
			*ptr(s) = strings.TrimSpace(v)
			return nil
		},
	}
}

func path(key, label, help string, ptr func(*config.Settings) **string) Field {
	return Field{
		Key: key, Label: label, Help: help, Kind: KindPath,
		get: func(s *config.Settings) string { return config.PathValue(*ptr(s)) },
		set: func(s *config.Settings, v string) error {
			*ptr(s) = config.OptionalPath(strings.TrimSpace(v))
			return nil
		},
	}
}

func integer(kind Kind, key, label, help string, min, max int, ptr func(*config.Settings) *int) Field {
	return Field{
		Key: key, Label: label, Help: help, Kind: kind, Min: min, Max: max,
		get: func(s *config.Settings) string { return strconv.Itoa(*ptr(s)) },
		set: func(s *config.Settings, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return errors.Errorf("%q is not a whole number", v)
			}
			if n < min || n > max {
				return errors.Errorf("must be between %d and %d, got %d", min, max, n)
			}
			*ptr(s) = n
			return nil
		},
	}
}

func boolean(key, label, help string, ptr func(*config.Settings) *bool) Field {
	return Field{
		Key: key, Label: label, Help: help, Kind: KindBool,
		get: func(s *config.Settings) string { return strconv.FormatBool(*ptr(s)) },
		set: func(s *config.Settings, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Errorf("%q is not true or false", v)
			}
			*ptr(s) = b
			return nil
		},
	}
}

// choice binds a closed enumeration. A nil valid accepts any non-empty value.
func choice[T ~string](key, label, help string, choices []string, valid func(T) bool, ptr func(*config.Settings) *T) Field {
	return Field{
		Key: key, Label: label, Help: help, Kind: KindChoice, Choices: choices,
		get: func(s *config.Settings) string { return string(*ptr(s)) },
		set: func(s *config.Settings, v string) error {
			if v == "" {
				return errors.New("a value must be selected")
			}
			if valid != nil && !valid(T(v)) {
				return errors.Errorf("unknown value %q", v)
			}
			*ptr(s) = T(v)
			return nil
		},
	}
}

func device(key, label string, ptr func(*config.Settings) *model.Device) Field {
	return choice(key, label, "", model.DeviceValues(), model.Device.Valid, ptr)
}

func (f Field) in(tab Tab, group string) Field {
	f.Tab = tab
	f.Group = group
	return f
}

var fields = []Field{
	// Common
	text("host", "Host", "", func(s *config.Settings) *string { return &s.Host }).in(TabCommon, ""),
	integer(KindInt, "port", "Port", "", 0, config.MaxPort, func(s *config.Settings) *int { return &s.Port }).in(TabCommon, ""),
	boolean("inbrowser", "Open browser", model.InBrowserHelp, func(s *config.Settings) *bool { return &s.InBrowser }).in(TabCommon, ""),
	choice[string]("model", "Model", model.ModelsHelp, model.ModelValues(), nil, func(s *config.Settings) *string { return &s.Model }).in(TabCommon, ""),
	device("device", "Device", func(s *config.Settings) *model.Device { return &s.Device }).in(TabCommon, ""),
	integer(KindRange, "quality", "Image quality", model.QualityHelp, config.MinQuality, config.MaxQuality, func(s *config.Settings) *int { return &s.Quality }).in(TabCommon, ""),
	boolean("no_half", "No half", model.NoHalfHelp, func(s *config.Settings) *bool { return &s.NoHalf }).in(TabCommon, ""),
	boolean("cpu_offload", "CPU offload", model.CPUOffloadHelp, func(s *config.Settings) *bool { return &s.CPUOffload }).in(TabCommon, ""),
	boolean("low_mem", "Low memory", model.LowMemHelp, func(s *config.Settings) *bool { return &s.LowMem }).in(TabCommon, ""),
	boolean("cpu_textencoder", "CPU text encoder", model.CPUTextEncoderHelp, func(s *config.Settings) *bool { return &s.CPUTextEncoder }).in(TabCommon, ""),
	boolean("disable_nsfw_checker", "Disable NSFW checker", model.DisableNSFWHelp, func(s *config.Settings) *bool { return &s.DisableNSFWChecker }).in(TabCommon, ""),
	boolean("local_files_only", "Local files only", model.LocalFilesOnlyHelp, func(s *config.Settings) *bool { return &s.LocalFilesOnly }).in(TabCommon, ""),
	text("model_dir", "Model directory", model.ModelDirHelp, func(s *config.Settings) *string { return &s.ModelDir }).in(TabCommon, ""),
	path("input", "Input file or directory", model.InputHelp, func(s *config.Settings) **string { return &s.Input }).in(TabCommon, ""),
	path("output_dir", "Output directory", model.OutputDirHelp, func(s *config.Settings) **string { return &s.OutputDir }).in(TabCommon, ""),

	// Plugins
	boolean("enable_interactive_seg", "Enable", model.InteractiveSegHelp, func(s *config.Settings) *bool { return &s.EnableInteractiveSeg }).in(TabPlugins, "Segment Anything"),
	choice("interactive_seg_model", "Model", model.InteractiveSegModelHelp, model.InteractiveSegModelValues(), model.InteractiveSegModel.Valid, func(s *config.Settings) *model.InteractiveSegModel { return &s.InteractiveSegModel }).in(TabPlugins, "Segment Anything"),
	device("interactive_seg_device", "Device", func(s *config.Settings) *model.Device { return &s.InteractiveSegDevice }).in(TabPlugins, "Segment Anything"),

	boolean("enable_remove_bg", "Enable", model.RemoveBGHelp, func(s *config.Settings) *bool { return &s.EnableRemoveBG }).in(TabPlugins, "Remove Background"),
	choice("remove_bg_model", "Model", "", model.RemoveBGModelValues(), model.RemoveBGModel.Valid, func(s *config.Settings) *model.RemoveBGModel { return &s.RemoveBGModel }).in(TabPlugins, "Remove Background"),

	boolean("enable_anime_seg", "Enable", model.AnimeSegHelp, func(s *config.Settings) *bool { return &s.EnableAnimeSeg }).in(TabPlugins, "Anime Segmentation"),

	boolean("enable_realesrgan", "Enable", model.RealESRGANHelp, func(s *config.Settings) *bool { return &s.EnableRealESRGAN }).in(TabPlugins, "RealESRGAN"),
	device("realesrgan_device", "Device", func(s *config.Settings) *model.Device { return &s.RealESRGANDevice }).in(TabPlugins, "RealESRGAN"),
	choice("realesrgan_model", "Model", "", model.RealESRGANModelValues(), model.RealESRGANModel.Valid, func(s *config.Settings) *model.RealESRGANModel { return &s.RealESRGANModel }).in(TabPlugins, "RealESRGAN"),

	boolean("enable_gfpgan", "Enable", model.GFPGANHelp, func(s *config.Settings) *bool { return &s.EnableGFPGAN }).in(TabPlugins, "GFPGAN"),
	device("gfpgan_device", "Device", func(s *config.Settings) *model.Device { return &s.GFPGANDevice }).in(TabPlugins, "GFPGAN"),

	boolean("enable_restoreformer", "Enable", model.RestoreFormerHelp, func(s *config.Settings) *bool { return &s.EnableRestoreFormer }).in(TabPlugins, "RestoreFormer"),
	device("restoreformer_device", "Device", func(s *config.Settings) *model.Device { return &s.RestoreFormerDevice }).in(TabPlugins, "RestoreFormer"),
}
