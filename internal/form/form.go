package form

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/handiism/iopaint-config/internal/config"
)

// Values holds form text keyed by Field.Key.
type Values map[string]string

// Fields returns every field in display order. Every settings attribute
// has exactly one field.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldsFor returns the fields shown on tab, in display order.
func FieldsFor(tab Tab) []Field {
	return lo.Filter(fields, func(f Field, _ int) bool { return f.Tab == tab })
}

// Lookup finds a field by its JSON key.
func Lookup(key string) (Field, bool) {
	return lo.Find(fields, func(f Field) bool { return f.Key == key })
}

// Initial renders s as form values.
func Initial(s *config.Settings) Values {
	values := make(Values, len(fields))
	for _, f := range fields {
		values[f.Key] = f.Value(s)
	}
	return values
}

// Build turns a complete set of form values into a new Settings snapshot.
//
// Every field must be present and no other keys are accepted. The first
// field that fails to parse is returned as a *FieldError.
func Build(values Values) (*config.Settings, error) {
	for key := range values {
		if _, ok := Lookup(key); !ok {
			return nil, errors.Errorf("unknown form field %q", key)
		}
	}

	s := config.DefaultSettings()
	for _, f := range fields {
		v, ok := values[f.Key]
		if !ok {
			return nil, errors.Errorf("missing form field %q", f.Key)
		}
		if err := f.Apply(s, v); err != nil {
			return nil, err
		}
	}
	return s, nil
}
