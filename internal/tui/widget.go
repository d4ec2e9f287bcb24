package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/handiism/iopaint-config/internal/form"
	"github.com/samber/lo"
)

// widget holds the editing state of one form field.
type widget struct {
	field form.Field

	input   textinput.Model // text, path and int fields
	on      bool            // bool fields
	choices []string        // choice fields
	index   int
	value   int // range fields
}

func newWidget(f form.Field, v string) widget {
	w := widget{field: f}

	switch f.Kind {
	case form.KindBool:
		w.on, _ = strconv.ParseBool(v)

	case form.KindChoice:
		w.choices = f.Choices
		idx := lo.IndexOf(f.Choices, v)
		if idx < 0 {
			// Keep a value outside the catalog selectable, e.g. a custom model.
			w.choices = append([]string{v}, f.Choices...)
			idx = 0
		}
		w.index = idx

	case form.KindRange:
		n, _ := strconv.Atoi(v)
		w.value = clamp(n, f.Min, f.Max)

	default:
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 500
		ti.Width = 50
		if f.Kind == form.KindInt {
			ti.CharLimit = len(strconv.Itoa(f.Max))
			ti.Width = 8
		}
		ti.SetValue(v)
		w.input = ti
	}

	return w
}

// Value returns the widget's content as form text.
func (w widget) Value() string {
	switch w.field.Kind {
	case form.KindBool:
		return strconv.FormatBool(w.on)
	case form.KindChoice:
		return w.choices[w.index]
	case form.KindRange:
		return strconv.Itoa(w.value)
	default:
		return w.input.Value()
	}
}

func (w widget) isText() bool {
	switch w.field.Kind {
	case form.KindText, form.KindPath, form.KindInt:
		return true
	}
	return false
}

// step moves a choice or range widget by delta.
func (w *widget) step(delta int) {
	switch w.field.Kind {
	case form.KindChoice:
		n := len(w.choices)
		w.index = ((w.index+delta)%n + n) % n
	case form.KindRange:
		w.value = clamp(w.value+delta, w.field.Min, w.field.Max)
	}
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
