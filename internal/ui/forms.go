package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/movu-app/movu/internal/validation"
)

// form is an ordered set of [textinput.Model] inputs keyed by [validation.Field].
type form struct {
	fields []validation.Field
	inputs []textinput.Model
	focus  int
}

func newForm(fields ...validation.Field) form {
	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.Placeholder = string(field)
		input.CharLimit = 128
		if field == validation.FieldPassword || field == validation.FieldConfirmPassword {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		if i == 0 {
			input.Focus()
		}
		inputs[i] = input
	}
	return form{fields: fields, inputs: inputs}
}

// Next moves focus to the following input, wrapping around.
func (f *form) Next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Set pre-fills the input for field with value.
func (f *form) Set(field validation.Field, value string) {
	for i, known := range f.fields {
		if known == field {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

// Values collects the current input text into a [validation.Form].
func (f *form) Values() validation.Form {
	values := validation.Form{}
	for i, field := range f.fields {
		values[field] = f.inputs[i].Value()
	}
	return values
}

// Reset clears every input and returns focus to the first field.
func (f *form) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
}

// Update forwards msg to the focused input.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders each input with its label, marking validation errors.
func (f *form) View(errs map[validation.Field]string) string {
	var out string
	for i, field := range f.fields {
		out += f.inputs[i].View()
		if msg, ok := errs[field]; ok {
			out += "  " + styles.err.Render(msg)
		}
		out += "\n"
	}
	return out
}
