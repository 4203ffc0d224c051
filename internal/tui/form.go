package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Gauthampro7/vedic-astrology-app/internal/birth"
)

// Form field order matches the original input flow: date, time, place,
// timezone.
const (
	fieldDate = iota
	fieldTime
	fieldPlace
	fieldTimezone
	fieldCount
)

// Form collects birth data through four text inputs.
type Form struct {
	inputs  [fieldCount]textinput.Model
	focused int
	err     string
}

// NewForm builds the birth-data entry form with the date field focused.
func NewForm() Form {
	var f Form

	labels := [fieldCount]struct {
		placeholder string
		limit       int
	}{
		{"1995/08/20", 10},
		{"14:30:00", 8},
		{"Bengaluru, India", 100},
		{"+05:30", 6},
	}

	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = labels[i].placeholder
		in.CharLimit = labels[i].limit
		f.inputs[i] = in
	}
	f.inputs[fieldDate].Focus()
	return f
}

// Update handles field navigation and text entry.
func (f Form) Update(msg tea.Msg, keys KeyMap) (Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return f.focusField((f.focused + 1) % fieldCount), nil
		case "shift+tab", "up":
			return f.focusField((f.focused + fieldCount - 1) % fieldCount), nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return f, cmd
}

func (f Form) focusField(idx int) Form {
	f.inputs[f.focused].Blur()
	f.focused = idx
	f.inputs[f.focused].Focus()
	return f
}

// Info validates the current field values into a birth.Info.
func (f Form) Info() (birth.Info, error) {
	return birth.New(
		f.inputs[fieldDate].Value(),
		f.inputs[fieldTime].Value(),
		f.inputs[fieldPlace].Value(),
		f.inputs[fieldTimezone].Value(),
	)
}

// View renders the form.
func (f Form) View() string {
	labels := [fieldCount]string{"Date (YYYY/MM/DD)", "Time (HH:MM:SS)", "Place", "Timezone (±HH:MM)"}

	var b strings.Builder
	b.WriteString(styleTitle.Render(" New Chart "))
	b.WriteString("\n\n")
	for i := range f.inputs {
		label := styleLabel.Render(labels[i])
		if i == f.focused {
			label = styleSelected.Render(selectionIndicator + labels[i])
		}
		b.WriteString(label)
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n\n")
	}
	if f.err != "" {
		b.WriteString(styleError.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString(styleMuted.Render("enter: calculate · tab: next field · esc: back"))
	return b.String()
}
