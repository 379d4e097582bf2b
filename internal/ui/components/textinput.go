package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// FilterInput wraps bubbles/textinput for incremental list filtering.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a new filter input with the given placeholder.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return FilterInput{Model: ti}
}

// Focus gives the input keyboard focus.
func (f *FilterInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *FilterInput) Blur() {
	f.Model.Blur()
}

// Focused reports whether the input has focus.
func (f FilterInput) Focused() bool {
	return f.Model.Focused()
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the current filter text.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Clear resets the filter text.
func (f *FilterInput) Clear() {
	f.Model.SetValue("")
}
