package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/todos"
)

const formCharLimit = 200

// Form holds the unsubmitted text and emits Create on submit.
// It only needs the dispatch channel, so state publications never touch it.
type Form struct {
	input    textinput.Model
	dispatch todos.Dispatch
}

// NewForm binds a form to the dispatch channel carried by ctx.
func NewForm(ctx context.Context, placeholder string) (Form, error) {
	dispatch, err := todos.DispatchFrom(ctx)
	if err != nil {
		return Form{}, fmt.Errorf("form view: %w", err)
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = formCharLimit
	return Form{input: ti, dispatch: dispatch}, nil
}

// Value returns the unsubmitted text.
func (f Form) Value() string { return f.input.Value() }

// Focused reports whether the form takes key input.
func (f Form) Focused() bool { return f.input.Focused() }

// Focus gives the form key input.
func (f *Form) Focus() tea.Cmd { return f.input.Focus() }

// Blur takes key input away from the form.
func (f *Form) Blur() { f.input.Blur() }

// Submit emits Create with the current text, empty or not, and clears the
// buffer.
func (f *Form) Submit() {
	f.dispatch(todos.Create{Text: f.input.Value()})
	f.input.Reset()
}

// Update handles enter as submit and forwards everything else to the text
// input.
func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEnter {
		f.Submit()
		return f, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the input box.
func (f Form) View(width int) string {
	title := styles.Accent.Render("Add new item")
	box := styles.Input
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(title + "\n" + f.input.View())
}
