package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/todos"
)

// row adapts a Todo to bubbles/list.Item. The list key is the todo id.
type row struct{ todo model.Todo }

func (r row) Title() string       { return r.todo.Text }
func (r row) Description() string { return "" }
func (r row) FilterValue() string { return r.todo.Text }

// itemDelegate renders every row through the item view, one line each.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	fmt.Fprint(w, renderItem(r.todo, index == m.Index()))
}

// ListView shows the collection published on the state channel. It never
// dispatches.
type ListView struct {
	list        list.Model
	state       todos.StateReader
	unsubscribe func()
}

// NewListView reads the state channel from ctx and follows every state the
// provider publishes until Close.
func NewListView(ctx context.Context) (*ListView, error) {
	state, err := todos.StateFrom(ctx)
	if err != nil {
		return nil, fmt.Errorf("list view: %w", err)
	}

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.Styles.Title = styles.Title
	l.Styles.HelpStyle = styles.Help
	l.Styles.PaginationStyle = styles.Help
	l.SetStatusBarItemName("todo", "todos")
	l.DisableQuitKeybindings()

	v := &ListView{list: l, state: state}
	v.render(state.State())
	v.unsubscribe = state.Subscribe(v.render)
	return v, nil
}

// Close stops following the state channel.
func (v *ListView) Close() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// render rebuilds rows from a published snapshot and keeps the cursor in
// range.
func (v *ListView) render(ts model.Todos) {
	items := make([]list.Item, 0, len(ts))
	for _, t := range ts {
		items = append(items, row{todo: t})
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		v.list.Select(idx)
	}
	v.list.Title = header(ts)
}

// header is "Todos   ✔ n  • n  Total n".
func header(ts model.Todos) string {
	d, p := ts.Stats()
	th := Current()
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		"Todos",
		styles.Success.Render(th.SymDone), d,
		styles.Pending.Render(th.SymPending), p,
		styles.Accent.Render("Total"), len(ts),
	)
}

// Selected returns the todo under the cursor.
func (v *ListView) Selected() (model.Todo, bool) {
	r, ok := v.list.SelectedItem().(row)
	if !ok {
		return model.Todo{}, false
	}
	return r.todo, true
}

// Todos returns the todos currently shown, in order.
func (v *ListView) Todos() model.Todos {
	items := v.list.Items()
	out := make(model.Todos, 0, len(items))
	for _, it := range items {
		if r, ok := it.(row); ok {
			out = append(out, r.todo)
		}
	}
	return out
}

// SetSize sets the list's drawing area.
func (v *ListView) SetSize(width, height int) { v.list.SetSize(width, height) }

// SetAdditionalHelp appends app-level bindings to the list's help line.
func (v *ListView) SetAdditionalHelp(keys func() []key.Binding) {
	v.list.AdditionalShortHelpKeys = keys
	v.list.AdditionalFullHelpKeys = keys
}

// Update forwards navigation messages to the underlying list.
func (v *ListView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

// View renders the list.
func (v *ListView) View() string {
	return v.list.View()
}

// Progress renders the done/total bar for the current collection.
func (v *ListView) Progress(width int) string {
	d, p := v.state.State().Stats()
	return styles.Muted.Render(ProgressBar(d, d+p, width))
}
