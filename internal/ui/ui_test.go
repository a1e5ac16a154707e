package ui

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/todos"
)

func scriptSeed() model.Todos {
	return model.Todos{
		{ID: 1, Text: "A", Done: true},
		{ID: 2, Text: "B", Done: true},
		{ID: 3, Text: "C", Done: false},
	}
}

func mount(t *testing.T) (*todos.Provider, context.Context) {
	t.Helper()
	p := todos.NewProvider(scriptSeed())
	ctx := p.Mount(context.Background())
	t.Cleanup(p.Unmount)
	return p, ctx
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func ids(ts model.Todos) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}

func TestViewsOutsideProvider(t *testing.T) {
	ctx := context.Background()

	_, err := NewForm(ctx, "")
	assert.ErrorIs(t, err, todos.ErrProviderNotFound)

	_, err = NewListView(ctx)
	assert.ErrorIs(t, err, todos.ErrProviderNotFound)

	_, err = NewItemView(ctx, model.Todo{ID: 1})
	assert.ErrorIs(t, err, todos.ErrProviderNotFound)
}

func TestFormSubmitCreatesAndResets(t *testing.T) {
	p, ctx := mount(t)
	f, err := NewForm(ctx, "placeholder")
	require.NoError(t, err)
	f.Focus()

	f, _ = f.Update(runes("D"))
	assert.Equal(t, "D", f.Value())

	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, f.Value())
	require.Len(t, p.State(), 4)
	assert.Equal(t, model.Todo{ID: 4, Text: "D"}, p.State()[3])
}

func TestFormSubmitEmptyStillCreates(t *testing.T) {
	p, ctx := mount(t)
	f, err := NewForm(ctx, "")
	require.NoError(t, err)

	f.Submit()
	require.Len(t, p.State(), 4)
	assert.Equal(t, "", p.State()[3].Text)
}

func TestListViewFollowsState(t *testing.T) {
	p, ctx := mount(t)
	lv, err := NewListView(ctx)
	require.NoError(t, err)
	defer lv.Close()

	assert.Equal(t, []int{1, 2, 3}, ids(lv.Todos()))

	p.Dispatch(todos.Create{Text: "D"})
	p.Dispatch(todos.Remove{ID: 2})
	assert.Equal(t, []int{1, 3, 4}, ids(lv.Todos()))

	lv.Close()
	p.Dispatch(todos.Remove{ID: 1})
	assert.Equal(t, []int{1, 3, 4}, ids(lv.Todos()), "closed view stops following")
}

func TestListViewKeepsCursorInRange(t *testing.T) {
	p, ctx := mount(t)
	lv, err := NewListView(ctx)
	require.NoError(t, err)
	defer lv.Close()
	lv.SetSize(60, 20)

	lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, ok := lv.Selected()
	require.True(t, ok)
	assert.Equal(t, 3, sel.ID)

	p.Dispatch(todos.Remove{ID: 3})
	sel, ok = lv.Selected()
	require.True(t, ok)
	assert.Equal(t, 2, sel.ID)
}

func TestItemViewActions(t *testing.T) {
	p, ctx := mount(t)
	item, err := NewItemView(ctx, model.Todo{ID: 3, Text: "C"})
	require.NoError(t, err)

	item.Toggle()
	assert.True(t, p.State()[2].Done)
	item.Toggle()
	assert.False(t, p.State()[2].Done)

	item.Remove()
	assert.Equal(t, []int{1, 2}, ids(p.State()))
}

func TestRenderItem(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("")

	assert.Equal(t, "  [x] A (X)", renderItem(model.Todo{ID: 1, Text: "A", Done: true}, false))
	assert.Equal(t, "  [ ] C (X)", renderItem(model.Todo{ID: 3, Text: "C"}, false))
	assert.Contains(t, renderItem(model.Todo{ID: 3, Text: "C"}, true), "C (X)")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1))
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestHeaderCounts(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("")
	assert.Equal(t, "Todos   x 2  - 1  Total 3", header(scriptSeed()))
}

func TestStatusLines(t *testing.T) {
	SetColor(false)
	defer SetTheme("")

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "boom")
	assert.Equal(t, "✔ added\n✖ boom\n", buf.String())
}

func TestPanelFramesLines(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("")

	var buf bytes.Buffer
	Panel(&buf, []string{"one", "two"})
	out := buf.String()
	assert.Contains(t, out, "| one |")
	assert.Contains(t, out, "+-----+")
}

func TestIsTheme(t *testing.T) {
	for _, name := range append(Themes(), "", "NEON") {
		assert.True(t, IsTheme(name), name)
	}
	assert.False(t, IsTheme("sepia"))
}
