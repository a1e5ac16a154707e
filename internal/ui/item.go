package ui

import (
	"context"
	"fmt"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/todos"
)

// ItemView shows one todo and emits toggle/remove for it.
type ItemView struct {
	todo     model.Todo
	dispatch todos.Dispatch
}

// NewItemView binds t to the dispatch channel carried by ctx.
func NewItemView(ctx context.Context, t model.Todo) (ItemView, error) {
	dispatch, err := todos.DispatchFrom(ctx)
	if err != nil {
		return ItemView{}, fmt.Errorf("item view: %w", err)
	}
	return ItemView{todo: t, dispatch: dispatch}, nil
}

// Todo returns the record the view was built for.
func (v ItemView) Todo() model.Todo { return v.todo }

// Toggle emits Toggle for this item. Bound to item activation.
func (v ItemView) Toggle() { v.dispatch(todos.Toggle{ID: v.todo.ID}) }

// Remove emits Remove for this item. Bound to the removal control.
func (v ItemView) Remove() { v.dispatch(todos.Remove{ID: v.todo.ID}) }

// renderItem draws "<prefix><box> <text> (X)". The completion box and the
// strike-through are derived from Done only.
func renderItem(t model.Todo, selected bool) string {
	th := Current()
	box := styles.Muted.Render(th.BoxUnchecked)
	text := t.Text
	if t.Done {
		box = styles.Success.Render(th.BoxChecked)
		text = styles.Done.Render(text)
	}
	remove := styles.Error.Render(th.RemoveControl)

	prefix := "  "
	if selected {
		prefix = styles.Selected.Render(">") + " "
	}
	return fmt.Sprintf("%s%s %s %s", prefix, box, text, remove)
}
