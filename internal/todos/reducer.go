package todos

import (
	"errors"
	"fmt"
	"math"

	"github.com/idilsaglam/todos/internal/model"
)

// ErrUnhandledAction marks an action outside Create, Toggle and Remove.
// Only a nil Action can get there.
var ErrUnhandledAction = errors.New("todos: unhandled action")

// ErrIDOverflow means Create found math.MaxInt already in use.
var ErrIDOverflow = errors.New("todos: no id left after max int")

// Reduce returns the collection that results from applying a to state.
// state is never modified and the result never shares its backing array.
// Toggle and Remove on an unknown id return an unchanged copy. Create panics
// with ErrIDOverflow rather than wrap the id around.
func Reduce(state model.Todos, a Action) model.Todos {
	switch a := a.(type) {
	case Create:
		// Max of the empty set counts as 0, so the first id is 1.
		last := state.MaxID()
		if last == math.MaxInt {
			panic(fmt.Errorf("%w: create %q", ErrIDOverflow, a.Text))
		}
		next := last + 1
		out := make(model.Todos, len(state), len(state)+1)
		copy(out, state)
		return append(out, model.Todo{ID: next, Text: a.Text})
	case Toggle:
		out := state.Clone()
		for i := range out {
			if out[i].ID == a.ID {
				out[i].Done = !out[i].Done
			}
		}
		return out
	case Remove:
		out := make(model.Todos, 0, len(state))
		for _, t := range state {
			if t.ID != a.ID {
				out = append(out, t)
			}
		}
		return out
	}
	panic(fmt.Errorf("%w: %T", ErrUnhandledAction, a))
}
