package todos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todos/internal/model"
)

func TestReduceCreate(t *testing.T) {
	tests := []struct {
		name   string
		state  model.Todos
		text   string
		wantID int
	}{
		{"seed", model.Seed(), "D", 4},
		{"empty collection starts at one", model.Todos{}, "first", 1},
		{"nil collection starts at one", nil, "first", 1},
		{"gap in ids uses max", model.Todos{{ID: 7}, {ID: 2}}, "x", 8},
		{"empty text still creates", model.Seed(), "", 4},
		{"last id below max int", model.Todos{{ID: math.MaxInt - 1}}, "x", math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state.Clone()
			got := Reduce(tt.state, Create{Text: tt.text})

			require.Len(t, got, len(tt.state)+1)
			assert.Equal(t, model.Todo{ID: tt.wantID, Text: tt.text}, got[len(got)-1])
			for i := range before {
				assert.Equal(t, before[i], got[i])
			}
			assert.Equal(t, before, tt.state, "input must not change")
		})
	}
}

func TestReduceCreateAtMaxIntPanics(t *testing.T) {
	state := model.Todos{{ID: math.MaxInt, Text: "last"}}
	assert.PanicsWithError(t, `todos: no id left after max int: create "x"`, func() {
		Reduce(state, Create{Text: "x"})
	})
}

func TestReduceCreateDoesNotAliasInput(t *testing.T) {
	state := make(model.Todos, 1, 4)
	state[0] = model.Todo{ID: 1, Text: "A"}

	a := Reduce(state, Create{Text: "B"})
	b := Reduce(state, Create{Text: "C"})

	assert.Equal(t, "B", a[1].Text)
	assert.Equal(t, "C", b[1].Text)
}

func TestReduceToggle(t *testing.T) {
	state := model.Seed()
	got := Reduce(state, Toggle{ID: 3})

	require.Len(t, got, 3)
	assert.True(t, got[2].Done)
	assert.Equal(t, state[0], got[0])
	assert.Equal(t, state[1], got[1])
	assert.False(t, state[2].Done, "input must not change")
}

func TestReduceToggleTwiceIsIdentity(t *testing.T) {
	state := model.Seed()
	for _, td := range state {
		got := Reduce(Reduce(state, Toggle{ID: td.ID}), Toggle{ID: td.ID})
		assert.Equal(t, state, got)
	}
}

func TestReduceToggleUnknownID(t *testing.T) {
	state := model.Seed()
	assert.Equal(t, state, Reduce(state, Toggle{ID: 99}))
}

func TestReduceRemove(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		wantIDs []int
	}{
		{"first", 1, []int{2, 3}},
		{"middle", 2, []int{1, 3}},
		{"last", 3, []int{1, 2}},
		{"unknown is a no-op", 42, []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := model.Seed()
			got := Reduce(state, Remove{ID: tt.id})
			assert.Equal(t, tt.wantIDs, ids(got))
			assert.Equal(t, model.Seed(), state, "input must not change")
		})
	}
}

func TestReduceNilActionPanics(t *testing.T) {
	assert.PanicsWithError(t, "todos: unhandled action: <nil>", func() {
		Reduce(model.Seed(), nil)
	})
}

func TestReduceScript(t *testing.T) {
	state := model.Todos{
		{ID: 1, Text: "A", Done: true},
		{ID: 2, Text: "B", Done: true},
		{ID: 3, Text: "C", Done: false},
	}

	state = Reduce(state, Create{Text: "D"})
	require.Len(t, state, 4)
	assert.Equal(t, model.Todo{ID: 4, Text: "D"}, state[3])

	state = Reduce(state, Toggle{ID: 4})
	assert.True(t, state[3].Done)

	state = Reduce(state, Remove{ID: 2})
	assert.Equal(t, []int{1, 3, 4}, ids(state))
}

func ids(ts model.Todos) []int {
	out := make([]int, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.ID)
	}
	return out
}
