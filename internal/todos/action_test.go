package todos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"create:Buy milk", Create{Text: "Buy milk"}},
		{"create:", Create{Text: ""}},
		{"create:a:b", Create{Text: "a:b"}},
		{"add:x", Create{Text: "x"}},
		{"toggle:4", Toggle{ID: 4}},
		{"TOGGLE: 4", Toggle{ID: 4}},
		{"done:2", Toggle{ID: 2}},
		{"remove:2", Remove{ID: 2}},
		{"rm:3", Remove{ID: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAction(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseActionErrors(t *testing.T) {
	for _, in := range []string{"", "create", "toggle:x", "remove:", "rename:1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAction(in)
			assert.ErrorIs(t, err, ErrInvalidAction)
		})
	}
}

func TestActionStringParsesBack(t *testing.T) {
	for _, a := range []Action{Create{Text: "D"}, Toggle{ID: 4}, Remove{ID: 2}} {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
}
