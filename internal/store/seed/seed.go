package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/idilsaglam/todos/internal/model"
)

// Read-only seed source. The file is read once at mount and never written;
// a restart always begins from it again.

var (
	ErrDuplicateID = errors.New("duplicate id")
	ErrInvalidID   = errors.New("id must be positive")
	// ErrIDOverflow rejects an id that leaves no room for the next create.
	ErrIDOverflow = errors.New("id leaves no room for new todos")
)

// Load returns the default seed when path is empty, otherwise the todos
// stored in the JSON file at path.
func Load(path string) (model.Todos, error) {
	if path == "" {
		return model.Seed(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(b)
}

// Parse decodes a JSON array of todos and checks the id invariants.
func Parse(b []byte) (model.Todos, error) {
	var todos model.Todos
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := Validate(todos); err != nil {
		return nil, err
	}
	if todos == nil {
		todos = model.Todos{}
	}
	return todos, nil
}

// Validate checks that every id is positive, below math.MaxInt and appears
// once.
func Validate(todos model.Todos) error {
	seen := make(map[int]struct{}, len(todos))
	for i, t := range todos {
		if t.ID <= 0 {
			return fmt.Errorf("todo %d: %w (got %d)", i, ErrInvalidID, t.ID)
		}
		if t.ID == math.MaxInt {
			return fmt.Errorf("todo %d: %w (got %d)", i, ErrIDOverflow, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("todo %d: %w %d", i, ErrDuplicateID, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
