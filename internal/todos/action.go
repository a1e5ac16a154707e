// Package todos holds the to-do state container: the action set, the
// reducer, and the provider that publishes state and dispatch through a
// context.Context.
package todos

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAction is returned by ParseAction for malformed input.
var ErrInvalidAction = errors.New("invalid action")

// Action is one of Create, Toggle or Remove. The set is closed.
type Action interface {
	fmt.Stringer
	action()
}

// Create appends a new todo with the next free id.
type Create struct {
	Text string
}

// Toggle flips Done on the todo with ID.
type Toggle struct {
	ID int
}

// Remove drops the todo with ID.
type Remove struct {
	ID int
}

func (Create) action() {}
func (Toggle) action() {}
func (Remove) action() {}

func (a Create) String() string { return "create:" + a.Text }
func (a Toggle) String() string { return "toggle:" + strconv.Itoa(a.ID) }
func (a Remove) String() string { return "remove:" + strconv.Itoa(a.ID) }

// ParseAction reads the textual form produced by Action.String:
// "create:<text>", "toggle:<id>" or "remove:<id>". The kind is
// case-insensitive; text after "create:" is kept verbatim.
func ParseAction(s string) (Action, error) {
	kind, arg, found := strings.Cut(s, ":")
	if !found {
		return nil, fmt.Errorf("%w %q: want <kind>:<arg>", ErrInvalidAction, s)
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "create", "add":
		return Create{Text: arg}, nil
	case "toggle", "done":
		id, err := parseID(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidAction, s, err)
		}
		return Toggle{ID: id}, nil
	case "remove", "rm":
		id, err := parseID(arg)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidAction, s, err)
		}
		return Remove{ID: id}, nil
	}
	return nil, fmt.Errorf("%w %q: unknown kind %q", ErrInvalidAction, s, kind)
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not a number: %s", s)
	}
	return id, nil
}
