package model

// Todo is one entry of the collection.
// Text is set at creation and never changes; Done flips on toggle.
type Todo struct {
	ID   int    `json:"id" yaml:"id"`
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// Todos is the ordered collection. Order is insertion order.
type Todos []Todo

// MaxID returns the largest id present, or 0 for an empty collection.
func (ts Todos) MaxID() int {
	m := 0
	for _, t := range ts {
		if t.ID > m {
			m = t.ID
		}
	}
	return m
}

// Index returns the position of the todo with the given id, or -1.
func (ts Todos) Index(id int) int {
	for i, t := range ts {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts done and pending entries.
func (ts Todos) Stats() (done, pending int) {
	for _, t := range ts {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return
}

// Clone returns a copy that shares no backing array with ts.
func (ts Todos) Clone() Todos {
	if ts == nil {
		return nil
	}
	out := make(Todos, len(ts))
	copy(out, ts)
	return out
}

// Seed is the collection every provider starts with unless a seed file
// replaces it.
func Seed() Todos {
	return Todos{
		{ID: 1, Text: "Learn the Context API", Done: true},
		{ID: 2, Text: "Learn TypeScript", Done: true},
		{ID: 3, Text: "Use TypeScript and the Context API together", Done: false},
	}
}
