package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todos/internal/model"
	"github.com/idilsaglam/todos/internal/ui"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"

	maxTitleWidth = 80
)

// outputFlags are shared by commands that print a collection.
type outputFlags struct {
	format string
	group  bool
}

func (o outputFlags) validate() error {
	switch o.format {
	case formatText, formatJSON, formatYAML:
		return nil
	}
	return usagef("unknown output format %q (want text, json or yaml)", o.format)
}

func printTodos(w io.Writer, ts model.Todos, o outputFlags) error {
	if ts == nil {
		ts = model.Todos{}
	}
	switch o.format {
	case formatJSON:
		b, err := json.MarshalIndent(ts, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ts); err != nil {
			return fmt.Errorf("yaml encode: %w", err)
		}
		return enc.Close()
	}
	ui.Panel(w, textLines(ts, o.group))
	return nil
}

func textLines(ts model.Todos, group bool) []string {
	st := ui.CurrentStyles()
	th := ui.Current()

	d, p := ts.Stats()
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		st.Title.Render("Todos"),
		st.Success.Render(th.SymDone), d,
		st.Pending.Render(th.SymPending), p,
		st.Accent.Render("Total"), len(ts),
	)

	lines := []string{header, st.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
	if group {
		lines = append(lines, groupLines(ts)...)
	} else {
		lines = append(lines, flatLines(ts)...)
	}
	lines = append(lines, "", st.Muted.Render(`Tip: todos apply "create:Buy milk" toggle:1`))
	return lines
}

func flatLines(ts model.Todos) []string {
	st := ui.CurrentStyles()
	th := ui.Current()
	if len(ts) == 0 {
		return []string{st.Muted.Render("no todos")}
	}
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		box := st.Muted.Render(th.BoxUnchecked)
		text := truncate(t.Text, maxTitleWidth)
		if t.Done {
			box = st.Success.Render(th.BoxChecked)
			text = st.Done.Render(text)
		}
		out = append(out, fmt.Sprintf("%s %s %s", st.Muted.Render(fmt.Sprintf("#%-3d", t.ID)), box, text))
	}
	return out
}

func groupLines(ts model.Todos) []string {
	st := ui.CurrentStyles()
	var pend, done model.Todos
	for _, t := range ts {
		if t.Done {
			done = append(done, t)
		} else {
			pend = append(pend, t)
		}
	}
	section := func(title string, items model.Todos) []string {
		lines := []string{st.Accent.Render(title)}
		if len(items) == 0 {
			return append(lines, st.Muted.Render("(none)"))
		}
		return append(lines, flatLines(items)...)
	}
	lines := section("Pending", pend)
	lines = append(lines, "")
	return append(lines, section("Done", done)...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}
