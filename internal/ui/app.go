package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/todos"
)

type focus int

const (
	focusForm focus = iota
	focusList
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	progressWidth = 28
)

// Options configure the interactive app.
type Options struct {
	Placeholder string
	AltScreen   bool
	Logger      *log.Logger
}

// App is the root Bubble Tea model. Building it mounts the provider; the
// views below it reach the collection only through the two channels.
type App struct {
	provider *todos.Provider
	// ctx carries the channels for the lifetime of the mount.
	ctx context.Context

	form  Form
	list  *ListView
	focus focus
	keys  keyMap

	width, height int
	err           error
	logger        *log.Logger
}

// NewApp mounts p under ctx and wires the form and list views to it.
func NewApp(ctx context.Context, p *todos.Provider, opts Options) (App, error) {
	mounted := p.Mount(ctx)

	form, err := NewForm(mounted, opts.Placeholder)
	if err != nil {
		p.Unmount()
		return App{}, err
	}
	lv, err := NewListView(mounted)
	if err != nil {
		p.Unmount()
		return App{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := App{
		provider: p,
		ctx:      mounted,
		form:     form,
		list:     lv,
		keys:     defaultKeyMap(),
		width:    defaultWidth,
		height:   defaultHeight,
		logger:   logger,
	}
	lv.SetAdditionalHelp(a.keys.listHelp)
	a.form.Focus()
	a.resize()
	return a, nil
}

// Close stops the list view and unmounts the provider. The collection is
// gone afterwards.
func (a App) Close() {
	a.list.Close()
	a.provider.Unmount()
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		if a.focus == focusForm {
			return a.updateForm(msg)
		}
		return a.updateList(msg)
	}

	var cmd tea.Cmd
	if a.focus == focusForm {
		a.form, cmd = a.form.Update(msg)
	} else {
		cmd = a.list.Update(msg)
	}
	return a, cmd
}

func (a App) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Focus), key.Matches(msg, a.keys.Cancel):
		a.form.Blur()
		a.focus = focusList
		return a, nil
	}
	var cmd tea.Cmd
	a.form, cmd = a.form.Update(msg)
	return a, cmd
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Focus), key.Matches(msg, a.keys.Add):
		a.focus = focusForm
		return a, a.form.Focus()
	case key.Matches(msg, a.keys.Toggle):
		a.withSelected(ItemView.Toggle)
		return a, nil
	case key.Matches(msg, a.keys.Remove):
		a.withSelected(ItemView.Remove)
		return a, nil
	}
	return a, a.list.Update(msg)
}

// withSelected runs fn on an item view bound to the todo under the cursor.
func (a *App) withSelected(fn func(ItemView)) {
	t, ok := a.list.Selected()
	if !ok {
		return
	}
	item, err := NewItemView(a.ctx, t)
	if err != nil {
		a.err = err
		a.logger.Error("item view", "err", err)
		return
	}
	a.logger.Debug("item action", "id", item.Todo().ID)
	fn(item)
}

func (a *App) resize() {
	listHeight := a.height - 10
	if listHeight < 3 {
		listHeight = 3
	}
	a.list.SetSize(a.width-4, listHeight)
}

// View implements tea.Model.
func (a App) View() string {
	parts := []string{
		a.form.View(a.width - 4),
		a.list.Progress(progressWidth),
		a.list.View(),
	}
	if a.err != nil {
		parts = append(parts, styles.Error.Render(fmt.Sprintf("error: %v", a.err)))
	}
	return PanelString(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// Run mounts p, runs the interactive app until the user quits, then
// unmounts.
func Run(ctx context.Context, p *todos.Provider, opts Options) error {
	app, err := NewApp(ctx, p, opts)
	if err != nil {
		return err
	}
	defer app.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, progOpts...).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
