package todos

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/idilsaglam/todos/internal/model"
)

// ErrProviderNotFound is returned by the channel accessors when the context
// was not produced by a mounted Provider.
var ErrProviderNotFound = errors.New("todos: provider not found")

// StateReader is the read capability handed out on the state channel.
type StateReader interface {
	State() model.Todos
	Subscribe(fn func(model.Todos)) (unsubscribe func())
}

// Dispatch is the write capability handed out on the dispatch channel.
type Dispatch func(Action)

// Provider owns one collection from Mount to Unmount.
// It is not safe for concurrent use; callers dispatch from a single loop.
type Provider struct {
	seed    model.Todos
	state   model.Todos
	mounted bool
	session string

	dispatch Dispatch
	subs     map[int]func(model.Todos)
	nextSub  int

	logger *log.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger sets the logger used for lifecycle and dispatch events.
func WithLogger(l *log.Logger) Option {
	return func(p *Provider) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProvider returns an unmounted provider that will start from seed.
func NewProvider(seed model.Todos, opts ...Option) *Provider {
	p := &Provider{
		seed:   seed.Clone(),
		subs:   make(map[int]func(model.Todos)),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}
	// One dispatch function for the provider's whole life, so holders of
	// the dispatch channel never see it change.
	p.dispatch = p.Dispatch
	return p
}

type stateKey struct{}
type dispatchKey struct{}

// mountToken is the context value for both keys. It ties a context to the
// mount that produced it.
type mountToken struct {
	p       *Provider
	session string
}

// live reports whether the mount the token came from is still the current
// one.
func (t mountToken) live() bool {
	return t.p != nil && t.p.mounted && t.p.session == t.session
}

func tokenFrom(ctx context.Context, key any) (mountToken, bool) {
	t, ok := ctx.Value(key).(mountToken)
	if !ok || !t.live() {
		return mountToken{}, false
	}
	return t, true
}

// stateChannel reads nothing once its mount is gone.
type stateChannel struct{ tok mountToken }

func (c stateChannel) State() model.Todos {
	if !c.tok.live() {
		return nil
	}
	return c.tok.p.state
}

func (c stateChannel) Subscribe(fn func(model.Todos)) func() {
	if !c.tok.live() {
		return func() {}
	}
	return c.tok.p.Subscribe(fn)
}

// Mount resets the collection to the seed and returns a child of ctx that
// carries the state and dispatch channels. Mounting a mounted provider
// unmounts it first: earlier contexts and subscriptions stop working.
func (p *Provider) Mount(ctx context.Context) context.Context {
	if p.mounted {
		p.logger.Warn("provider mounted twice", "session", p.session)
		p.Unmount()
	}
	p.state = p.seed.Clone()
	p.mounted = true
	p.session = uuid.NewString()
	p.logger.Debug("provider mounted", "session", p.session, "todos", len(p.state))

	tok := mountToken{p: p, session: p.session}
	ctx = context.WithValue(ctx, dispatchKey{}, tok)
	return context.WithValue(ctx, stateKey{}, tok)
}

// Unmount discards the collection and all state subscriptions.
// Accessors on contexts from this mount fail from now on, including after
// a later Mount.
func (p *Provider) Unmount() {
	if !p.mounted {
		return
	}
	p.logger.Debug("provider unmounted", "session", p.session)
	p.mounted = false
	p.state = nil
	p.subs = make(map[int]func(model.Todos))
}

// Mounted reports whether the provider currently holds a collection.
func (p *Provider) Mounted() bool { return p.mounted }

// Session returns the id of the current mount, or "" before the first one.
func (p *Provider) Session() string { return p.session }

// State returns the current snapshot. Callers must not modify it.
func (p *Provider) State() model.Todos { return p.state }

// Dispatch applies a to the collection and publishes the result to state
// subscribers. It returns after every subscriber has run.
func (p *Provider) Dispatch(a Action) {
	if !p.mounted {
		p.logger.Warn("dispatch on unmounted provider", "action", a)
		return
	}
	p.state = Reduce(p.state, a)
	p.logger.Debug("dispatched", "session", p.session, "action", a, "todos", len(p.state))
	for _, fn := range p.subscribers() {
		fn(p.state)
	}
}

// Subscribe registers fn to receive every state published after a dispatch.
// The returned function removes the subscription.
func (p *Provider) Subscribe(fn func(model.Todos)) (unsubscribe func()) {
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	return func() { delete(p.subs, id) }
}

// subscribers returns callbacks in subscription order.
func (p *Provider) subscribers() []func(model.Todos) {
	out := make([]func(model.Todos), 0, len(p.subs))
	for id := 0; id < p.nextSub; id++ {
		if fn, ok := p.subs[id]; ok {
			out = append(out, fn)
		}
	}
	return out
}

// StateFrom returns the state channel carried by ctx.
func StateFrom(ctx context.Context) (StateReader, error) {
	t, ok := tokenFrom(ctx, stateKey{})
	if !ok {
		return nil, ErrProviderNotFound
	}
	return stateChannel{t}, nil
}

// DispatchFrom returns the dispatch channel carried by ctx.
func DispatchFrom(ctx context.Context) (Dispatch, error) {
	t, ok := tokenFrom(ctx, dispatchKey{})
	if !ok {
		return nil, ErrProviderNotFound
	}
	return t.p.dispatch, nil
}

// MustState is StateFrom for callers where a missing provider is a bug.
func MustState(ctx context.Context) StateReader {
	r, err := StateFrom(ctx)
	if err != nil {
		panic(err)
	}
	return r
}

// MustDispatch is DispatchFrom for callers where a missing provider is a bug.
func MustDispatch(ctx context.Context) Dispatch {
	d, err := DispatchFrom(ctx)
	if err != nil {
		panic(err)
	}
	return d
}
