package property

// Validator decides whether a container's pending state is acceptable. It is
// consulted after the new value has been assigned; returning an error rolls
// the assignment back.
type Validator interface {
	ValidateProperty(p Property) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(p Property) error

func (f ValidatorFunc) ValidateProperty(p Property) error {
	return f(p)
}

// Observer receives events for successful mutations on a group's containers.
type Observer interface {
	PropertyChanged(p Property)
	PropertyEnabled(p Property, enabled bool)
}

// ChangedFunc adapts a function to the Observer interface, ignoring enabled
// events.
type ChangedFunc func(p Property)

func (f ChangedFunc) PropertyChanged(p Property) {
	f(p)
}

func (f ChangedFunc) PropertyEnabled(Property, bool) {}

// Option configures a Group at construction time.
type Option func(*Group)

// WithValidator appends a validator. Validators run in registration order and
// all must accept a new value; the first failure wins.
func WithValidator(v Validator) Option {
	return func(g *Group) {
		g.validators = append(g.validators, v)
	}
}

// WithObserver appends an observer. Observers are dispatched in registration
// order, so combining a policy observer with a logging observer is ordinary
// composition.
func WithObserver(o Observer) Option {
	return func(g *Group) {
		g.observers = append(g.observers, o)
	}
}

// WithRestore sets the hook RestoreDefaults invokes.
func WithRestore(fn func()) Option {
	return func(g *Group) {
		g.restoreFn = fn
	}
}

type slot struct {
	id   uint64
	prop Property
}

// Group is an ordered, non-owning collection of value containers and the
// policy point for their validation and change notification. Containers
// register themselves at construction time and keep only their slot id as a
// back-reference; Detach on the container releases the slot.
type Group struct {
	parent     *Group
	slots      []slot
	nextID     uint64
	blocked    bool
	validators []Validator
	observers  []Observer
	restoreFn  func()
}

// NewGroup returns a group with the given parent (nil for a root group).
// Validators, observers and the restore hook are injected here and fixed for
// the group's lifetime.
func NewGroup(parent *Group, opts ...Option) *Group {
	g := &Group{
		parent: parent,
		nextID: 1,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Parent returns the parent group, or nil.
func (g *Group) Parent() *Group {
	return g.parent
}

// Properties returns the registered containers in registration order.
func (g *Group) Properties() []Property {
	props := make([]Property, 0, len(g.slots))
	for _, s := range g.slots {
		props = append(props, s.prop)
	}
	return props
}

// RestoreDefaults invokes the restore hook injected at construction time.
// Groups constructed without one do nothing here; the settings registry
// drives resets through its own per-group and per-section callbacks instead.
func (g *Group) RestoreDefaults() {
	if g.restoreFn != nil {
		g.restoreFn()
	}
}

// BlockPropertyChanged toggles suppression of change notifications. While
// blocked, mutations on the group's containers still validate and commit,
// but the group's own observers are not dispatched. Enabled events are not
// affected.
func (g *Group) BlockPropertyChanged(on bool) {
	g.blocked = on
}

// PropertyChangedBlocked reports whether change notifications are currently
// suppressed.
func (g *Group) PropertyChangedBlocked() bool {
	return g.blocked
}

// BlockPropertyChangedScope suppresses change notifications until the
// returned function runs. The restore function reinstates the exact state
// the group had when the scope began, so nested scopes compose:
//
//	restore := g.BlockPropertyChangedScope()
//	defer restore()
func (g *Group) BlockPropertyChangedScope() (restore func()) {
	prev := g.blocked
	g.blocked = true
	return func() {
		g.blocked = prev
	}
}

// attach registers p at the end of the sequence and returns its slot id.
func (g *Group) attach(p Property) uint64 {
	id := g.nextID
	g.nextID++
	g.slots = append(g.slots, slot{id: id, prop: p})
	return id
}

// detach removes the slot with the given id, preserving the order of the
// rest. Ids not present are ignored.
func (g *Group) detach(id uint64) {
	for i, s := range g.slots {
		if s.id == id {
			g.slots = append(g.slots[:i], g.slots[i+1:]...)
			return
		}
	}
}

// validate runs the group's validators against p, stopping at the first
// failure. Groups without validators accept everything.
func (g *Group) validate(p Property) error {
	for _, v := range g.validators {
		if err := v.ValidateProperty(p); err != nil {
			return err
		}
	}
	return nil
}

// notifyChanged dispatches a change event to the group's observers, unless
// blocked, then bubbles it to the parent chain. Each group along the chain
// applies its own blocked flag to its own observers.
func (g *Group) notifyChanged(p Property) {
	if !g.blocked {
		for _, o := range g.observers {
			o.PropertyChanged(p)
		}
	}
	if g.parent != nil {
		g.parent.notifyChanged(p)
	}
}

// notifyEnabled dispatches an enabled event to the group's observers and the
// parent chain. Enabled events have no blocking flag.
func (g *Group) notifyEnabled(p Property, enabled bool) {
	for _, o := range g.observers {
		o.PropertyEnabled(p, enabled)
	}
	if g.parent != nil {
		g.parent.notifyEnabled(p, enabled)
	}
}
