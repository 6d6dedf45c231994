package property

import "propkit/textid"

// Property is the type-erased view shared by every value container.
type Property interface {
	// Name returns the container's identifier, immutable after construction.
	Name() textid.TextId
	// Label returns the translated human-readable form of the name.
	Label() string
	Description() string
	SetDescription(text string)
	IsUserReadOnly() bool
	SetUserReadOnly(on bool)
	IsUserVisible() bool
	SetUserVisible(on bool)
	IsEnabled() bool
	// SetEnabled updates the enabled flag and dispatches the owning group's
	// enabled observers. Value validity is not affected.
	SetEnabled(on bool)
	// Group returns the owning group, or nil for a detached container.
	Group() *Group
	// Detach releases the container's slot in its owning group. A detached
	// container keeps working: assignments succeed unconditionally and skip
	// validation. Detaching twice is a no-op; nothing re-attaches.
	Detach()
	// TypeName identifies the container's value kind.
	TypeName() string
	// Variant returns a type-erased snapshot of the current value.
	Variant() Variant
	// SetVariant converts the erased value to the native type and assigns it
	// through the set protocol. Conversion failures return
	// ErrIncompatibleType without mutating the container.
	SetVariant(v Variant) error
	// DefaultVariant returns the declared default as an erased value.
	DefaultVariant() Variant
	// RestoreDefault assigns the declared default through the set protocol.
	RestoreDefault() error
}

// base carries the identity, presentation metadata and group back-reference
// shared by all containers.
type base struct {
	group    *Group
	slotID   uint64
	name     textid.TextId
	descr    string
	readOnly bool
	visible  bool
	enabled  bool
	self     Property
}

// init binds identity and registers with the group. self must be the concrete
// container embedding this base, as it is what validators and observers see.
func (b *base) init(g *Group, name textid.TextId, self Property) {
	b.name = name
	b.visible = true
	b.enabled = true
	b.self = self
	if g != nil {
		b.group = g
		b.slotID = g.attach(self)
	}
}

func (b *base) Name() textid.TextId {
	return b.name
}

func (b *base) Label() string {
	return textid.Tr(b.name)
}

func (b *base) Description() string {
	return b.descr
}

func (b *base) SetDescription(text string) {
	b.descr = text
}

func (b *base) IsUserReadOnly() bool {
	return b.readOnly
}

func (b *base) SetUserReadOnly(on bool) {
	b.readOnly = on
}

func (b *base) IsUserVisible() bool {
	return b.visible
}

func (b *base) SetUserVisible(on bool) {
	b.visible = on
}

func (b *base) IsEnabled() bool {
	return b.enabled
}

func (b *base) SetEnabled(on bool) {
	b.enabled = on
	if b.group != nil {
		b.group.notifyEnabled(b.self, on)
	}
}

func (b *base) Group() *Group {
	return b.group
}

func (b *base) Detach() {
	if b.group != nil {
		b.group.detach(b.slotID)
		b.group = nil
		b.slotID = 0
	}
}

// setValue runs the set-validate-notify protocol shared by every container:
// assign the new value in place, let the owning group validate the new
// state, then either notify observers or restore the previous value and
// report the rejection. Detached containers assign unconditionally.
func setValue[T any](b *base, dst *T, value T) error {
	if b.group == nil {
		*dst = value
		return nil
	}

	prev := *dst
	*dst = value
	if err := b.group.validate(b.self); err != nil {
		*dst = prev
		return &ValidationError{Name: b.name.Key, Err: err}
	}

	b.group.notifyChanged(b.self)
	return nil
}
