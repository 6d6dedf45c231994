// Package settings organizes typed value containers into an application
// settings tree of groups, sections and settings, and persists the tree
// through a pluggable key-value store.
//
// Containers attach to the registry's property group at construction time
// and are then registered into the tree, which hands out stable indices:
//
//	s := settings.New(nil)
//	groupId := s.AddGroup(textid.New("app", "ui"))
//	lineWidth := property.NewFloat(s.PropertyGroup(), textid.New("app", "lineWidth"), 2.5)
//	settingId := s.AddSetting(lineWidth, groupId)
//
// Indices never shift as later entries are added. Values loaded from a store
// pass through the same set protocol as programmatic writes, so validation
// and change notification behave identically for both.
package settings

import (
	"propkit/conv"
	"propkit/property"
	"propkit/store"
	"propkit/textid"

	"golang.org/x/text/language"
)

type groupEntry struct {
	identifier textid.TextId
	title      textid.TextId
	sections   []*sectionEntry
	resetFn    func()
}

type sectionEntry struct {
	identifier textid.TextId
	title      textid.TextId
	isDefault  bool
	settings   []property.Property
	resetFn    func()
}

type changedHandler struct {
	fn func(property.Property)
}

type enabledHandler struct {
	fn func(property.Property, bool)
}

// Settings is the registry. It owns the property group its containers attach
// to, observes every change on them, and re-broadcasts events to OnChanged
// and OnEnabled subscribers. Like the property layer it assumes a single
// owning goroutine.
type Settings struct {
	store     store.Store
	converter conv.Converter
	locale    language.Tag
	group     *property.Group
	groups    []*groupEntry
	changed   []*changedHandler
	enabled   []*enabledHandler
}

var _ property.Observer = (*Settings)(nil)

type config struct {
	converter  conv.Converter
	locale     language.Tag
	validators []property.Validator
}

// Option configures a Settings registry at construction time.
type Option func(*config)

// WithConverter sets the value converter used by load and save operations.
func WithConverter(c conv.Converter) Option {
	return func(cfg *config) {
		cfg.converter = c
	}
}

// WithLocale sets the locale used to translate group and section titles.
// Without it the registry uses the platform language.
func WithLocale(tag language.Tag) Option {
	return func(cfg *config) {
		cfg.locale = tag
	}
}

// WithValidator appends a validator to the registry's property group. Every
// setting change, programmatic or loaded, has to pass it.
func WithValidator(v property.Validator) Option {
	return func(cfg *config) {
		cfg.validators = append(cfg.validators, v)
	}
}

// New creates a registry persisting to st. A nil st keeps settings in memory
// only.
func New(st store.Store, opts ...Option) *Settings {
	cfg := config{
		converter: conv.Default{},
		locale:    textid.PlatformLanguage(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}

	s := &Settings{
		store:     st,
		converter: cfg.converter,
		locale:    cfg.locale,
	}
	groupOpts := []property.Option{property.WithObserver(s)}
	for _, v := range cfg.validators {
		groupOpts = append(groupOpts, property.WithValidator(v))
	}
	s.group = property.NewGroup(nil, groupOpts...)
	return s
}

// PropertyGroup returns the group settings containers attach to.
func (s *Settings) PropertyGroup() *property.Group {
	return s.group
}

// Store returns the registry's persistence backend.
func (s *Settings) Store() store.Store {
	return s.store
}

// Converter returns the value converter used by load and save operations.
func (s *Settings) Converter() conv.Converter {
	return s.converter
}

// SetConverter replaces the value converter. A nil converter restores the
// default one.
func (s *Settings) SetConverter(c conv.Converter) {
	if c == nil {
		c = conv.Default{}
	}
	s.converter = c
}

// Locale returns the locale used to translate titles.
func (s *Settings) Locale() language.Tag {
	return s.locale
}

// SetLocale changes the locale used to translate titles.
func (s *Settings) SetLocale(tag language.Tag) {
	s.locale = tag
}

// AddGroup registers a settings group and returns its index. Adding an
// identifier that is already registered returns the existing group's index.
func (s *Settings) AddGroup(identifier textid.TextId) GroupIndex {
	if identifier.IsEmpty() {
		return GroupIndex{}
	}
	for i, g := range s.groups {
		if g.identifier == identifier {
			return GroupIndex{i: i + 1}
		}
	}
	s.groups = append(s.groups, &groupEntry{identifier: identifier})
	return GroupIndex{i: len(s.groups)}
}

// AddSection registers a named section in the group and returns its index.
// Adding an identifier that is already registered returns the existing
// section's index. The empty identifier is reserved for the group's default
// section and yields an invalid index here.
func (s *Settings) AddSection(groupID GroupIndex, identifier textid.TextId) SectionIndex {
	g := s.groupAt(groupID)
	if g == nil || identifier.IsEmpty() {
		return SectionIndex{}
	}
	for i, sec := range g.sections {
		if !sec.isDefault && sec.identifier == identifier {
			return SectionIndex{group: groupID, i: i + 1}
		}
	}
	g.sections = append(g.sections, &sectionEntry{identifier: identifier})
	return SectionIndex{group: groupID, i: len(g.sections)}
}

// AddSetting registers prop in the group's default section, creating that
// section on first use.
func (s *Settings) AddSetting(prop property.Property, groupID GroupIndex) SettingIndex {
	return s.AddSettingInSection(prop, s.defaultSection(groupID))
}

// AddSettingInSection registers prop at the end of the section.
func (s *Settings) AddSettingInSection(prop property.Property, sectionID SectionIndex) SettingIndex {
	sec := s.sectionAt(sectionID)
	if sec == nil || prop == nil {
		return SettingIndex{}
	}
	sec.settings = append(sec.settings, prop)
	return SettingIndex{section: sectionID, i: len(sec.settings)}
}

// defaultSection returns the group's default section, appending it when the
// group does not have one yet.
func (s *Settings) defaultSection(groupID GroupIndex) SectionIndex {
	g := s.groupAt(groupID)
	if g == nil {
		return SectionIndex{}
	}
	for i, sec := range g.sections {
		if sec.isDefault {
			return SectionIndex{group: groupID, i: i + 1}
		}
	}
	g.sections = append(g.sections, &sectionEntry{isDefault: true})
	return SectionIndex{group: groupID, i: len(g.sections)}
}

// GroupCount returns the number of registered groups.
func (s *Settings) GroupCount() int {
	return len(s.groups)
}

// SectionCount returns the number of sections in the group, the default
// section included once it exists.
func (s *Settings) SectionCount(groupID GroupIndex) int {
	g := s.groupAt(groupID)
	if g == nil {
		return 0
	}
	return len(g.sections)
}

// SettingCount returns the number of settings in the section.
func (s *Settings) SettingCount(sectionID SectionIndex) int {
	sec := s.sectionAt(sectionID)
	if sec == nil {
		return 0
	}
	return len(sec.settings)
}

// Groups returns the indices of every registered group in table order.
func (s *Settings) Groups() []GroupIndex {
	out := make([]GroupIndex, len(s.groups))
	for i := range s.groups {
		out[i] = GroupIndex{i: i + 1}
	}
	return out
}

// Sections returns the indices of the group's sections in table order, or
// nil for an invalid index.
func (s *Settings) Sections(groupID GroupIndex) []SectionIndex {
	g := s.groupAt(groupID)
	if g == nil {
		return nil
	}
	out := make([]SectionIndex, len(g.sections))
	for i := range g.sections {
		out[i] = SectionIndex{group: groupID, i: i + 1}
	}
	return out
}

// SectionSettings returns the indices of the section's settings in
// registration order, or nil for an invalid index.
func (s *Settings) SectionSettings(sectionID SectionIndex) []SettingIndex {
	sec := s.sectionAt(sectionID)
	if sec == nil {
		return nil
	}
	out := make([]SettingIndex, len(sec.settings))
	for i := range sec.settings {
		out[i] = SettingIndex{section: sectionID, i: i + 1}
	}
	return out
}

// GroupIdentifier returns the group's identifier, or the zero TextId for an
// invalid index.
func (s *Settings) GroupIdentifier(groupID GroupIndex) textid.TextId {
	g := s.groupAt(groupID)
	if g == nil {
		return textid.TextId{}
	}
	return g.identifier
}

// SectionIdentifier returns the section's identifier. Default sections have
// the zero TextId.
func (s *Settings) SectionIdentifier(sectionID SectionIndex) textid.TextId {
	sec := s.sectionAt(sectionID)
	if sec == nil {
		return textid.TextId{}
	}
	return sec.identifier
}

// IsDefaultGroupSection reports whether the index refers to a group's default
// section.
func (s *Settings) IsDefaultGroupSection(sectionID SectionIndex) bool {
	sec := s.sectionAt(sectionID)
	return sec != nil && sec.isDefault
}

// GroupTitle returns the group's display title translated in the registry
// locale. Without an explicit title the identifier doubles as the message id.
func (s *Settings) GroupTitle(groupID GroupIndex) string {
	g := s.groupAt(groupID)
	if g == nil {
		return ""
	}
	id := g.identifier
	if !g.title.IsEmpty() {
		id = g.title
	}
	return textid.Tr(id, s.locale.String())
}

// SetGroupTitle sets an explicit display title for the group.
func (s *Settings) SetGroupTitle(groupID GroupIndex, title textid.TextId) {
	if g := s.groupAt(groupID); g != nil {
		g.title = title
	}
}

// SectionTitle returns the section's display title translated in the
// registry locale. Default sections have no title.
func (s *Settings) SectionTitle(sectionID SectionIndex) string {
	sec := s.sectionAt(sectionID)
	if sec == nil || sec.isDefault {
		return ""
	}
	id := sec.identifier
	if !sec.title.IsEmpty() {
		id = sec.title
	}
	return textid.Tr(id, s.locale.String())
}

// SetSectionTitle sets an explicit display title for the section.
func (s *Settings) SetSectionTitle(sectionID SectionIndex, title textid.TextId) {
	if sec := s.sectionAt(sectionID); sec != nil {
		sec.title = title
	}
}

// Property returns the container registered at the index, or nil for an
// invalid index.
func (s *Settings) Property(settingID SettingIndex) property.Property {
	sec := s.sectionAt(settingID.section)
	if sec == nil || settingID.i < 1 || settingID.i > len(sec.settings) {
		return nil
	}
	return sec.settings[settingID.i-1]
}

// FindProperty returns the index under which prop was registered, or the
// zero SettingIndex when it is not part of the tree.
func (s *Settings) FindProperty(prop property.Property) SettingIndex {
	for gi, g := range s.groups {
		for si, sec := range g.sections {
			for pi, registered := range sec.settings {
				if registered == prop {
					return SettingIndex{
						section: SectionIndex{group: GroupIndex{i: gi + 1}, i: si + 1},
						i:       pi + 1,
					}
				}
			}
		}
	}
	return SettingIndex{}
}

// OnChanged subscribes fn to change events for every registered container.
// The returned function removes the subscription.
func (s *Settings) OnChanged(fn func(property.Property)) (off func()) {
	h := &changedHandler{fn: fn}
	s.changed = append(s.changed, h)
	return func() {
		for i, other := range s.changed {
			if other == h {
				s.changed = append(s.changed[:i], s.changed[i+1:]...)
				return
			}
		}
	}
}

// OnEnabled subscribes fn to enabled-state events for every registered
// container. The returned function removes the subscription.
func (s *Settings) OnEnabled(fn func(property.Property, bool)) (off func()) {
	h := &enabledHandler{fn: fn}
	s.enabled = append(s.enabled, h)
	return func() {
		for i, other := range s.enabled {
			if other == h {
				s.enabled = append(s.enabled[:i], s.enabled[i+1:]...)
				return
			}
		}
	}
}

// PropertyChanged implements property.Observer by re-broadcasting the event
// to OnChanged subscribers. The subscriber list is snapshotted first, so a
// handler may unsubscribe itself during dispatch.
func (s *Settings) PropertyChanged(p property.Property) {
	handlers := make([]*changedHandler, len(s.changed))
	copy(handlers, s.changed)
	for _, h := range handlers {
		h.fn(p)
	}
}

// PropertyEnabled implements property.Observer by re-broadcasting the event
// to OnEnabled subscribers.
func (s *Settings) PropertyEnabled(p property.Property, enabled bool) {
	handlers := make([]*enabledHandler, len(s.enabled))
	copy(handlers, s.enabled)
	for _, h := range handlers {
		h.fn(p, enabled)
	}
}

func (s *Settings) groupAt(x GroupIndex) *groupEntry {
	if x.i < 1 || x.i > len(s.groups) {
		return nil
	}
	return s.groups[x.i-1]
}

func (s *Settings) sectionAt(x SectionIndex) *sectionEntry {
	g := s.groupAt(x.group)
	if g == nil || x.i < 1 || x.i > len(g.sections) {
		return nil
	}
	return g.sections[x.i-1]
}
