package settings

// GroupIndex identifies a registered settings group. Indices are handed out
// by AddGroup, stay valid for the registry's lifetime, and never shift when
// later groups are added. The zero GroupIndex is invalid.
type GroupIndex struct {
	i int
}

// IsValid reports whether the index refers to a registered group.
func (x GroupIndex) IsValid() bool {
	return x.i > 0
}

// SectionIndex identifies a section within a settings group. The zero
// SectionIndex is invalid.
type SectionIndex struct {
	group GroupIndex
	i     int
}

// IsValid reports whether the index refers to a registered section.
func (x SectionIndex) IsValid() bool {
	return x.group.IsValid() && x.i > 0
}

// Group returns the index of the owning group.
func (x SectionIndex) Group() GroupIndex {
	return x.group
}

// SettingIndex identifies a setting within a section. The zero SettingIndex
// is invalid.
type SettingIndex struct {
	section SectionIndex
	i       int
}

// IsValid reports whether the index refers to a registered setting.
func (x SettingIndex) IsValid() bool {
	return x.section.IsValid() && x.i > 0
}

// Section returns the index of the owning section.
func (x SettingIndex) Section() SectionIndex {
	return x.section
}

// Group returns the index of the owning group.
func (x SettingIndex) Group() GroupIndex {
	return x.section.group
}
