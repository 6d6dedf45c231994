package settings

import (
	"errors"
	"fmt"
)

// SetGroupResetFunc installs the function ResetGroup runs for the group.
// A group-level function covers the whole group and takes precedence over
// section-level ones.
func (s *Settings) SetGroupResetFunc(groupID GroupIndex, fn func()) {
	if g := s.groupAt(groupID); g != nil {
		g.resetFn = fn
	}
}

// SetSectionResetFunc installs the function ResetSection runs for the
// section.
func (s *Settings) SetSectionResetFunc(sectionID SectionIndex, fn func()) {
	if sec := s.sectionAt(sectionID); sec != nil {
		sec.resetFn = fn
	}
}

// ResetGroup restores the group's settings to their defaults. With a
// group-level reset function installed only that function runs and is
// assumed to cover the whole group; otherwise every section resets like
// ResetSection. Rejected defaults surface joined in the returned error
// while the remaining settings still reset.
func (s *Settings) ResetGroup(groupID GroupIndex) error {
	g := s.groupAt(groupID)
	if g == nil {
		return nil
	}
	if g.resetFn != nil {
		g.resetFn()
		return nil
	}
	var errs []error
	for _, sec := range g.sections {
		if err := s.resetSection(g, sec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ResetSection restores the section's settings to their defaults: its reset
// function when one is installed, otherwise each setting's declared default
// assigned through the usual set protocol.
func (s *Settings) ResetSection(sectionID SectionIndex) error {
	sec := s.sectionAt(sectionID)
	if sec == nil {
		return nil
	}
	return s.resetSection(s.groupAt(sectionID.Group()), sec)
}

func (s *Settings) resetSection(g *groupEntry, sec *sectionEntry) error {
	if sec.resetFn != nil {
		sec.resetFn()
		return nil
	}
	var errs []error
	for _, prop := range sec.settings {
		if err := prop.RestoreDefault(); err != nil {
			errs = append(errs, fmt.Errorf("setting %q: %w", settingKey(g, sec, prop), err))
		}
	}
	return errors.Join(errs...)
}

// ResetAll restores every group, cascading like ResetGroup.
func (s *Settings) ResetAll() error {
	var errs []error
	for i := range s.groups {
		if err := s.ResetGroup(GroupIndex{i: i + 1}); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
