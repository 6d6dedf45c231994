package settings

import (
	"errors"
	"fmt"

	"propkit/property"
	"propkit/store"

	"github.com/sirupsen/logrus"
)

// ExcludePredicate reports whether a bulk load or save should skip a
// setting.
type ExcludePredicate func(prop property.Property) bool

// settingKey builds the storage key: the group identifier, the section
// identifier for named sections, and the container name, joined with
// slashes. Settings in a default section omit the section segment.
func settingKey(group *groupEntry, section *sectionEntry, prop property.Property) string {
	if section.isDefault {
		return group.identifier.Key + "/" + prop.Name().Key
	}
	return group.identifier.Key + "/" + section.identifier.Key + "/" + prop.Name().Key
}

// SettingKey returns the storage key of the setting, or "" for an invalid
// index.
func (s *Settings) SettingKey(settingID SettingIndex) string {
	prop := s.Property(settingID)
	if prop == nil {
		return ""
	}
	return settingKey(s.groupAt(settingID.Group()), s.sectionAt(settingID.Section()), prop)
}

// Load reads every registered setting from the registry's store.
func (s *Settings) Load() error {
	return s.LoadFrom(s.store)
}

// LoadFrom reads every registered setting from st. Settings matching an
// exclude predicate are skipped, and keys missing from the store leave the
// corresponding setting at its current value. Decode and validation
// failures are logged and surface joined in the returned error while the
// remaining settings still load.
func (s *Settings) LoadFrom(st store.Store, excludes ...ExcludePredicate) error {
	var errs []error
	loaded := 0
	for _, g := range s.groups {
		for _, sec := range g.sections {
			for _, prop := range sec.settings {
				if isExcluded(prop, excludes) {
					continue
				}
				key := settingKey(g, sec, prop)
				data, err := st.Get(key)
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				if err != nil {
					logrus.WithError(err).WithField("key", key).Warn("failed to read setting")
					errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
					continue
				}
				if err := s.converter.FromStoreValue(prop, data); err != nil {
					logrus.WithError(err).WithField("key", key).Warn("failed to load setting")
					errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
					continue
				}
				loaded++
			}
		}
	}
	logrus.WithFields(logrus.Fields{"loaded": loaded, "failed": len(errs)}).Debug("settings loaded")
	return errors.Join(errs...)
}

// LoadSetting reads a single setting from the registry's store.
func (s *Settings) LoadSetting(settingID SettingIndex) error {
	return s.LoadSettingFrom(s.store, settingID)
}

// LoadSettingFrom reads a single setting from st. A missing key leaves the
// setting at its current value and is not an error.
func (s *Settings) LoadSettingFrom(st store.Store, settingID SettingIndex) error {
	prop := s.Property(settingID)
	if prop == nil {
		return nil
	}
	key := s.SettingKey(settingID)
	data, err := st.Get(key)
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("setting %q: %w", key, err)
	}
	return s.converter.FromStoreValue(prop, data)
}

// Save writes every registered setting to the registry's store.
func (s *Settings) Save(excludes ...ExcludePredicate) error {
	return s.SaveAs(s.store, excludes...)
}

// SaveAs writes every registered setting to st, then syncs it. Settings
// matching an exclude predicate are skipped. Encode and write failures are
// logged and surface joined in the returned error; the remaining settings
// are still written.
func (s *Settings) SaveAs(st store.Store, excludes ...ExcludePredicate) error {
	var errs []error
	saved := 0
	for _, g := range s.groups {
		for _, sec := range g.sections {
			for _, prop := range sec.settings {
				if isExcluded(prop, excludes) {
					continue
				}
				key := settingKey(g, sec, prop)
				data, err := s.converter.ToStoreValue(prop)
				if err != nil {
					logrus.WithError(err).WithField("key", key).Warn("failed to encode setting")
					errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
					continue
				}
				if err := st.Set(key, data); err != nil {
					logrus.WithError(err).WithField("key", key).Warn("failed to write setting")
					errs = append(errs, fmt.Errorf("setting %q: %w", key, err))
					continue
				}
				saved++
			}
		}
	}
	logrus.WithFields(logrus.Fields{"saved": saved, "failed": len(errs)}).Debug("settings saved")
	if err := st.Sync(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// FindValueFromKey peeks at the raw stored payload for key in the registry's
// store. The second result reports whether the key had an entry.
func (s *Settings) FindValueFromKey(key string) ([]byte, bool) {
	data, err := s.store.Get(key)
	if err != nil {
		return nil, false
	}
	return data, true
}

func isExcluded(prop property.Property, excludes []ExcludePredicate) bool {
	for _, fn := range excludes {
		if fn != nil && fn(prop) {
			return true
		}
	}
	return false
}
