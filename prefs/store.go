package prefs

import "log/slog"

// Store is the single source of truth for the font preference. It owns
// the theme mutation and the persisted record under StorageKey.
//
// Storage failures never propagate: a broken or absent storage behaves as
// "nothing saved" and the default stays in effect.
type Store struct {
	storage Storage
	theme   *Theme
	logger  *slog.Logger
}

// NewStore creates a Store over the given storage and theme.
// storage may be nil, in which case nothing persists and Load always
// reports no saved value.
func NewStore(storage Storage, theme *Theme, logger *slog.Logger) *Store {
	if theme == nil {
		theme = NewTheme()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		storage: storage,
		theme:   theme,
		logger:  logger,
	}
}

// Theme returns the theme this store mutates.
func (s *Store) Theme() *Theme {
	return s.theme
}

// Load returns the previously saved font value. The second return is false
// when nothing was ever saved, the stored value is empty, or the storage is
// unavailable. The value is not validated against the enumerated font set;
// an unrecognized value is returned verbatim.
func (s *Store) Load() (string, bool) {
	if s.storage == nil {
		return "", false
	}

	value, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Debug("preference storage unavailable", "key", StorageKey, "error", err)
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// Apply sets the live style variable without persisting. Used at mount
// time to synchronize the visual state with storage.
func (s *Store) Apply(value string) {
	s.theme.setFontFamily(value)
}

// Save applies the value and persists it, as one user-facing operation.
// The visual effect always happens; a persistence failure is logged and
// otherwise silent.
func (s *Store) Save(value string) {
	s.Apply(value)

	if s.storage == nil {
		return
	}
	if err := s.storage.Set(StorageKey, value); err != nil {
		s.logger.Debug("saving preference failed", "key", StorageKey, "error", err)
	}
}
