package vault

import (
	"sync"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/pkg/errors"
	"github.com/r3labs/diff"
	"go.uber.org/zap"
)

// Option configures a Store
type Option func(s *Store)

// WithSection sets the INI section name, DefaultSection otherwise
func WithSection(section string) Option {
	return func(s *Store) {
		s.section = section
	}
}

// WithLogger sets the store logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger.Named("[vault]")
		}
	}
}

// Store holds the account → password mapping and keeps
// the backing file in sync with every mutation
type Store struct {
	path    string
	section string
	entries map[string]string
	logger  *zap.Logger

	// what the store believes is on disk: whether the file
	// exists and the checksum of its contents
	onDisk   bool
	checksum uint64

	sync.RWMutex
}

// Open initializes a store backed by a given file
// NOTE: a missing file or section is not an error, the store is simply empty
func Open(path string, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	s := &Store{
		path:    path,
		section: DefaultSection,
		entries: make(map[string]string),
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.section == "" {
		return nil, ErrEmptySection
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Section returns the INI section name
func (s *Store) Section() string {
	return s.section
}

// Load re-reads the backing file, replacing whatever is held in memory
func (s *Store) Load() error {
	if s == nil {
		return ErrNilStore
	}

	s.Lock()
	defer s.Unlock()

	m, sum, err := readFile(s.path, s.section)
	if err != nil {
		if errors.Cause(err) != ErrFileNotFound {
			return err
		}

		s.logger.Debug("store file doesn't exist yet", zap.String("path", s.path))

		s.entries = make(map[string]string)
		s.onDisk, s.checksum = false, 0

		return nil
	}

	s.entries = m
	s.onDisk, s.checksum = true, sum

	s.logger.Debug("store loaded", zap.String("path", s.path), zap.Int("accounts", len(m)))

	return nil
}

// Save writes the full mapping to the backing file
func (s *Store) Save() error {
	if s == nil {
		return ErrNilStore
	}

	s.Lock()
	defer s.Unlock()

	return s.save()
}

func (s *Store) save() error {
	// concurrent external edits are not guarded against,
	// but at least they don't get lost silently
	sum, exists, err := util.FileChecksum(s.path)
	if err != nil {
		s.logger.Warn("failed to check store file before saving", zap.Error(err))
	} else if exists != s.onDisk || sum != s.checksum {
		s.logger.Warn(
			"store file has been modified externally, overwriting",
			zap.String("path", s.path),
			zap.Bool("existed", s.onDisk),
			zap.Bool("exists", exists),
		)
	}

	sum, err = writeFile(s.path, s.section, s.entries)
	if err != nil {
		return errors.Wrap(err, "failed to save store")
	}

	s.onDisk, s.checksum = true, sum

	return nil
}

// mutate applies fn to the entries and saves them, restoring the
// previous entries if saving fails; fn must not modify anything
// when it returns an error
func (s *Store) mutate(action string, fn func(entries map[string]string) error) (diff.Changelog, error) {
	if s == nil {
		return nil, ErrNilStore
	}

	s.Lock()
	defer s.Unlock()

	before := util.CopyStringMap(s.entries)

	if err := fn(s.entries); err != nil {
		return nil, err
	}

	if err := s.save(); err != nil {
		s.entries = before

		s.logger.Error("failed to persist changes, rolled back", zap.String("action", action), zap.Error(err))

		return nil, err
	}

	changelog, err := util.Changelog(before, s.entries)
	if err != nil {
		s.logger.Warn("failed to compute changelog", zap.String("action", action), zap.Error(err))
		return nil, nil
	}

	for _, c := range changelog {
		// NOTE: never log c.From and c.To, those are passwords
		s.logger.Info(action, zap.String("change", c.Type), zap.String("account", util.ChangedKey(c)))
	}

	return changelog, nil
}

// Add inserts a new entry or overwrites an existing one
func (s *Store) Add(account, password string) error {
	if err := ValidateAccountName(account); err != nil {
		return err
	}

	if err := ValidatePassword(password); err != nil {
		return err
	}

	_, err := s.mutate("add", func(entries map[string]string) error {
		entries[account] = password
		return nil
	})

	return err
}

// Edit updates the password of an existing account
func (s *Store) Edit(account, password string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	_, err := s.mutate("edit", func(entries map[string]string) error {
		if _, ok := entries[account]; !ok {
			return errors.Wrapf(ErrAccountNotFound, "%q", account)
		}

		entries[account] = password

		return nil
	})

	return err
}

// Rename moves an existing entry under a new account name and sets its password,
// renaming onto another existing account is a conflict
func (s *Store) Rename(oldAccount, newAccount, password string) error {
	if err := ValidateAccountName(newAccount); err != nil {
		return err
	}

	if err := ValidatePassword(password); err != nil {
		return err
	}

	_, err := s.mutate("rename", func(entries map[string]string) error {
		if _, ok := entries[oldAccount]; !ok {
			return errors.Wrapf(ErrAccountNotFound, "%q", oldAccount)
		}

		if newAccount != oldAccount {
			if _, ok := entries[newAccount]; ok {
				return errors.Wrapf(ErrDuplicateAccount, "%q", newAccount)
			}

			delete(entries, oldAccount)
		}

		entries[newAccount] = password

		return nil
	})

	return err
}

// Delete removes an existing entry
func (s *Store) Delete(account string) error {
	_, err := s.mutate("delete", func(entries map[string]string) error {
		if _, ok := entries[account]; !ok {
			return errors.Wrapf(ErrAccountNotFound, "%q", account)
		}

		delete(entries, account)

		return nil
	})

	return err
}

// Import merges a given mapping into the store with a single save,
// existing accounts are left intact unless overwrite is set
// NOTE: the returned changelog contains passwords
func (s *Store) Import(m map[string]string, overwrite bool) (diff.Changelog, error) {
	for account, password := range m {
		if err := ValidateAccountName(account); err != nil {
			return nil, errors.Wrapf(err, "%q", account)
		}

		if err := ValidatePassword(password); err != nil {
			return nil, errors.Wrapf(err, "password for %q", account)
		}
	}

	return s.mutate("import", func(entries map[string]string) error {
		for account, password := range m {
			if _, ok := entries[account]; ok && !overwrite {
				continue
			}

			entries[account] = password
		}

		return nil
	})
}

// Get returns the password of a given account
func (s *Store) Get(account string) (string, error) {
	if s == nil {
		return "", ErrNilStore
	}

	s.RLock()
	password, ok := s.entries[account]
	s.RUnlock()

	if !ok {
		return "", errors.Wrapf(ErrAccountNotFound, "%q", account)
	}

	return password, nil
}

// Has reports whether an account exists
func (s *Store) Has(account string) bool {
	if s == nil {
		return false
	}

	s.RLock()
	_, ok := s.entries[account]
	s.RUnlock()

	return ok
}

// All returns a copy of the whole mapping, changing it doesn't affect the store
func (s *Store) All() map[string]string {
	if s == nil {
		return make(map[string]string)
	}

	s.RLock()
	defer s.RUnlock()

	return util.CopyStringMap(s.entries)
}

// Accounts returns account names in ascending order
func (s *Store) Accounts() []string {
	if s == nil {
		return []string{}
	}

	s.RLock()
	defer s.RUnlock()

	return util.SortedStringKeys(s.entries)
}

// Len returns the number of entries
func (s *Store) Len() int {
	if s == nil {
		return 0
	}

	s.RLock()
	defer s.RUnlock()

	return len(s.entries)
}
