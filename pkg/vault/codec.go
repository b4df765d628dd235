package vault

import (
	"bytes"
	"os"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// DefaultSection is the INI section holding the passwords
const DefaultSection = "Passwords"

// file permissions of the store file
const fileMode os.FileMode = 0600

var loadOptions = ini.LoadOptions{
	// passwords may legitimately contain '#' and ';'
	IgnoreInlineComment: true,

	// passwords may legitimately be wrapped in quotes
	PreserveSurroundedQuote: true,

	// a trailing backslash is part of the password
	IgnoreContinuation: true,
}

// account name used when checking a password on its own
const placeholderAccount = "account"

// Decode parses INI content and returns the key/value pairs of a given
// section; a missing section yields an empty map
func Decode(data []byte, section string) (map[string]string, error) {
	if section == "" {
		return nil, ErrEmptySection
	}

	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrapf(ErrParse, "%s", err)
	}

	sec, err := f.GetSection(section)
	if err != nil {
		return make(map[string]string), nil
	}

	// raw values, no %(key)s interpolation
	return sec.KeysHash(), nil
}

// Encode serializes a mapping into INI content, keys are written in
// ascending order so equal mappings always produce equal output
// NOTE: returns ErrInvalidAccountName or ErrInvalidPassword if an entry
// wouldn't decode back unchanged
func Encode(section string, m map[string]string) ([]byte, error) {
	data, err := encode(section, m)
	if err != nil {
		return nil, err
	}

	if roundTrips(data, section, m) {
		return data, nil
	}

	// narrowing down to the entry that can't be stored
	for _, k := range util.SortedStringKeys(m) {
		if err = checkEntry(section, k, m[k]); err != nil {
			return nil, err
		}
	}

	return nil, errors.Wrap(ErrParse, "encoded store doesn't decode back")
}

func encode(section string, m map[string]string) ([]byte, error) {
	if section == "" {
		return nil, ErrEmptySection
	}

	f := ini.Empty()

	sec, err := f.NewSection(section)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create section %s", section)
	}

	for _, k := range util.SortedStringKeys(m) {
		if _, err = sec.NewKey(k, m[k]); err != nil {
			return nil, errors.Wrapf(err, "failed to encode account %q", k)
		}
	}

	buf := new(bytes.Buffer)
	if _, err = f.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "failed to serialize store")
	}

	return buf.Bytes(), nil
}

// roundTrips tells whether encoded content decodes back into m
func roundTrips(data []byte, section string, m map[string]string) bool {
	decoded, err := Decode(data, section)
	if err != nil || len(decoded) != len(m) {
		return false
	}

	for k, v := range m {
		if dv, ok := decoded[k]; !ok || dv != v {
			return false
		}
	}

	return true
}

// entryRoundTrips encodes a single entry and decodes it back
func entryRoundTrips(section, account, password string) bool {
	m := map[string]string{account: password}

	data, err := encode(section, m)
	if err != nil {
		return false
	}

	return roundTrips(data, section, m)
}

// checkEntry blames either the account name or the password
// of an entry that doesn't survive encoding
func checkEntry(section, account, password string) error {
	if entryRoundTrips(section, account, password) {
		return nil
	}

	if !entryRoundTrips(section, account, "") {
		return errors.Wrapf(ErrInvalidAccountName, "%q can't be stored as an INI key", account)
	}

	return errors.Wrapf(ErrInvalidPassword, "password for %q can't be stored as an INI value", account)
}

// ReadFile reads the section of a store file
// NOTE: returns ErrFileNotFound if the file doesn't exist
// and ErrParse if its content is malformed
func ReadFile(path, section string) (map[string]string, error) {
	m, _, err := readFile(path, section)
	return m, err
}

// WriteFile writes the full mapping into a store file,
// replacing its previous contents
func WriteFile(path, section string, m map[string]string) error {
	_, err := writeFile(path, section, m)
	return err
}

func readFile(path, section string) (m map[string]string, sum uint64, err error) {
	if path == "" {
		return nil, 0, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, errors.Wrapf(ErrFileNotFound, "%s", path)
		}

		return nil, 0, errors.Wrapf(err, "failed to read %s", path)
	}

	m, err = Decode(data, section)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s", path)
	}

	return m, util.Checksum(data), nil
}

func writeFile(path, section string, m map[string]string) (sum uint64, err error) {
	if path == "" {
		return 0, ErrEmptyPath
	}

	data, err := Encode(section, m)
	if err != nil {
		return 0, err
	}

	if err = util.WriteFileAtomic(path, data, fileMode); err != nil {
		return 0, err
	}

	return util.Checksum(data), nil
}
