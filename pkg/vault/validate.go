package vault

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
)

// ValidateAccountName checks whether a name can be stored as an INI key
// without being altered on the next load
func ValidateAccountName(account string) error {
	if govalidator.IsNull(account) || govalidator.HasWhitespaceOnly(account) {
		return ErrEmptyAccountName
	}

	if strings.ContainsAny(account, "\r\n") {
		return errors.Wrap(ErrInvalidAccountName, "must not contain line breaks")
	}

	if strings.TrimSpace(account) != account {
		return errors.Wrap(ErrInvalidAccountName, "must not start or end with whitespace")
	}

	if strings.ContainsAny(account[:1], "[#;") {
		return errors.Wrapf(ErrInvalidAccountName, "must not start with %q", account[:1])
	}

	// quoting rules of the format reject some combinations,
	// e.g. a backtick next to a key delimiter
	if !entryRoundTrips(DefaultSection, account, "") {
		return errors.Wrap(ErrInvalidAccountName, "can't be stored as an INI key")
	}

	return nil
}

// ValidatePassword checks whether a password survives a round trip
// through the INI file, an empty password is allowed
func ValidatePassword(password string) error {
	if strings.ContainsAny(password, "\r\n") {
		return errors.Wrap(ErrInvalidPassword, "must not contain line breaks")
	}

	if strings.TrimSpace(password) != password {
		return errors.Wrap(ErrInvalidPassword, "must not start or end with whitespace")
	}

	// a leading """ opens a multi-line value
	if !entryRoundTrips(DefaultSection, placeholderAccount, password) {
		return errors.Wrap(ErrInvalidPassword, "can't be stored as an INI value")
	}

	return nil
}
