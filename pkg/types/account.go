package types

import (
	"fmt"
	"strings"
)

// Account is one row of the accounts CSV: a human-readable account name plus
// the key pair used to authenticate that account's scan.
type Account struct {
	Name            string `json:"name"`
	AccessKeyID     string `json:"access_key_id"`
	SecretAccessKey string `json:"-"`
}

// ParseAccount builds a validated Account from the three CSV columns.
func ParseAccount(name, accessKey, secretKey string) (Account, error) {
	a := Account{
		Name:            strings.TrimSpace(name),
		AccessKeyID:     strings.TrimSpace(accessKey),
		SecretAccessKey: strings.TrimSpace(secretKey),
	}
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	return a, nil
}

// Validate checks the invariants an account must satisfy before it can be
// scanned. The name is used both as a file-name stem for report artifacts and
// as a flag value for the scanner, so it must be safe for both. The key pair
// is opaque: presence is required, format is not checked.
func (a Account) Validate() error {
	if a.Name == "" {
		return fmt.Errorf("account name cannot be empty")
	}
	if strings.HasPrefix(a.Name, "-") {
		return fmt.Errorf("account name %q cannot start with a dash", a.Name)
	}
	for _, r := range a.Name {
		if !isNameRune(r) {
			return fmt.Errorf("account name %q contains unsafe character %q", a.Name, r)
		}
	}
	if a.AccessKeyID == "" {
		return fmt.Errorf("account %q has no access key ID", a.Name)
	}
	if a.SecretAccessKey == "" {
		return fmt.Errorf("account %q has no secret access key", a.Name)
	}
	return nil
}

// isNameRune reports whether r is allowed in an account name: letters,
// digits, dash, underscore, and dot.
func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_' || r == '.':
		return true
	}
	return false
}
