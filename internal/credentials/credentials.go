// Package credentials manages the local AWS credentials file the external
// scanner authenticates with. The file is a single-slot resource: it holds
// exactly one account's key pair at a time, and every account in a batch
// overwrites it in turn. Callers that want to avoid mutating shared on-disk
// state can use Env instead and scope the key pair to one child process.
package credentials

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/drover-cli/drover/pkg/types"
)

// Store writes and reads the AWS credentials file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the credentials file at path. An empty path
// selects the standard location, ~/.aws/credentials.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{path: path}
}

// DefaultPath returns the standard AWS shared credentials file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".aws", "credentials")
	}
	return filepath.Join(home, ".aws", "credentials")
}

// Path returns the file the store manages.
func (s *Store) Path() string {
	return s.path
}

// Install overwrites the credentials file so it contains exactly one
// [default] profile holding the account's key pair. Nothing from any
// previously installed account survives the write.
func (s *Store) Install(acct types.Account) error {
	if err := acct.Validate(); err != nil {
		return fmt.Errorf("install credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials directory: %w", err)
	}

	content := fmt.Sprintf(
		"[default]\naws_access_key_id = %s\naws_secret_access_key = %s\n",
		acct.AccessKeyID, acct.SecretAccessKey,
	)

	if err := os.WriteFile(s.path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

// Current returns the raw contents of the credentials file, so the operator
// can confirm which account is active before a scan starts.
func (s *Store) Current() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read credentials file: %w", err)
	}
	return string(data), nil
}

// Env returns the environment variables that scope the account's key pair to
// a single child process, leaving the shared credentials file untouched.
func Env(acct types.Account, region string) []string {
	env := []string{
		"AWS_ACCESS_KEY_ID=" + acct.AccessKeyID,
		"AWS_SECRET_ACCESS_KEY=" + acct.SecretAccessKey,
	}
	if region != "" {
		env = append(env, "AWS_DEFAULT_REGION="+region)
	}
	return env
}
