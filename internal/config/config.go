// Package config holds the scaffold Configuration: the single read-only value
// every generator consumes.
//
// A Configuration is built once, either by the interactive prompt (see
// Questions and FromAnswers) or from an answers file (see Load), and is passed
// by value afterwards. Nothing downstream mutates it.
package config

import (
	"errors"
	"fmt"
	"strings"

	"stackgen/internal/ident"
)

// Configuration is the complete set of settings needed by every generator.
type Configuration struct {
	// Identity. Free-form container names as typed by the operator.
	WebContainer string
	DBContainer  string

	// Network. Decimal strings, passed through verbatim.
	WebPort string
	DBPort  string

	// Credentials. Opaque; DBRootPassword and DBPassword are secrets.
	DBRootPassword string
	DBName         string
	DBUser         string
	DBPassword     string

	// Feature flags.
	InstallSymfonyCLI bool
	InstallNode       bool

	// Runtime tuning.
	PHPErrorReporting string
	PHPDisplayErrors  string
}

// Default returns a Configuration with every field set to its documented
// default.
func Default() Configuration {
	return Configuration{
		WebContainer:      "apache_app",
		DBContainer:       "mariadb_app",
		WebPort:           "80",
		DBPort:            "3306",
		DBRootPassword:    "root",
		DBName:            "app_db",
		DBUser:            "app_user",
		DBPassword:        "app_password",
		PHPErrorReporting: "E_ALL",
		PHPDisplayErrors:  "On",
	}
}

// WebService returns the compose service key derived from WebContainer.
func (c Configuration) WebService() string { return ident.Sanitize(c.WebContainer) }

// DBService returns the compose service key derived from DBContainer.
func (c Configuration) DBService() string { return ident.Sanitize(c.DBContainer) }

// Secrets returns the credential values that must never leave .env.
func (c Configuration) Secrets() []string {
	return []string{c.DBRootPassword, c.DBPassword}
}

// stringFields lists every string field with its answer key, in prompt order.
func (c *Configuration) stringFields() []struct {
	key string
	ptr *string
} {
	return []struct {
		key string
		ptr *string
	}{
		{KeyWebContainer, &c.WebContainer},
		{KeyDBContainer, &c.DBContainer},
		{KeyWebPort, &c.WebPort},
		{KeyDBPort, &c.DBPort},
		{KeyDBRootPassword, &c.DBRootPassword},
		{KeyDBName, &c.DBName},
		{KeyDBUser, &c.DBUser},
		{KeyDBPassword, &c.DBPassword},
		{KeyPHPErrorReporting, &c.PHPErrorReporting},
		{KeyPHPDisplayErrors, &c.PHPDisplayErrors},
	}
}

// ErrIncomplete is wrapped by Validate when a field has no value.
var ErrIncomplete = errors.New("configuration incomplete")

// Validate reports empty fields and container names whose service keys
// would be empty or collide in the compose manifest.
func (c Configuration) Validate() error {
	var missing []string
	for _, f := range c.stringFields() {
		if strings.TrimSpace(*f.ptr) == "" {
			missing = append(missing, f.key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}
	if c.WebService() == c.DBService() {
		return fmt.Errorf("web container %q and database container %q map to the same service key %q",
			c.WebContainer, c.DBContainer, c.WebService())
	}
	return nil
}
