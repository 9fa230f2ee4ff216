package config

import (
	"fmt"
	"strings"
)

// Answer keys. They double as viper keys in answers files.
const (
	KeyWebContainer      = "web_container"
	KeyDBContainer       = "db_container"
	KeyWebPort           = "web_port"
	KeyDBPort            = "db_port"
	KeyDBRootPassword    = "db_root_password"
	KeyDBName            = "db_name"
	KeyDBUser            = "db_user"
	KeyDBPassword        = "db_password"
	KeyInstallSymfonyCLI = "install_symfony_cli"
	KeyInstallNode       = "install_node"
	KeyPHPErrorReporting = "php_error_reporting"
	KeyPHPDisplayErrors  = "php_display_errors"
)

// Question kinds.
const (
	KindText   = "text"
	KindSecret = "secret"
	KindBool   = "bool"
)

// Question describes a single prompt the operator answers.
type Question struct {
	Key     string
	Prompt  string
	Default string
	Kind    string
	// Group is printed as a heading before the first question of a group.
	Group string
}

// Questions returns the prompts in the order they are asked.
func Questions() []Question {
	d := Default()
	return []Question{
		{Key: KeyWebContainer, Prompt: "Apache container name", Default: d.WebContainer, Kind: KindText, Group: "Containers"},
		{Key: KeyDBContainer, Prompt: "MariaDB container name", Default: d.DBContainer, Kind: KindText},
		{Key: KeyWebPort, Prompt: "Apache port", Default: d.WebPort, Kind: KindText},
		{Key: KeyDBPort, Prompt: "MariaDB port", Default: d.DBPort, Kind: KindText},
		{Key: KeyDBRootPassword, Prompt: "MariaDB root password", Default: d.DBRootPassword, Kind: KindSecret, Group: "Database"},
		{Key: KeyDBName, Prompt: "Database name", Default: d.DBName, Kind: KindText},
		{Key: KeyDBUser, Prompt: "MariaDB user", Default: d.DBUser, Kind: KindText},
		{Key: KeyDBPassword, Prompt: "MariaDB user password", Default: d.DBPassword, Kind: KindSecret},
		{Key: KeyInstallSymfonyCLI, Prompt: "Install Symfony CLI? (y/N)", Default: "N", Kind: KindBool, Group: "Options"},
		{Key: KeyInstallNode, Prompt: "Install Node.js? (y/N)", Default: "N", Kind: KindBool},
		{Key: KeyPHPErrorReporting, Prompt: "PHP error_reporting", Default: d.PHPErrorReporting, Kind: KindText, Group: "PHP"},
		{Key: KeyPHPDisplayErrors, Prompt: "PHP display_errors (On/Off)", Default: d.PHPDisplayErrors, Kind: KindText},
	}
}

// FromAnswers builds a Configuration from raw prompt answers keyed by
// Question.Key. Blank or missing answers take the default. Answers are
// trimmed; no other normalisation is applied.
func FromAnswers(answers map[string]string) (Configuration, error) {
	c := Default()
	for _, f := range c.stringFields() {
		if v := strings.TrimSpace(answers[f.key]); v != "" {
			*f.ptr = v
		}
	}
	var err error
	if c.InstallSymfonyCLI, err = ParseYesNo(answers[KeyInstallSymfonyCLI], false); err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", KeyInstallSymfonyCLI, err)
	}
	if c.InstallNode, err = ParseYesNo(answers[KeyInstallNode], false); err != nil {
		return Configuration{}, fmt.Errorf("%s: %w", KeyInstallNode, err)
	}
	return c, nil
}

// ParseYesNo interprets a y/N answer. Blank input yields def.
func ParseYesNo(s string, def bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "y", "yes", "true", "1":
		return true, nil
	case "n", "no", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected y or n, got %q", s)
}
