package generate

import (
	"fmt"
	"strings"

	"stackgen/internal/config"
	"stackgen/internal/logger"
	"stackgen/internal/section"
)

// SecretPlaceholder replaces both passwords in .env.example.
const SecretPlaceholder = "change_me_in_production"

// envSections lays out .env. The example variant swaps the header framing;
// callers redact secrets before passing c in.
func envSections(c config.Configuration, example bool) section.List {
	header := "# Docker configuration\n# Generated by stackgen\n\n"
	if example {
		header = "# Example configuration\n# Docker configuration\n# Copy this file to .env and adjust the values\n\n"
	}

	var l section.List
	return l.Add("header", header).
		Add("web", fmt.Sprintf("# Apache / PHP\n"+
			"APACHE_CONTAINER=%s\n"+
			"APACHE_PORT=%s\n"+
			"PHP_ERROR_REPORTING=%s\n"+
			"PHP_DISPLAY_ERRORS=%s\n\n",
			c.WebContainer, c.WebPort, c.PHPErrorReporting, c.PHPDisplayErrors)).
		Add("database", fmt.Sprintf("# MariaDB\n"+
			"MARIADB_CONTAINER=%s\n"+
			"MARIADB_PORT=%s\n"+
			"MYSQL_ROOT_PASSWORD=%s\n"+
			"MYSQL_DATABASE=%s\n"+
			"MYSQL_USER=%s\n"+
			"MYSQL_PASSWORD=%s\n"+
			"MYSQL_ROOT_HOST=%%\n",
			c.DBContainer, c.DBPort, c.DBRootPassword, c.DBName, c.DBUser, c.DBPassword))
}

func buildEnv(c config.Configuration) (string, error) {
	return envSections(c, false).String(), nil
}

// buildEnvExample redacts by field: no password key carries its real value,
// but text equal to a password can still occur inside another value, a key,
// a comment or the placeholder. That case is logged, never rewritten.
func buildEnvExample(c config.Configuration) (string, error) {
	secrets := c.Secrets()
	c.DBRootPassword = SecretPlaceholder
	c.DBPassword = SecretPlaceholder
	out := envSections(c, true).String()
	for _, s := range secrets {
		if s != "" && strings.Contains(out, s) {
			logger.Warnf(".env.example: a password also occurs as text outside the password lines; choose a less guessable password")
			break
		}
	}
	return out, nil
}
