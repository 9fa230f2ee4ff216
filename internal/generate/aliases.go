package generate

import (
	"fmt"

	"stackgen/internal/config"
	"stackgen/internal/section"
)

// Alias section names.
const (
	AliasEnv        = "env"
	AliasContainers = "containers"
	AliasComposer   = "composer"
	AliasConsole    = "console"
	AliasShells     = "shells"
	AliasDatabase   = "database"
)

const aliasesEnv = `# Load variables from .env when present
if [ -f .env ]; then
  set -a
  source .env 2>/dev/null || {
    export $(grep -v '^#' .env | grep -v '^$' | grep -v '^[[:space:]]*$' | xargs)
  }
  set +a
fi

`

// aliasSections lays out aliases.sh. Container defaults use the raw names
// from the configuration, not the sanitized compose service keys.
func aliasSections(c config.Configuration) section.List {
	var l section.List
	return l.Add(AliasEnv, aliasesEnv).
		Add(AliasContainers, fmt.Sprintf("# Container names (defaults apply when .env is absent)\n"+
			"APACHE_CONTAINER=\"${APACHE_CONTAINER:-%s}\"\n"+
			"MARIADB_CONTAINER=\"${MARIADB_CONTAINER:-%s}\"\n\n",
			c.WebContainer, c.DBContainer)).
		Add(AliasComposer, "# composer inside the Apache container\n"+
			"alias ccomposer='docker compose exec ${APACHE_CONTAINER} composer'\n").
		AddIf(c.InstallSymfonyCLI, AliasConsole, "\n# symfony console\n"+
			"alias cconsole='docker compose exec ${APACHE_CONTAINER} symfony console'\n").
		Add(AliasShells, "\n# interactive shell in the Apache container\n"+
			"alias capache='docker compose exec -it ${APACHE_CONTAINER} bash'\n\n"+
			"# interactive shell in the MariaDB container\n"+
			"alias cmariadb='docker compose exec -it ${MARIADB_CONTAINER} bash'\n").
		Add(AliasDatabase, "\n# export a database snapshot\n"+
			"alias db-export='docker compose exec ${MARIADB_CONTAINER} /docker-entrypoint-initdb.d/backup.sh'\n\n"+
			"# import a database snapshot\n"+
			"alias db-import='docker compose exec ${MARIADB_CONTAINER} /docker-entrypoint-initdb.d/restore.sh'\n")
}

func buildAliases(c config.Configuration) (string, error) {
	return aliasSections(c).String(), nil
}
