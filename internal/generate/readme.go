package generate

import (
	"fmt"
	"strings"

	"stackgen/internal/config"
	"stackgen/internal/section"
)

// README section names.
const (
	ReadmeIntro      = "intro"
	ReadmeStack      = "stack"
	ReadmeLayout     = "layout"
	ReadmeQuickstart = "quickstart"
	ReadmeAliases    = "aliases"
	ReadmeSymfony    = "symfony"
	ReadmeSecurity   = "security"
	ReadmeDatabase   = "database"
	ReadmeXdebug     = "xdebug"
	ReadmePHP        = "php"
	ReadmeProduction = "production"
	ReadmeFooter     = "footer"
)

// md turns '~' into a backtick; Go raw strings cannot hold backticks.
func md(s string) string { return strings.ReplaceAll(s, "~", "`") }

func readmeStack(c config.Configuration) string {
	tools := []string{"Composer 2"}
	if c.InstallSymfonyCLI {
		tools = append(tools, "Symfony CLI")
	}
	if c.InstallNode {
		tools = append(tools, "Node.js 20 (via NVM)")
	}
	tools = append(tools, "Xdebug")

	return fmt.Sprintf(md(`## Stack

- **PHP**: 8.4 with Apache (mod_rewrite enabled)
- **Database**: MariaDB 11.3
- **PHP extensions**: GD, Intl, PDO, PDO_MySQL, Opcache
- **Tools**: %s

## Prerequisites

- Docker Engine 20.10+
- Docker Compose 2.0+
- Git

`), strings.Join(tools, ", "))
}

const readmeLayoutText = `## Project layout

~~~
.
├── apache/
│   ├── Dockerfile          # Apache/PHP image
│   └── custom-php.ini      # PHP settings
├── db/
│   ├── backup.sh           # backup script
│   ├── restore.sh          # restore script
│   └── init.sql            # initial SQL (optional)
├── www/                    # application source
├── docker-compose.yml
├── .env                    # local settings (ignored by git)
├── .env.example            # settings template
├── .htaccess
├── aliases.sh              # shell aliases
└── README.md
~~~

`

func readmeQuickstart(c config.Configuration) string {
	return fmt.Sprintf(md(`## Quick start

### 1. Environment

~.env~ was generated with your settings. Edit it if needed.

**Important**: ~.env~ is ignored by git. Never commit it: it holds credentials.

### 2. Build and start

~~~bash
docker compose up -d --build
docker compose ps
docker compose logs -f
~~~

### 3. Services

- **Web application**: http://localhost:%s
- **MariaDB**: localhost:%s
  - root user: ~root~, password in ~.env~
  - application user: see ~.env~

`), c.WebPort, c.DBPort)
}

func readmeAliases(c config.Configuration) string {
	var b strings.Builder
	b.WriteString(md(`### 4. Aliases

~~~bash
source aliases.sh
~~~

#### With aliases

~~~bash
# Composer
ccomposer install
ccomposer require package/name
`))
	if c.InstallSymfonyCLI {
		b.WriteString(`
# Symfony console
cconsole cache:clear
cconsole doctrine:migrations:migrate
`)
	}
	b.WriteString(fmt.Sprintf(md(`
# Shells
capache    # Apache container
cmariadb   # MariaDB container

# Database
db-export  # back up the database
db-import  # restore the database
~~~

#### Without aliases

~~~bash
docker compose exec %[1]s composer install
docker compose exec -it %[1]s bash
docker compose exec -it %[2]s bash
docker compose exec %[2]s /docker-entrypoint-initdb.d/backup.sh
docker compose exec %[2]s /docker-entrypoint-initdb.d/restore.sh
~~~

`), c.WebContainer, c.DBContainer))
	return b.String()
}

func readmeSymfony(c config.Configuration) string {
	return fmt.Sprintf(md(`## Symfony

### New project

~~~bash
capache
cd /var/www/html
composer create-project symfony/skeleton:"8.0.x" ./
composer require symfony/orm-pack
composer require symfony/maker-bundle --dev
~~~

### Console

~~~bash
cconsole cache:clear
cconsole doctrine:database:create
docker compose exec %s symfony console cache:clear
~~~

`), c.WebContainer)
}

const readmeSecurityText = `## Security

- Services talk over a private bridge network
- Health checks on both containers
- Credentials live in ~.env~, never in the manifest
- Memory and CPU limits on every service
- Pinned image versions
- ~.dockerignore~ keeps the build context small

Copy ~.env.example~ to ~.env~ on new machines, use strong passwords outside
development and disable Xdebug in production images.

`

func readmeDatabase(c config.Configuration) string {
	return fmt.Sprintf(md(`## Database

~~~bash
db-export   # or: docker compose exec %[1]s /docker-entrypoint-initdb.d/backup.sh
db-import   # or: docker compose exec %[1]s /docker-entrypoint-initdb.d/restore.sh
~~~

Backups are written to ~./db/init.sql~ on the host; the previous dump is kept
as ~init_<timestamp>.sql~. SQL files in ~./db/~ run on the first MariaDB start.

`), c.DBContainer)
}

const readmeXdebugText = `## Xdebug

Uncomment the IDE settings in ~apache/custom-php.ini~:

~~~ini
xdebug.client_host = host.docker.internal
xdebug.client_port = 9003
xdebug.start_with_request = yes
xdebug.idekey = VSCODE
~~~

Map ~/var/www/html~ to ~${workspaceFolder}/www~ in your debugger.

`

const readmePHPText = `## PHP settings

~apache/custom-php.ini~: uploads 100M, memory 256M, execution time 300s,
timezone Europe/Paris.

`

const readmeProductionText = `## Production notes

1. Set ~PHP_DISPLAY_ERRORS=Off~ in ~.env~
2. Remove Xdebug from the Dockerfile
3. Put a reverse proxy in front instead of exposing port 80
4. Schedule database backups
5. Serve over HTTPS

`

const readmeFooterText = `---

Generated by stackgen.
`

// readmeSections lays out README.md. The symfony section and the console
// alias lines follow InstallSymfonyCLI; the Node.js mention follows
// InstallNode. Names and ports are for display only.
func readmeSections(c config.Configuration) section.List {
	var l section.List
	return l.Add(ReadmeIntro, "# Docker recipe - PHP/Symfony\n\n"+
		"Development environment for PHP with Apache, PHP 8.4 and MariaDB.\n\n").
		Add(ReadmeStack, readmeStack(c)).
		Add(ReadmeLayout, md(readmeLayoutText)).
		Add(ReadmeQuickstart, readmeQuickstart(c)).
		Add(ReadmeAliases, readmeAliases(c)).
		AddIf(c.InstallSymfonyCLI, ReadmeSymfony, readmeSymfony(c)).
		Add(ReadmeSecurity, md(readmeSecurityText)).
		Add(ReadmeDatabase, readmeDatabase(c)).
		Add(ReadmeXdebug, md(readmeXdebugText)).
		Add(ReadmePHP, md(readmePHPText)).
		Add(ReadmeProduction, md(readmeProductionText)).
		Add(ReadmeFooter, readmeFooterText)
}

func buildReadme(c config.Configuration) (string, error) {
	return readmeSections(c).String(), nil
}
