package generate

import "stackgen/internal/config"

const htaccess = `RewriteEngine On

# Route every request to index.php except existing files and directories
RewriteCond %{REQUEST_FILENAME} !-f
RewriteCond %{REQUEST_FILENAME} !-d
RewriteRule ^(.*)$ index.php [QSA,L]

# Deny access to sensitive files
<FilesMatch "\.(env|log|ini|conf)$">
    Require all denied
</FilesMatch>
`

const dockerignore = `vendor/
.env
.env.local
.git/
.gitignore
.idea/
.vscode/
*.log
.DS_Store
node_modules/
www/
`

const gitignore = `/.env
/.env.local
/.env.*.local
/vendor/
/node_modules/
/.idea/
/.vscode/
*.log
.DS_Store
/www/
`

func buildHtaccess(config.Configuration) (string, error)     { return htaccess, nil }
func buildDockerignore(config.Configuration) (string, error) { return dockerignore, nil }
func buildGitignore(config.Configuration) (string, error)    { return gitignore, nil }
