package generate

import "stackgen/internal/config"

// Both scripts run inside the MariaDB container, where ./db is mounted at
// /docker-entrypoint-initdb.d.

const backupScript = `#!/bin/sh
set -eu

if [ -z "${MYSQL_DATABASE:-}" ]; then
  echo "Error: MYSQL_DATABASE is not set." >&2
  exit 1
fi

if [ -z "${MYSQL_ROOT_PASSWORD:-}" ]; then
  echo "Error: MYSQL_ROOT_PASSWORD is not set." >&2
  exit 1
fi

BACKUP_DIR="/docker-entrypoint-initdb.d"
BACKUP_FILE="${BACKUP_DIR}/init.sql"
TIMESTAMP=$(date +%Y%m%d_%H%M%S)
BACKUP_FILE_TIMESTAMPED="${BACKUP_DIR}/init_${TIMESTAMP}.sql"

if [ -f "$BACKUP_FILE" ]; then
  cp "$BACKUP_FILE" "$BACKUP_FILE_TIMESTAMPED"
  echo "Previous backup copied to: $BACKUP_FILE_TIMESTAMPED"
fi

if mariadb-dump "$MYSQL_DATABASE" -uroot -p"$MYSQL_ROOT_PASSWORD" > "$BACKUP_FILE"; then
  echo "Backup completed: $BACKUP_FILE"
  if command -v du >/dev/null 2>&1; then
    SIZE=$(du -h "$BACKUP_FILE" | cut -f1)
    echo "  Size: $SIZE"
  fi
else
  echo "Backup failed" >&2
  exit 1
fi
`

const restoreScript = `#!/bin/sh
set -eu

if [ -z "${MYSQL_DATABASE:-}" ]; then
  echo "Error: MYSQL_DATABASE is not set." >&2
  exit 1
fi

if [ -z "${MYSQL_ROOT_PASSWORD:-}" ]; then
  echo "Error: MYSQL_ROOT_PASSWORD is not set." >&2
  exit 1
fi

BACKUP_DIR="/docker-entrypoint-initdb.d"
BACKUP_FILE="${BACKUP_DIR}/init.sql"

if [ ! -f "$BACKUP_FILE" ]; then
  echo "Error: backup file $BACKUP_FILE does not exist." >&2
  echo "Check that it is present in ./db/ on the host." >&2
  exit 1
fi

if [ ! -s "$BACKUP_FILE" ]; then
  echo "Error: backup file $BACKUP_FILE is empty." >&2
  exit 1
fi

echo "Warning: this overwrites database $MYSQL_DATABASE"
echo "Restoring from: $BACKUP_FILE"

if mariadb "$MYSQL_DATABASE" -uroot -p"$MYSQL_ROOT_PASSWORD" < "$BACKUP_FILE"; then
  echo "Restore completed from: $BACKUP_FILE"
else
  echo "Restore failed" >&2
  exit 1
fi
`

func buildBackupScript(config.Configuration) (string, error)  { return backupScript, nil }
func buildRestoreScript(config.Configuration) (string, error) { return restoreScript, nil }
