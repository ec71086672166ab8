package migration

import "embed"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DefaultConfig points at the embedded migration files.
func DefaultConfig() Config {
	return Config{
		MigrationsPath: "migrations",
		MigrationsFS:   migrationsFS,
	}
}
