// Package db ships the SQL schema for the Postgres turn log.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsDir = "migrations"
