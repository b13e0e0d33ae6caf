package bincatalog

import "embed"

// Migrations holds the goose SQL migrations of the catalog schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS
