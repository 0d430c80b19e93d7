// Package invoicer exposes assets embedded at the repository root.
package invoicer

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command
// and by the storage test suite.
//
//go:embed migrations/*.sql
var Migrations embed.FS
