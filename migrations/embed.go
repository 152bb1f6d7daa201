// Package migrations embeds the PostgreSQL schema migrations so the server
// and the migrate command can apply them without the source tree.
package migrations

import "embed"

// FS holds every *.sql migration in this directory
//
//go:embed *.sql
var FS embed.FS
