// Package migrations embeds the goose SQL migrations so the API server can
// apply them at startup and integration tests can apply and roll them back.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
// Pass it to goose.NewProvider instead of a filesystem path.
//
//go:embed *.sql
var FS embed.FS
