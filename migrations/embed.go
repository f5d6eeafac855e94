// Package migrations embeds the goose SQL migrations for the unit catalog.
package migrations

import "embed"

// FS holds every *.sql migration. It is passed to goose.NewProvider by the
// API server, labelctl and the integration tests.
//
//go:embed *.sql
var FS embed.FS
