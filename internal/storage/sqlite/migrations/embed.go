// Package migrations embeds the telemetry journal schema files.
package migrations

import "embed"

// FS exposes the SQL migration files in lexical order.
//
//go:embed *.sql
var FS embed.FS
