package migrations

import "embed"

// FS contains the embedded report archive schema.
//
//go:embed *.sql
var FS embed.FS
