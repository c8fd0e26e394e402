// Package migrations holds the numbered schema files of the text cache
// database, applied in version order by the sqlite store.
package migrations

import "embed"

// FS contains the up and down SQL files.
//
//go:embed *.sql
var FS embed.FS
