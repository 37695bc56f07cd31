// Package migrations holds the schema of the postgres campaign source.
package migrations

import "embed"

// FS contains the numbered up and down scripts read by the iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service expects. Bump it together with
// every new script pair.
const Version uint = 1
