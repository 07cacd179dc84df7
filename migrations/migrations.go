// Package migrations embeds the goose SQL migrations for every supported driver.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/ghuser/shoppinglist/pkg/config"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

// FS returns the migration directory for driver, rooted so goose can read it at ".".
func FS(driver string) (fs.FS, error) {
	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
		sub, err := fs.Sub(files, driver)
		if err != nil {
			return nil, fmt.Errorf("migrations: %s: %w", driver, err)
		}
		return sub, nil
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}
}
