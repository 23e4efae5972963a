package main

import (
	"github.com/funvibe/unitguard/internal/catalog"
)

// loadCatalog reads the catalog named by path. With no path it looks for
// unitguard.yaml from the working directory upwards and falls back to the
// built-in catalog.
func (a *app) loadCatalog(path string) (*catalog.Config, error) {
	if path == "" {
		found, err := catalog.FindConfig(".")
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		a.logger.Debug("no catalog file found, using the built-in catalog")
		return catalog.Default(), nil
	}
	a.logger.Debug("loading catalog", "path", path)
	return catalog.LoadConfig(path)
}
