// Package config provides configuration management for dvk-archive.
//
// Settings are stored as a small JSON file (by default under the user
// config directory). Loading a missing file yields defaults:
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // File exists but is unreadable or malformed.
//	}
//
// Settings cover the default sort mode, artist grouping, and the bound on
// concurrent directory reads during archive loading.
package config
