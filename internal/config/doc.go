// Package config manages user-level settings stored at ~/.wally/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the templates directory used by the add and list commands.
package config
