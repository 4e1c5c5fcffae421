// Package project locates and decodes ez.toml, the per-project build
// configuration, and provides the content digests used as cache keys.
package project
