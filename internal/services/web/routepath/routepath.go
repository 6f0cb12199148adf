// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root         = "/"
	Pools        = "/pools"
	Health       = "/health"
	StaticPrefix = "/static/"
)

// StaticAsset returns the public path of an embedded static file.
func StaticAsset(name string) string {
	return StaticPrefix + strings.TrimLeft(strings.TrimSpace(name), "/")
}
