// Package web embeds the HTML templates and static assets shipped with
// the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates
var Templates embed.FS

//go:embed static
var static embed.FS

// Static returns the asset tree rooted at the static directory, ready to
// mount under /static.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
