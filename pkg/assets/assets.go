// Package assets embeds the public web root served by the HTTP service.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed public
var embedded embed.FS

// Public returns the web root: index.html, the browser client and its stylesheet
func Public() fs.FS {
	sub, err := fs.Sub(embedded, "public")
	if err != nil {
		// "public" is embedded at build time, so Sub cannot fail
		panic("embedded public directory is missing: " + err.Error())
	}
	return sub
}
