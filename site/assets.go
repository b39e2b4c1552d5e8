package site

import (
	"embed"
	"io/fs"
)

//go:embed assets
var assets embed.FS

// AssetsFS returns the embedded static assets (CSS, live client) rooted at
// the asset directory, ready to serve under /static/.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		// The directory is embedded at build time; this cannot fail at runtime.
		panic(err)
	}
	return sub
}
