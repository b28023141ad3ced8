// Package public embeds the client shell served for every non-API path.
package public

import "embed"

//go:embed index.html styles.css
var Files embed.FS
