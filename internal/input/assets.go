package input

import _ "embed"

// themePreview is a source snippet fixed at build time, used to render
// theme previews without touching the file system.
//
//go:embed assets/theme_preview.txt
var themePreview []byte
