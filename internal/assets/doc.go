// Package assets provides stylesheets for the HTML preview.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	StyleLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── StyleResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles: notebook (the default) and
// plain. FilesystemLoader reads {basePath}/styles/{name}.css, so a user can
// override a built-in style or add new ones. ResolveStyle accepts either a
// style name or a path to a .css file.
//
// # Security
//
// Style names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
