// Package assets provides the stylesheet, document template, and client
// runtime script embedded into generated quiz documents. Assets load from
// the embedded filesystem by default, or from a custom directory.
package assets

// Well-known asset names.
const (
	DefaultStyle    = "quiz"
	DefaultTemplate = "document"
	DefaultScript   = "runtime"
)

// AssetLoader abstracts asset loading so the CLI can swap in a filesystem
// loader for custom asset directories.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
	LoadScript(name string) (string, error)
}

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a CSS file by name using the embedded loader.
// The name must not include the .css extension or path components.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadTemplate loads an HTML template by name using the embedded loader.
func LoadTemplate(name string) (string, error) {
	return defaultLoader.LoadTemplate(name)
}

// LoadScript loads a client script by name using the embedded loader.
func LoadScript(name string) (string, error) {
	return defaultLoader.LoadScript(name)
}
