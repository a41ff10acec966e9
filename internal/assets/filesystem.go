package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a directory tree mirroring the
// embedded layout (styles/, templates/, script/). Missing files fall back
// to the embedded defaults so a custom directory only needs to override
// what it changes.
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a loader rooted at basePath.
// Returns ErrInvalidAssetPath if basePath is not an existing directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetPath, basePath)
	}
	return &FilesystemLoader{basePath: basePath, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads styles/<name>.css from the base path, falling back to the
// embedded style of the same name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	if content, ok := f.read("styles", name+".css"); ok {
		return content, nil
	}
	return f.fallback.LoadStyle(name)
}

// LoadTemplate loads templates/<name>.html from the base path, falling back
// to the embedded template of the same name.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	if content, ok := f.read("templates", name+".html"); ok {
		return content, nil
	}
	return f.fallback.LoadTemplate(name)
}

// LoadScript loads script/<name>.js from the base path, falling back to the
// embedded script of the same name.
func (f *FilesystemLoader) LoadScript(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	if content, ok := f.read("script", name+".js"); ok {
		return content, nil
	}
	return f.fallback.LoadScript(name)
}

// read returns the file content and whether it was readable.
func (f *FilesystemLoader) read(subdir, file string) (string, bool) {
	content, err := os.ReadFile(filepath.Join(f.basePath, subdir, file)) // #nosec G304 -- base path is user-provided by design
	if err != nil {
		return "", false
	}
	return string(content), true
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
