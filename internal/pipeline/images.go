package pipeline

import (
	"encoding/base64"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// defaultImageMIME is used when the extension maps to no known image type.
const defaultImageMIME = "image/jpeg"

// embedImage resolves one ![alt](src) reference.
//
// Absolute URLs and data URIs pass through verbatim. Relative paths are
// URL-decoded and resolved against SourceDir; when the decoded path is
// missing the raw undecoded path is retried. Unresolvable or unreadable
// files become a visible inline error marker. Never fails.
func (r *Renderer) embedImage(alt, src string) string {
	if strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "data:") {
		return `<img src="` + EscapeHTML(src) + `" alt="` + EscapeHTML(alt) + `" />`
	}

	decoded, err := url.PathUnescape(src)
	if err != nil {
		decoded = src
	}

	path := filepath.Join(r.SourceDir, strings.TrimLeft(decoded, "./"))
	if !regularFile(path) {
		// Some editors write pre-encoded paths; retry the raw form.
		raw := filepath.Join(r.SourceDir, strings.TrimLeft(src, "./"))
		if !regularFile(raw) {
			return `<span class="img-error">[image not found: ` + EscapeHTML(decoded) + `]</span>`
		}
		path = raw
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own document
	if err != nil {
		return `<span class="img-error">[image unreadable: ` + EscapeHTML(alt) + ` - ` + EscapeHTML(err.Error()) + `]</span>`
	}

	mimeType := imageMIMEType(path)
	encoded := base64.StdEncoding.EncodeToString(data)
	return `<img src="data:` + mimeType + `;base64,` + encoded + `" alt="` + EscapeHTML(alt) + `" />`
}

// imageMIMEType infers a content type from the file extension.
func imageMIMEType(path string) string {
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		return defaultImageMIME
	}
	return mimeType
}

// regularFile returns true if path exists and is not a directory.
func regularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
