package pathutil

import "strings"

// NormalizePath replaces numeric path segments with :id so metrics keep
// a bounded label set. Query strings and trailing slashes are stripped.
//
//	/products/123          -> /products/:id
//	/products/123/comments -> /products/:id/comments
//	/healthz               -> /healthz
func NormalizePath(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return "/"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if isNumeric(seg) {
			segments[i] = ":id"
		}
	}
	return strings.Join(segments, "/")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
