package server

import (
	"fmt"
	"path"
	"strings"
)

// normalizeRequestPath cleans the request path into an absolute,
// forward-slash form so lookups behave the same on every platform.
func normalizeRequestPath(rawPath string) string {
	if !strings.HasPrefix(rawPath, "/") {
		rawPath = "/" + rawPath
	}
	return path.Clean(rawPath)
}

// validateRequestPath rejects paths that try to climb out of the served
// root. The serving filesystem is rooted anyway; this keeps traversal
// attempts from ever reaching it.
func validateRequestPath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("path must be absolute")
	}
	if strings.ContainsRune(p, 0) {
		return fmt.Errorf("invalid character in path")
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return fmt.Errorf("path traversal attempt detected")
		}
	}
	return nil
}
