// Package urlref provides normalization of short link references.
package urlref

import "strings"

// Normalize extracts a short code from a reference that may be either a bare
// code or a full short URL. A reference containing a path separator is treated
// as a full URL and only its final path segment is kept; anything else passes
// through unchanged.
func Normalize(ref string) string {
	if !strings.Contains(ref, "/") {
		return ref
	}
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
