package services

import "strings"

// RewriteBase swaps the internal base URL for the public one on absolute
// URLs generated inside the service network. URLs that do not start with the
// internal base (already public, third-party, empty) pass through unchanged.
func RewriteBase(internalBase, publicBase, url string) string {
	if url == "" {
		return ""
	}
	internalBase = strings.TrimRight(internalBase, "/")
	publicBase = strings.TrimRight(publicBase, "/")
	if internalBase == "" || internalBase == publicBase {
		return url
	}
	if !strings.HasPrefix(url, internalBase) {
		return url
	}
	return publicBase + url[len(internalBase):]
}
