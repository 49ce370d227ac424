package vlc

import "net/url"

// isURL reports whether path names a network source rather than a local file
func isURL(path string) bool {
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "" {
		return false
	}
	// single letters are Windows drive names
	return len(u.Scheme) > 1
}
