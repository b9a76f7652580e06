package preload

import (
	"net/url"
	"strings"
)

// ResolveBase normalises a configured public base path so that it can be
// prepended to output filenames. Empty stays empty, relative bases (./)
// and absolute URLs keep their form, and everything else gets a leading
// and a trailing slash.
func ResolveBase(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return ""
	}

	if base == "." || base == "./" {
		return "./"
	}
	if strings.HasPrefix(base, "./") || strings.HasPrefix(base, "../") {
		return withTrailingSlash(base)
	}

	if isExternalURL(base) {
		return withTrailingSlash(base)
	}

	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return withTrailingSlash(base)
}

func isExternalURL(s string) bool {
	if strings.HasPrefix(s, "//") {
		return true
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func withTrailingSlash(s string) string {
	if strings.HasSuffix(s, "/") {
		return s
	}
	return s + "/"
}
