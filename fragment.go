package carousel

import (
	"net/url"
	"strings"
)

// SectionQueryKey is the query parameter consulted when a URL carries no
// fragment.
const SectionQueryKey = "sectionId"

// SectionFromURL extracts a section token from a navigation URL. The
// fragment wins ("/deck#/about" gives "about"); otherwise the sectionId
// query parameter is used. Unparseable URLs yield "".
func SectionFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	if u.Fragment != "" {
		return NormalizeIdentifier(u.Fragment)
	}
	return NormalizeIdentifier(u.Query().Get(SectionQueryKey))
}
