package registrysdk

import (
	"net/url"
	"strings"
)

// ShareURL builds the shareable per-client access URL the admin UI hands
// out: {origin}/?client={urlEncodedName}. It is a display convenience and
// not part of the HTTP contract.
func ShareURL(origin, name string) string {
	return strings.TrimSuffix(origin, "/") + "/?client=" + url.QueryEscape(name)
}
