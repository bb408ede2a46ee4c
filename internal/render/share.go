// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DetailsPage is the page share links point at.
const DetailsPage = "details.html"

// ShareLink returns base/details.html?id=<id>. Any path on base is kept and
// an existing query string is replaced.
func ShareLink(base string, id int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing share base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("share base URL %q must be absolute", base)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + DetailsPage
	u.RawQuery = url.Values{"id": {strconv.Itoa(id)}}.Encode()
	u.Fragment = ""
	return u.String(), nil
}
