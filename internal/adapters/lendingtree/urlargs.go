// internal/adapters/lendingtree/urlargs.go
package lendingtree

import (
	"net/url"
	"regexp"
	"strconv"

	"lendingtree_reviews/internal/domain"
)

// Hostname is the only host profile URLs are accepted from.
const Hostname = "www.lendingtree.com"

var profilePathPattern = regexp.MustCompile(`\A/reviews/business/([a-zA-Z0-9-]+)/([0-9]+)/?\z`)

// ParseArgs validates a caller-supplied profile URL and extracts the
// business slug and id. No network access is performed.
func ParseArgs(raw string) (domain.Business, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() != Hostname {
		return domain.Business{}, &domain.InvalidURLError{Reason: "invalid hostname"}
	}
	m := profilePathPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return domain.Business{}, &domain.InvalidURLError{
			Reason: "missing or invalid url args (business_slug_name, business_id)",
		}
	}
	id, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		// A digit run too long for int64 still isn't a usable id.
		return domain.Business{}, &domain.InvalidURLError{
			Reason: "missing or invalid url args (business_slug_name, business_id)",
		}
	}
	return domain.Business{Slug: m[1], ID: id}, nil
}
