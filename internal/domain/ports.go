package domain

import "context"

// ReviewSource fetches one review page and reports the page number the
// site actually served, which is how clamping is detected. The clamping
// heuristic is an implicit contract with the site, not an invariant of
// ours; keeping it behind this interface lets it be swapped for a real
// pagination API if one ever appears.
type ReviewSource interface {
	FetchPage(ctx context.Context, biz Business, page int64) (PageResult, error)
}
