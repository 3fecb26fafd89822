// internal/adapters/lendingtree/client.go
package lendingtree

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"lendingtree_reviews/internal/adapters/observability"
	"lendingtree_reviews/internal/domain"
)

const (
	sortParam       = "sort"
	mostRecentSort  = "cmV2aWV3c3VibWl0dGVkX2Rlc2M="
	paginationParam = "pid"

	reviewSectionSelector     = ".mainReviews"
	currentPageNumberSelector = ".pageNum .page-link"
)

// Client fetches review pages from the review site. It satisfies
// domain.ReviewSource. Outbound requests are rate limited client-side;
// there are no retries — a failed request fails the fetch.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

// New returns a Client rooted at base (scheme+host, no trailing slash
// needed). rps bounds outbound requests per second.
func New(base string, rps int, timeout time.Duration) *Client {
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		hc:   &http.Client{Timeout: timeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// pageURL builds the page request by hand. The site is sensitive to
// query parameter order and to the sort constant's trailing "=" staying
// unencoded, so url.Values is deliberately not used here.
func (c *Client) pageURL(biz domain.Business, page int64) string {
	return fmt.Sprintf("%s/reviews/business/%s/%d?%s=%s&%s=%d",
		c.base, biz.Slug, biz.ID, sortParam, mostRecentSort, paginationParam, page)
}

// FetchPage performs one page request. Exactly HTTP 200 is accepted.
// The served page number is read from the pagination widget; when it is
// missing or differs from the requested page (the site clamps past-end
// page numbers to the last real page) the page contributes no reviews.
// Otherwise every review fragment is parsed; the first malformed
// fragment fails the fetch.
func (c *Client) FetchPage(ctx context.Context, biz domain.Business, page int64) (domain.PageResult, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.PageResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(biz, page), nil)
	if err != nil {
		return domain.PageResult{}, err
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", "lendingtree-reviews/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return domain.PageResult{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("lendingtree", "reviews_page", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.PageResult{}, &domain.CommunicationError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return domain.PageResult{}, fmt.Errorf("parse page markup: %w", err)
	}

	served := currentPageNumber(doc)
	res := domain.PageResult{CurrentPage: served}
	if served == nil || *served != page {
		// Clamped (or unidentifiable) page: same markup as the last
		// real page, so its fragments are not collected again here.
		return res, nil
	}

	var parseErr error
	doc.Find(reviewSectionSelector).EachWithBreak(func(_ int, frag *goquery.Selection) bool {
		rv, err := ParseReview(frag)
		if err != nil {
			parseErr = err
			return false
		}
		res.Reviews = append(res.Reviews, rv)
		return true
	})
	if parseErr != nil {
		return domain.PageResult{}, parseErr
	}
	return res, nil
}

// currentPageNumber extracts the page number the site reports for the
// rendered page. Absent or non-numeric text is not an error; it means
// the page number is unknown.
func currentPageNumber(doc *goquery.Document) *int64 {
	el := doc.Find(currentPageNumberSelector).First()
	if el.Length() == 0 {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(el.Text()), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
