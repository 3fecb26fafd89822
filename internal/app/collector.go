// internal/app/collector.go
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"lendingtree_reviews/internal/adapters/observability"
	"lendingtree_reviews/internal/domain"
)

// probePage is far beyond any real page count. The site clamps it to
// the last available page, which is how the collector discovers the
// page bound without a pagination API.
const probePage int64 = 999999999999999999

// Collector gathers every review of a business profile by sweeping its
// pages in fixed-size concurrent batches.
type Collector struct {
	src          domain.ReviewSource
	batchSize    int
	batchTimeout time.Duration
}

func NewCollector(src domain.ReviewSource, batchSize int, batchTimeout time.Duration) *Collector {
	if batchSize <= 0 {
		batchSize = 8
	}
	if batchTimeout <= 0 {
		batchTimeout = 15 * time.Second
	}
	return &Collector{src: src, batchSize: batchSize, batchTimeout: batchTimeout}
}

// CollectPage fetches a single page of reviews.
func (c *Collector) CollectPage(ctx context.Context, biz domain.Business, page int64) ([]domain.Review, error) {
	res, err := c.src.FetchPage(ctx, biz, page)
	if err != nil {
		return nil, err
	}
	return res.Reviews, nil
}

type pageOutcome struct {
	page   int64
	result domain.PageResult
	err    error
}

// CollectAll gathers every review for one business profile.
//
// It first probes with an absurd page number; the site clamps that to
// the real last page, whose served page number becomes maxPage. Pages
// are then fetched in strictly sequential batches of batchSize
// concurrent requests. Completions are handled in arrival order, so
// the result is in completion order, not page order.
//
// A batch stops the sweep once a completed page equals a known maxPage,
// or — when maxPage is unknown — once a page comes back served under a
// different number than requested. The latter rule misfires on
// mid-range pages that render with no reviews and no page number; that
// limitation is inherited from the site's behavior and kept on purpose.
// Completions already in flight when the stop is decided are still
// recorded.
//
// Any fetch or parse failure, and a batch exceeding the wait window,
// abort the whole collection; no partial result is returned.
func (c *Collector) CollectAll(ctx context.Context, biz domain.Business) ([]domain.Review, error) {
	probe, err := c.src.FetchPage(ctx, biz, probePage)
	if err != nil {
		return nil, err
	}
	observability.ObservePageFetch("probe")
	result := append([]domain.Review(nil), probe.Reviews...)

	maxPage := probe.CurrentPage
	if maxPage == nil {
		log.Warn().
			Str("slug", biz.Slug).
			Int64("business_id", biz.ID).
			Msg("unable to load maximum page, collecting only up to first empty page")
	} else {
		log.Debug().
			Str("slug", biz.Slug).
			Int64("business_id", biz.ID).
			Int64("max_page", *maxPage).
			Msg("maximum page discovered")
	}

	finished := false
	for batch := int64(0); !finished; batch++ {
		first := batch*int64(c.batchSize) + 1
		last := first + int64(c.batchSize) - 1

		outcomes := make(chan pageOutcome, c.batchSize)
		var grp errgroup.Group
		grp.SetLimit(c.batchSize)
		for page := first; page <= last; page++ {
			page := page
			grp.Go(func() error {
				res, err := c.src.FetchPage(ctx, biz, page)
				outcomes <- pageOutcome{page: page, result: res, err: err}
				return nil
			})
		}

		// The timer spans the whole batch: exceeding it is fatal, not a
		// soft cancellation. Workers drain into the buffered channel,
		// so an early return leaks nothing.
		timer := time.NewTimer(c.batchTimeout)
		for i := 0; i < c.batchSize; i++ {
			select {
			case out := <-outcomes:
				if out.err != nil {
					timer.Stop()
					return nil, out.err
				}
				observability.ObservePageFetch("sweep")
				result = append(result, out.result.Reviews...)
				// Monotonic: once true it is never reset, so remaining
				// completions in this batch only add their reviews.
				if !finished && pastEnd(out.page, out.result.CurrentPage, maxPage) {
					finished = true
				}
			case <-timer.C:
				return nil, domain.ErrBatchTimeout
			}
		}
		timer.Stop()
		_ = grp.Wait()
	}

	observability.ObserveReviewsCollected(len(result))
	return result, nil
}

// pastEnd reports whether a completed page proves the sweep has reached
// the last real page.
func pastEnd(requested int64, served *int64, maxPage *int64) bool {
	if maxPage != nil {
		return requested == *maxPage
	}
	return served == nil || *served != requested
}
