//go:build integration || !unit

package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	server "lendingtree_reviews/internal/adapters/http_server"
	"lendingtree_reviews/internal/adapters/lendingtree"
	"lendingtree_reviews/internal/app"
)

// fakeLendingTree renders profile pages the way the real site does:
// server-side markup, pid query pagination, and page numbers clamped to
// the last available page.
type fakeLendingTree struct {
	t       *testing.T
	maxPage int64
	perPage map[int64][]string // page -> review titles
}

func (f *fakeLendingTree) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.RawQuery, "sort=cmV2aWV3c3VibWl0dGVkX2Rlc2M=&pid=") {
		f.t.Errorf("unexpected query shape: %s", r.URL.RawQuery)
		http.Error(w, "bad query", http.StatusBadRequest)
		return
	}
	pid, err := strconv.ParseInt(r.URL.Query().Get("pid"), 10, 64)
	if err != nil {
		http.Error(w, "bad pid", http.StatusBadRequest)
		return
	}
	if pid > f.maxPage {
		pid = f.maxPage // clamp, like the real site
	}

	var b strings.Builder
	b.WriteString("<html><body>")
	for _, title := range f.perPage[pid] {
		fmt.Fprintf(&b, `<div class="mainReviews">
			<div class="numRec">(5 of 5) stars</div>
			<p class="reviewTitle">%s</p>
			<p class="reviewText">Content of %s</p>
			<p class="consumerName">Bruno from Austin, TX</p>
			<p class="consumerReviewDate">Reviewed in March 2021</p>
		</div>`, title, title)
	}
	fmt.Fprintf(&b, `<div class="pageNum"><a class="page-link">%d</a></div>`, pid)
	b.WriteString("</body></html>")
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte(b.String()))
}

func TestHTTP_EndToEnd_Scrape(t *testing.T) {
	site := httptest.NewServer(&fakeLendingTree{
		t:       t,
		maxPage: 2,
		perPage: map[int64][]string{
			1: {"r1", "r2", "r3"},
			2: {"r4", "r5"},
		},
	})
	defer site.Close()

	client := lendingtree.New(site.URL, 1000, 2*time.Second)
	collector := app.NewCollector(client, 3, 5*time.Second)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{C: collector})
	api := httptest.NewServer(srv.Mux())
	defer api.Close()

	res, err := http.Post(api.URL+"/", "application/json",
		strings.NewReader(`{"url": "https://www.lendingtree.com/reviews/business/ondeck/51886298"}`))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}

	var body struct {
		Data []struct {
			Title      string `json:"title"`
			Content    string `json:"content"`
			ReviewDate string `json:"review_date"`
			StarRating int    `json:"star_rating"`
			Author     struct {
				Name     string `json:"name"`
				Location string `json:"location"`
			} `json:"author"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 5 {
		t.Fatalf("expected 5 reviews, got %d", len(body.Data))
	}

	seen := map[string]bool{}
	for _, rv := range body.Data {
		seen[rv.Title] = true
		if rv.StarRating != 5 || rv.ReviewDate != "2021-03-01" ||
			rv.Author.Name != "Bruno" || rv.Author.Location != "Austin, TX" {
			t.Fatalf("unexpected review: %+v", rv)
		}
	}
	for _, want := range []string{"r1", "r2", "r3", "r4", "r5"} {
		if !seen[want] {
			t.Fatalf("missing review %s (got %v)", want, seen)
		}
	}
}
