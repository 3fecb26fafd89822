package domain

// Author identifies who wrote a review.
type Author struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// Review is one fully parsed consumer review. It is never built from a
// partially populated fragment: parsing yields a complete Review or
// fails with a field error.
type Review struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     Author `json:"author"`
	ReviewDate string `json:"review_date"` // YYYY-MM-01; the site only exposes month/year
	StarRating int    `json:"star_rating"` // out of 5
}

// Business identifies one business profile on the review site. It is
// extracted once from the caller's URL and used to build every page
// request of a collection run.
type Business struct {
	Slug string
	ID   int64
}

// PageResult is the outcome of fetching one review page. Reviews is
// empty when the site clamped the request to a different page.
// CurrentPage is nil when the page carries no parseable page number.
type PageResult struct {
	Reviews     []Review
	CurrentPage *int64
}
