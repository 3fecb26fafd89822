// internal/adapters/lendingtree/parser.go
package lendingtree

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"lendingtree_reviews/internal/domain"
)

// monthNumbers maps full English month names (case sensitive) to 1..12.
var monthNumbers = func() map[string]int {
	m := make(map[string]int, 12)
	for mo := time.January; mo <= time.December; mo++ {
		m[mo.String()] = int(mo)
	}
	return m
}()

// reviewParser extracts the five typed fields of one review fragment.
// Each extraction is independently fallible; ParseReview surfaces the
// first failure and never returns a partial Review.
type reviewParser struct {
	frag *goquery.Selection
}

func (p reviewParser) find(f Field) (*goquery.Selection, error) {
	el := p.frag.Find(fieldSelectors[f]).First()
	if el.Length() == 0 {
		return nil, &domain.FieldNotFoundError{Field: string(f)}
	}
	return el, nil
}

func (p reviewParser) starRating() (int, error) {
	el, err := p.find(FieldStarRating)
	if err != nil {
		return 0, err
	}
	m := starRatingPattern.FindStringSubmatch(el.Text())
	if m == nil {
		return 0, &domain.FieldUnparseableError{Field: "star rating"}
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, &domain.FieldUnparseableError{Field: "star rating"}
	}
	return n, nil
}

func (p reviewParser) textContent() (string, error) {
	el, err := p.find(FieldTextContent)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(el.Text()), nil
}

func (p reviewParser) title() (string, error) {
	el, err := p.find(FieldTitle)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(el.Text()), nil
}

func (p reviewParser) author() (domain.Author, error) {
	el, err := p.find(FieldAuthorText)
	if err != nil {
		return domain.Author{}, err
	}
	m := authorPattern.FindStringSubmatch(el.Text())
	if m == nil {
		return domain.Author{}, &domain.FieldUnparseableError{Field: "author"}
	}
	return domain.Author{Name: m[1], Location: m[2]}, nil
}

func (p reviewParser) reviewDate() (string, error) {
	el, err := p.find(FieldReviewDate)
	if err != nil {
		return "", err
	}
	m := reviewDatePattern.FindStringSubmatch(el.Text())
	if m == nil {
		return "", &domain.FieldUnparseableError{Field: "review date"}
	}
	month, ok := monthNumbers[m[1]]
	if !ok {
		return "", &domain.FieldUnparseableError{Field: "valid month from review date"}
	}
	year, err := strconv.Atoi(m[2])
	if err != nil {
		return "", &domain.FieldUnparseableError{Field: "review date"}
	}
	// The site only exposes month/year, so the day is pinned to 01.
	return fmt.Sprintf("%04d-%02d-01", year, month), nil
}

// ParseReview assembles a Review from one fragment, failing on the
// first missing or malformed field.
func ParseReview(frag *goquery.Selection) (domain.Review, error) {
	p := reviewParser{frag: frag}

	title, err := p.title()
	if err != nil {
		return domain.Review{}, err
	}
	content, err := p.textContent()
	if err != nil {
		return domain.Review{}, err
	}
	author, err := p.author()
	if err != nil {
		return domain.Review{}, err
	}
	date, err := p.reviewDate()
	if err != nil {
		return domain.Review{}, err
	}
	stars, err := p.starRating()
	if err != nil {
		return domain.Review{}, err
	}

	return domain.Review{
		Title:      title,
		Content:    content,
		Author:     author,
		ReviewDate: date,
		StarRating: stars,
	}, nil
}
