// internal/adapters/lendingtree/selectors.go
package lendingtree

import "regexp"

// Field names a review field as it appears in extraction errors.
type Field string

const (
	FieldStarRating  Field = "STAR_RATING"
	FieldTextContent Field = "TEXT_CONTENT"
	FieldTitle       Field = "TITLE"
	FieldAuthorText  Field = "AUTHOR_TEXT"
	FieldReviewDate  Field = "REVIEW_DATE"
)

// fieldSelectors maps each review field to the CSS selector that
// locates it inside a review fragment. Kept as data so markup drift is
// a table edit, not a control-flow change.
var fieldSelectors = map[Field]string{
	FieldStarRating:  ".numRec",
	FieldTextContent: ".reviewText",
	FieldTitle:       ".reviewTitle",
	FieldAuthorText:  ".consumerName",
	FieldReviewDate:  ".consumerReviewDate",
}

// Anchored full-string patterns for the fields that need more than
// trimmed text. Whitespace is tolerated only where the pattern says so.
var (
	// "(4 of 5) stars"
	starRatingPattern = regexp.MustCompile(`\A\s*\((\d) of \d\)\s*stars\s*\z`)
	// "Bruno from Fort Worth,  TX" — internal whitespace in the
	// location is kept verbatim.
	authorPattern = regexp.MustCompile(`\A\s*(\S+) +from +([a-zA-Z ]+, +[A-Z]{2})\s*\z`)
	// "Reviewed in February 2018"
	reviewDatePattern = regexp.MustCompile(`\A\s*Reviewed in ([a-zA-Z]+) (\d{4})\s*\z`)
)
