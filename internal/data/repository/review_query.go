package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// OrderField is one validated ordering column.
type OrderField struct {
	Column string
	Desc   bool
}

// reviewOrderColumns are the only columns a caller may order by.
var reviewOrderColumns = map[string]string{
	"rating":       "r.rating",
	"created_date": "r.created_date",
}

// ParseReviewOrdering turns "rating,-created_date" into order fields,
// silently dropping unknown names.
func ParseReviewOrdering(raw string) []OrderField {
	var fields []OrderField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if _, ok := reviewOrderColumns[name]; !ok {
			continue
		}
		fields = append(fields, OrderField{Column: name, Desc: desc})
	}
	return fields
}

// ReviewFilter narrows a review listing. Zero value matches every review.
type ReviewFilter struct {
	MovieTitle string    // case-insensitive exact match
	Ratings    []int     // any of
	Search     []string  // every term must hit title or rating
	UserID     uuid.UUID // owner, uuid.Nil for any
	Ordering   []OrderField
}

const reviewSelect = `
	SELECT r.id, r.user_id, r.movie_title, r.review_content, r.rating, r.created_date, u.username
	FROM reviews r
	JOIN users u ON u.id = r.user_id`

// buildReviewWhere renders the WHERE clause of f starting at placeholder $1.
func buildReviewWhere(f ReviewFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)

	if f.MovieTitle != "" {
		args = append(args, f.MovieTitle)
		conds = append(conds, fmt.Sprintf("LOWER(r.movie_title) = LOWER($%d)", len(args)))
	}

	if len(f.Ratings) > 0 {
		args = append(args, f.Ratings)
		conds = append(conds, fmt.Sprintf("r.rating = ANY($%d)", len(args)))
	}

	for _, term := range f.Search {
		if term == "" {
			continue
		}
		args = append(args, "%"+escapeLike(term)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(r.movie_title ILIKE $%d OR CAST(r.rating AS TEXT) ILIKE $%d)", n, n))
	}

	if f.UserID != uuid.Nil {
		args = append(args, f.UserID)
		conds = append(conds, fmt.Sprintf("r.user_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// buildReviewOrder renders ORDER BY; insertion order is the default and the
// final tie-break.
func buildReviewOrder(fields []OrderField) string {
	parts := make([]string, 0, len(fields)+2)
	for _, f := range fields {
		col := reviewOrderColumns[f.Column]
		if f.Desc {
			col += " DESC"
		}
		parts = append(parts, col)
	}
	parts = append(parts, "r.created_date", "r.id")
	return " ORDER BY " + strings.Join(parts, ", ")
}

// BuildReviewListQuery returns the page query and its args.
func BuildReviewListQuery(f ReviewFilter, limit, offset int) (string, []any) {
	where, args := buildReviewWhere(f)
	query := reviewSelect + where + buildReviewOrder(f.Ordering)
	if limit > 0 {
		args = append(args, limit, offset)
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}
	return query, args
}

// BuildReviewCountQuery returns the count query matching f.
func BuildReviewCountQuery(f ReviewFilter) (string, []any) {
	where, args := buildReviewWhere(f)
	return "SELECT COUNT(*) FROM reviews r" + where, args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
