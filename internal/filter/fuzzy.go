package filter

import (
	"github.com/sahilm/fuzzy"

	"multiselect/internal/domain"
)

// Func narrows an option set down to the options matching query.
// Callers may supply their own to replace the built-in matcher.
type Func func(options []domain.Option, query string) []domain.Option

// labelSource exposes option labels to the fuzzy matcher
type labelSource []domain.Option

func (s labelSource) String(i int) string { return s[i].Label }
func (s labelSource) Len() int            { return len(s) }

// Options returns the options whose label contains the characters of query
// in order, ignoring case. Matches keep their original order; an empty
// query returns options untouched.
func Options(options []domain.Option, query string) []domain.Option {
	if query == "" {
		return options
	}

	matches := fuzzy.FindFromNoSort(query, labelSource(options))

	out := make([]domain.Option, 0, len(matches))
	for _, m := range matches {
		out = append(out, options[m.Index])
	}
	return out
}

var _ Func = Options
