package spoonacular

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/mealscope/pkg/domain"
)

// AdHoc is a one-off search refinement submitted via the search form,
// layered on top of the standing preferences.
type AdHoc struct {
	IncludeIngredients string // comma list of ingredients to search by
	Query              string // dish name query
	MaxCalories        int    // 0 means no calorie limit
}

// Empty reports whether the ad-hoc filter carries no criteria
func (a *AdHoc) Empty() bool {
	return a == nil || (strings.TrimSpace(a.IncludeIngredients) == "" &&
		strings.TrimSpace(a.Query) == "" && a.MaxCalories <= 0)
}

// Encode converts user preferences plus an optional ad-hoc search into query
// clauses for the remote search API. Each member of a non-empty preference set
// contributes one clause under the same key, the remote API decides how
// repeated keys combine. The exclude-ingredients list is emitted as a single
// whitespace-stripped clause, unless an ad-hoc ingredient search supersedes
// it. Pure function, empty input produces no clauses.
func Encode(prefs domain.Preferences, adhoc *AdHoc) url.Values {
	q := url.Values{}

	for _, d := range prefs.Diets {
		if d = strings.TrimSpace(d); d != "" {
			q.Add("diet", d)
		}
	}
	for _, c := range prefs.Cuisines {
		if c = strings.TrimSpace(c); c != "" {
			q.Add("cuisine", c)
		}
	}
	for _, i := range prefs.Intolerances {
		if i = strings.TrimSpace(i); i != "" {
			q.Add("intolerances", i)
		}
	}

	adhocIngredients := adhoc != nil && strings.TrimSpace(adhoc.IncludeIngredients) != ""
	if exclude := strings.ReplaceAll(prefs.ExcludeIngredients, " ", ""); exclude != "" && !adhocIngredients {
		q.Set("excludeIngredients", exclude)
	}

	if adhoc == nil {
		return q
	}
	if adhocIngredients {
		q.Set("includeIngredients", strings.ReplaceAll(adhoc.IncludeIngredients, " ", ""))
	}
	if query := strings.TrimSpace(adhoc.Query); query != "" {
		q.Set("query", query)
	}
	if adhoc.MaxCalories > 0 {
		q.Set("maxCalories", strconv.Itoa(adhoc.MaxCalories))
	}
	return q
}

// Signature returns a stable string form of the encoded filter, used to
// detect filter changes between requests. url.Values.Encode sorts keys, so
// equal filters always produce equal signatures.
func Signature(prefs domain.Preferences, adhoc *AdHoc) string {
	return Encode(prefs, adhoc).Encode()
}
