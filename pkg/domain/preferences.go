package domain

import "strings"

// Preferences holds the standing recipe filters a user configured in settings.
// Empty slices mean "no filter" for that category. The fields are the complete
// enumeration of preference categories, nothing is discovered dynamically.
type Preferences struct {
	Diets              []string
	Cuisines           []string
	Intolerances       []string
	ExcludeIngredients string // free-text comma list, e.g. "egg, cheese"
}

// Empty reports whether no preference category is set
func (p Preferences) Empty() bool {
	return len(p.Diets) == 0 && len(p.Cuisines) == 0 && len(p.Intolerances) == 0 &&
		strings.TrimSpace(p.ExcludeIngredients) == ""
}

// EncodeSet serializes a preference set for storage as a single text column.
// Values are trimmed and empty entries dropped.
func EncodeSet(values []string) string {
	clean := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			clean = append(clean, v)
		}
	}
	return strings.Join(clean, ",")
}

// DecodeSet parses a stored preference set back into values. It is the single
// counterpart of EncodeSet, no other code parses the stored form.
func DecodeSet(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// catalogs offered on the settings page, matching what the remote API accepts
var (
	// Diets lists supported diet filters
	Diets = []string{"Gluten Free", "Ketogenic", "Vegetarian", "Lacto-Vegetarian", "Ovo-Vegetarian",
		"Vegan", "Pescetarian", "Paleo", "Primal", "Low FODMAP", "Whole30"}

	// Cuisines lists supported cuisine filters
	Cuisines = []string{"American", "Caribbean", "Chinese", "Eastern European", "French", "Greek",
		"Indian", "Italian", "Japanese", "Korean", "Latin American", "Mediterranean",
		"Mexican", "Middle Eastern", "Nordic", "Southern", "Spanish", "Thai", "Vietnamese"}

	// Intolerances lists supported allergy/intolerance filters
	Intolerances = []string{"Dairy", "Egg", "Gluten", "Grain", "Peanut", "Treenut", "Seafood",
		"Shellfish", "Sesame", "Soy", "Sulfite", "Wheat"}
)
