package domain

// RecipeSummary is the short recipe record returned by search and persisted
// on first favorite. Immutable once fetched.
type RecipeSummary struct {
	ID    int64
	Title string
	Image string
}

// RecipeDetail is the full recipe record from the per-id lookup
type RecipeDetail struct {
	RecipeSummary
	Summary        string // sanitized HTML
	SourceURL      string
	ReadyInMinutes int
	Servings       int
	HealthScore    float64
	Diets          []string
	Cuisines       []string
	DishTypes      []string
	Vegetarian     bool
	Vegan          bool
	GlutenFree     bool
	DairyFree      bool
}
