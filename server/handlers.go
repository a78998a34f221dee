package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/umputun/mealscope/pkg/domain"
	"github.com/umputun/mealscope/pkg/repository"
	"github.com/umputun/mealscope/pkg/spoonacular"
)

const flashUpstreamDown = "recommendation service is unavailable, try again later"

// recipeCard is a search result annotated with the favorited marker
type recipeCard struct {
	domain.RecipeSummary
	Favorited bool
}

type welcomePage struct {
	Flash   string
	Recipes []domain.RecipeSummary
}

// welcomeHandler shows the public landing page with a couple of teaser recipes
func (s *Server) welcomeHandler(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.currentSession(r); ok {
		http.Redirect(w, r, fmt.Sprintf("/users/%d", sess.UserID()), http.StatusSeeOther)
		return
	}

	spCfg := s.config.GetSpoonacularConfig()
	teasers, err := s.recipes.Search(r.Context(), spCfg.TeaserCount, spoonacular.Encode(domain.Preferences{}, nil))
	if err != nil {
		log.Printf("[WARN] failed to load teaser recipes: %v", err)
		teasers = nil // landing page still renders without them
	}

	s.renderPage(w, "welcome.html", welcomePage{Flash: takeFlash(w, r), Recipes: teasers})
}

type homePage struct {
	Flash   string
	User    *domain.User
	Recipes []recipeCard
	HasNext bool
	HasPrev bool
	Cursor  int
	Total   int

	// ad-hoc search form echo, also carried through page navigation
	Search      string
	Query       string
	MaxCalories string
}

// homeHandler shows the per-user page of recommended recipes
func (s *Server) homeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, sess, ok := s.authorize(w, r)
	if !ok {
		return
	}

	user, err := s.store.User.GetUser(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to load user %d: %v", uid, err)
		http.Error(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	flash := takeFlash(w, r)
	adhoc := adHocFromValues(r.URL.Query())
	page := homePage{
		Flash:       flash,
		User:        user,
		Search:      r.URL.Query().Get("search"),
		Query:       r.URL.Query().Get("query"),
		MaxCalories: r.URL.Query().Get("max_calories"),
	}

	// refresh the session results when the effective filter changed,
	// a failed fetch leaves the session untouched so the next view retries
	sig := spoonacular.Signature(user.Preferences, adhoc)
	if sess.NeedsRefresh(sig) {
		spCfg := s.config.GetSpoonacularConfig()
		results, err := s.recipes.Search(ctx, spCfg.SearchCount, spoonacular.Encode(user.Preferences, adhoc))
		if err != nil {
			log.Printf("[WARN] recipe search failed for user %d: %v", uid, err)
			if page.Flash == "" {
				page.Flash = flashUpstreamDown
			}
			s.renderPage(w, "home.html", page)
			return
		}
		sess.Replace(results, sig)
	}

	info := sess.Page()
	favs, err := s.store.Favorite.FavoriteIDs(ctx, uid)
	if err != nil {
		log.Printf("[WARN] failed to load favorite ids: %v", err)
		favs = map[int64]bool{}
	}

	page.HasNext, page.HasPrev = info.HasNext, info.HasPrev
	page.Cursor, page.Total = info.Cursor, info.Total
	page.Recipes = make([]recipeCard, 0, len(info.Recipes))
	for _, rec := range info.Recipes {
		page.Recipes = append(page.Recipes, recipeCard{RecipeSummary: rec, Favorited: favs[rec.ID]})
	}

	s.renderPage(w, "home.html", page)
}

// pageHandler moves the session window one page in the requested direction
func (s *Server) pageHandler(w http.ResponseWriter, r *http.Request) {
	uid, sess, ok := s.authorize(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	sess.Navigate(r.FormValue("dir"))
	http.Redirect(w, r, homeTarget(uid, r), http.StatusSeeOther)
}

// addFavoriteHandler saves a recipe to the user's favorites. The recipe
// snapshot comes from the local store when present, otherwise fetched
// from the remote API; an upstream failure persists nothing.
func (s *Server) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, _, ok := s.authorize(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	recipeID, err := strconv.ParseInt(r.FormValue("recipe"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid recipe ID"), http.StatusBadRequest)
		return
	}

	summary, err := s.store.Recipe.GetRecipe(ctx, recipeID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		detail, gerr := s.recipes.GetRecipe(ctx, recipeID)
		if gerr != nil {
			log.Printf("[WARN] failed to fetch recipe %d: %v", recipeID, gerr)
			setFlash(w, "could not save recipe, try again later")
			http.Redirect(w, r, homeTarget(uid, r), http.StatusSeeOther)
			return
		}
		summary = detail.RecipeSummary
	case err != nil:
		log.Printf("[ERROR] failed to load recipe %d: %v", recipeID, err)
		setFlash(w, "could not save recipe, try again later")
		http.Redirect(w, r, homeTarget(uid, r), http.StatusSeeOther)
		return
	}

	if err := s.store.Favorite.AddFavorite(ctx, uid, summary); err != nil {
		log.Printf("[ERROR] failed to add favorite: %v", err)
		setFlash(w, "could not save recipe, try again later")
		http.Redirect(w, r, homeTarget(uid, r), http.StatusSeeOther)
		return
	}

	setFlash(w, fmt.Sprintf("%q added to favorites", summary.Title))
	http.Redirect(w, r, homeTarget(uid, r), http.StatusSeeOther)
}

type favoritesPage struct {
	Flash   string
	User    *domain.User
	Recipes []domain.RecipeSummary
}

// favoritesHandler lists the user's saved recipes in insertion order
func (s *Server) favoritesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, _, ok := s.authorize(w, r)
	if !ok {
		return
	}

	user, err := s.store.User.GetUser(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to load user %d: %v", uid, err)
		http.Error(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	recipes, err := s.store.Favorite.ListFavorites(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to list favorites: %v", err)
		http.Error(w, "failed to load favorites", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, "favorites.html", favoritesPage{Flash: takeFlash(w, r), User: user, Recipes: recipes})
}

// removeFavoriteHandler deletes one recipe from the user's favorites
func (s *Server) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, _, ok := s.authorize(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	recipeID, err := strconv.ParseInt(r.FormValue("recipe"), 10, 64)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid recipe ID"), http.StatusBadRequest)
		return
	}

	if err := s.store.Favorite.RemoveFavorite(ctx, uid, recipeID); err != nil {
		log.Printf("[ERROR] failed to remove favorite: %v", err)
		setFlash(w, "could not remove recipe, try again later")
	}
	http.Redirect(w, r, fmt.Sprintf("/users/%d/favorites", uid), http.StatusSeeOther)
}

type settingsPage struct {
	Flash        string
	User         *domain.User
	Diets        []string
	Cuisines     []string
	Intolerances []string
}

// settingsFormHandler shows profile and preference settings
func (s *Server) settingsFormHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, _, ok := s.authorize(w, r)
	if !ok {
		return
	}

	user, err := s.store.User.GetUser(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to load user %d: %v", uid, err)
		http.Error(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	s.renderPage(w, "settings.html", settingsPage{
		Flash:        takeFlash(w, r),
		User:         user,
		Diets:        domain.Diets,
		Cuisines:     domain.Cuisines,
		Intolerances: domain.Intolerances,
	})
}

// settingsHandler applies profile and preference changes in one update.
// A changed preference set alters the filter signature, so the next home
// view refreshes recommendations automatically.
func (s *Server) settingsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uid, _, ok := s.authorize(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	user, err := s.store.User.GetUser(ctx, uid)
	if err != nil {
		log.Printf("[ERROR] failed to load user %d: %v", uid, err)
		http.Error(w, "failed to load user", http.StatusInternalServerError)
		return
	}

	settingsURL := fmt.Sprintf("/users/%d/settings", uid)

	if email := strings.TrimSpace(r.FormValue("email")); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			setFlash(w, "invalid email address")
			http.Redirect(w, r, settingsURL, http.StatusSeeOther)
			return
		}
		user.Email = email
	}
	if username := strings.TrimSpace(r.FormValue("username")); username != "" {
		user.Username = username
	}
	if image := strings.TrimSpace(r.FormValue("image_url")); image != "" {
		user.ImageURL = image
	}
	user.Preferences = preferencesFromForm(r)

	if err := s.store.User.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			setFlash(w, "email or username already taken")
		} else {
			log.Printf("[ERROR] failed to update user %d: %v", uid, err)
			setFlash(w, "could not save settings, try again later")
		}
		http.Redirect(w, r, settingsURL, http.StatusSeeOther)
		return
	}

	setFlash(w, "settings saved")
	http.Redirect(w, r, settingsURL, http.StatusSeeOther)
}

type recipePage struct {
	Flash     string
	UserID    int64
	Recipe    domain.RecipeDetail
	Favorited bool
}

// recipeHandler shows the detail page for a single recipe
func (s *Server) recipeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := s.currentSession(r)
	if !ok {
		setFlash(w, "please sign in first")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail, err := s.recipes.GetRecipe(ctx, id)
	switch {
	case errors.Is(err, spoonacular.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		log.Printf("[WARN] failed to fetch recipe %d: %v", id, err)
		setFlash(w, flashUpstreamDown)
		http.Redirect(w, r, fmt.Sprintf("/users/%d", sess.UserID()), http.StatusSeeOther)
		return
	}

	favorited := false
	if favs, err := s.store.Favorite.FavoriteIDs(ctx, sess.UserID()); err == nil {
		favorited = favs[id]
	}

	s.renderPage(w, "recipe.html", recipePage{
		Flash:     takeFlash(w, r),
		UserID:    sess.UserID(),
		Recipe:    detail,
		Favorited: favorited,
	})
}

// adHocFromValues builds the one-off search filter from query or form values,
// nil when no ad-hoc field is set
func adHocFromValues(v url.Values) *spoonacular.AdHoc {
	adhoc := spoonacular.AdHoc{
		IncludeIngredients: strings.TrimSpace(v.Get("search")),
		Query:              strings.TrimSpace(v.Get("query")),
	}
	if mc, err := strconv.Atoi(v.Get("max_calories")); err == nil && mc > 0 {
		adhoc.MaxCalories = mc
	}
	if adhoc.Empty() {
		return nil
	}
	return &adhoc
}

// homeTarget builds the redirect back to the user's home page, carrying the
// active ad-hoc search fields so the filter signature stays stable
func homeTarget(uid int64, r *http.Request) string {
	q := url.Values{}
	for _, k := range []string{"search", "query", "max_calories"} {
		if v := strings.TrimSpace(r.FormValue(k)); v != "" {
			q.Set(k, v)
		}
	}
	target := fmt.Sprintf("/users/%d", uid)
	if len(q) > 0 {
		target += "?" + q.Encode()
	}
	return target
}
