package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/mealscope/pkg/domain"
)

// DefaultBaseURL points at the public Spoonacular API
const DefaultBaseURL = "https://api.spoonacular.com"

// ErrNotFound indicates the remote API has no recipe with the requested id
var ErrNotFound = errors.New("recipe not found")

// UpstreamError indicates the remote API was unreachable or returned a
// non-success status. Callers treat it as terminal for the request, there
// are no retries.
type UpstreamError struct {
	Status int // 0 for transport failures
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("recipe api status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("recipe api unreachable: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// Client is a thin wrapper over the remote recipe search API. It issues two
// operations, bulk search by filter and per-id detail lookup, with no retry
// or caching of its own.
type Client struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	sanitizer *bluemonday.Policy
}

// New creates a recipe API client. Empty baseURL selects the public endpoint,
// zero timeout defaults to 10 seconds.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
		client:    &http.Client{Timeout: timeout},
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// searchResponse matches the complexSearch JSON envelope
type searchResponse struct {
	Results []recipeJSON `json:"results"`
}

// recipeJSON is the short recipe record on the wire
type recipeJSON struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
}

// detailJSON is the full recipe record on the wire
type detailJSON struct {
	recipeJSON
	Summary        string   `json:"summary"`
	SourceURL      string   `json:"sourceUrl"`
	ReadyInMinutes int      `json:"readyInMinutes"`
	Servings       int      `json:"servings"`
	HealthScore    float64  `json:"healthScore"`
	Diets          []string `json:"diets"`
	Cuisines       []string `json:"cuisines"`
	DishTypes      []string `json:"dishTypes"`
	Vegetarian     bool     `json:"vegetarian"`
	Vegan          bool     `json:"vegan"`
	GlutenFree     bool     `json:"glutenFree"`
	DairyFree      bool     `json:"dairyFree"`
}

// Search retrieves up to maxCount recipes matching the filter clauses.
// Ordering is remote-defined and treated as opaque but stable for one call.
func (c *Client) Search(ctx context.Context, maxCount int, filter url.Values) ([]domain.RecipeSummary, error) {
	q := url.Values{}
	for key, vals := range filter {
		q[key] = vals
	}
	q.Set("apiKey", c.apiKey)
	q.Set("number", strconv.Itoa(maxCount))

	var resp searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/recipes/complexSearch?"+q.Encode(), &resp); err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}

	recipes := make([]domain.RecipeSummary, 0, len(resp.Results))
	for _, r := range resp.Results {
		recipes = append(recipes, domain.RecipeSummary{ID: r.ID, Title: r.Title, Image: r.Image})
	}
	return recipes, nil
}

// GetRecipe retrieves the full detail record for one recipe. Returns
// ErrNotFound if the remote reports no such id.
func (c *Client) GetRecipe(ctx context.Context, id int64) (domain.RecipeDetail, error) {
	reqURL := fmt.Sprintf("%s/recipes/%d/information?apiKey=%s", c.baseURL, id, url.QueryEscape(c.apiKey))

	var detail detailJSON
	if err := c.getJSON(ctx, reqURL, &detail); err != nil {
		return domain.RecipeDetail{}, fmt.Errorf("get recipe %d: %w", id, err)
	}

	return domain.RecipeDetail{
		RecipeSummary:  domain.RecipeSummary{ID: detail.ID, Title: detail.Title, Image: detail.Image},
		Summary:        c.sanitizer.Sanitize(detail.Summary),
		SourceURL:      detail.SourceURL,
		ReadyInMinutes: detail.ReadyInMinutes,
		Servings:       detail.Servings,
		HealthScore:    detail.HealthScore,
		Diets:          detail.Diets,
		Cuisines:       detail.Cuisines,
		DishTypes:      detail.DishTypes,
		Vegetarian:     detail.Vegetarian,
		Vegan:          detail.Vegan,
		GlutenFree:     detail.GlutenFree,
		DairyFree:      detail.DairyFree,
	}, nil
}

// getJSON issues a GET request and decodes the JSON body into out.
// 404 maps to ErrNotFound, any other failure to UpstreamError.
func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UpstreamError{Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
