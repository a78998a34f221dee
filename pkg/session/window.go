package session

import "github.com/umputun/mealscope/pkg/domain"

// ResultWindow holds one session's most recent search results and the
// pagination cursor into them. The cursor is always a non-negative multiple
// of the page size and never points past the last non-empty page. A window
// with no results loaded yet reports Loaded() == false.
type ResultWindow struct {
	results   []domain.RecipeSummary
	cursor    int
	pageSize  int
	signature string
	loaded    bool
}

// NewResultWindow creates an empty window with the given page size
func NewResultWindow(pageSize int) ResultWindow {
	if pageSize < 1 {
		pageSize = 1
	}
	return ResultWindow{pageSize: pageSize}
}

// Loaded reports whether results were fetched at least once
func (w *ResultWindow) Loaded() bool { return w.loaded }

// Matches reports whether the window was loaded for the given filter
// signature. A false result means the caller has to re-fetch and Replace.
func (w *ResultWindow) Matches(signature string) bool {
	return w.loaded && w.signature == signature
}

// Replace swaps in a fresh result set and resets the cursor to the start
func (w *ResultWindow) Replace(results []domain.RecipeSummary, signature string) {
	w.results = results
	w.signature = signature
	w.cursor = 0
	w.loaded = true
}

// Next advances the cursor by one page. If advancing would land on or past
// the end of the results it stays put, so the cursor never produces an empty
// page.
func (w *ResultWindow) Next() {
	if w.cursor+w.pageSize < len(w.results) {
		w.cursor += w.pageSize
	}
}

// Back moves the cursor one page towards the start, never below zero
func (w *ResultWindow) Back() {
	w.cursor -= w.pageSize
	if w.cursor < 0 {
		w.cursor = 0
	}
}

// Page returns the current page of results, at most pageSize entries and
// possibly shorter on the last page
func (w *ResultWindow) Page() []domain.RecipeSummary {
	if w.cursor >= len(w.results) {
		return nil
	}
	end := w.cursor + w.pageSize
	if end > len(w.results) {
		end = len(w.results)
	}
	return w.results[w.cursor:end]
}

// HasNext reports whether a further page exists
func (w *ResultWindow) HasNext() bool { return w.cursor+w.pageSize < len(w.results) }

// HasPrev reports whether the cursor is past the first page
func (w *ResultWindow) HasPrev() bool { return w.cursor > 0 }

// Cursor returns the current offset into the results
func (w *ResultWindow) Cursor() int { return w.cursor }

// Total returns the number of results held by the window
func (w *ResultWindow) Total() int { return len(w.results) }
