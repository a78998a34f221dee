package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/mealscope/pkg/domain"
	"github.com/umputun/mealscope/pkg/repository"
	"github.com/umputun/mealscope/server/mocks"
)

func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestServer_registerFormHandler(t *testing.T) {
	srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})

	req := httptest.NewRequest("GET", "/register", http.NoBody)
	w := httptest.NewRecorder()
	srv.registerFormHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Create an account")
	assert.Contains(t, body, "Vegan")     // diet catalog rendered
	assert.Contains(t, body, "Treenut")   // intolerance catalog rendered
	assert.Contains(t, body, "Caribbean") // cuisine catalog rendered
}

func TestServer_registerHandler(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		userStore := &mocks.UserStoreMock{
			CreateUserFunc: func(ctx context.Context, user *domain.User, password string) error {
				user.ID = 7
				return nil
			},
		}
		srv := testServer(testConfig(), Store{User: userStore}, &mocks.RecipeGatewayMock{})

		form := url.Values{
			"email":        {"new@example.com"},
			"username":     {"newbie"},
			"password":     {"secret123"},
			"password2":    {"secret123"},
			"diet":         {"Vegan"},
			"intolerances": {"Egg", "Dairy"},
		}
		w := httptest.NewRecorder()
		srv.registerHandler(w, postForm("/register", form))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/users/7", w.Header().Get("Location"))
		assert.Equal(t, 1, srv.sessions.Count())

		calls := userStore.CreateUserCalls()
		require.Len(t, calls, 1)
		assert.Equal(t, "secret123", calls[0].Password)
		assert.Equal(t, []string{"Vegan"}, calls[0].User.Preferences.Diets)
		assert.Equal(t, []string{"Egg", "Dairy"}, calls[0].User.Preferences.Intolerances)

		// session cookie set
		var found bool
		for _, c := range w.Result().Cookies() {
			if c.Name == sessionCookie && c.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "session cookie not set")
	})

	t.Run("duplicate account keeps form input", func(t *testing.T) {
		userStore := &mocks.UserStoreMock{
			CreateUserFunc: func(ctx context.Context, user *domain.User, password string) error {
				return repository.ErrAlreadyExists
			},
		}
		srv := testServer(testConfig(), Store{User: userStore}, &mocks.RecipeGatewayMock{})

		form := url.Values{
			"email":     {"taken@example.com"},
			"username":  {"taken"},
			"password":  {"secret123"},
			"password2": {"secret123"},
		}
		w := httptest.NewRecorder()
		srv.registerHandler(w, postForm("/register", form))

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "already taken")
		assert.Contains(t, body, "taken@example.com") // input preserved
		assert.Equal(t, 0, srv.sessions.Count())
	})

	t.Run("password mismatch", func(t *testing.T) {
		srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})

		form := url.Values{
			"email":     {"new@example.com"},
			"username":  {"newbie"},
			"password":  {"secret123"},
			"password2": {"different"},
		}
		w := httptest.NewRecorder()
		srv.registerHandler(w, postForm("/register", form))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "passwords do not match")
	})

	t.Run("short password", func(t *testing.T) {
		srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})

		form := url.Values{
			"email":     {"new@example.com"},
			"username":  {"newbie"},
			"password":  {"abc"},
			"password2": {"abc"},
		}
		w := httptest.NewRecorder()
		srv.registerHandler(w, postForm("/register", form))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "at least 6 characters")
	})

	t.Run("invalid email", func(t *testing.T) {
		srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})

		form := url.Values{
			"email":     {"not-an-email"},
			"username":  {"newbie"},
			"password":  {"secret123"},
			"password2": {"secret123"},
		}
		w := httptest.NewRecorder()
		srv.registerHandler(w, postForm("/register", form))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email")
	})
}

func TestServer_signinHandler(t *testing.T) {
	t.Run("successful signin", func(t *testing.T) {
		userStore := &mocks.UserStoreMock{
			AuthenticateFunc: func(ctx context.Context, username, password string) (*domain.User, error) {
				assert.Equal(t, "dev", username)
				assert.Equal(t, "secret123", password)
				return testUser(5), nil
			},
		}
		srv := testServer(testConfig(), Store{User: userStore}, &mocks.RecipeGatewayMock{})

		form := url.Values{"username": {"dev"}, "password": {"secret123"}}
		w := httptest.NewRecorder()
		srv.signinHandler(w, postForm("/signin", form))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/users/5", w.Header().Get("Location"))
		assert.Equal(t, 1, srv.sessions.Count())
	})

	t.Run("bad credentials", func(t *testing.T) {
		userStore := &mocks.UserStoreMock{
			AuthenticateFunc: func(ctx context.Context, username, password string) (*domain.User, error) {
				return nil, repository.ErrAuthFailed
			},
		}
		srv := testServer(testConfig(), Store{User: userStore}, &mocks.RecipeGatewayMock{})

		form := url.Values{"username": {"dev"}, "password": {"wrong"}}
		w := httptest.NewRecorder()
		srv.signinHandler(w, postForm("/signin", form))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "invalid username or password")
		assert.Equal(t, 0, srv.sessions.Count())
	})
}

func TestServer_signinFormHandler_redirectsSignedIn(t *testing.T) {
	srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})
	cookie := signIn(srv, 5)

	req := httptest.NewRequest("GET", "/signin", http.NoBody)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	srv.signinFormHandler(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users/5", w.Header().Get("Location"))
}

func TestServer_signoutHandler(t *testing.T) {
	srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})
	cookie := signIn(srv, 5)
	require.Equal(t, 1, srv.sessions.Count())

	req := httptest.NewRequest("GET", "/signout", http.NoBody)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	srv.signoutHandler(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, 0, srv.sessions.Count())
}

func TestServer_authorize(t *testing.T) {
	srv := testServer(testConfig(), Store{}, &mocks.RecipeGatewayMock{})
	cookie := signIn(srv, 5)

	t.Run("matching user", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/5", http.NoBody)
		req.SetPathValue("id", "5")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()

		uid, sess, ok := srv.authorize(w, req)
		assert.True(t, ok)
		assert.Equal(t, int64(5), uid)
		assert.NotNil(t, sess)
	})

	t.Run("no session redirects to signin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/5", http.NoBody)
		req.SetPathValue("id", "5")
		w := httptest.NewRecorder()

		_, _, ok := srv.authorize(w, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/signin", w.Header().Get("Location"))
	})

	t.Run("other user's page redirects home", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/9", http.NoBody)
		req.SetPathValue("id", "9")
		req.AddCookie(cookie)
		w := httptest.NewRecorder()

		_, _, ok := srv.authorize(w, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/users/5", w.Header().Get("Location"))
	})

	t.Run("bad id is not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users/abc", http.NoBody)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		_, _, ok := srv.authorize(w, req)
		assert.False(t, ok)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFlashCookie(t *testing.T) {
	w := httptest.NewRecorder()
	setFlash(w, "hello there")

	// carry the cookie over to the next request
	req := httptest.NewRequest("GET", "/", http.NoBody)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}

	w2 := httptest.NewRecorder()
	msg := takeFlash(w2, req)
	assert.Equal(t, "hello there", msg)

	// takeFlash clears the cookie
	var cleared bool
	for _, c := range w2.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "flash cookie not cleared")
}
