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
	"github.com/umputun/mealscope/pkg/session"
)

const (
	sessionCookie = "session_token"
	flashCookie   = "flash"
)

// setSessionCookie stores the session token in a http-only cookie
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.config.GetAuthConfig().SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
}

// currentSession resolves the session from the request cookie, if any
func (s *Server) currentSession(r *http.Request) (*session.Session, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return nil, false
	}
	return s.sessions.Get(c.Value)
}

// setFlash stores a one-shot message shown on the next rendered page
func setFlash(w http.ResponseWriter, msg string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
	})
}

// takeFlash reads and clears the flash message
func takeFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	msg, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return msg
}

// authorize checks that the request carries a session matching the {id} path
// segment. On failure it redirects and returns ok=false.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request) (userID int64, sess *session.Session, ok bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, nil, false
	}

	sess, found := s.currentSession(r)
	if !found {
		setFlash(w, "please sign in first")
		http.Redirect(w, r, "/signin", http.StatusSeeOther)
		return 0, nil, false
	}
	if sess.UserID() != id {
		setFlash(w, "access denied")
		http.Redirect(w, r, fmt.Sprintf("/users/%d", sess.UserID()), http.StatusSeeOther)
		return 0, nil, false
	}
	return id, sess, true
}

// registerForm holds submitted registration values, kept to refill the form on errors
type registerForm struct {
	Email    string
	Username string
	Prefs    domain.Preferences
}

type registerPage struct {
	Flash        string
	Form         registerForm
	Diets        []string
	Cuisines     []string
	Intolerances []string
}

func (s *Server) registerFormHandler(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, "register.html", registerPage{
		Flash:        takeFlash(w, r),
		Diets:        domain.Diets,
		Cuisines:     domain.Cuisines,
		Intolerances: domain.Intolerances,
	})
}

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	form := registerForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Username: strings.TrimSpace(r.FormValue("username")),
		Prefs:    preferencesFromForm(r),
	}
	password := r.FormValue("password")
	confirm := r.FormValue("password2")

	render := func(flash string) {
		s.renderPage(w, "register.html", registerPage{
			Flash:        flash,
			Form:         form,
			Diets:        domain.Diets,
			Cuisines:     domain.Cuisines,
			Intolerances: domain.Intolerances,
		})
	}

	if form.Email == "" || form.Username == "" {
		render("email and username are required")
		return
	}
	if _, err := mail.ParseAddress(form.Email); err != nil {
		render("invalid email address")
		return
	}
	if minLen := s.config.GetAuthConfig().MinPassword; len(password) < minLen {
		render(fmt.Sprintf("password must be at least %d characters", minLen))
		return
	}
	if password != confirm {
		render("passwords do not match")
		return
	}

	user := &domain.User{Email: form.Email, Username: form.Username, Preferences: form.Prefs}
	if err := s.store.User.CreateUser(ctx, user, password); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			render("email or username already taken")
			return
		}
		log.Printf("[ERROR] failed to create user: %v", err)
		render("registration failed, try again")
		return
	}

	token, _ := s.sessions.Create(user.ID)
	s.setSessionCookie(w, token)
	setFlash(w, fmt.Sprintf("welcome, %s", user.Username))
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusSeeOther)
}

type signinPage struct {
	Flash    string
	Username string
}

func (s *Server) signinFormHandler(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.currentSession(r); ok {
		http.Redirect(w, r, fmt.Sprintf("/users/%d", sess.UserID()), http.StatusSeeOther)
		return
	}
	s.renderPage(w, "signin.html", signinPage{Flash: takeFlash(w, r)})
}

func (s *Server) signinHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := s.store.User.Authenticate(ctx, username, password)
	if err != nil {
		if !errors.Is(err, repository.ErrAuthFailed) {
			log.Printf("[ERROR] authentication failed: %v", err)
		}
		s.renderPage(w, "signin.html", signinPage{Flash: "invalid username or password", Username: username})
		return
	}

	token, _ := s.sessions.Create(user.ID)
	s.setSessionCookie(w, token)
	http.Redirect(w, r, fmt.Sprintf("/users/%d", user.ID), http.StatusSeeOther)
}

func (s *Server) signoutHandler(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Delete(c.Value)
	}
	clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// preferencesFromForm collects preference selections shared by the
// registration and settings forms
func preferencesFromForm(r *http.Request) domain.Preferences {
	return domain.Preferences{
		Diets:              r.Form["diet"],
		Cuisines:           r.Form["cuisine"],
		Intolerances:       r.Form["intolerances"],
		ExcludeIngredients: strings.TrimSpace(r.FormValue("exclude_ingredients")),
	}
}
