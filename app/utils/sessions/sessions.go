package sessions

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/sessions"
)

const (
	sessionCookieName = "store-admin-session"

	userIDSessionKey = "userID"
)

type SessionStore interface {
	GetUserID(r *http.Request) string
	SetUserID(w http.ResponseWriter, r *http.Request, userID string) error
	ClearSession(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, sessionCookieName)
	if err != nil {
		// A decode failure means a stale or tampered cookie; Get still
		// returns a fresh session in that case.
		log.Printf("Error getting session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) GetUserID(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}

	userID, ok := session.Values[userIDSessionKey].(string)
	if !ok {
		return ""
	}
	return userID
}

func (c *CookieSessionStore) SetUserID(w http.ResponseWriter, r *http.Request, userID string) error {
	session := c.getSession(r)
	session.Values[userIDSessionKey] = userID
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearSession(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	session.Options.MaxAge = -1
	delete(session.Values, userIDSessionKey)
	return session.Save(r, w)
}
