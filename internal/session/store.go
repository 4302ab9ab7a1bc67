package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer       = "go-deck-builder"
	defaultCookieName = "deckbuilder_session"
)

// Store loads and persists the session of a browser.
type Store interface {
	// Load returns the request's session. A missing or invalid cookie
	// yields the anonymous state.
	Load(r *http.Request) State
	// Save writes s to the response. Saving the zero state clears the
	// cookie.
	Save(w http.ResponseWriter, s State) error
	// Clear removes the session cookie.
	Clear(w http.ResponseWriter)
}

// claims is the JWT payload of the session cookie. The username travels as
// the subject.
type claims struct {
	jwt.RegisteredClaims
	Card     string `json:"card,omitempty"`
	DeckName string `json:"deck,omitempty"`
}

// CookieStore keeps the session client-side in an HttpOnly cookie holding
// an HMAC-SHA256 signed JWT.
type CookieStore struct {
	name    string
	signKey []byte
	maxAge  time.Duration
	secure  bool
	now     func() time.Time
}

// NewCookieStore builds a [CookieStore] from the application config.
// A zero SessionMaxAge produces browser-session cookies whose tokens never
// expire.
func NewCookieStore(cfg config.App) (*CookieStore, error) {
	if cfg.SessionSignKey == "" {
		return nil, ErrEmptySignKey
	}

	name := cfg.SessionCookieName
	if name == "" {
		name = defaultCookieName
	}

	return &CookieStore{
		name:    name,
		signKey: []byte(cfg.SessionSignKey),
		maxAge:  cfg.SessionMaxAge,
		secure:  cfg.SecureCookie,
		now:     time.Now,
	}, nil
}

// CookieName returns the name of the session cookie.
func (c *CookieStore) CookieName() string {
	return c.name
}

func (c *CookieStore) Load(r *http.Request) State {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return State{}
	}

	s, err := c.Decode(cookie.Value)
	if err != nil {
		return State{}
	}
	return s
}

func (c *CookieStore) Save(w http.ResponseWriter, s State) error {
	if s.IsZero() {
		c.Clear(w)
		return nil
	}

	token, err := c.Encode(s)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if c.maxAge > 0 {
		cookie.MaxAge = int(c.maxAge.Seconds())
	}
	http.SetCookie(w, cookie)
	return nil
}

func (c *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Encode signs s into a compact JWT.
func (c *CookieStore) Encode(s State) (string, error) {
	now := c.now()
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   tokenIssuer,
			Subject:  s.Username,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Card:     s.Card,
		DeckName: s.DeckName,
	}
	if c.maxAge > 0 {
		cl.ExpiresAt = jwt.NewNumericDate(now.Add(c.maxAge))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, cl).SignedString(c.signKey)
	if err != nil {
		return "", fmt.Errorf("error signing session token: %w", err)
	}
	return signed, nil
}

// Decode verifies token and returns the state it carries. Any failure wraps
// [ErrInvalidSession].
func (c *CookieStore) Decode(token string) (State, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(token, &cl, func(*jwt.Token) (any, error) {
		return c.signKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return State{}, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}

	return State{Username: cl.Subject, Card: cl.Card, DeckName: cl.DeckName}, nil
}
