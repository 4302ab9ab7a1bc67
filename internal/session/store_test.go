package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestStore(t *testing.T, cfg config.App) *CookieStore {
	t.Helper()
	if cfg.SessionSignKey == "" {
		cfg.SessionSignKey = testKey
	}
	s, err := NewCookieStore(cfg)
	require.NoError(t, err)
	return s
}

// roundTrip saves st through store and returns a request carrying the
// resulting cookie.
func roundTrip(t *testing.T, store *CookieStore, st State) *http.Request {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, store.Save(w, st))

	r := httptest.NewRequest(http.MethodGet, "/dashboard/alice", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestNewCookieStore(t *testing.T) {
	_, err := NewCookieStore(config.App{})
	assert.ErrorIs(t, err, ErrEmptySignKey)

	s := newTestStore(t, config.App{})
	assert.Equal(t, defaultCookieName, s.CookieName())

	s = newTestStore(t, config.App{SessionCookieName: "sid"})
	assert.Equal(t, "sid", s.CookieName())
}

func TestCookieStore_SaveLoad(t *testing.T) {
	store := newTestStore(t, config.App{})
	want := State{Username: "alice", Card: "Sol Ring", DeckName: "Atraxa"}

	got := store.Load(roundTrip(t, store, want))

	assert.Equal(t, want, got)
}

func TestCookieStore_CookieAttributes(t *testing.T) {
	store := newTestStore(t, config.App{SecureCookie: true, SessionMaxAge: time.Hour})
	w := httptest.NewRecorder()

	require.NoError(t, store.Save(w, State{Username: "alice"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, defaultCookieName, c.Name)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
}

func TestCookieStore_NoMaxAgeIsSessionCookie(t *testing.T) {
	store := newTestStore(t, config.App{})
	w := httptest.NewRecorder()

	require.NoError(t, store.Save(w, State{Username: "alice"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Zero(t, cookies[0].MaxAge)
}

func TestCookieStore_SaveZeroClears(t *testing.T) {
	store := newTestStore(t, config.App{})
	w := httptest.NewRecorder()

	require.NoError(t, store.Save(w, State{}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieStore_LoadAnonymous(t *testing.T) {
	store := newTestStore(t, config.App{})
	other := newTestStore(t, config.App{SessionSignKey: "fedcba9876543210fedcba9876543210"})

	forged, err := other.Encode(State{Username: "mallory"})
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: tokenIssuer, Subject: "mallory"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "someone-else", Subject: "mallory"},
	}).SignedString([]byte(testKey))
	require.NoError(t, err)

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "empty cookie", cookie: &http.Cookie{Name: defaultCookieName, Value: ""}},
		{name: "garbage", cookie: &http.Cookie{Name: defaultCookieName, Value: "not-a-jwt"}},
		{name: "signed with another key", cookie: &http.Cookie{Name: defaultCookieName, Value: forged}},
		{name: "unsigned", cookie: &http.Cookie{Name: defaultCookieName, Value: unsigned}},
		{name: "wrong issuer", cookie: &http.Cookie{Name: defaultCookieName, Value: wrongIssuer}},
		{name: "other cookie name", cookie: &http.Cookie{Name: "other", Value: forged}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				r.AddCookie(tt.cookie)
			}

			got := store.Load(r)

			assert.Equal(t, StageAnonymous, got.Stage())
			assert.True(t, got.IsZero())
		})
	}
}

func TestCookieStore_Expired(t *testing.T) {
	store := newTestStore(t, config.App{SessionMaxAge: time.Minute})
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return issued }

	token, err := store.Encode(State{Username: "alice"})
	require.NoError(t, err)

	_, err = store.Decode(token)
	require.NoError(t, err)

	store.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = store.Decode(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestCookieStore_Clear(t *testing.T) {
	store := newTestStore(t, config.App{SessionCookieName: "sid"})
	w := httptest.NewRecorder()

	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestCookieStore_ImplementsStore(t *testing.T) {
	var _ Store = newTestStore(t, config.App{})
}
