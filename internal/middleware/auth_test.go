package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evento-ems/evento/internal/auth"
	"github.com/evento-ems/evento/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func authTestRouter(t *testing.T, tokens *auth.Manager) http.Handler {
	t.Helper()

	r := ginext.New("test")
	r.GET("/me", Auth(tokens), func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxUserRole),
		})
	})
	r.GET("/admin", Auth(tokens), RequireAdmin(), func(c *ginext.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuth_MissingToken(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := authTestRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BearerHeader(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := authTestRouter(t, tokens)

	token, err := tokens.Mint(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuth_Cookie(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := authTestRouter(t, tokens)

	token, err := tokens.Mint(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := authTestRouter(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	tokens, err := auth.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	r := authTestRouter(t, tokens)

	userToken, err := tokens.Mint(&domain.User{ID: "u1", Role: domain.RoleUser})
	require.NoError(t, err)
	adminToken, err := tokens.Mint(&domain.User{ID: "a1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
