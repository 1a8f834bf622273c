// README: Tests for admin session middleware.
package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"jatriwheels/internal/http/middleware"
	"jatriwheels/internal/modules/admin"
	"jatriwheels/internal/types"
)

// stubVerifier is a test double for middleware.SessionVerifier.
type stubVerifier struct {
	claims *admin.Claims
	err    error
}

func (s *stubVerifier) Authenticate(_ context.Context, _ string) (*admin.Claims, error) {
	return s.claims, s.err
}

func newTestRouter(verifier middleware.SessionVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth(verifier))
	r.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id": middleware.CallerAdminID(c),
			"role":     middleware.CallerRole(c),
		})
	})
	return r
}

func validClaims(id types.ID, role string) *admin.Claims {
	return &admin.Claims{AdminID: id, Role: role}
}

func TestAuth_MissingHeader(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: validClaims("adm1", "admin")})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: validClaims("adm1", "admin")})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Token sometoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_VerifierError(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: errors.New("bad token")})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer sometoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	r := newTestRouter(&stubVerifier{err: admin.ErrTokenRevoked})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer revokedtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuth_ValidToken_CallerPopulated(t *testing.T) {
	r := newTestRouter(&stubVerifier{claims: validClaims("adm42", "superadmin")})
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer validtoken")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "adm42") {
		t.Errorf("expected admin id in body, got %s", body)
	}
	if !strings.Contains(body, "superadmin") {
		t.Errorf("expected role in body, got %s", body)
	}
}
