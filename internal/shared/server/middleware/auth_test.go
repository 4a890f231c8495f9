package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/shared/auth"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("test-secret", "dev", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	router := gin.New()
	router.Use(Auth(tokens))
	router.GET("/api/resumes", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserIDFromContext(c), "email": UserEmailFromContext(c)})
	})
	return router, tokens
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] != "Missing token" {
		t.Fatalf("expected error %q, got %q", "Missing token", body["error"])
	}
}

func TestAuthRejectsBadTokens(t *testing.T) {
	router, _ := newAuthRouter(t)

	other, _ := auth.NewTokenService("other-secret", "dev", time.Hour)
	wrongSecret, _ := other.Sign("user-1", "a@example.com")

	for _, header := range []string{
		"Bearer not-a-jwt",
		"Bearer ",
		"Basic abc123",
		"Bearer " + wrongSecret,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] != "Invalid token" {
			t.Fatalf("header %q: expected error %q, got %q", header, "Invalid token", body["error"])
		}
	}
}

func TestAuthBindsIdentityToContext(t *testing.T) {
	router, tokens := newAuthRouter(t)

	token, err := tokens.Sign("user-42", "bob@example.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/resumes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["userId"] != "user-42" || body["email"] != "bob@example.com" {
		t.Fatalf("unexpected identity: %v", body)
	}
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := auth.NewTokenService("test-secret", "dev", time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	router := gin.New()
	router.Use(Auth(tokens))
	router.OPTIONS("/api/resumes", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/resumes", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}
