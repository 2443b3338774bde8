package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

// hashToken hashes at MinCost to keep the tests fast.
func hashToken(t *testing.T, token string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash token: %v", err)
	}
	return string(hash)
}

func TestAuth(t *testing.T) {
	router := setupEstimateTest(hashToken(t, "secret-token"))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic c2VjcmV0", http.StatusUnauthorized},
		{"wrong token", "Bearer nope", http.StatusUnauthorized},
		{"valid token", "Bearer secret-token", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/estimate", strings.NewReader(`{"weight":"80"}`))
			req.Header.Set("Content-Type", "application/json")
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Errorf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

// TestAuth_PublicRoutes verifies health and metrics stay reachable without a token.
func TestAuth_PublicRoutes(t *testing.T) {
	router := setupEstimateTest(hashToken(t, "secret-token"))

	for _, path := range []string{"/healthz", "/metrics"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
	}
}

// TestAuth_OpenWhenUnconfigured verifies /api needs no token without a hash.
func TestAuth_OpenWhenUnconfigured(t *testing.T) {
	router := setupEstimateTest("")

	req := httptest.NewRequest("GET", "/api/options", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
