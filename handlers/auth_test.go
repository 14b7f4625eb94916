package handlers_test

import (
	"net/http"
	"testing"
)

func TestObtainTokenRejectsBadCredentials(t *testing.T) {
	w := doJSON("POST", "/api/auth/token/", map[string]string{
		"username": "operator",
		"password": "wrong-pass",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password returned %d, want 401", w.Code)
	}

	w = doJSON("POST", "/api/auth/token/", map[string]string{
		"username": "nobody",
		"password": "whatever",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unknown user returned %d, want 401", w.Code)
	}

	w = doJSON("POST", "/api/auth/token/", map[string]string{
		"username": "operator",
	}, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing password returned %d, want 400", w.Code)
	}
}

func TestObtainTokenAndUse(t *testing.T) {
	token, err := login("operator", "hatchery-pass")
	if err != nil {
		t.Fatal(err)
	}
	w := doJSON("GET", "/api/incubators/", nil, token)
	if w.Code != http.StatusOK {
		t.Errorf("list with fresh token returned %d: %s", w.Code, w.Body.String())
	}
}

func TestRefreshFlow(t *testing.T) {
	w := doJSON("POST", "/api/auth/token/", map[string]string{
		"username": "operator",
		"password": "hatchery-pass",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	var pair map[string]string
	decodeBody(t, w, &pair)
	if pair["access"] == "" || pair["refresh"] == "" {
		t.Fatalf("login response missing tokens: %v", pair)
	}

	w = doJSON("POST", "/api/auth/token/refresh/", map[string]string{
		"refresh": pair["refresh"],
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("refresh returned %d: %s", w.Code, w.Body.String())
	}
	var refreshed map[string]string
	decodeBody(t, w, &refreshed)
	if refreshed["access"] == "" {
		t.Fatalf("refresh response missing access token: %v", refreshed)
	}

	w = doJSON("GET", "/api/incubators/", nil, refreshed["access"])
	if w.Code != http.StatusOK {
		t.Errorf("list with refreshed token returned %d", w.Code)
	}

	// Token types are not interchangeable.
	w = doJSON("POST", "/api/auth/token/refresh/", map[string]string{
		"refresh": pair["access"],
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("refresh with an access token returned %d, want 401", w.Code)
	}
	w = doJSON("GET", "/api/incubators/", nil, pair["refresh"])
	if w.Code != http.StatusUnauthorized {
		t.Errorf("API call with a refresh token returned %d, want 401", w.Code)
	}
}
