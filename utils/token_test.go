package utils

import (
	"testing"
)

func TestJwtRoundTrip(t *testing.T) {
	token, err := JwtGenerateAccess(7, "operator")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := JwtValidateTyped(token, TokenTypeAccess)
	if err != nil {
		t.Fatal(err)
	}
	if claims.ID != 7 || claims.Username != "operator" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
}

func TestJwtTokenTypeEnforced(t *testing.T) {
	access, err := JwtGenerateAccess(1, "operator")
	if err != nil {
		t.Fatal(err)
	}
	refresh, err := JwtGenerateRefresh(1, "operator", "session-1")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := JwtValidateTyped(access, TokenTypeRefresh); err == nil {
		t.Error("access token accepted as refresh")
	}
	if _, err := JwtValidateTyped(refresh, TokenTypeAccess); err == nil {
		t.Error("refresh token accepted as access")
	}

	claims, err := JwtValidateTyped(refresh, TokenTypeRefresh)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Jti != "session-1" {
		t.Errorf("jti = %q, want session-1", claims.Jti)
	}
}

func TestJwtRejectsGarbage(t *testing.T) {
	if _, err := JwtValidateTyped("not.a.token", TokenTypeAccess); err == nil {
		t.Error("garbage token validated")
	}
	if _, err := JwtValidateTyped("", TokenTypeAccess); err == nil {
		t.Error("empty token validated")
	}
}
