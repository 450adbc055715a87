package middleware

import (
	"testing"
	"time"
)

func TestServiceTokenRoundTrip(t *testing.T) {
	token, err := MintServiceToken("ci-deployer", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	sub, err := VerifyServiceToken(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if sub != "ci-deployer" {
		t.Errorf("Expected subject ci-deployer, got %s", sub)
	}
}

func TestServiceTokenExpired(t *testing.T) {
	token, err := MintServiceToken("old", time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	if _, err := VerifyServiceToken(token); err == nil {
		t.Error("Expired token should not verify")
	}
}

func TestServiceTokenGarbage(t *testing.T) {
	if _, err := VerifyServiceToken("not-a-token"); err == nil {
		t.Error("Garbage token should not verify")
	}
}
