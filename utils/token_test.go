package utils

import (
	"testing"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken err: %v", err)
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken err: %v", err)
	}
	if userID != 42 {
		t.Fatalf("ParseToken returned user ID %d, want 42", userID)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not-a-jwt"); err == nil {
		t.Fatal("ParseToken should reject a malformed token")
	}
}
