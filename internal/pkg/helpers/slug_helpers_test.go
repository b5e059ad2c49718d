package helpers

import (
	"strings"
	"testing"
)

func TestGenerateSlug(t *testing.T) {
	got := GenerateSlug("Berapa gaji pertama Anda?")
	if !strings.HasPrefix(got, "berapa-gaji-pertama-anda-") {
		t.Errorf("GenerateSlug = %q, want a slugified prefix", got)
	}

	// Repeated names must not collide
	other := GenerateSlug("Berapa gaji pertama Anda?")
	if got == other {
		t.Errorf("two slugs for the same name are identical: %q", got)
	}
}

func TestGenerateHexToken(t *testing.T) {
	token, err := GenerateHexToken(20)
	if err != nil {
		t.Fatalf("GenerateHexToken: %v", err)
	}
	if len(token) != 40 {
		t.Errorf("token length = %d, want 40 hex chars for 20 bytes", len(token))
	}
}
