package usecase

import (
	"strings"
	"testing"
)

func TestGenerateOrderCodeShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOrderCode()
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 chars, got %q", code)
		}
		for _, r := range code {
			if !strings.ContainsRune(orderCodeAlphabet, r) {
				t.Fatalf("character %q outside alphabet in %q", r, code)
			}
		}
	}
}

func TestGenerateOrderCodeAvoidsConfusableCharacters(t *testing.T) {
	for _, banned := range "01IO" {
		if strings.ContainsRune(orderCodeAlphabet, banned) {
			t.Fatalf("alphabet must not contain %q", banned)
		}
	}
}
