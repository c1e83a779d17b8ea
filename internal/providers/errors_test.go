package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	base := &RateLimitError{Provider: "footballdata", StatusCode: 429, RetryAfter: 30 * time.Second}
	wrapped := fmt.Errorf("fetch fixtures: %w", base)

	got, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatalf("expected RateLimitError")
	}
	if got.RetryAfter != 30*time.Second {
		t.Fatalf("unexpected retry-after: %v", got.RetryAfter)
	}

	if _, ok := AsRateLimitError(errors.New("plain")); ok {
		t.Fatalf("plain error must not match")
	}
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message: %q", got)
	}
}
