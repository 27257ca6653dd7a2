package sessions

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	ti := NewTokenIssuer("secret")

	raw, err := ti.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	id, err := ti.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id != "abc-123" {
		t.Fatalf("id = %q, want abc-123", id)
	}
}

func TestTokenRejected(t *testing.T) {
	ti := NewTokenIssuer("secret")
	raw, err := ti.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	emptySID, err := ti.Issue("")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	tests := map[string]struct {
		issuer *TokenIssuer
		raw    string
	}{
		"wrong secret": {issuer: NewTokenIssuer("other"), raw: raw},
		"tampered":     {issuer: ti, raw: tamper(raw)},
		"garbage":      {issuer: ti, raw: "not-a-token"},
		"empty sid":    {issuer: ti, raw: emptySID},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tt.issuer.Parse(tt.raw); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestTokenOutlivesSessionTTL(t *testing.T) {
	ti := NewTokenIssuer("secret")
	ti.now = func() time.Time { return time.Now().Add(-30 * 24 * time.Hour) }

	raw, err := ti.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	id, err := ti.Parse(raw)
	if err != nil {
		t.Fatalf("Parse of month-old token: %v", err)
	}
	if id != "abc-123" {
		t.Fatalf("id = %q, want abc-123", id)
	}
}

// tamper swaps one signature character that carries no padding bits.
func tamper(raw string) string {
	b := []byte(raw)
	i := len(b) - 5
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}
