package auth

import (
	"errors"
	"testing"
	"time"

	"moodblog/internal/common"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("super-secret"), time.Hour)
	userID := int64(123)

	tok, err := c.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	gotUserID, err := c.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if gotUserID != userID {
		t.Fatalf("userID mismatch: got %d want %d", gotUserID, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("secret"), -1*time.Second)

	tok, err := c.Issue(1)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = c.Verify(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewCodec([]byte("right-secret"), time.Hour).Issue(2)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewCodec([]byte("wrong-secret"), time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidSignature) {
		t.Fatalf("expected common.ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_TamperedSignature(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("k"), time.Hour)
	tok, err := c.Issue(3)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	// flip the last signature byte
	b := []byte(tok)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = c.Verify(string(b))
	if err == nil {
		t.Fatal("expected error for tampered token, got nil")
	}
	if errors.Is(err, nil) || errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("tampered token must not look expired: %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewCodec([]byte("k"), time.Hour).Verify("not.a.jwt")
	if !errors.Is(err, common.ErrTokenMalformed) {
		t.Fatalf("expected common.ErrTokenMalformed, got %v", err)
	}
}
