package postgres

import "testing"

func TestOpenRequiresDSN(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty dsn")
	}
}

func TestCloseNil(t *testing.T) {
	if err := Close(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
