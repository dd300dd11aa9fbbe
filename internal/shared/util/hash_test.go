package util

import "testing"

func TestHashUserKeyIsStableHex(t *testing.T) {
	got := HashUserKey("guest:11111111-1111-1111-1111-111111111111")
	if got != HashUserKey("guest:11111111-1111-1111-1111-111111111111") {
		t.Fatalf("expected stable hash, got %s", got)
	}
	if len(got) != 64 {
		t.Fatalf("expected 64 hex characters, got %d", len(got))
	}
	for _, ch := range got {
		if !((ch >= 'a' && ch <= 'f') || (ch >= '0' && ch <= '9')) {
			t.Fatalf("hash contains non-hex character: %c", ch)
		}
	}
}

func TestHashUserKeySeparatesIdentities(t *testing.T) {
	if HashUserKey("user-1") == HashUserKey("guest:user-1") {
		t.Fatalf("guest and user identities must not share a key")
	}
}
