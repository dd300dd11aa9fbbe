package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteEmitsJSONLine(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Warn("resume.load_failed", map[string]any{
		"user_id": "guest:abc",
		"error":   errors.New("schema mismatch"),
		"count":   3,
	})

	var payload map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &payload); err != nil {
		t.Fatalf("decode log json: %v (%s)", err, buf.String())
	}
	if payload["level"] != "warn" || payload["msg"] != "resume.load_failed" {
		t.Fatalf("unexpected header fields: %v", payload)
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts")
	}
	if _, ok := payload["time"]; ok {
		t.Fatalf("time key should be renamed to ts")
	}
	if payload["error"] != "schema mismatch" {
		t.Fatalf("unexpected error field: %v", payload["error"])
	}
	if payload["count"] != float64(3) {
		t.Fatalf("unexpected count: %v", payload["count"])
	}
}

func TestSetOutputRestore(t *testing.T) {
	var first, second bytes.Buffer
	restoreFirst := SetOutput(&first)
	restoreSecond := SetOutput(&second)
	Info("one", nil)
	restoreSecond()
	Info("two", nil)
	restoreFirst()

	if !bytes.Contains(second.Bytes(), []byte(`"msg":"one"`)) {
		t.Fatalf("expected first line in second buffer: %s", second.String())
	}
	if !bytes.Contains(first.Bytes(), []byte(`"msg":"two"`)) || bytes.Contains(first.Bytes(), []byte(`"msg":"one"`)) {
		t.Fatalf("unexpected first buffer: %s", first.String())
	}
}
