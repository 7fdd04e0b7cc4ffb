package checklist

import (
	"bytes"
	"testing"
	"time"
)

func TestCodec_RoundTrip(t *testing.T) {
	original, err := New("Blind 75", 1, 1, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	original, _ = original.Toggle(original.Items[0].ID)
	original, _ = original.SetNotes(original.Items[1].ID, "## Notes\n\ntwo heaps\n")

	data, err := Encode([]Checklist{original})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, diags, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d checklists, want 1", len(decoded))
	}

	got := decoded[0]
	if got.ID != original.ID || got.Title != original.Title {
		t.Errorf("identity fields changed: %+v", got)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("createdAt = %v, want %v", got.CreatedAt, original.CreatedAt)
	}
	if len(got.Items) != len(original.Items) {
		t.Fatalf("got %d items, want %d", len(got.Items), len(original.Items))
	}
	for i, item := range got.Items {
		want := original.Items[i]
		if item != want {
			t.Errorf("item %d = %+v, want %+v", i, item, want)
		}
	}

	reencoded, err := Encode(decoded)
	if err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Error("re-encoding a decoded payload changed the bytes")
	}
}

func TestCodec_EmptyEncodesAsArray(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Encode(nil) = %q, want %q", data, "[]")
	}
}

func TestCodec_MalformedPayload(t *testing.T) {
	if _, _, err := Decode([]byte("{oops")); err == nil {
		t.Error("expected a decode error for a malformed payload")
	}
}

func TestCodec_DropsBadEntries(t *testing.T) {
	payload := []byte(`[
  {"id": "a1", "title": "Good", "createdAt": "2025-03-14T09:00:00Z", "items": [
    {"id": "i1", "index": 0, "title": "Easy Problem 1", "difficulty": "easy", "completed": true, "notes": ""},
    {"id": "i2", "index": 1, "title": "??? Problem 1", "difficulty": "impossible", "completed": false, "notes": ""}
  ]},
  {"id": "b2", "title": "Bad", "createdAt": "yesterday", "items": []}
]`)

	decoded, diags, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("got %d checklists, want 1", len(decoded))
	}
	if len(decoded[0].Items) != 1 || decoded[0].Items[0].ID != "i1" {
		t.Errorf("expected only the valid item to survive, got %+v", decoded[0].Items)
	}
	if len(diags) != 2 {
		t.Errorf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
}

func TestCodec_ToleratesUnknownFields(t *testing.T) {
	payload := []byte(`[{"id": "a1", "title": "Sheet", "createdAt": "2025-03-14T09:00:00Z", "items": [], "color": "teal"}]`)

	decoded, diags, err := Decode(payload)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
	if len(decoded) != 1 || !decoded[0].CreatedAt.Equal(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected decode result: %+v", decoded)
	}
}
