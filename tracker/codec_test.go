package tracker

import (
	"reflect"
	"strings"
	"testing"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	records := buildCollection(t)

	data, err := Encode(records)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}

	decoded, diags, err := Decode(data)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	assertCollectionsEqual(t, records, decoded)
	if err := ValidateCollection(decoded); err != nil {
		t.Errorf("decoded collection violates invariants: %v", err)
	}

	// A second pass must be byte-identical: the wire form is canonical.
	again, err := Encode(decoded)
	if err != nil {
		t.Fatalf("failed to re-encode: %v", err)
	}
	if string(again) != string(data) {
		t.Error("expected encode∘decode∘encode to be byte-stable")
	}
}

// assertCollectionsEqual compares collections field by field, using
// time.Time.Equal for timestamps (wall-clock identity, not struct
// identity: parsing strips monotonic readings and location pointers).
func assertCollectionsEqual(t *testing.T, want, got Collection) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) {
			t.Errorf("record %d: expected date %v, got %v", i, want[i].Date, got[i].Date)
		}
		if len(got[i].Problems) != len(want[i].Problems) {
			t.Fatalf("record %d: expected %d problems, got %d", i, len(want[i].Problems), len(got[i].Problems))
		}
		for j := range want[i].Problems {
			w, g := want[i].Problems[j], got[i].Problems[j]
			if g.ID != w.ID || g.Name != w.Name || g.Difficulty != w.Difficulty {
				t.Errorf("record %d problem %d: expected %+v, got %+v", i, j, w, g)
			}
			if !reflect.DeepEqual(g.Tags, w.Tags) {
				t.Errorf("record %d problem %d: expected tags %v, got %v", i, j, w.Tags, g.Tags)
			}
			if !g.CreatedAt.Equal(w.CreatedAt) {
				t.Errorf("record %d problem %d: expected createdAt %v, got %v", i, j, w.CreatedAt, g.CreatedAt)
			}
		}
	}
}

func TestEncode_EmptyCollection(t *testing.T) {
	data, err := Encode(nil)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("expected empty array, got %s", data)
	}
}

func TestEncode_OmitsEmptyTags(t *testing.T) {
	var records Collection
	records, _, _ = records.Add(date(2025, 3, 14), "Two Sum", DifficultyEasy, nil)

	data, err := Encode(records)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	if strings.Contains(string(data), `"tags"`) {
		t.Errorf("expected tags field omitted, got %s", data)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestDecode_ToleratesUnknownFields(t *testing.T) {
	payload := `[
	  {
	    "date": "2025-03-14T00:00:00Z",
	    "note": "future field",
	    "problems": [
	      {"id": "abc", "name": "Two Sum", "difficulty": "easy",
	       "createdAt": "2025-03-14T09:00:00Z", "starred": true}
	    ]
	  }
	]`

	records, diags, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(records) != 1 || records[0].Problems[0].Name != "Two Sum" {
		t.Errorf("expected problem to load, got %+v", records)
	}
}

func TestDecode_ToleratesEmptyTagList(t *testing.T) {
	payload := `[
	  {"date": "2025-03-14T00:00:00Z", "problems": [
	    {"id": "abc", "name": "Two Sum", "difficulty": "easy",
	     "tags": [], "createdAt": "2025-03-14T09:00:00Z"}
	  ]}
	]`

	records, _, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if records[0].Problems[0].Tags != nil {
		t.Errorf("expected empty tags normalized to absent, got %v", records[0].Problems[0].Tags)
	}
}

func TestDecode_DropsRecordWithBadDate(t *testing.T) {
	payload := `[
	  {"date": "not-a-date", "problems": [
	    {"id": "abc", "name": "Two Sum", "difficulty": "easy", "createdAt": "2025-03-14T09:00:00Z"}
	  ]},
	  {"date": "2025-03-15T00:00:00Z", "problems": [
	    {"id": "def", "name": "Valid Parentheses", "difficulty": "easy", "createdAt": "2025-03-15T09:00:00Z"}
	  ]}
	]`

	records, diags, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 surviving record, got %d", len(records))
	}
	if records[0].Problems[0].ID != "def" {
		t.Errorf("expected the well-formed record to survive, got %+v", records[0])
	}
	if len(diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %v", diags)
	}
}

func TestDecode_DropsProblemWithUnknownDifficulty(t *testing.T) {
	payload := `[
	  {"date": "2025-03-14T00:00:00Z", "problems": [
	    {"id": "abc", "name": "Two Sum", "difficulty": "impossible", "createdAt": "2025-03-14T09:00:00Z"},
	    {"id": "def", "name": "3Sum", "difficulty": "medium", "createdAt": "2025-03-14T10:00:00Z"}
	  ]}
	]`

	records, diags, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(records) != 1 || len(records[0].Problems) != 1 {
		t.Fatalf("expected 1 surviving problem, got %+v", records)
	}
	if records[0].Problems[0].ID != "def" {
		t.Errorf("expected the valid problem to survive, got %+v", records[0].Problems[0])
	}
	if len(diags) != 1 {
		t.Errorf("expected 1 diagnostic, got %v", diags)
	}
}

func TestDecode_DropsProblemWithBadCreatedAt(t *testing.T) {
	payload := `[
	  {"date": "2025-03-14T00:00:00Z", "problems": [
	    {"id": "abc", "name": "Two Sum", "difficulty": "easy", "createdAt": "yesterday"}
	  ]}
	]`

	records, diags, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	// The only problem was dropped, so the record collapses too.
	if len(records) != 0 {
		t.Errorf("expected no records, got %+v", records)
	}
	if len(diags) != 2 {
		t.Errorf("expected diagnostics for the problem and the emptied record, got %v", diags)
	}
}

func TestDecode_PreservesTimestampPrecision(t *testing.T) {
	payload := `[
	  {"date": "2025-03-14T10:30:00.123456789+01:00", "problems": [
	    {"id": "abc", "name": "Two Sum", "difficulty": "easy",
	     "createdAt": "2025-03-14T10:30:00.123Z"}
	  ]}
	]`

	records, _, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}

	data, err := Encode(records)
	if err != nil {
		t.Fatalf("failed to encode: %v", err)
	}
	again, _, err := Decode(data)
	if err != nil {
		t.Fatalf("failed to re-decode: %v", err)
	}
	if !again[0].Date.Equal(records[0].Date) {
		t.Errorf("expected date to round-trip losslessly, got %v vs %v", again[0].Date, records[0].Date)
	}
	if !again[0].Problems[0].CreatedAt.Equal(records[0].Problems[0].CreatedAt) {
		t.Errorf("expected createdAt to round-trip losslessly")
	}
}
