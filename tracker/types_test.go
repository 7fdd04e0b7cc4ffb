package tracker

import (
	"errors"
	"testing"
)

func TestDifficulty_Ordering(t *testing.T) {
	if !(DifficultyEasy.Rank() < DifficultyMedium.Rank() && DifficultyMedium.Rank() < DifficultyHard.Rank()) {
		t.Error("expected easy < medium < hard")
	}
}

func TestDifficulty_IsValid(t *testing.T) {
	for _, d := range ValidDifficulties() {
		if !d.IsValid() {
			t.Errorf("expected %q valid", d)
		}
	}
	if Difficulty("extreme").IsValid() {
		t.Error("expected 'extreme' invalid")
	}
	if Difficulty("").IsValid() {
		t.Error("expected unset sentinel invalid")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		ok    bool
	}{
		{"easy", DifficultyEasy, true},
		{"MEDIUM", DifficultyMedium, true},
		{" hard ", DifficultyHard, true},
		{"", "", false},
		{"impossible", "", false},
	}

	for _, test := range tests {
		got, err := ParseDifficulty(test.input)
		if test.ok {
			if err != nil {
				t.Errorf("ParseDifficulty(%q): unexpected error %v", test.input, err)
			}
			if got != test.want {
				t.Errorf("ParseDifficulty(%q) = %q, want %q", test.input, got, test.want)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidDifficulty) {
			t.Errorf("ParseDifficulty(%q): expected ErrInvalidDifficulty, got %v", test.input, err)
		}
	}
}

func TestTagPalette(t *testing.T) {
	palette := TagPalette()
	if len(palette) != 18 {
		t.Errorf("expected 18 predefined tags, got %d", len(palette))
	}
	seen := make(map[string]bool)
	for _, tag := range palette {
		if seen[tag] {
			t.Errorf("duplicate palette tag %q", tag)
		}
		seen[tag] = true
	}
	if !seen["Dynamic Programming"] || !seen["Stack & Queue"] {
		t.Error("expected well-known palette entries present")
	}
}
