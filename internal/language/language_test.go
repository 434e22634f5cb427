package language

import "testing"

func TestAll_ClosedSet(t *testing.T) {
	langs := All()
	if len(langs) != 12 {
		t.Fatalf("expected 12 languages, got %d", len(langs))
	}
	if langs[0] != Hindi || langs[len(langs)-1] != Assamese {
		t.Errorf("unexpected order: first %q, last %q", langs[0], langs[len(langs)-1])
	}

	langs[0] = "Klingon"
	if All()[0] != Hindi {
		t.Error("All must return a copy")
	}
}

func TestLanguage_Tag(t *testing.T) {
	tests := []struct {
		lang     Language
		expected string
	}{
		{Hindi, "hi"},
		{Tamil, "ta"},
		{Odia, "or"},
		{Assamese, "as"},
		{Punjabi, "pa"},
		{Language("Klingon"), "und"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			if got := tt.lang.Tag().String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Language
		wantErr  bool
	}{
		{name: "exact name", input: "Tamil", expected: Tamil},
		{name: "lower case", input: "bengali", expected: Bengali},
		{name: "padded", input: "  Urdu ", expected: Urdu},
		{name: "iso code", input: "kn", expected: Kannada},
		{name: "regional code", input: "pa-IN", expected: Punjabi},
		{name: "odia code", input: "or", expected: Odia},
		{name: "empty", input: "", wantErr: true},
		{name: "outside set", input: "French", wantErr: true},
		{name: "outside set code", input: "fr", wantErr: true},
		{name: "garbage", input: "!!", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLanguage_Valid(t *testing.T) {
	if !Gujarati.Valid() {
		t.Error("Gujarati should be valid")
	}
	if Language("English").Valid() {
		t.Error("English should not be valid")
	}
}
