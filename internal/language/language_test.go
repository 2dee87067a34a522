package language

import "testing"

func TestResolveSpellingsAgree(t *testing.T) {
	tests := []struct {
		input string
		part1 string
	}{
		// 2-letter codes
		{"en", "en"},
		{"EN", "en"},
		{"ja", "ja"},
		// terminology codes
		{"eng", "en"},
		{"fra", "fr"},
		{"deu", "de"},
		{"zho", "zh"},
		{"jpn", "ja"},
		// bibliographic codes
		{"fre", "fr"},
		{"ger", "de"},
		{"chi", "zh"},
		{"dut", "nl"},
		{"cze", "cs"},
		{"rum", "ro"},
		// display names
		{"English", "en"},
		{"french", "fr"},
		{"GERMAN", "de"},
		{" japanese ", "ja"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := Resolve(tt.input)
			if l.IsZero() {
				t.Fatalf("Resolve(%q) unexpectedly unknown", tt.input)
			}
			if l.Part1() != tt.part1 {
				t.Fatalf("Resolve(%q).Part1() = %q, want %q", tt.input, l.Part1(), tt.part1)
			}
		})
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, input := range []string{"", "  ", "xx", "xyz", "klingon", "123"} {
		t.Run(input, func(t *testing.T) {
			if l := Resolve(input); !l.IsZero() {
				t.Fatalf("Resolve(%q) = %v, want unknown", input, l)
			}
		})
	}
}

func TestEqualityAcrossSpellings(t *testing.T) {
	pairs := [][2]string{
		{"en", "eng"},
		{"eng", "English"},
		{"fre", "fra"},
		{"fr", "French"},
		{"chi", "chinese"},
	}
	for _, p := range pairs {
		a, b := Resolve(p[0]), Resolve(p[1])
		if a != b {
			t.Fatalf("Resolve(%q) != Resolve(%q)", p[0], p[1])
		}
	}
	if Resolve("en") == Resolve("es") {
		t.Fatal("distinct languages compare equal")
	}
	// Must be usable as a map key across spellings.
	m := map[Language]string{Resolve("fre"): "path"}
	if m[Resolve("fra")] != "path" {
		t.Fatal("map lookup across spellings failed")
	}
}

func TestPart2BFallsBackToTerminology(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "eng"}, // no distinct bibliographic form
		{"fr", "fre"},
		{"de", "ger"},
		{"zh", "chi"},
		{"ja", "jpn"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Resolve(tt.input).Part2B(); got != tt.expected {
				t.Fatalf("Part2B(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
	if got := (Language{}).Part2B(); got != "" {
		t.Fatalf("zero Part2B() = %q, want empty", got)
	}
}

func TestEffective(t *testing.T) {
	def := MustResolve("eng")
	if got := Effective(Language{}, def); got != def {
		t.Fatalf("Effective(zero, eng) = %v", got)
	}
	ja := MustResolve("ja")
	if got := Effective(ja, def); got != ja {
		t.Fatalf("Effective(ja, eng) = %v", got)
	}
}

func TestString(t *testing.T) {
	if got := MustResolve("eng").String(); got != "English" {
		t.Fatalf("String() = %q", got)
	}
	if got := (Language{}).String(); got != "unknown" {
		t.Fatalf("zero String() = %q", got)
	}
}

func TestMustResolvePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unrecognized token")
		}
	}()
	MustResolve("nope")
}
