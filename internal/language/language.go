package language

import "strings"

type record struct {
	part1  string // ISO 639-1 (2-letter)
	part2t string // ISO 639-2/T terminology (3-letter)
	part2b string // ISO 639-2/B bibliographic, empty when identical to part2t
	name   string // Human-readable name
}

var records = []record{
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"fr", "fra", "fre", "French"},
	{"de", "deu", "ger", "German"},
	{"it", "ita", "", "Italian"},
	{"pt", "por", "", "Portuguese"},
	{"ja", "jpn", "", "Japanese"},
	{"ko", "kor", "", "Korean"},
	{"zh", "zho", "chi", "Chinese"},
	{"ru", "rus", "", "Russian"},
	{"ar", "ara", "", "Arabic"},
	{"hi", "hin", "", "Hindi"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"sv", "swe", "", "Swedish"},
	{"da", "dan", "", "Danish"},
	{"no", "nor", "", "Norwegian"},
	{"fi", "fin", "", "Finnish"},
	{"cs", "ces", "cze", "Czech"},
	{"el", "ell", "gre", "Greek"},
	{"he", "heb", "", "Hebrew"},
	{"hu", "hun", "", "Hungarian"},
	{"id", "ind", "", "Indonesian"},
	{"ro", "ron", "rum", "Romanian"},
	{"th", "tha", "", "Thai"},
	{"tr", "tur", "", "Turkish"},
	{"uk", "ukr", "", "Ukrainian"},
	{"vi", "vie", "", "Vietnamese"},
}

// Index maps built at init time.
var (
	byName   map[string]*record
	byPart1  map[string]*record
	byPart2T map[string]*record
	byPart2B map[string]*record
)

func init() {
	byName = make(map[string]*record, len(records))
	byPart1 = make(map[string]*record, len(records))
	byPart2T = make(map[string]*record, len(records))
	byPart2B = make(map[string]*record, len(records))
	for i := range records {
		r := &records[i]
		byName[strings.ToLower(r.name)] = r
		byPart1[r.part1] = r
		byPart2T[r.part2t] = r
		if r.part2b != "" {
			byPart2B[r.part2b] = r
		}
	}
}

// Language is an immutable language identity backed by a canonical record.
// The zero value means "unknown": no record matched, or no tag was present.
// Two Language values compare equal with == exactly when they resolved to the
// same canonical record, regardless of which spelling produced them, so the
// type is usable directly as a map key.
type Language struct {
	rec *record
}

// Resolve normalizes a free-form language token to its canonical identity.
// The token is tried, in order, as a display name, a 2-letter code, a
// terminology 3-letter code, and a bibliographic 3-letter code; the first
// match wins. Unrecognized tokens yield the zero Language, never a guess.
func Resolve(token string) Language {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return Language{}
	}
	if r, ok := byName[token]; ok {
		return Language{rec: r}
	}
	if r, ok := byPart1[token]; ok {
		return Language{rec: r}
	}
	if r, ok := byPart2T[token]; ok {
		return Language{rec: r}
	}
	if r, ok := byPart2B[token]; ok {
		return Language{rec: r}
	}
	return Language{}
}

// MustResolve is Resolve for tokens known at compile time (defaults, tests).
// It panics on unrecognized input.
func MustResolve(token string) Language {
	l := Resolve(token)
	if l.IsZero() {
		panic("language: unrecognized token " + token)
	}
	return l
}

// IsZero reports whether the language is unknown/absent.
func (l Language) IsZero() bool {
	return l.rec == nil
}

// Part1 returns the ISO 639-1 code, or "" for the zero value.
func (l Language) Part1() string {
	if l.rec == nil {
		return ""
	}
	return l.rec.part1
}

// Part2T returns the ISO 639-2/T terminology code, or "" for the zero value.
func (l Language) Part2T() string {
	if l.rec == nil {
		return ""
	}
	return l.rec.part2t
}

// Part2B returns the ISO 639-2/B bibliographic code. Languages without a
// distinct bibliographic form fall back to the terminology code, which is the
// code stream metadata conventionally carries.
func (l Language) Part2B() string {
	if l.rec == nil {
		return ""
	}
	if l.rec.part2b != "" {
		return l.rec.part2b
	}
	return l.rec.part2t
}

// Name returns the display name, or "" for the zero value.
func (l Language) Name() string {
	if l.rec == nil {
		return ""
	}
	return l.rec.name
}

func (l Language) String() string {
	if l.rec == nil {
		return "unknown"
	}
	return l.rec.name
}

// Effective substitutes fallback when l is unknown. Used to default missing
// stream metadata and to pick the default-disposition subtitle.
func Effective(l, fallback Language) Language {
	if l.IsZero() {
		return fallback
	}
	return l
}
