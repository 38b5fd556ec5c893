package variants

import (
	"sort"
	"testing"

	"github.com/cognilex/bilex/pkg/bilex/abbrev"
	"github.com/cognilex/bilex/pkg/bilex/segment"
)

func generate(t *testing.T, phrase, class string, lang abbrev.Language) []string {
	t.Helper()
	segs, err := segment.Parse(phrase)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", phrase, err)
	}
	cands := Generate(segs, class, lang)
	out := make([]string, len(cands))
	for i, c := range cands {
		if c.UsedSubstitution {
			t.Errorf("Generate(%q): candidate %q marked substituted", phrase, c.Text)
		}
		out[i] = c.Text
	}
	sort.Strings(out)
	return out
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func english(t *testing.T) abbrev.Language {
	t.Helper()
	return abbrev.Builtin().Language("en")
}

func TestRoundTripIdentity(t *testing.T) {
	got := generate(t, "plain  two   words", "", abbrev.Language{})
	if !equalSets(got, []string{"plain two words"}) {
		t.Errorf("Got %v, want the normalized phrase alone", got)
	}
}

func TestOptionalRoundCardinality(t *testing.T) {
	got := generate(t, "a (b) (c) d", "", abbrev.Language{})
	want := []string{"a b c d", "a b d", "a c d", "a d"}
	if !equalSets(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestNonRoundBracketsInvisible(t *testing.T) {
	for _, phrase := range []string{
		"run [athletics]",
		"run [whatever else]",
		"run {m}",
		"run <coll.>",
	} {
		got := generate(t, phrase, "", abbrev.Language{})
		if !equalSets(got, []string{"run"}) {
			t.Errorf("Generate(%q) = %v, want [run]", phrase, got)
		}
	}
}

func TestRoundOnlyPhrase(t *testing.T) {
	got := generate(t, "(a) (b)", "", abbrev.Language{})
	want := []string{"a", "a b", "b"}
	if !equalSets(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestIgnoredOnlyPhrase(t *testing.T) {
	got := generate(t, "[only] {ignored} <stuff>", "", abbrev.Language{})
	if len(got) != 0 {
		t.Errorf("Got %v, want empty candidate set", got)
	}
}

func TestLeadingRoundBase(t *testing.T) {
	got := generate(t, "(I think) so", "", abbrev.Language{})
	want := []string{"I think so", "so"}
	if !equalSets(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestStartAbbreviation(t *testing.T) {
	got := generate(t, "(I think) sb. is running", "verb", english(t))
	want := []string{"I think sb. is running", "is running", "sb. is running"}
	if !equalSets(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestEndAbbreviation(t *testing.T) {
	got := generate(t, "to help sb.", "verb", english(t))
	want := []string{"help", "help sb.", "to help", "to help sb."}
	if !equalSets(got, want) {
		t.Errorf("Got %v, want %v", got, want)
	}
}

func TestClassAdditionScoped(t *testing.T) {
	// "to" is only start-optional for verbs.
	got := generate(t, "to and fro", "adv", english(t))
	if !equalSets(got, []string{"to and fro"}) {
		t.Errorf("Got %v, want the whole phrase only", got)
	}

	got = generate(t, "to and fro", "", english(t))
	if !equalSets(got, []string{"to and fro"}) {
		t.Errorf("Got %v, want the whole phrase only", got)
	}
}

func TestMidPhraseAbbreviationMandatory(t *testing.T) {
	// End-optional abbreviations only drop at the last word.
	got := generate(t, "give sth. away", "verb", english(t))
	if !equalSets(got, []string{"give sth. away"}) {
		t.Errorf("Got %v, want the whole phrase only", got)
	}
}

func TestSingleAbbreviationPhrase(t *testing.T) {
	got := generate(t, "sb.", "", english(t))
	if !equalSets(got, []string{"sb."}) {
		t.Errorf("Got %v, want [sb.]", got)
	}
}

func TestUnknownLanguage(t *testing.T) {
	got := generate(t, "to help sb.", "verb", abbrev.Builtin().Language("fr"))
	if !equalSets(got, []string{"to help sb."}) {
		t.Errorf("Got %v, want the whole phrase only", got)
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  a   b "); got != "a b" {
		t.Errorf("Normalize = %q, want %q", got, "a b")
	}
	if got := Normalize("   "); got != "" {
		t.Errorf("Normalize = %q, want empty", got)
	}
}
