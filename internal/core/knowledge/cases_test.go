package knowledge

import (
	"strings"
	"testing"
)

func TestCasesForQuery(t *testing.T) {
	t.Run("theft query returns theft cases first", func(t *testing.T) {
		cases := CasesForQuery("my mobile phone was stolen")
		if len(cases) == 0 {
			t.Fatal("expected cases for theft query")
		}
		if cases[0].Name != "State of Maharashtra vs. Rajesh Kumar" {
			t.Errorf("first case = %q, want mobile theft precedent", cases[0].Name)
		}
	})

	t.Run("never more than three cases", func(t *testing.T) {
		// Matches theft, family, consumer and criminal categories at once.
		cases := CasesForQuery("stolen phone divorce refund police")
		if len(cases) > 3 {
			t.Errorf("got %d cases, want at most 3", len(cases))
		}
	})

	t.Run("no duplicate cases", func(t *testing.T) {
		cases := CasesForQuery("theft stolen mobile laptop bike crime police")
		seen := map[string]bool{}
		for _, c := range cases {
			if seen[c.Name] {
				t.Errorf("case %q returned twice", c.Name)
			}
			seen[c.Name] = true
		}
	})

	t.Run("cross category scan when no category keyword matches", func(t *testing.T) {
		cases := CasesForQuery("passport impounded without hearing")
		if len(cases) == 0 {
			t.Fatal("expected fallback scan to find cases")
		}
		found := false
		for _, c := range cases {
			if c.Name == "Maneka Gandhi vs Union of India (1978)" {
				found = true
			}
		}
		if !found {
			t.Error("expected passport case in fallback scan results")
		}
	})

	t.Run("unrelated query returns nothing", func(t *testing.T) {
		if cases := CasesForQuery("zoning variance rooftop antennas"); len(cases) != 0 {
			t.Errorf("got %d cases, want none", len(cases))
		}
	})
}

func TestFormatCaseReferences(t *testing.T) {
	t.Run("empty input renders empty", func(t *testing.T) {
		if got := FormatCaseReferences(nil); got != "" {
			t.Errorf("got %q, want empty string", got)
		}
	})

	t.Run("renders header and per case fields", func(t *testing.T) {
		out := FormatCaseReferences(caseDatabase["theft"][:1])
		for _, want := range []string{
			"**📚 Relevant Past Cases:**",
			"**🏛️ Case 1: State of Maharashtra vs. Rajesh Kumar (2019)**",
			"**Court**: Bombay High Court",
			"**Facts**: Mobile phone theft from public transport",
			"**Judgment**: Convicted under IPC 379",
			"**Legal Precedent**: Mobile theft cases require strong digital evidence",
			"**Relevant Law**: IPC Section 379 - Theft",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("formatted output missing %q", want)
			}
		}
	})

	t.Run("relevant law line omitted when unset", func(t *testing.T) {
		out := FormatCaseReferences(caseDatabase["consumer"][:1])
		if strings.Contains(out, "**Relevant Law**") {
			t.Error("expected no relevant law line for case without one")
		}
	})
}
