package output

import (
	"strings"
	"testing"

	"github.com/lendkit/lendkit/internal/runner"
)

func sampleReports() []runner.Report {
	return []runner.Report{
		{
			Name: "House",
			Type: "amortization",
			Fields: []runner.Field{
				{Label: "Monthly Payment", Value: "$599.55"},
				{Label: "Total Interest", Value: "$115,838.19"},
			},
		},
		{
			Name: "Cards",
			Type: "credit-card",
			Fields: []runner.Field{
				{Label: "Months To Payoff", Value: "11"},
			},
		},
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf strings.Builder
	PrettyFormat(&buf, sampleReports())
	out := buf.String()

	for _, want := range []string{
		"--- House (amortization) ---",
		"--- Cards (credit-card) ---",
		"Monthly Payment",
		"$599.55",
		"Months To Payoff",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, out)
		}
	}

	// Reports are separated by a blank line.
	if !strings.Contains(out, "\n\n") {
		t.Errorf("PrettyFormat output missing report separator:\n%s", out)
	}
}

func TestPrettyFormatEmpty(t *testing.T) {
	var buf strings.Builder
	PrettyFormat(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("PrettyFormat(nil) wrote %q, expected nothing", buf.String())
	}
}

func TestCsvFormat(t *testing.T) {
	var buf strings.Builder
	CsvFormat(&buf, sampleReports())
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("len(lines) = %d, expected header plus three rows:\n%s", len(lines), out)
	}
	if lines[0] != `"job","type","field","value"` {
		t.Errorf("header = %s, expected the standard header", lines[0])
	}
	if lines[1] != `"House","amortization","Monthly Payment","$599.55"` {
		t.Errorf("lines[1] = %s", lines[1])
	}
	if lines[3] != `"Cards","credit-card","Months To Payoff","11"` {
		t.Errorf("lines[3] = %s", lines[3])
	}
}
