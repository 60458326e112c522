package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/RozmiDan/racing_simulator/internal/processor"
)

func runShell(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewShell(processor.NewProcessor(), strings.NewReader(input), &out).Run(); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestShellMixedRace(t *testing.T) {
	// mixed, 60, rainy, boots + mortar, start, no new race
	out := runShell(t, "3\n60\n2\n1\n5\ns\nn\n")

	for _, want := range []string{
		"Choose the race type:",
		"5) Baba Yaga Mortar",
		"1) Seven-League Boots (registered)",
		"Winner: Seven-League Boots with time 4.40",
		"Start a new race? (y/n)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Exiting.") {
		t.Errorf("unexpected quit:\n%s", out)
	}
}

func TestShellRetriesInvalidInput(t *testing.T) {
	out := runShell(t, "7\nabc\n1\n-5\nfar\n50\n0\n1\nx\n9\n1\ns\nmaybe\nn\n")

	for _, want := range []string{
		"Error: enter a value from 1 to 3 or q.",
		"Error: enter a valid distance.",
		"Error: enter a value from 1 to 4.",
		"Error: enter an action from the list.",
		"Error: enter y or n.",
		"Winner: Seven-League Boots with time 3.33",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestShellRequiresParticipant(t *testing.T) {
	out := runShell(t, "2\n100\n1\ns\nq\n")

	if !strings.Contains(out, "Error: register at least one participant.") {
		t.Errorf("expected participant error:\n%s", out)
	}
	if !strings.Contains(out, "Exiting.") {
		t.Errorf("expected quit:\n%s", out)
	}
}

func TestShellDuplicateRegistration(t *testing.T) {
	out := runShell(t, "1\n100\n1\n4\n4\ns\nn\n")

	if !strings.Contains(out, "Error: this vehicle is already registered.") {
		t.Errorf("expected duplicate error:\n%s", out)
	}
	if !strings.Contains(out, "Winner: Centaur") {
		t.Errorf("expected Centaur to win:\n%s", out)
	}
}

func TestShellPlayAgain(t *testing.T) {
	out := runShell(t, "1\n50\n1\n1\ns\ny\n2\n80\n1\n1\ns\nn\n")

	if !strings.Contains(out, "Winner: Seven-League Boots with time 3.33") {
		t.Errorf("first race missing:\n%s", out)
	}
	if !strings.Contains(out, "Winner: Baba Yaga Mortar with time 12.67") {
		t.Errorf("second race missing:\n%s", out)
	}
}

func TestShellQuitAndEOF(t *testing.T) {
	for _, input := range []string{"q\n", "1\nq\n", "", "1\n10\n"} {
		out := runShell(t, input)
		if !strings.Contains(out, "Exiting.") {
			t.Errorf("%q: expected quit:\n%s", input, out)
		}
	}
}
