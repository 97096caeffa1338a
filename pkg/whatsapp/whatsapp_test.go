package whatsapp

import (
	"strings"
	"testing"
)

func TestFormatScreeningReport(t *testing.T) {
	t.Parallel()

	msg := formatScreeningReport("Mia", "Moderate", 47.5)

	for _, want := range []string{"Mia", "Moderate", "47.5/100", "not a diagnosis"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("report message missing %q: %q", want, msg)
		}
	}
}
