package narrative

import (
	"strings"
	"testing"
)

func TestSmartJoin_CapitalizesAndTerminates(t *testing.T) {
	t.Parallel()

	got := SmartJoin([]string{"the wind picks up", "leaves scatter!"}, LengthShort)
	if got != "The wind picks up. Leaves scatter!" {
		t.Errorf("got %q", got)
	}
}

func TestSmartJoin_MultiByteTerminators(t *testing.T) {
	t.Parallel()

	// An ellipsis or other multi-byte ending must be recognised as terminal
	// punctuation, not doubled up with a period.
	got := SmartJoin([]string{"the tunnel goes on…", "ánh sáng mờ dần…"}, LengthShort)
	if strings.Contains(got, "….") {
		t.Errorf("ellipsis ending re-terminated: %q", got)
	}
	if got != "The tunnel goes on… Ánh sáng mờ dần…" {
		t.Errorf("got %q", got)
	}
}

func TestSmartJoin_DropsEmptySentences(t *testing.T) {
	t.Parallel()

	got := SmartJoin([]string{"", "  ", "a quiet clearing"}, LengthShort)
	if got != "A quiet clearing." {
		t.Errorf("got %q", got)
	}
	if SmartJoin(nil, LengthShort) != "" {
		t.Error("empty input should produce an empty string")
	}
}

func TestSmartJoin_DetailedParagraphBreaks(t *testing.T) {
	t.Parallel()

	got := SmartJoin([]string{"one", "two", "three", "four", "five"}, LengthDetailed)
	if strings.Count(got, "\n\n") != 1 {
		t.Errorf("want one paragraph break after three sentences: %q", got)
	}
}
