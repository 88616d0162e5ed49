package stylelog

import (
	"strings"
	"testing"
)

func TestRenderHistoryFiltersBelowThreshold(t *testing.T) {
	captureOutput(t)

	Init(Config{MinimumLevel: "WARN"})
	Log("INFO", "a")
	Log("WARN", "b")
	Log("ERROR", "c")

	block := RenderHistory()
	if block.Selector != ".log-history" {
		t.Fatalf("unexpected selector: %q", block.Selector)
	}
	want := []Entry{{"WARN", "b"}, {"ERROR", "c"}}
	if len(block.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), block.Entries)
	}
	for i, e := range want {
		if block.Entries[i] != e {
			t.Fatalf("entry %d: expected %v, got %v", i, e, block.Entries[i])
		}
	}
}

func TestRenderHistoryOrdering(t *testing.T) {
	captureOutput(t)

	Init(Config{MinimumLevel: "ALL"})
	Fatal("last level")
	Debug("first message")
	Debug("second message")

	block := RenderHistory()
	want := []Entry{
		{"DEBUG", "first message"},
		{"DEBUG", "second message"},
		{"FATAL", "last level"},
	}
	if len(block.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %v", len(want), block.Entries)
	}
	for i, e := range want {
		if block.Entries[i] != e {
			t.Fatalf("entry %d: severity/insertion order broken, expected %v got %v", i, e, block.Entries[i])
		}
	}
}

func TestRenderHistoryEmptyWhenOff(t *testing.T) {
	captureOutput(t)

	Init(Config{MinimumLevel: "OFF"})
	Error("dropped")

	if block := RenderHistory(); len(block.Entries) != 0 {
		t.Fatalf("OFF logger should render an empty history, got: %v", block.Entries)
	}
}

func TestRenderHelpIsStatic(t *testing.T) {
	captureOutput(t)

	before := RenderHelp()
	Init(Config{MinimumLevel: "OFF"})
	Fatal("ignored")
	after := RenderHelp()

	if before.Selector != ".log-help" || after.Selector != ".log-help" {
		t.Fatalf("unexpected selector: %q / %q", before.Selector, after.Selector)
	}
	wantOrder := []string{"OFF", "FATAL", "ERROR", "WARN", "INFO", "DEBUG"}
	for _, b := range []Block{before, after} {
		if len(b.Entries) != len(wantOrder) {
			t.Fatalf("help table should have six entries, got %v", b.Entries)
		}
		for i, name := range wantOrder {
			if b.Entries[i].Property != name {
				t.Fatalf("help entry %d should be %s, got %s", i, name, b.Entries[i].Property)
			}
			if b.Entries[i].Value == "" {
				t.Fatalf("help entry %s should carry a description", name)
			}
		}
	}
}

func TestBlockString(t *testing.T) {
	block := Block{
		Selector: ".log-history",
		Entries: []Entry{
			{"WARN", "be careful"},
			{"ERROR", `quote " and slash \`},
		},
	}
	got := block.String()
	want := ".log-history {\n" +
		"  WARN: \"be careful\";\n" +
		"  ERROR: \"quote \\\" and slash \\\\\";\n" +
		"}"
	if got != want {
		t.Fatalf("unexpected rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestBlockStringEmpty(t *testing.T) {
	got := Block{Selector: ".log-history"}.String()
	if got != ".log-history {\n}" {
		t.Fatalf("empty block rendering: %q", got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Fatalf("empty block should have one newline, got %q", got)
	}
}
