package stylelog

import (
	"fmt"
	"strings"
)

// Entry is one property/value pair of a rendered block.
type Entry struct {
	Property string
	Value    string
}

// Block is the structured output form used by the stylesheet host: a
// CSS-like rule block with a selector and ordered property/value entries.
// Duplicate properties are legal, one per recorded message.
type Block struct {
	Selector string
	Entries  []Entry
}

// String renders the block as CSS text:
//
//	.log-history {
//	  WARN: "be careful";
//	}
//
// Values are double-quoted with embedded quotes and backslashes escaped.
func (b Block) String() string {
	var sb strings.Builder
	sb.WriteString(b.Selector)
	sb.WriteString(" {\n")
	for _, e := range b.Entries {
		fmt.Fprintf(&sb, "  %s: %s;\n", e.Property, quoteCSS(e.Value))
	}
	sb.WriteString("}")
	return sb.String()
}

func quoteCSS(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

// RenderHistory returns the accumulated history as a block, filtered the
// same way emission is: only levels at or above the minimum contribute,
// and empty buckets contribute nothing. Levels appear in ascending
// severity order, messages in insertion order. Pure read; callable any
// number of times.
func RenderHistory() Block {
	logMutex.Lock()
	defer logMutex.Unlock()
	ensureInitialized()

	block := Block{Selector: ".log-history"}
	if !enabled {
		return block
	}
	for _, l := range AllLevels() {
		if l < minimum {
			continue
		}
		for _, msg := range history[l] {
			block.Entries = append(block.Entries, Entry{Property: l.String(), Value: msg})
		}
	}
	return block
}

// helpEntries is ordered by descending severity, OFF first.
var helpEntries = []Entry{
	{"OFF", "disable logging entirely; nothing is recorded or emitted"},
	{"FATAL", "unrecoverable failures; emitted on the error channel and may abort the compile"},
	{"ERROR", "hard errors; emitted on the error channel and may abort the compile"},
	{"WARN", "suspicious conditions worth fixing; never aborts the compile"},
	{"INFO", "progress notes; the default minimum level"},
	{"DEBUG", "verbose diagnostics for stylesheet authors"},
}

// RenderHelp returns the static help table describing each threshold
// setting. It does not depend on logger state and needs no Init.
func RenderHelp() Block {
	return Block{Selector: ".log-help", Entries: append([]Entry{}, helpEntries...)}
}
