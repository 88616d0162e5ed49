// Package stylelog provides leveled logging for a stylesheet compile
// pass, with a full in-memory history and CSS-block rendering.
//
// # Channels
//
// Messages at or above the minimum level are emitted as
// "<LEVEL> :: <message>". WARN, INFO and DEBUG go to the notice channel
// (stdout); ERROR and FATAL go to the error channel (stderr), which the
// host may treat as an abort signal via Config.OnError. The library
// itself never exits the process.
//
// # Features
//
//   - Global package-level functions (no dependency injection needed)
//   - Record always, emit conditionally: every message is kept in history
//     regardless of the threshold, so the audit trail is complete even at
//     a quiet verbosity setting
//   - Threshold filtering via Config.MinimumLevel or the STYLELOG_LEVEL
//     environment variable; "ALL" and "OFF" as special settings
//   - CSS rule-block rendering of the history and a static help table
//   - Optional ANSI color for the level tag via Config.Colorize
//
// # Usage
//
// Initialize once at the start of the compile pass:
//
//	stylelog.Init(stylelog.Config{MinimumLevel: "WARN"})
//	stylelog.InitLevel("ALL")
//
// Log from macro expansions:
//
//	stylelog.Warn("deprecated mixin 'shadow-box'")
//	stylelog.Errorf("undefined variable $%s", name)
//
// Render the accumulated history into the output stylesheet:
//
//	fmt.Println(stylelog.RenderHistory())
//
// # Defensive normalization
//
// The API returns no errors. Unknown level names coerce to INFO, unknown
// threshold names fall back to INFO, and calling Log before Init behaves
// as if Init ran with INFO first. A threshold typo therefore silently
// means INFO; see ParseThreshold.
package stylelog
