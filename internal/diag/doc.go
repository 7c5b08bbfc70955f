// Package diag defines the diagnostic model shared by the parse and eval
// phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture
//     findings produced by the parser and the evaluator.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting, IO, or CLI integration.
// Rendering responsibilities live in internal/diagfmt; orchestration lives
// in internal/driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// Notes should be used sparingly: each note must add new context (e.g.
// "group opened here") rather than repeating the diagnostic message.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. The parser
// constructs a ReportBuilder via ReportError and chains WithNote before
// calling Emit. When no extra metadata is needed, phases may call
// Reporter.Report(...) directly. diag.BagReporter aggregates diagnostics
// into a Bag, which supports sorting and capacity limiting.
package diag
