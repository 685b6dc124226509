// Package writers turns decoded alignment records into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (SAM text, TSV, JSON/JSONL).
//   - The core reader stays domain-only; the app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
