// Package output turns factorizations into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, TSV, JSON/JSONL).
//   - The core stays domain-only; the app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package output
