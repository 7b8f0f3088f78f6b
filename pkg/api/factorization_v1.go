// pkg/api/factorization_v1.go
package api

// TermV1 is one prime power: Prime^Exponent.
type TermV1 struct {
	Prime    int64 `json:"prime"`
	Exponent int   `json:"exponent"`
}

// FactorizationV1 is the stable JSON/JSONL schema for factorizations.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FactorizationV1 struct {
	Value   int64    `json:"value"`
	Factors []int64  `json:"factors"`
	Terms   []TermV1 `json:"terms,omitempty"`
	Prime   bool     `json:"prime"`
}
