package bioclim

import "easy-bioclim/internal/types"

// VariableVector holds the fetch result for one point. Values always carries
// all 19 BIO codes; a nil value is a missing reading. FetchError records why
// a fetch produced no data, and is empty on success.
type VariableVector struct {
	Values     map[string]*float64 `json:"values"`
	FetchError string              `json:"fetchError,omitempty"`
}

// NewMissingVector builds a vector with every variable missing, recording
// the failure reason. Used when a point's fetch fails so the row-count
// invariant still holds.
func NewMissingVector(reason string) VariableVector {
	values := make(map[string]*float64, len(types.BioVariables))
	for _, v := range types.BioVariables {
		values[v.Code] = nil
	}
	return VariableVector{
		Values:     values,
		FetchError: reason,
	}
}

// ResultRow joins a point's identity with its fetched variables.
type ResultRow struct {
	Name       string              `json:"name"`
	Longitude  float64             `json:"longitude"`
	Latitude   float64             `json:"latitude"`
	Variables  map[string]*float64 `json:"variables"`
	FetchError string              `json:"fetchError,omitempty"`
}

// ResultTable is the assembled output: one row per input point, in input
// order. Warnings names the points whose fetch failed.
type ResultTable struct {
	Rows     []ResultRow `json:"rows"`
	Warnings []string    `json:"warnings,omitempty"`
}
