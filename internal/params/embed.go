package params

import (
	_ "embed"
	"fmt"

	"github.com/rshade/daccost/internal/numeric"
)

// defaultsJSON is the default parameter table compiled into the binary.
// Scenario fields describe a 1 MtCO2/yr reference facility; the technology
// entries are EIA Annual Energy Outlook style cost and performance figures
// (reference plant size, overnight cost, O&M, heat rate, lead time).
//
//go:embed data/parameters.json
var defaultsJSON []byte

// Defaults returns a fresh copy of the embedded default parameter table.
// Each call parses anew, so callers may mutate the result freely.
func Defaults() (*Set[numeric.Float], error) {
	s, err := Parse(defaultsJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded defaults: %w", err)
	}
	return s, nil
}
