package response_models

import (
	"encoding/json"
	"math"
)

// Rupees is a whole-rupee amount. Decoding accepts any JSON number and rounds it.
type Rupees int

func (r *Rupees) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*r = Rupees(math.Round(f))
	return nil
}
