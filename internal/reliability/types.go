// Package reliability computes reliability indices of a single-circuit substation supply
// chain and the expected losses from energy not supplied.
package reliability

import "math"

// Input holds the three user-supplied scalars of a calculation.
type Input struct {
	// Connections is the number of 10 kV connections (n).
	Connections float32

	// AccidentPrice is the price per kWh not supplied during an unplanned outage.
	AccidentPrice float32

	// PlannedPrice is the price per kWh not supplied during a planned outage.
	PlannedPrice float32
}

// CalculationResult contains the nine derived indices of one calculation.
// It is a plain value; two results are equal when all fields are equal.
type CalculationResult struct {
	// WOc is the failure frequency of the single-circuit chain (1/year).
	WOc float32

	// TvOc is the mean restoration time of the chain (hours).
	TvOc float32

	// KaOc is the accidental-downtime coefficient (dimensionless).
	KaOc float32

	// KpOc is the planned-downtime coefficient (dimensionless).
	KpOc float32

	// WDk is the double-circuit failure frequency accounting for downtime (1/year).
	WDk float32

	// WDc is WDk plus the sectional breaker contribution (1/year).
	WDc float32

	// MathWNedA is the expected energy not supplied by accidental outages (kWh).
	MathWNedA float32

	// MathWNedP is the expected energy not supplied by planned outages (kWh).
	MathWNedP float32

	// MathLoses is the expected monetary loss (UAH).
	MathLoses float32
}

// HasNonFinite reports whether any field is an infinity or NaN.
// This happens only when the chain failure frequency cancels to exactly zero.
func (r CalculationResult) HasNonFinite() bool {
	for _, v := range [...]float32{
		r.WOc, r.TvOc, r.KaOc, r.KpOc, r.WDk, r.WDc, r.MathWNedA, r.MathWNedP, r.MathLoses,
	} {
		f := float64(v)
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return true
		}
	}
	return false
}
