package reliability

const (
	// HoursPerYear is the number of hours in a non-leap year.
	HoursPerYear = 8760

	// PlannedOutageHours is the longest planned outage of the 110/10 kV transformer per year.
	PlannedOutageHours = 43

	// PlannedOutageFactor scales PlannedOutageHours to the planned-downtime coefficient.
	PlannedOutageFactor = 1.2

	// SectionalBreakerFailureRate is the failure frequency of the 10 kV sectional breaker
	// in failures per year. It is added to the double-circuit failure frequency.
	SectionalBreakerFailureRate = 0.02

	// PeakLoadHours is the annual peak-load utilisation time in hours.
	PeakLoadHours = 6451
)

// element is one unit of the single-circuit supply chain.
type element struct {
	failureRate   float32 // failures per year
	restoration   float32 // mean restoration time, hours
	perConnection bool    // failureRate is multiplied by the connection count
}

// supplyChain lists the elements in series, in the order their terms are summed.
// The per-connection element must stay last.
var supplyChain = [...]element{
	{failureRate: 0.01, restoration: 30},                     // 110 kV breaker
	{failureRate: 0.07, restoration: 10},                     // 110 kV line, 10 km
	{failureRate: 0.015, restoration: 100},                   // 110/10 kV transformer
	{failureRate: 0.02, restoration: 15},                     // 10 kV input breaker
	{failureRate: 0.03, restoration: 2, perConnection: true}, // 10 kV connection
}

// Factors of the energy-not-supplied expectations, multiplied left to right.
var (
	// failure rate, restoration time ×10^-3, peak load 5.12 MW in kW, peak-load hours
	accidentEnergyFactors = [...]float32{0.01, 45, 1e-3, 5.12, 1e3, PeakLoadHours}

	// planned downtime ×10^3, peak load 5.12 MW in kW, peak-load hours
	plannedEnergyFactors = [...]float32{4, 1e3, 5.12, 1e3, PeakLoadHours}
)
