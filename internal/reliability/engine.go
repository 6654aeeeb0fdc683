package reliability

// Calculator computes reliability indices for an input.
type Calculator interface {
	// Calculate returns the indices for in. It never fails; degenerate inputs
	// propagate IEEE-754 infinities or NaN into the result.
	Calculate(in Input) CalculationResult
}

// Engine implements Calculator with the fixed supply chain.
// The zero value is ready to use and safe for concurrent use.
type Engine struct{}

// NewEngine creates a new reliability engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Calculate computes the indices for in.
func (e *Engine) Calculate(in Input) CalculationResult {
	return Compute(in.Connections, in.AccidentPrice, in.PlannedPrice)
}

// Compute returns the reliability indices for n connections and the two energy prices.
//
// Every operation is rounded to float32 in the order below, so results are
// reproducible bit for bit:
//  1. wOc = Σ failure rates, the per-connection rate multiplied by n
//  2. tvOc = Σ (failure rate × restoration hours) / wOc
//  3. kaOc = wOc × tvOc / 8760
//  4. kpOc = 1.2 × (43 / 8760)
//  5. wDk = 2 × wOc × (kaOc + kpOc), wDc = wDk + 0.02
//  6. mathWNedA, mathWNedP from the fixed load constants
//  7. mathLoses = accidentPrice × mathWNedA + plannedPrice × mathWNedP
//
// No input is rejected. When wOc is exactly zero tvOc is infinite and the
// values derived from it are NaN.
func Compute(n, accidentPrice, plannedPrice float32) CalculationResult {
	var wOc, downtime float32
	for _, el := range supplyChain {
		rate := el.failureRate
		if el.perConnection {
			rate = float32(rate * n)
		}
		wOc = float32(wOc + rate)
		downtime = float32(downtime + float32(rate*el.restoration))
	}

	tvOc := float32(downtime / wOc)
	kaOc := float32(float32(wOc*tvOc) / HoursPerYear)
	kpOc := plannedDowntimeCoefficient()
	wDk := float32(float32(2*wOc) * float32(kaOc+kpOc))
	wDc := float32(wDk + SectionalBreakerFailureRate)

	mathWNedA := accidentEnergyNotSupplied()
	mathWNedP := plannedEnergyNotSupplied()
	mathLoses := float32(float32(accidentPrice*mathWNedA) + float32(plannedPrice*mathWNedP))

	return CalculationResult{
		WOc:       wOc,
		TvOc:      tvOc,
		KaOc:      kaOc,
		KpOc:      kpOc,
		WDk:       wDk,
		WDc:       wDc,
		MathWNedA: mathWNedA,
		MathWNedP: mathWNedP,
		MathLoses: mathLoses,
	}
}

// plannedDowntimeCoefficient returns kpOc. The operands are variables so the
// arithmetic is carried out in float32 instead of exact constant folding.
func plannedDowntimeCoefficient() float32 {
	factor, hours, year := float32(PlannedOutageFactor), float32(PlannedOutageHours), float32(HoursPerYear)
	return float32(factor * float32(hours/year))
}

func accidentEnergyNotSupplied() float32 {
	return product(accidentEnergyFactors[:])
}

func plannedEnergyNotSupplied() float32 {
	return product(plannedEnergyFactors[:])
}

// product multiplies factors left to right, rounding after each step.
func product(factors []float32) float32 {
	acc := factors[0]
	for _, f := range factors[1:] {
		acc = float32(acc * f)
	}
	return acc
}
