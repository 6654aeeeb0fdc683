// Package report renders reliability results for people and machines.
//
// Every result field has a stable snake_case key, a Ukrainian display label
// and a unit. Values are shown with four decimal places.
package report

import (
	"fmt"

	"github.com/rshade/reliability-calc/internal/reliability"
)

// ExpectationsHeading introduces the energy-not-supplied and loss rows.
const ExpectationsHeading = "Математичні сподівання:"

// Units used by the result rows.
const (
	UnitPerYear = "рік^-1"
	UnitHours   = "год"
	UnitKWh     = "кВт*год"
	UnitUAH     = "грн"
)

// Row is one displayed result field.
type Row struct {
	Key   string
	Label string
	Unit  string
	Value float32

	// Expectation marks rows listed under ExpectationsHeading.
	Expectation bool
}

// Rows returns the fields of r in display order.
func Rows(r reliability.CalculationResult) []Row {
	return []Row{
		{Key: "w_oc", Label: "Частота відмов (W_oc)", Unit: UnitPerYear, Value: r.WOc},
		{Key: "t_v_oc", Label: "Середній час відновлення (t_v_oc)", Unit: UnitHours, Value: r.TvOc},
		{Key: "k_a_oc", Label: "Коефіцієнт аварійного простою (k_a_oc)", Value: r.KaOc},
		{Key: "k_p_oc", Label: "Коефіцієнт планового простою (k_p_oc)", Value: r.KpOc},
		{Key: "w_dk", Label: "Частота відмов (W_dk)", Unit: UnitPerYear, Value: r.WDk},
		{Key: "w_dc", Label: "Частота відмов з урахуванням вимикача (W_dc)", Unit: UnitPerYear, Value: r.WDc},
		{Key: "math_w_ned_a", Label: "аварійних поломок (math_W_ned_a)", Unit: UnitKWh, Value: r.MathWNedA, Expectation: true},
		{Key: "math_w_ned_p", Label: "планових поломок (math_W_ned_p)", Unit: UnitKWh, Value: r.MathWNedP, Expectation: true},
		{Key: "math_loses", Label: "збитків (math_loses)", Unit: UnitUAH, Value: r.MathLoses, Expectation: true},
	}
}

// Input labels.
const (
	LabelConnections   = "Підключення"
	LabelAccidentPrice = "Ціна аварії"
	LabelPlannedPrice  = "Планова ціна"
)

// FormatValue renders v with four decimal places. Infinities render as
// "+Inf" or "-Inf" and NaN as "NaN".
func FormatValue(v float32) string {
	return fmt.Sprintf("%.4f", v)
}

// display joins a formatted value and its unit.
func (r Row) display() string {
	if r.Unit == "" {
		return FormatValue(r.Value)
	}
	return FormatValue(r.Value) + " " + r.Unit
}
