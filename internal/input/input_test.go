package input

import (
	"bytes"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/reliability-calc/internal/reliability"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float32
		wantOK bool
	}{
		{name: "integer", raw: "6", want: 6, wantOK: true},
		{name: "decimal", raw: "23.6", want: 23.6, wantOK: true},
		{name: "negative", raw: "-4", want: -4, wantOK: true},
		{name: "zero", raw: "0", want: 0, wantOK: true},
		{name: "exponent", raw: "1.5e2", want: 150, wantOK: true},
		{name: "surrounding whitespace", raw: "  17.6\n", want: 17.6, wantOK: true},
		{name: "empty", raw: "", want: 99, wantOK: false},
		{name: "blank", raw: "   ", want: 99, wantOK: false},
		{name: "comma decimal separator", raw: "23,6", want: 99, wantOK: false},
		{name: "letters", raw: "six", want: 99, wantOK: false},
		{name: "infinity", raw: "Inf", want: 99, wantOK: false},
		{name: "nan", raw: "NaN", want: 99, wantOK: false},
		{name: "overflows float32", raw: "1e39", want: 99, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.raw, 99)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_AllValid(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	got := Parse(Raw{Connections: "10", AccidentPrice: "30", PlannedPrice: "12.5"}, logger)

	assert.Equal(t, reliability.Input{Connections: 10, AccidentPrice: 30, PlannedPrice: 12.5}, got)
	assert.Empty(t, buf.String(), "no warnings expected")
}

func TestParse_FallsBackPerField(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	got := Parse(Raw{Connections: "many", AccidentPrice: "40", PlannedPrice: ""}, logger)

	assert.Equal(t, DefaultConnections, got.Connections)
	assert.Equal(t, float32(40), got.AccidentPrice)
	assert.Equal(t, DefaultPlannedPrice, got.PlannedPrice)

	out := buf.String()
	assert.Contains(t, out, `"field":"connections"`)
	assert.Contains(t, out, `"value":"many"`)
	assert.Contains(t, out, `"field":"planned_price"`)
	assert.NotContains(t, out, `"field":"accident_price"`)
}

func TestParse_EmptyYieldsDefaults(t *testing.T) {
	logger := zerolog.New(io.Discard)

	got := Parse(Raw{}, logger)
	require.Equal(t, Defaults(), got)
	assert.Equal(t, reliability.Input{Connections: 6, AccidentPrice: 23.6, PlannedPrice: 17.6}, got)
}
