package metrics

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/reliability-calc/internal/reliability"
	"github.com/rshade/reliability-calc/internal/report"
)

func entry(name string, n float32) report.Entry {
	in := reliability.Input{Connections: n, AccidentPrice: 23.6, PlannedPrice: 17.6}
	return report.Entry{Name: name, Input: in, Result: reliability.NewEngine().Calculate(in)}
}

func TestGather_OneSeriesPerEntry(t *testing.T) {
	g, err := Gather([]report.Entry{entry("baseline", 6), entry("dense", 12)}, "r1")
	require.NoError(t, err)

	for _, key := range []string{
		"w_oc", "t_v_oc", "k_a_oc", "k_p_oc", "w_dk", "w_dc",
		"math_w_ned_a", "math_w_ned_p", "math_loses",
	} {
		count, err := testutil.GatherAndCount(g, Namespace+"_"+key)
		require.NoError(t, err, key)
		assert.Equal(t, 2, count, key)
	}
}

func TestGather_HelpForEveryRow(t *testing.T) {
	for _, row := range report.Rows(reliability.CalculationResult{}) {
		assert.NotEmpty(t, help[row.Key], row.Key)
	}
}

func TestWriteTextfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reliability.prom")

	require.NoError(t, WriteTextfile(path, []report.Entry{entry("baseline", 6), entry("", 0)}, "r1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "# HELP reliability_w_oc Failure frequency")
	assert.Contains(t, out, "# TYPE reliability_w_oc gauge")
	assert.Contains(t, out, `reliability_w_oc{run_id="r1",scenario="baseline"} 0.29`)
	assert.Contains(t, out, `reliability_w_oc{run_id="r1",scenario="default"} 0.11`)
	assert.Contains(t, out, `reliability_math_w_ned_p{run_id="r1",scenario="baseline"} 1.3211648e+11`)

	matches, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*"))
	require.NoError(t, err)
	assert.Len(t, matches, 1, "temporary file should be renamed into place")
}

func TestWriteTextfile_NonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "degenerate.prom")
	n := math.Float32frombits(0xc0755555)

	require.NoError(t, WriteTextfile(path, []report.Entry{entry("zero", n)}, "r2"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "reliability_t_v_oc{") {
			assert.True(t, strings.HasSuffix(line, " +Inf"), line)
		}
		if strings.HasPrefix(line, "reliability_k_a_oc{") {
			assert.True(t, strings.HasSuffix(line, " NaN"), line)
		}
	}
}

func TestWriteTextfile_BadDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.prom")
	err := WriteTextfile(path, []report.Entry{entry("x", 6)}, "r3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics file")
}
