package metrics

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/circuit/circuit"
	"github.com/katalvlaran/circuit/gridgraph"
)

func TestRecorder_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	rec.Attempt(circuit.OutcomeNoPath, 12)
	rec.Attempt(circuit.OutcomeNoPath, 3)
	rec.Attempt(circuit.OutcomeCommitted, 7)
	rec.Committed(circuit.Path{Actions: []gridgraph.Direction{gridgraph.Right, gridgraph.Up}})
	rec.Exhausted()

	require.Equal(t, 2.0, testutil.ToFloat64(rec.attempts.WithLabelValues("no_path")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.attempts.WithLabelValues("committed")))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.commits))
	require.Equal(t, 1.0, testutil.ToFloat64(rec.exhausted))
	require.Equal(t, 1, testutil.CollectAndCount(rec.pathLength))
}

func TestRecorder_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewRecorder(reg)
	require.NoError(t, err)
	_, err = NewRecorder(reg)
	require.Error(t, err)
}

// TestRecorder_Session wires the recorder into a real session.
func TestRecorder_Session(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)

	sess, err := circuit.NewSession(20, 20, circuit.WithSeed(11), circuit.WithRecorder(rec))
	require.NoError(t, err)
	paths, err := sess.Fill(context.Background(), 5)
	require.NoError(t, err)

	st := sess.Stats()
	require.Equal(t, float64(len(paths)), testutil.ToFloat64(rec.commits))
	require.Equal(t, float64(st.Exhausted), testutil.ToFloat64(rec.exhausted))

	var attempts float64
	for _, o := range []circuit.Outcome{
		circuit.OutcomeCommitted, circuit.OutcomeNoPath,
		circuit.OutcomeCostExceeded, circuit.OutcomeDegenerate,
	} {
		attempts += testutil.ToFloat64(rec.attempts.WithLabelValues(o.String()))
	}
	require.Equal(t, float64(st.Attempts), attempts)
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	require.NoError(t, err)
	rec.Exhausted()

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(body), "circuit_exhausted_total 1"), string(body))
}
