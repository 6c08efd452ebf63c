package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestWalk(t *testing.T) {
	out, err := run(t, "walk")
	require.NoError(t, err)
	require.Equal(t, "pre: [11 8 5 10 16 18]\n"+
		"in: [5 8 10 11 16 18]\n"+
		"post: [5 10 8 18 16 11]\n"+
		"bfs: [11 8 16 5 10 18]\n", out)

	out, err = run(t, "walk", "--values", "2,1,3", "--order", "in")
	require.NoError(t, err)
	require.Equal(t, "in: [1 2 3]\n", out)

	_, err = run(t, "walk", "--order", "sideways")
	require.ErrorContains(t, err, "sideways")
}

func TestDelete(t *testing.T) {
	out, err := run(t, "delete", "--delete", "8,8", "--order", "in")
	require.NoError(t, err)
	require.Equal(t, "delete 8: found=true\n"+
		"delete 8: found=false\n"+
		"in: [5 10 11 16 18]\n"+
		"11\n"+
		"├── L: 10\n"+
		"│   └── L: 5\n"+
		"└── R: 16\n"+
		"    └── R: 18\n", out)
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "--values", "2,1")
	require.NoError(t, err)
	require.Equal(t, "2\n└── L: 1\n", out)

	out, err = run(t, "show", "--values", "2,1", "--dot")
	require.NoError(t, err)
	require.Contains(t, out, "digraph tree {")
	require.Contains(t, out, "n0 -> n1 [label=\"L\"];")
}

func TestBench(t *testing.T) {
	out, err := run(t, "bench", "--ops", "1000", "--seed", "3", "--log-level", "warn", "--metrics")
	require.NoError(t, err)
	require.Contains(t, out, "ops=1000 ")
	require.Contains(t, out, `bst_deletes_total{found="false"}`)
	require.Contains(t, out, "bst_height ")
}

func TestPrintMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ops_total",
		Help: "Operations.",
	}, []string{"a", "b"})
	lat := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "op_seconds",
		Help:    "Operation latency.",
		Buckets: []float64{1},
	})
	reg.MustRegister(ops, lat)
	ops.WithLabelValues("x", "y").Add(2)
	lat.Observe(0.5)

	var out bytes.Buffer
	require.NoError(t, printMetrics(&out, reg))
	require.Contains(t, out.String(), "# TYPE ops_total counter\n")
	require.Contains(t, out.String(), `ops_total{a="x",b="y"} 2`+"\n")
	require.Contains(t, out.String(), "# TYPE op_seconds histogram\n")
	require.Contains(t, out.String(), `op_seconds_bucket{le="1"} 1`+"\n")
	require.Contains(t, out.String(), `op_seconds_bucket{le="+Inf"} 1`+"\n")
	require.Contains(t, out.String(), "op_seconds_sum 0.5\n")
	require.Contains(t, out.String(), "op_seconds_count 1\n")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bst.yaml")
	require.NoError(t, os.WriteFile(path, []byte("values: [4, 2, 6]\norder: pre\n"), 0644))

	out, err := run(t, "walk", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "pre: [4 2 6]\n", out)

	out, err = run(t, "walk", "--config", path, "--order", "bfs")
	require.NoError(t, err)
	require.Equal(t, "bfs: [4 2 6]\n", out)

	out, err = run(t, "config", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "order: pre")
}
