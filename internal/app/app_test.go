package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ewmst/core"
	"github.com/katalvlaran/ewmst/internal/config"
	"github.com/katalvlaran/ewmst/prim_kruskal"
)

// syncBuffer is a bytes.Buffer safe for the watch goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// watchSettle exceeds the loader's reload debounce.
const watchSettle = 200 * time.Millisecond

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newTestApp(t *testing.T, path string, watch bool) (*App, *syncBuffer) {
	t.Helper()
	cfg, err := NewConfig(Config{ConfigPath: path, LogFormat: "json", LogLevel: "info", Watch: watch})
	require.NoError(t, err)
	out := &syncBuffer{}
	return NewApp(out, cfg), out
}

func TestNewConfig_RequiresPath(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)
}

func TestExecute_Topologies(t *testing.T) {
	cases := []struct {
		name           string
		cfg            config.RunConfig
		wantEdges      int
		wantForest     int
		wantComponents int
	}{
		{"complete", config.RunConfig{Vertices: config.IntPtr(6), Topology: config.TopologyComplete}, 15, 5, 1},
		{"path", config.RunConfig{Vertices: config.IntPtr(5), Topology: config.TopologyPath}, 4, 4, 1},
		{"cycle prim", config.RunConfig{Vertices: config.IntPtr(5), Topology: config.TopologyCycle, Method: prim_kruskal.MethodPrim, Root: 2}, 5, 4, 1},
		{"star", config.RunConfig{Vertices: config.IntPtr(4), Topology: config.TopologyStar, Center: 3}, 3, 3, 1},
		{"grid", config.RunConfig{Vertices: config.IntPtr(12), Topology: config.TopologyGrid, Columns: 3}, 17, 11, 1},
		{"empty", config.RunConfig{Vertices: config.IntPtr(0), Topology: config.TopologyCycle}, 0, 0, 0},
		{"sparse p=0", config.RunConfig{Vertices: config.IntPtr(4), Topology: config.TopologyRandomSparse}, 0, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _ := newTestApp(t, "unused.yaml", false)
			cfg := tc.cfg
			if cfg.Method == "" {
				cfg.Method = prim_kruskal.MethodKruskal
			}
			cfg.Weights = config.WeightRange{Min: 1, Max: 2}

			rep, err := a.Execute(context.Background(), &cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.wantEdges, rep.Edges)
			assert.Len(t, rep.Forest.Edges, tc.wantForest)
			assert.Equal(t, tc.wantComponents, rep.Components)
			assert.NotEmpty(t, rep.RunID)
		})
	}
}

func TestExecute_RequireSpanning(t *testing.T) {
	a, out := newTestApp(t, "unused.yaml", false)
	cfg := &config.RunConfig{
		Vertices: config.IntPtr(5), Topology: config.TopologyRandomMulti, Edges: 1, Seed: 3,
		Method: prim_kruskal.MethodKruskal, RequireSpanning: true,
		Weights: config.WeightRange{Max: 1},
	}

	rep, err := a.Execute(context.Background(), cfg)
	require.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	require.NotNil(t, rep.Forest, "forest is still reported")
	assert.False(t, rep.Forest.Spanning())
	assert.Contains(t, out.String(), "Run failed.")
}

func TestExecute_BuildError(t *testing.T) {
	a, _ := newTestApp(t, "unused.yaml", false)
	cfg := &config.RunConfig{Vertices: config.IntPtr(2), Topology: config.TopologyCycle, Method: prim_kruskal.MethodKruskal, Weights: config.WeightRange{Max: 1}}

	rep, err := a.Execute(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate graph")
	assert.Nil(t, rep.Forest)
}

func TestExecute_Cancelled(t *testing.T) {
	a, _ := newTestApp(t, "unused.yaml", false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Execute(ctx, &config.RunConfig{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_OnceWithTextfile(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "ewmst.prom")
	path := writeConfig(t, strings.Join([]string{
		"vertices: 30",
		"topology: random_sparse",
		"probability: 0.3",
		"seed: 42",
		"metrics_textfile: " + prom,
	}, "\n"))

	a, out := newTestApp(t, path, false)
	require.NoError(t, a.Run(context.Background()))

	// One JSON summary record with a run id.
	var summary map[string]any
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "Run complete." {
			summary = rec
		}
	}
	require.NotNil(t, summary)
	assert.NotEmpty(t, summary["run_id"])
	assert.Equal(t, "kruskal", summary["method"])
	assert.EqualValues(t, 30, summary["vertices"])

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ewmst_runs_total")
}

func TestRun_BadConfig(t *testing.T) {
	path := writeConfig(t, "vertices: -1\n")
	a, _ := newTestApp(t, path, false)
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestRun_Watch(t *testing.T) {
	path := writeConfig(t, "vertices: 3\ntopology: path\n")
	a, out := newTestApp(t, path, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	waitFor := func(substr string) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for !strings.Contains(out.String(), substr) {
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for %q in:\n%s", substr, out.String())
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	waitFor("Watching run configuration.")
	require.NoError(t, os.WriteFile(path, []byte("vertices: 7\ntopology: path\n"), 0o600))
	waitFor(`"vertices":7`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_WatchRewritesKeepLastGood(t *testing.T) {
	path := writeConfig(t, "vertices: 3\ntopology: path\n")
	a, out := newTestApp(t, path, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	waitFor := func(substr string) {
		t.Helper()
		deadline := time.Now().Add(5 * time.Second)
		for !strings.Contains(out.String(), substr) {
			if time.Now().After(deadline) {
				t.Fatalf("timed out waiting for %q in:\n%s", substr, out.String())
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	waitFor("Watching run configuration.")
	// Each os.WriteFile truncates first; the empty intermediate file must
	// never be run.
	for i := 0; i < 30; i++ {
		require.NoError(t, os.WriteFile(path, []byte("vertices: 7\ntopology: path\n"), 0o600))
		time.Sleep(5 * time.Millisecond)
	}
	waitFor(`"vertices":7`)
	// Let any trailing debounced reload finish.
	time.Sleep(3 * watchSettle)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.NotContains(t, out.String(), `"vertices":0`)
}

func TestVerifyAcyclic(t *testing.T) {
	require.NoError(t, verifyAcyclic(&prim_kruskal.Forest{}))

	a, err := core.NewEdge(0, 1, 1)
	require.NoError(t, err)
	b, err := core.NewEdge(1, 0, 2)
	require.NoError(t, err)
	err = verifyAcyclic(&prim_kruskal.Forest{Vertices: 2, Edges: []*core.Edge{a, b}})
	require.ErrorIs(t, err, ErrForestCycle)
}
