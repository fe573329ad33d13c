package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/fibmemo/internal/solver"
)

func TestNewBatchMetrics(t *testing.T) {
	t.Parallel()
	m := NewBatchMetrics()
	if m == nil {
		t.Fatal("NewBatchMetrics returned nil")
	}
	if m.Registry() == nil {
		t.Fatal("Registry should be initialized")
	}
}

func TestBatchMetrics_SolveLifecycle(t *testing.T) {
	t.Parallel()
	m := NewBatchMetrics()

	m.SolveStarted()
	if got := testutil.ToFloat64(m.activeSolves); got != 1 {
		t.Errorf("active solves after start = %v, want 1", got)
	}

	m.SolveFinished(nil)
	if got := testutil.ToFloat64(m.activeSolves); got != 0 {
		t.Errorf("active solves after finish = %v, want 0", got)
	}
	if got := testutil.ToFloat64(m.solvesTotal); got != 1 {
		t.Errorf("solves total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.solveErrors); got != 0 {
		t.Errorf("solve errors = %v, want 0", got)
	}
}

func TestBatchMetrics_SolveFinishedWithError(t *testing.T) {
	t.Parallel()
	m := NewBatchMetrics()

	m.SolveStarted()
	m.SolveFinished(context.Canceled)

	if got := testutil.ToFloat64(m.solveErrors); got != 1 {
		t.Errorf("solve errors = %v, want 1", got)
	}
}

func TestBatchMetrics_ObserveCache(t *testing.T) {
	t.Parallel()
	m := NewBatchMetrics()
	cache := solver.NewCache()
	m.ObserveCache(cache)

	cache.Store(5, 5)
	cache.Lookup(5)
	cache.Lookup(6)

	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	found := map[string]float64{}
	for _, mf := range families {
		if strings.HasPrefix(mf.GetName(), "fibmemo_cache_") {
			found[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue() + mf.GetMetric()[0].GetGauge().GetValue()
		}
	}

	expectations := map[string]float64{
		"fibmemo_cache_hits_total":   1,
		"fibmemo_cache_misses_total": 1,
		"fibmemo_cache_stores_total": 1,
		"fibmemo_cache_entries":      1,
	}
	for name, want := range expectations {
		if got, ok := found[name]; !ok || got != want {
			t.Errorf("%s = %v (present=%v), want %v", name, got, ok, want)
		}
	}
}

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()
	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("expected non-zero HeapAlloc on a running process")
	}
	if snap.Sys == 0 {
		t.Error("expected non-zero Sys on a running process")
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()
	before := MemorySnapshot{TotalAlloc: 100, NumGC: 2, PauseTotalNs: 50}
	after := MemorySnapshot{TotalAlloc: 350, NumGC: 5, PauseTotalNs: 80, HeapAlloc: 42}

	d := Delta(before, after)
	if d.TotalAlloc != 250 {
		t.Errorf("TotalAlloc delta = %d, want 250", d.TotalAlloc)
	}
	if d.NumGC != 3 {
		t.Errorf("NumGC delta = %d, want 3", d.NumGC)
	}
	if d.PauseTotalNs != 30 {
		t.Errorf("PauseTotalNs delta = %d, want 30", d.PauseTotalNs)
	}
	if d.HeapAlloc != 42 {
		t.Errorf("HeapAlloc should carry the later snapshot value, got %d", d.HeapAlloc)
	}
}
