package life

import (
	"context"
	"errors"
	"testing"

	"github.com/agentultra/horton/grid"
	"github.com/prometheus/client_golang/prometheus"
)

func TestRunnerMatchesStep(t *testing.T) {
	seed, err := Parse(stringsReader(Patterns["beacon"]), grid.WithWrap[int]())
	if err != nil {
		t.Fatal(err)
	}
	_ = seed.Set(5, 0, Alive)
	_ = seed.Set(0, 5, Alive)

	want := Step(seed)
	for _, threads := range []int{0, 1, 2, 4, 6, 64} {
		r := &Runner{Threads: threads}
		got, err := r.Step(context.Background(), seed)
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if !grid.Equal(got, want) {
			t.Errorf("threads=%d: Step() =\n%s\nwant\n%s", threads, got, want)
		}
	}
}

func TestRunnerRun(t *testing.T) {
	seed, _ := Parse(stringsReader(Patterns["blinker"]))
	var turns []int
	r := &Runner{
		Threads:      2,
		OnGeneration: func(turn int, _ *grid.Grid[int]) { turns = append(turns, turn) },
	}
	final, err := r.Run(context.Background(), seed, 4)
	if err != nil {
		t.Fatal(err)
	}
	if !grid.Equal(final, seed) {
		t.Errorf("blinker after 4 turns =\n%s\nwant\n%s", final, seed)
	}
	if len(turns) != 4 || turns[0] != 1 || turns[3] != 4 {
		t.Errorf("OnGeneration turns = %v, want [1 2 3 4]", turns)
	}
}

func TestRunnerCancelled(t *testing.T) {
	seed, _ := Parse(stringsReader(Patterns["block"]))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &Runner{}
	if _, err := r.Run(ctx, seed, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRunnerMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	if err != nil {
		t.Fatal(err)
	}
	seed, _ := Parse(stringsReader(Patterns["glider"]))
	r := &Runner{Metrics: m}
	if _, err := r.Run(context.Background(), seed, 3); err != nil {
		t.Fatal(err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]float64{}
	for _, mf := range families {
		metric := mf.GetMetric()[0]
		switch mf.GetName() {
		case "horton_life_generations_total":
			got[mf.GetName()] = metric.GetCounter().GetValue()
		case "horton_life_population":
			got[mf.GetName()] = metric.GetGauge().GetValue()
		case "horton_life_step_duration_seconds":
			got[mf.GetName()] = float64(metric.GetHistogram().GetSampleCount())
		}
	}
	want := map[string]float64{
		"horton_life_generations_total":     3,
		"horton_life_population":            5,
		"horton_life_step_duration_seconds": 3,
	}
	for name, v := range want {
		if got[name] != v {
			t.Errorf("%s = %v, want %v", name, got[name], v)
		}
	}

	if _, err := NewMetrics(reg); err == nil {
		t.Error("registering metrics twice succeeded")
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.observe(1, 0)
}
