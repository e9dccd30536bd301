package universe

import (
	"sort"
	"testing"
)

var (
	benchTemplate = Template{"soup", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

	benchEngines = map[string]func(o *Options, stateCh chan Status) Universe{
		"torus": func(o *Options, stateCh chan Status) Universe {
			return NewTorusUniverse(o, stateCh)
		},
		"parallel": NewParallelUniverse,
	}
)

const (
	benchWidth  = 200
	benchHeight = 200
)

func universeStep(u Universe, b *testing.B) {
	u.AddTemplate(benchTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.SettleTemplate("soup")
		b.StartTimer()
		u.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	u.Close()
	close(stateCh)
}

func universeRun(u Universe, b *testing.B) {
	u.AddTemplate(benchTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.SettleTemplate("soup")
		b.StartTimer()
		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	u.Close()
	close(stateCh)
}

func newStateCh() chan Status {
	return make(chan Status, 10)
}

func newBenchOptions() *Options {
	o := DefaultUniverseOptions
	o.Interval = 0
	o.Width = benchWidth
	o.Height = benchHeight
	return &o
}

func benchEngineNames() (names []string) {
	names = make([]string, 0, len(benchEngines))
	for k := range benchEngines {
		names = append(names, k)
	}
	sort.Strings(names)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range benchEngineNames() {
		b.Run(e, func(b *testing.B) {
			u := benchEngines[e](newBenchOptions(), newStateCh())
			universeStep(u, b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range benchEngineNames() {
		b.Run(e, func(b *testing.B) {
			u := benchEngines[e](newBenchOptions(), newStateCh())
			universeRun(u, b)
		})
	}
}
