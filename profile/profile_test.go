//go:build !pprof

package profile

import "testing"

func TestProfiler_DisabledWithoutTag(t *testing.T) {
	for range Modes() {
		t.Fatal("expected no modes without the pprof tag")
	}

	for _, p := range []Profiler{{}, {Mode: "cpu", Path: t.TempDir()}} {
		s := p.Start()
		if _, ok := s.(ignore); !ok {
			t.Errorf("Start(%+v) = %T, want no-op", p, s)
		}

		s.Stop()
	}
}
