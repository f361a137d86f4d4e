package observ_test

import (
	"strings"
	"testing"

	"gnaw/internal/observ"
)

func TestTimer(t *testing.T) {
	tm := observ.NewTimer()
	stopLoad := tm.Begin("load-layout")
	stopLoad("")
	stopDecode := tm.Begin("decode")
	stopDecode("3 files")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("report = %+v", report)
	}
	if report.Phases[0].Name != "load-layout" || report.Phases[1].Note != "3 files" {
		t.Fatalf("phases = %+v", report.Phases)
	}

	sum := tm.Summary()
	for _, want := range []string{"timings:", "load-layout", "decode", "// 3 files", "total"} {
		if !strings.Contains(sum, want) {
			t.Errorf("summary missing %q:\n%s", want, sum)
		}
	}
}

func TestTimerEmpty(t *testing.T) {
	report := observ.NewTimer().Report()
	if report.TotalMS != 0 || len(report.Phases) != 0 {
		t.Fatalf("report = %+v", report)
	}
}
