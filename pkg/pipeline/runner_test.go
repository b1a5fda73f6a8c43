package pipeline

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/gridatlas/gridatlas/pkg/gridio"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func k4Problem() gridio.Problem {
	return gridio.Problem{
		N: 4, M: 6,
		A: []int{1, 1, 1, 2, 2, 3},
		B: []int{2, 3, 4, 3, 4, 4},
	}
}

func TestRunnerExecute(t *testing.T) {
	runner := NewRunner(discardLogger())
	result, err := runner.Execute(context.Background(), Options{
		Problem:  k4Problem(),
		Validate: true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.RunID == "" {
		t.Error("RunID is empty")
	}
	if result.Case != gridmap.CaseComplete {
		t.Errorf("Case = %v, want complete", result.Case)
	}
	if result.Report == nil || !result.Report.Pass {
		t.Errorf("Report = %+v, want passing report", result.Report)
	}
	if result.Stats.N != 4 || result.Stats.M != 6 {
		t.Errorf("Stats = %+v", result.Stats)
	}
	if result.Stats.K != result.Grid.K() {
		t.Errorf("Stats.K = %d, grid K = %d", result.Stats.K, result.Grid.K())
	}
	if len(result.Artifacts) != 0 {
		t.Errorf("Artifacts = %v, want none without formats", result.Artifacts)
	}
}

func TestRunnerSkipsValidation(t *testing.T) {
	runner := NewRunner(discardLogger())
	result, err := runner.Execute(context.Background(), Options{Problem: k4Problem()})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Report != nil {
		t.Error("Report should be nil when validation is skipped")
	}
}

func TestRunnerRendersArtifacts(t *testing.T) {
	runner := NewRunner(discardLogger())
	result, err := runner.Execute(context.Background(), Options{
		Problem: k4Problem(),
		Formats: []string{FormatDOT, FormatGridSVG},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, "c1 -- c2") {
		t.Errorf("DOT artifact missing edges:\n%s", dot)
	}
	svg := string(result.Artifacts[FormatGridSVG])
	if !strings.HasPrefix(svg, "<svg") {
		t.Error("grid-svg artifact is not an SVG document")
	}
}

func TestRunnerPrefersOptionsLogger(t *testing.T) {
	var buf bytes.Buffer
	runner := NewRunner(discardLogger())
	_, err := runner.Execute(context.Background(), Options{
		Problem: k4Problem(),
		Logger:  log.NewWithOptions(&buf, log.Options{}),
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("per-run logger received no stage output")
	}
}

func TestRunnerInputErrors(t *testing.T) {
	runner := NewRunner(nil) // nil logger selects the default

	// Unknown format fails before any work.
	_, err := runner.Execute(context.Background(), Options{
		Problem: k4Problem(),
		Formats: []string{"tiff"},
	})
	if err == nil {
		t.Error("Execute should reject unknown formats")
	}

	// Malformed edges abort the embed stage.
	_, err = runner.Execute(context.Background(), Options{
		Problem: gridio.Problem{N: 2, M: 1, A: []int{1}, B: []int{9}},
	})
	if err == nil {
		t.Error("Execute should reject out-of-range edge labels")
	}
}

func TestRunnerReturnsFailedValidation(t *testing.T) {
	// Disconnected components can never validate; the run must still
	// succeed and hand back the report.
	runner := NewRunner(discardLogger())
	result, err := runner.Execute(context.Background(), Options{
		Problem:  gridio.Problem{N: 4, M: 2, A: []int{1, 3}, B: []int{2, 4}},
		Validate: true,
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Report == nil || result.Report.Pass {
		t.Errorf("Report = %+v, want failed report", result.Report)
	}
}
