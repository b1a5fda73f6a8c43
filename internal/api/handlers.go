package api

import (
	"net/http"

	"github.com/gridatlas/gridatlas/pkg/gridcheck"
	"github.com/gridatlas/gridatlas/pkg/gridio"
	"github.com/gridatlas/gridatlas/pkg/pipeline"
)

// embedResponse is the body of a successful POST /v1/embed.
type embedResponse struct {
	RunID string  `json:"run_id"`
	Case  string  `json:"case"`
	Rows  int     `json:"rows"`
	Cols  int     `json:"cols"`
	K     int     `json:"k"`
	Grid  [][]int `json:"grid"`

	// Report is present only when validation was requested.
	Report *reportBody `json:"report,omitempty"`

	// Artifacts holds rendered outputs keyed by format, base64-encoded by
	// the JSON layer. Present only when formats were requested.
	Artifacts map[string][]byte `json:"artifacts,omitempty"`

	Stats statsBody `json:"stats"`
}

// reportBody is the JSON shape of a checker verdict.
type reportBody struct {
	Pass        bool     `json:"pass"`
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// statsBody reports stage timings in milliseconds.
type statsBody struct {
	EmbedMillis    int64 `json:"embed_ms"`
	ValidateMillis int64 `json:"validate_ms"`
	RenderMillis   int64 `json:"render_ms"`
}

// handleEmbed runs the full pipeline on the posted options. The request
// body is pipeline.Options: a problem plus validate/formats/position_cap
// knobs. Input errors are 400s; render failures are 500s.
func (h *Handler) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	if err := decodeBody(w, r, &opts); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if opts.PositionCap == 0 {
		opts.PositionCap = h.positionCap
	}
	opts.Logger = h.logger

	if _, err := opts.Problem.Graph(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := pipeline.NewRunner(h.logger).Execute(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := embedResponse{
		RunID: result.RunID,
		Case:  result.Case.String(),
		Rows:  result.Grid.Rows(),
		Cols:  result.Grid.Cols(),
		K:     result.Stats.K,
		Grid:  result.Grid,
		Stats: statsBody{
			EmbedMillis:    result.Stats.EmbedTime.Milliseconds(),
			ValidateMillis: result.Stats.ValidateTime.Milliseconds(),
			RenderMillis:   result.Stats.RenderTime.Milliseconds(),
		},
	}
	if result.Report != nil {
		resp.Report = &reportBody{Pass: result.Report.Pass, Diagnostics: result.Report.Diagnostics}
	}
	if len(result.Artifacts) > 0 {
		resp.Artifacts = result.Artifacts
	}
	writeJSON(w, http.StatusOK, resp)
}

// validateRequest is the body of POST /v1/validate.
type validateRequest struct {
	Problem gridio.Problem `json:"problem"`
	Grid    [][]int        `json:"grid"`
}

// handleValidate checks a grid against a problem. The verdict is always a
// 200; Pass says whether the grid matches.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	report := gridcheck.Validate(req.Problem.N, req.Problem.M, req.Problem.A, req.Problem.B, req.Grid)
	writeJSON(w, http.StatusOK, reportBody{Pass: report.Pass, Diagnostics: report.Diagnostics})
}
