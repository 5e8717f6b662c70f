package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"macro-stress/internal/analysis"
	"macro-stress/internal/api/models"
	"macro-stress/internal/config"
	"macro-stress/internal/model"
	"macro-stress/internal/simulate"
	"macro-stress/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// SimulationObserver records engine runs (see middleware.Metrics).
type SimulationObserver interface {
	ObserveSimulation(outcome string, d time.Duration)
}

// SimulateHandler handles projection requests
type SimulateHandler struct {
	engine   *simulate.Engine
	runs     store.RunStore
	observer SimulationObserver
	newID    func() string
}

// NewSimulateHandler creates a new simulate handler. observer may be nil.
func NewSimulateHandler(runs store.RunStore, observer SimulationObserver) *SimulateHandler {
	return &SimulateHandler{
		engine:   simulate.New(),
		runs:     runs,
		observer: observer,
		newID:    uuid.NewString,
	}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	in, err := scenarioInputs(req.Scenario)
	if err != nil {
		scenarioError(c, err)
		return
	}
	table, err := h.run(in)
	if err != nil {
		scenarioError(c, err)
		return
	}

	id := h.newID()
	if err := h.runs.Save(c.Request.Context(), id, table); err != nil {
		log.Error().Err(err).Str("run_id", id).Msg("save run")
		abortWithError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}

	resp := models.SimulationResponse{
		ID:      id,
		Status:  "completed",
		Name:    req.Scenario.Name,
		Horizon: in.Horizon,
		Summary: models.NewSummaries(analysis.Summarize(table)),
		Stress:  models.NewStressSummary(analysis.Stress(table)),
	}
	if req.Options.IncludeTable {
		resp.Table = table
	}
	c.JSON(http.StatusOK, resp)
}

// GetTable handles GET /api/v1/simulate/:id/table
func (h *SimulateHandler) GetTable(c *gin.Context) {
	id := c.Param("id")
	table, err := h.runs.Load(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		abortWithError(c, http.StatusNotFound, "RUN_NOT_FOUND", fmt.Errorf("run %s not found or expired", id))
		return
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "STORE_ERROR", err)
		return
	}

	switch format := c.DefaultQuery("format", "json"); format {
	case "json":
		c.JSON(http.StatusOK, gin.H{"id": id, "table": table})
	case "csv":
		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", id+".csv"))
		c.Status(http.StatusOK)
		if err := simulate.EncodeCSV(c.Writer, table); err != nil {
			log.Error().Err(err).Str("run_id", id).Msg("write csv")
		}
	default:
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", fmt.Errorf("unsupported format %q", format))
	}
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	baseName := req.Base.Name
	if baseName == "" {
		baseName = "base"
	}
	baseIn, err := scenarioInputs(req.Base)
	if err != nil {
		scenarioError(c, err)
		return
	}
	baseTable, err := h.run(baseIn)
	if err != nil {
		scenarioError(c, err)
		return
	}

	tables := map[string]*simulate.Table{baseName: baseTable}
	var failed []models.FailedVariation
	for _, v := range req.Variations {
		if _, dup := tables[v.Name]; dup {
			failed = append(failed, models.FailedVariation{
				Name:  v.Name,
				Error: models.ErrorDetail{Code: "DUPLICATE_NAME", Message: fmt.Sprintf("scenario %q given twice", v.Name)},
			})
			continue
		}
		table, err := h.runVariation(req.Base, v)
		if err != nil {
			failed = append(failed, models.FailedVariation{Name: v.Name, Error: classify(err)})
			continue
		}
		tables[v.Name] = table
	}

	ranked := analysis.RankBySeverity(tables)
	comparison := make([]models.ComparisonResult, len(ranked))
	for i, r := range ranked {
		comparison[i] = models.ComparisonResult{
			Rank:   i + 1,
			Name:   r.Name,
			Stress: models.NewStressSummary(r.StressMetrics),
		}
	}
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison, Failed: failed})
}

func (h *SimulateHandler) run(in *model.Inputs) (*simulate.Table, error) {
	start := time.Now()
	table, err := h.engine.Run(in)
	if h.observer != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		h.observer.ObserveSimulation(outcome, time.Since(start))
	}
	return table, err
}

func (h *SimulateHandler) runVariation(base models.ScenarioRequest, v models.Variation) (*simulate.Table, error) {
	in, err := scenarioInputs(applyVariation(base, v))
	if err != nil {
		return nil, err
	}
	return h.run(in)
}

func scenarioInputs(req models.ScenarioRequest) (*model.Inputs, error) {
	s := config.Scenario{
		Name:        req.Name,
		Horizon:     req.Horizon,
		Series:      req.Series,
		Initial:     req.Initial,
		Shocks:      req.Shocks,
		Calibration: req.Calibration,
	}
	return s.Inputs()
}

func applyVariation(base models.ScenarioRequest, v models.Variation) models.ScenarioRequest {
	out := base
	out.Name = v.Name
	out.Calibration = config.MergeCalibration(base.Calibration, v.Calibration)
	out.Shocks = base.Shocks.Overlay(v.Shocks)
	if v.Initial != nil {
		out.Initial = *v.Initial
	}
	return out
}
