package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"macro-stress/internal/analysis"
	"macro-stress/internal/api/models"
	"macro-stress/internal/config"
	"macro-stress/internal/simulate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ScenarioHandler serves the scenario presets found in a directory of YAML
// scenario files.
type ScenarioHandler struct {
	dir string
	sim *SimulateHandler
}

// ScenarioDir resolves the preset directory from SCENARIO_DIR, falling back
// to examples/scenarios under the working directory.
func ScenarioDir() string {
	dir := os.Getenv("SCENARIO_DIR")
	if dir == "" {
		dir = filepath.Join("examples", "scenarios")
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return dir
}

// NewScenarioHandler creates a new scenario handler. Presets are run through
// sim so they share its metrics.
func NewScenarioHandler(dir string, sim *SimulateHandler) *ScenarioHandler {
	return &ScenarioHandler{dir: dir, sim: sim}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios := h.loadAll()
	out := make([]models.ScenarioInfo, 0, len(scenarios))
	for _, s := range scenarios {
		out = append(out, models.ScenarioInfo{
			ID:          s.id,
			Name:        s.Name,
			Description: s.Description,
			Horizon:     s.Horizon,
		})
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

// GetScenario handles GET /api/v1/scenarios/:id. The body can be posted back
// to /simulate as the scenario.
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id := c.Param("id")
	s, err := h.load(id)
	if errors.Is(err, os.ErrNotExist) {
		abortWithError(c, http.StatusNotFound, "SCENARIO_NOT_FOUND", fmt.Errorf("scenario %q not found", id))
		return
	}
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "INVALID_SCENARIO", err)
		return
	}
	c.JSON(http.StatusOK, models.ScenarioRequest{
		Name:        s.Name,
		Horizon:     s.Horizon,
		Series:      s.Series,
		Initial:     s.Initial,
		Shocks:      s.Shocks,
		Calibration: s.Calibration,
	})
}

// RankScenarios handles GET /api/v1/scenarios/rank: every preset is run and
// ranked most severe first.
func (h *ScenarioHandler) RankScenarios(c *gin.Context) {
	tables := make(map[string]*simulate.Table)
	for _, s := range h.loadAll() {
		in, err := s.Inputs()
		if err != nil {
			log.Warn().Err(err).Str("scenario", s.id).Msg("skip preset")
			continue
		}
		t, err := h.sim.run(in)
		if err != nil {
			log.Warn().Err(err).Str("scenario", s.id).Msg("skip preset")
			continue
		}
		tables[s.id] = t
	}

	ranked := analysis.RankBySeverity(tables)
	out := make([]models.ComparisonResult, len(ranked))
	for i, r := range ranked {
		out[i] = models.ComparisonResult{
			Rank:   i + 1,
			Name:   r.Name,
			Stress: models.NewStressSummary(r.StressMetrics),
		}
	}
	c.JSON(http.StatusOK, models.CompareResponse{Comparison: out})
}

type preset struct {
	id string
	*config.Scenario
}

func (h *ScenarioHandler) load(id string) (*config.Scenario, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return nil, os.ErrNotExist
	}
	return config.Load(filepath.Join(h.dir, id+".yaml"))
}

// loadAll returns every loadable preset sorted by ID. Broken files are logged
// and skipped.
func (h *ScenarioHandler) loadAll() []preset {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", h.dir).Msg("read scenario directory")
		return nil
	}
	var out []preset
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".yaml")
		s, err := h.load(id)
		if err != nil {
			log.Warn().Err(err).Str("file", e.Name()).Msg("skip scenario file")
			continue
		}
		out = append(out, preset{id: id, Scenario: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}
