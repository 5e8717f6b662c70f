package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"macro-stress/internal/model"

	"gopkg.in/yaml.v3"
)

// Scenario is the on-disk scenario shape (YAML).
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Optional: load calibration overrides from a separate YAML (e.g.
	// examples/calibrations/*.yaml). Entries in Calibration win over the file.
	CalibrationFile string `yaml:"calibration_file,omitempty"`

	Horizon int                `yaml:"horizon"`
	Series  model.SeriesInputs `yaml:"series"`
	Initial model.Initial      `yaml:"initial"`
	Shocks  model.Shocks       `yaml:"shocks,omitempty"`

	// Calibration overrides keyed by parameter name; anything not listed
	// keeps its published default.
	Calibration map[string]float64 `yaml:"calibration,omitempty"`
}

// Load reads, merges and validates a scenario file.
func Load(path string) (*Scenario, error) {
	s, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadUnchecked loads and merges a scenario, but does not validate it.
func LoadUnchecked(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scenario
	if err := decodeStrict(raw, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if s.CalibrationFile != "" {
		calPath := s.CalibrationFile
		if !filepath.IsAbs(calPath) {
			// Prefer paths relative to the scenario file, fall back to cwd.
			cand := filepath.Join(filepath.Dir(path), calPath)
			if _, err := os.Stat(cand); err == nil {
				calPath = cand
			}
		}
		loaded, err := LoadCalibrationFile(calPath)
		if err != nil {
			return nil, err
		}
		s.Calibration = MergeCalibration(loaded, s.Calibration)
	}
	return &s, nil
}

// Validate checks the scenario can be turned into model inputs.
func (s *Scenario) Validate() error {
	if s == nil {
		return errors.New("scenario is nil")
	}
	if _, err := s.Inputs(); err != nil {
		return fmt.Errorf("scenario %q invalid: %w", s.Name, err)
	}
	return nil
}

// CalibrationValues returns the default calibration with the scenario's overrides
// applied.
func (s *Scenario) CalibrationValues() (model.Calibration, error) {
	c := model.DefaultCalibration()
	if err := c.Apply(s.Calibration); err != nil {
		return model.Calibration{}, err
	}
	return c, nil
}

// Inputs builds validated model inputs from the scenario.
func (s *Scenario) Inputs() (*model.Inputs, error) {
	cal, err := s.CalibrationValues()
	if err != nil {
		return nil, err
	}
	return model.NewInputs(model.Inputs{
		Horizon:     s.Horizon,
		Series:      s.Series,
		Initial:     s.Initial,
		Shocks:      s.Shocks,
		Calibration: cal,
	})
}

type calibrationFileWrapper struct {
	Calibration map[string]float64 `yaml:"calibration"`
}

// LoadCalibrationFile reads a YAML file holding a `calibration:` map.
func LoadCalibrationFile(path string) (map[string]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w calibrationFileWrapper
	if err := decodeStrict(raw, &w); err != nil {
		return nil, fmt.Errorf("parse calibration %s: %w", path, err)
	}
	return w.Calibration, nil
}

// MergeCalibration overlays override onto base. Neither map is modified.
func MergeCalibration(base, override map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// ParseOverrides turns name=value pairs (as given to --set) into a map.
func ParseOverrides(pairs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(pairs))
	for _, p := range pairs {
		name, val, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("override %q: want name=value", p)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", p, err)
		}
		out[name] = f
	}
	return out, nil
}

// DefaultCalibrationYAML renders the default calibration as a calibration
// file, keys sorted.
func DefaultCalibrationYAML() ([]byte, error) {
	params := model.CalibrationParams()
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })

	body := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range params {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: p.Name}
		val := &yaml.Node{
			Kind:        yaml.ScalarNode,
			Tag:         "!!float",
			Value:       strconv.FormatFloat(p.Default, 'f', -1, 64),
			LineComment: p.Description,
		}
		body.Content = append(body.Content, key, val)
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "calibration"},
		body,
	}}
	return yaml.Marshal(doc)
}

func decodeStrict(raw []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("file is empty")
		}
		return err
	}
	return nil
}
