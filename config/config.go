// Package config loads the YAML run configuration of the dmrgraph command.
//
// Load overlays a file on Default, so a file only needs the keys it changes.
// Validate checks struct tags with go-playground/validator and then the
// cross-field rules: timepoint names and resolved offsets must be unique.
//
// Example file:
//
//	log:
//	  level: info
//	analysis:
//	  workers: 4
//	  biclique:
//	    max_iterations: 1000000
//	    time_limit: 2m
//	timepoints:
//	  - name: P21
//	    input: data/P21.tsv
//	  - name: P28
//	    input: data/P28.tsv
//	output:
//	  json_dir: out
//	  database: out/dmr.db
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dmrgraph/decompose"
	"github.com/katalvlaran/dmrgraph/idmap"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete run configuration.
type Config struct {
	Log        LogConfig         `yaml:"log"`
	Analysis   AnalysisConfig    `yaml:"analysis"`
	Timepoints []TimepointConfig `yaml:"timepoints" validate:"dive"`
	Output     OutputConfig      `yaml:"output"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// AnalysisConfig holds pipeline knobs.
type AnalysisConfig struct {
	Workers      int              `yaml:"workers" validate:"min=1,max=256"`
	OffsetStride int              `yaml:"offset_stride" validate:"min=1"`
	HubSigma     float64          `yaml:"hub_sigma" validate:"gte=0"`
	StrictRows   bool             `yaml:"strict_rows"`
	Biclique     BicliqueConfig   `yaml:"biclique"`
	Domination   DominationConfig `yaml:"domination"`
}

// BicliqueConfig bounds and filters enumeration.
type BicliqueConfig struct {
	MaxIterations int           `yaml:"max_iterations" validate:"gte=0"`
	TimeLimit     time.Duration `yaml:"time_limit" validate:"gte=0"`
	Selection     string        `yaml:"selection" validate:"oneof=cover all"`
	MinDMRs       int           `yaml:"min_dmrs" validate:"min=1"`
	MinGenes      int           `yaml:"min_genes" validate:"min=1"`
}

// DominationConfig tunes the dominating set solver.
type DominationConfig struct {
	AreaWeighted bool `yaml:"area_weighted"`
}

// TimepointConfig names one input table.
type TimepointConfig struct {
	Name  string `yaml:"name" validate:"required"`
	Input string `yaml:"input" validate:"required"`

	// Offset overrides position × offset_stride.
	Offset *int `yaml:"offset" validate:"omitempty,gte=0"`

	// IDBase is the numbering of the DMR column, 0 or 1.
	IDBase    int    `yaml:"id_base" validate:"oneof=0 1"`
	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
}

// OutputConfig selects the sinks; empty values disable them.
type OutputConfig struct {
	JSONDir  string `yaml:"json_dir"`
	Database string `yaml:"database"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Analysis: AnalysisConfig{
			Workers:      1,
			OffsetStride: idmap.DefaultOffsetStride,
			HubSigma:     decompose.DefaultHubSigma,
			Biclique: BicliqueConfig{
				Selection: "cover",
				MinDMRs:   1,
				MinGenes:  1,
			},
		},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, formatValidationError(err))
	}

	names := make(map[string]struct{}, len(c.Timepoints))
	offsets := make(map[int]string, len(c.Timepoints))
	for i, tp := range c.Timepoints {
		if _, dup := names[tp.Name]; dup {
			return fmt.Errorf("%w: duplicate timepoint %q", ErrInvalid, tp.Name)
		}
		names[tp.Name] = struct{}{}

		off := c.Offset(i)
		if other, dup := offsets[off]; dup {
			return fmt.Errorf("%w: timepoints %q and %q share offset %d", ErrInvalid, other, tp.Name, off)
		}
		offsets[off] = tp.Name
	}

	return nil
}

// Offset returns the DMR ID offset of the timepoint at index i.
func (c *Config) Offset(i int) int {
	if tp := c.Timepoints[i]; tp.Offset != nil {
		return *tp.Offset
	}

	return idmap.OffsetFor(i, c.Analysis.OffsetStride)
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.TrimPrefix(e.Namespace(), "Config.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", field, e.Param()))
		case "min", "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid (%s)", field, e.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
