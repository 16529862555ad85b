package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/nconklindev/hitlisten/internal/analysis"
	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/power"
	"github.com/nconklindev/hitlisten/internal/types"
	"github.com/nconklindev/hitlisten/internal/workbook"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds every knob of an analysis run. The sections are read from
// the environment one at a time so their variables keep the HITLISTEN_ names
// instead of gaining a section prefix.
type Config struct {
	Root     string         `ignored:"true"`
	Workbook WorkbookConfig `ignored:"true"`
	Analysis AnalysisConfig `ignored:"true"`
	Chart    ChartConfig    `ignored:"true"`
	// MappingFile is the aggregation mapping, relative to Root unless absolute
	MappingFile string `envconfig:"HITLISTEN_MAPPING" default:"aggregation.yaml" validate:"required"`
}

// WorkbookConfig describes the layout of the input workbook
type WorkbookConfig struct {
	File  string `envconfig:"HITLISTEN_WORKBOOK" default:"hitlisten.xlsx" validate:"required"`
	Sheet string `envconfig:"HITLISTEN_SHEET"`
	// Header is read from HITLISTEN_HEADER_START and HITLISTEN_HEADER_STOP
	Header         types.HeaderSpan `envconfig:"HITLISTEN_HEADER"`
	ExpectedTables int              `envconfig:"HITLISTEN_EXPECTED_TABLES" default:"6" validate:"min=1"`
	SplitHead      bool             `envconfig:"HITLISTEN_SPLIT_HEAD" default:"true"`
	GroupTable     int              `envconfig:"HITLISTEN_GROUP_TABLE" default:"2" validate:"min=0"`
	SizeRow        int              `envconfig:"HITLISTEN_SIZE_ROW" default:"0" validate:"min=0"`
	SizeLabel      string           `envconfig:"HITLISTEN_SIZE_LABEL"`
}

// AnalysisConfig holds the statistical settings
type AnalysisConfig struct {
	Threshold  int     `envconfig:"HITLISTEN_THRESHOLD" default:"30" validate:"min=0"`
	EffectSize float64 `envconfig:"HITLISTEN_EFFECT_SIZE" default:"0.5" validate:"gt=0"`
	Alpha      float64 `envconfig:"HITLISTEN_ALPHA" default:"0.05" validate:"gt=0,lt=1"`
}

// ChartConfig holds the figure size in inches
type ChartConfig struct {
	Width  float64 `envconfig:"HITLISTEN_FIG_WIDTH" default:"16" validate:"gt=0"`
	Height float64 `envconfig:"HITLISTEN_FIG_HEIGHT" default:"7" validate:"gt=0"`
}

var validate = validator.New()

// Default returns the configuration used when no environment overrides are set
func Default() *Config {
	return &Config{
		Workbook: WorkbookConfig{
			File:           "hitlisten.xlsx",
			Header:         workbook.DefaultHeaderSpan,
			ExpectedTables: workbook.DefaultExpectedTables,
			SplitHead:      true,
			GroupTable:     2,
		},
		Analysis: AnalysisConfig{
			Threshold:  analysis.DefaultThreshold,
			EffectSize: power.DefaultEffectSize,
			Alpha:      power.DefaultAlpha,
		},
		Chart: ChartConfig{
			Width:  16,
			Height: 7,
		},
		MappingFile: "aggregation.yaml",
	}
}

// LoadEnvironment reads a .env file into the process environment. An empty
// path means <root>/.env; a missing file is not an error.
func LoadEnvironment(root, path string) error {
	if path == "" {
		path = filepath.Join(root, ".env")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return apperrors.WithCode(apperrors.CodeConfigInvalid, err, "failed to load "+path)
	}
	return nil
}

// Load builds the configuration from the environment and validates it
func Load() (*Config, error) {
	root, err := ProjectRoot()
	if err != nil {
		return nil, err
	}
	if err := LoadEnvironment(root, ""); err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Root = root
	for _, spec := range []interface{}{cfg, &cfg.Workbook, &cfg.Analysis, &cfg.Chart} {
		if err := envconfig.Process("", spec); err != nil {
			return nil, apperrors.WithCode(apperrors.CodeConfigInvalid, err, "failed to load config from env")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperrors.Wrap(err, "configuration validation failed")
	}
	return cfg, nil
}

// Validate checks ranges of every knob
func (c *Config) Validate() error {
	span := c.Workbook.Header
	if span.Start < 0 || span.Stop <= span.Start {
		return apperrors.ConfigInvalid("header span [%d, %d) must satisfy 0 <= start < stop", span.Start, span.Stop)
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			return apperrors.ConfigInvalid("%s must satisfy %s, got %v", fe.Namespace(), rule, fe.Value())
		}
		return apperrors.WithCode(apperrors.CodeConfigInvalid, err, "invalid configuration")
	}
	return nil
}

// WorkbookPath resolves the workbook under the raw data directory
func (c *Config) WorkbookPath() string {
	if filepath.IsAbs(c.Workbook.File) {
		return c.Workbook.File
	}
	return filepath.Join(c.Root, "data", string(Raw), c.Workbook.File)
}

// MappingPath resolves the aggregation mapping file
func (c *Config) MappingPath() string {
	if filepath.IsAbs(c.MappingFile) {
		return c.MappingFile
	}
	return filepath.Join(c.Root, c.MappingFile)
}
