package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/circconv/internal"
	tt "github.com/gnoswap-labs/circconv/internal/types"
)

const DefaultConfigurationPath = ".circconv.yaml"

type ConvertEngine interface {
	Run(ctx context.Context, filePath string) (*tt.Result, error)
	RunSource(ctx context.Context, source []byte) (*tt.Result, error)
	IgnoreRule(rule string)
}

// Config represents the configuration file.
type Config struct {
	Name   string                   `yaml:"name"`
	Atomic bool                     `yaml:"atomic"`
	Rules  map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns a configuration listing every rule enabled.
func DefaultConfig() Config {
	rules := make(map[string]tt.ConfigRule)
	for _, name := range internal.RuleNames() {
		rules[name] = tt.ConfigRule{}
	}
	return Config{
		Name:  "circconv",
		Rules: rules,
	}
}

// Options control how a converted file is written back.
type Options struct {
	DryRun bool
	Atomic bool
}

// New creates a conversion engine from the given configuration.
func New(config Config, logger *zap.Logger) *internal.Engine {
	return internal.NewEngine(config.Rules, logger)
}

// LoadConfig reads the configuration at path. An empty path means the default
// location, which may be absent.
func LoadConfig(path string) (Config, error) {
	optional := path == ""
	if optional {
		path = DefaultConfigurationPath
	}
	config, err := parseConfigurationFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("error loading configuration %s: %w", path, err)
	}
	return config, nil
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

// WriteConfig writes config to path as YAML.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}

// ProcessFile converts the file at path and, unless opts.DryRun is set,
// overwrites it with the result. The whole result is built before the file
// is opened for writing.
func ProcessFile(
	ctx context.Context,
	logger *zap.Logger,
	engine ConvertEngine,
	path string,
	opts Options,
) (*tt.Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	result, err := engine.Run(ctx, path)
	if err != nil {
		return nil, err
	}
	if opts.DryRun {
		return result, nil
	}

	if err := WriteFile(ctx, path, result.Content, opts.Atomic); err != nil {
		return nil, fmt.Errorf("error writing %s: %w", path, err)
	}

	logger.Info("converted circuit",
		zap.String("path", path),
		zap.Int("lines", result.Lines),
		zap.Int("dropped", result.Dropped),
		zap.Int("outputs", len(result.Outputs)),
		zap.Bool("atomic", opts.Atomic),
	)
	return result, nil
}

// ProcessSource converts content held in memory.
func ProcessSource(ctx context.Context, engine ConvertEngine, source []byte) (*tt.Result, error) {
	return engine.RunSource(ctx, source)
}
