// Package config loads the demonstration sequence run by examples/configured.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/on-the-ground/policy_ive_go/policy"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

var validate = validator.New()

type Config struct {
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Steps    []Step `mapstructure:"steps" validate:"required,min=1,dive"`
}

// Step builds one holder and runs it on every input.
type Step struct {
	Label    string    `mapstructure:"label"`
	Policy   string    `mapstructure:"policy" validate:"required"`
	Params   []float64 `mapstructure:"params"`
	Inputs   []float64 `mapstructure:"inputs" validate:"required,min=1"`
	MemoSize uint32    `mapstructure:"memo_size"`
}

// Name is the label if set, else the policy name.
func (s Step) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Policy
}

// Options converts the step settings into holder options.
func (s Step) Options() []policy.Option {
	if s.MemoSize == 0 {
		return nil
	}
	return []policy.Option{policy.WithMemo(s.MemoSize)}
}

// Default is the fixed sequence: A(0) on 5, then B(1, 2) on 5.
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
		Steps: []Step{
			{Label: "A", Policy: "a", Params: []float64{0}, Inputs: []float64{5}},
			{Label: "B", Policy: "b", Params: []float64{1, 2}, Inputs: []float64{5}},
		},
	}
}

// Load reads path (YAML, optional) on top of the environment.
//
// Variables from envFiles (default ".env" when present) are loaded first and
// never override variables already set. POLICY_LOG_LEVEL overrides the file.
// When the file has no steps key, the Default steps are used. An explicitly
// empty steps list is kept and rejected by Validate.
func Load(path string, envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(delimiter, "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if !v.IsSet(KeySteps) {
		cfg.Steps = Default().Steps
	}
	return cfg, nil
}

func loadEnvFiles(envFiles []string) error {
	if len(envFiles) == 0 {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return nil
		}
		envFiles = []string{DefaultEnvFile}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("failed to load env files %v: %w", envFiles, err)
	}
	return nil
}

// Creator builds holders by policy name. *registry.Registry satisfies it.
type Creator interface {
	Create(name string, params []float64, opts ...policy.Option) (policy.HolderBase, error)
}

// Validate checks field constraints and that every step can be built by c.
// All problems are reported together.
func (cfg Config) Validate(c Creator) error {
	var err error
	if verr := validate.Struct(cfg); verr != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(verr, &fieldErrs) {
			return fmt.Errorf("config validation failed: %w", verr)
		}
		for _, fe := range fieldErrs {
			err = multierr.Append(err, fmt.Errorf("%s: failed %q constraint", fe.Namespace(), fe.Tag()))
		}
	}
	for i, step := range cfg.Steps {
		if step.Policy == "" {
			continue
		}
		h, cerr := c.Create(step.Policy, step.Params, step.Options()...)
		if cerr != nil {
			err = multierr.Append(err, fmt.Errorf("steps[%d]: %w", i, cerr))
			continue
		}
		h.Close()
	}
	return err
}
