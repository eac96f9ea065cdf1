// Package config reads the YAML description of an online training run.
//
// A run is one optimizer plus, for the fit command, the model and cost to
// train with:
//
//	teacher: nesterov        # gradient_descent | annealed | momentum | nesterov | adagrad
//	learning_rate: 0.0001
//	t: 1000
//	inertia: 0.99
//	epsilon: 1e-8            # adagrad only
//	model: linear            # constant | linear | logistic
//	cost: least_squares      # least_squares | least_absolute_deviation | max_likelihood
//	passes: 10
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/online/internal/optim"
)

// Teacher kinds.
const (
	GradientDescent = "gradient_descent"
	Annealed        = "annealed"
	Momentum        = "momentum"
	Nesterov        = "nesterov"
	Adagrad         = "adagrad"
)

// Model kinds.
const (
	ModelConstant = "constant"
	ModelLinear   = "linear"
	ModelLogistic = "logistic"
)

// Cost kinds.
const (
	CostLeastSquares           = "least_squares"
	CostLeastAbsoluteDeviation = "least_absolute_deviation"
	CostMaxLikelihood          = "max_likelihood"
)

// Config captures the knobs of a training run.
//
// Zero values select the optimizer defaults of package optim, a linear
// model, least squares and a single pass.
type Config struct {
	Teacher      string  `yaml:"teacher"`
	LearningRate float64 `yaml:"learning_rate"`
	T            float64 `yaml:"t"`
	Inertia      float64 `yaml:"inertia"`
	Epsilon      float64 `yaml:"epsilon"`

	Model  string `yaml:"model"`
	Cost   string `yaml:"cost"`
	Passes int    `yaml:"passes"`
}

// Load reads and validates a Config from the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a Config. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate verifies the config describes a runnable optimizer and fills in
// the model, cost and pass defaults.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	switch c.Teacher {
	case GradientDescent, Annealed, Momentum, Nesterov, Adagrad:
	case "":
		return errors.New("teacher must be set")
	default:
		return errors.Errorf("unknown teacher %q", c.Teacher)
	}
	if c.LearningRate < 0 {
		return errors.Errorf("learning_rate must be > 0 (got %v)", c.LearningRate)
	}
	if c.T < 0 {
		return errors.Errorf("t must be > 0 (got %v)", c.T)
	}
	if c.Epsilon < 0 {
		return errors.Errorf("epsilon must be > 0 (got %v)", c.Epsilon)
	}

	if c.Model == "" {
		c.Model = ModelLinear
	}
	switch c.Model {
	case ModelConstant, ModelLinear, ModelLogistic:
	default:
		return errors.Errorf("unknown model %q", c.Model)
	}

	if c.Cost == "" {
		c.Cost = CostLeastSquares
	}
	switch c.Cost {
	case CostLeastSquares, CostLeastAbsoluteDeviation, CostMaxLikelihood:
	default:
		return errors.Errorf("unknown cost %q", c.Cost)
	}
	if c.Cost == CostMaxLikelihood && c.Model != ModelLogistic {
		return errors.Errorf("cost %s needs a logistic model (got %s)", c.Cost, c.Model)
	}

	if c.Passes < 0 {
		return errors.Errorf("passes must be > 0 (got %d)", c.Passes)
	}
	if c.Passes == 0 {
		c.Passes = 1
	}
	return nil
}

// Build returns the optimizer the config describes.
func (c *Config) Build() (optim.Teacher, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	annealed := optim.AnnealedConfig{LR: c.LearningRate, T: c.T}
	switch c.Teacher {
	case GradientDescent:
		return optim.NewGradientDescent(optim.Config{LR: c.LearningRate}), nil
	case Annealed:
		return optim.NewGradientDescentAnnealed(annealed), nil
	case Momentum:
		return optim.NewMomentum(annealed, c.Inertia), nil
	case Nesterov:
		return optim.NewNesterov(annealed, c.Inertia), nil
	case Adagrad:
		return optim.NewAdagrad(optim.AdagradConfig{LR: c.LearningRate, Epsilon: c.Epsilon}), nil
	}
	return nil, errors.Errorf("unknown teacher %q", c.Teacher)
}
