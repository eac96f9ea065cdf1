package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/online/internal/config"
	"github.com/born-ml/online/internal/model"
	"github.com/born-ml/online/internal/optim"
	"github.com/born-ml/online/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Nesterov(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(`
teacher: nesterov
learning_rate: 0.0001
t: 1000
inertia: 0.99
`))
	require.NoError(t, err)

	assert.Equal(t, config.Nesterov, cfg.Teacher)
	assert.InDelta(t, 0.0001, cfg.LearningRate, 1e-15)
	assert.InDelta(t, 1000.0, cfg.T, 1e-12)
	assert.InDelta(t, 0.99, cfg.Inertia, 1e-12)

	// Defaults filled in by Validate.
	assert.Equal(t, config.ModelLinear, cfg.Model)
	assert.Equal(t, config.CostLeastSquares, cfg.Cost)
	assert.Equal(t, 1, cfg.Passes)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":            ``,
		"unknown teacher":  "teacher: rmsprop\n",
		"unknown key":      "teacher: adagrad\nbeta: 0.9\n",
		"negative rate":    "teacher: gradient_descent\nlearning_rate: -1\n",
		"negative t":       "teacher: annealed\nt: -5\n",
		"negative epsilon": "teacher: adagrad\nepsilon: -1e-8\n",
		"unknown model":    "teacher: adagrad\nmodel: tree\n",
		"unknown cost":     "teacher: adagrad\ncost: hinge\n",
		"likelihood model": "teacher: adagrad\nmodel: linear\ncost: max_likelihood\n",
		"negative passes":  "teacher: adagrad\npasses: -1\n",
		"malformed":        "teacher: [nesterov\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("teacher: adagrad\nlearning_rate: 0.5\nepsilon: 1\nmodel: logistic\ncost: max_likelihood\npasses: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Adagrad, cfg.Teacher)
	assert.Equal(t, config.ModelLogistic, cfg.Model)
	assert.Equal(t, config.CostMaxLikelihood, cfg.Cost)
	assert.Equal(t, 3, cfg.Passes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open config")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		teacher string
		want    optim.Teacher
	}{
		{config.GradientDescent, &optim.GradientDescent{}},
		{config.Annealed, &optim.GradientDescentAnnealed{}},
		{config.Momentum, &optim.Momentum{}},
		{config.Nesterov, &optim.Nesterov{}},
		{config.Adagrad, &optim.Adagrad{}},
	}
	for _, tt := range tests {
		t.Run(tt.teacher, func(t *testing.T) {
			cfg := &config.Config{Teacher: tt.teacher, LearningRate: 0.25, T: 10, Inertia: 0.9, Epsilon: 1}
			teacher, err := cfg.Build()
			require.NoError(t, err)
			assert.IsType(t, tt.want, teacher)

			training := teacher.NewTraining(model.NewLinear[vector.Dense](2))
			assert.InDelta(t, 0.25, training.LearningRate(), 1e-12)
		})
	}
}

func TestBuild_Defaults(t *testing.T) {
	cfg := &config.Config{Teacher: config.Annealed}
	teacher, err := cfg.Build()
	require.NoError(t, err)

	training := teacher.NewTraining(model.NewConstant[struct{}](0))
	assert.InDelta(t, 0.01, training.LearningRate(), 1e-12)
}

func TestBuild_Invalid(t *testing.T) {
	cfg := &config.Config{Teacher: "lbfgs"}
	_, err := cfg.Build()
	assert.Error(t, err)

	var nilConfig *config.Config
	_, err = nilConfig.Build()
	assert.Error(t, err)
}
