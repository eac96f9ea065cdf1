package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/online/internal/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"version"}, &out, discard()))
	assert.Equal(t, "online "+version+"\n", out.String())
}

func TestRun_Usage(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, &out, discard()))
	assert.Contains(t, out.String(), "Commands:")

	out.Reset()
	assert.Error(t, run([]string{"serve"}, &out, discard()))
}

func TestRun_Teacher(t *testing.T) {
	path := writeFile(t, "nesterov.yaml", "teacher: nesterov\nlearning_rate: 0.009\nt: 1000\ninertia: 0.995\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"teacher", path}, &out, discard()))
	assert.Contains(t, out.String(), "nesterov")
	assert.Contains(t, out.String(), "learning rate: 0.009")
	assert.Contains(t, out.String(), "inertia:       0.995")
}

func TestRun_TeacherErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"teacher"}, &out, discard()))
	assert.Error(t, run([]string{"teacher", filepath.Join(t.TempDir(), "missing.yaml")}, &out, discard()))
}

func TestRun_FitLine(t *testing.T) {
	cfgPath := writeFile(t, "gd.yaml", "teacher: gradient_descent\nlearning_rate: 0.2\npasses: 7\n")
	dataPath := writeFile(t, "line.csv", "x,y\n0,3\n1,4\n2,5\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"fit", cfgPath, dataPath}, &out, discard()))
	assert.Contains(t, out.String(), "events:        21")
	assert.NotContains(t, out.String(), "errors:")
}

func TestParseCSV(t *testing.T) {
	pairs, err := parseCSV(strings.NewReader("# comment\na,b,y\n1, 2, 3\n4,5,6\n"))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, []float64{1, 2}, []float64(pairs[0].Features))
	assert.InDelta(t, 6.0, pairs[1].Truth, 1e-12)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"header only":    "x,y\n",
		"bad value":      "1,2\n3,oops\n",
		"ragged record":  "1,2\n3\n",
		"typo in first":  "0,3x\n1,4\n2,5\n",
		"partial header": "x,3\n1,4\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseCSV(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestParseCSV_TypoInFirstRecord(t *testing.T) {
	_, err := parseCSV(strings.NewReader("0,3x\n1,4\n2,5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
}

func TestFit_PassLogging(t *testing.T) {
	pairs, err := parseCSV(strings.NewReader("0,3\n1,4\n2,5\n"))
	require.NoError(t, err)
	cfg := &config.Config{Teacher: config.GradientDescent, LearningRate: 0.2, Passes: 4}
	require.NoError(t, cfg.Validate())

	var info bytes.Buffer
	_, err = fit(cfg, pairs, slog.New(slog.NewTextHandler(&info, &slog.HandlerOptions{Level: slog.LevelInfo})))
	require.NoError(t, err)
	assert.NotContains(t, info.String(), "pass complete")
	assert.Contains(t, info.String(), "fit complete")

	var debug bytes.Buffer
	_, err = fit(cfg, pairs, slog.New(slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug})))
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(debug.String(), "pass complete"))
	assert.Contains(t, debug.String(), "mean_cost=")
}

func TestFit_Line(t *testing.T) {
	pairs, err := parseCSV(strings.NewReader("0,3\n1,4\n2,5\n"))
	require.NoError(t, err)

	cfg := &config.Config{Teacher: config.GradientDescent, LearningRate: 0.2, Passes: 7}
	require.NoError(t, cfg.Validate())

	res, err := fit(cfg, pairs, discard())
	require.NoError(t, err)
	require.Len(t, res.coefficients, 2)
	assert.InDelta(t, 1.0, res.coefficients[0], 0.05)
	assert.InDelta(t, 3.0, res.coefficients[1], 0.05)
	assert.Less(t, res.meanCost, 0.01)
	assert.False(t, res.classified)
}

func TestFit_Logistic(t *testing.T) {
	pairs, err := parseCSV(strings.NewReader("2.5,1\n-1,0\n3,1\n-2,0\n"))
	require.NoError(t, err)

	cfg := &config.Config{
		Teacher:      config.Adagrad,
		LearningRate: 0.5,
		Epsilon:      1,
		Model:        config.ModelLogistic,
		Cost:         config.CostMaxLikelihood,
		Passes:       10,
	}
	require.NoError(t, cfg.Validate())

	res, err := fit(cfg, pairs, discard())
	require.NoError(t, err)
	assert.True(t, res.classified)
	assert.Zero(t, res.errors)
	assert.Equal(t, 4, res.size)

	var out bytes.Buffer
	res.print(&out)
	assert.Contains(t, out.String(), "errors:        0/4")
}

func TestFit_Constant(t *testing.T) {
	pairs, err := parseCSV(strings.NewReader("0,1\n0,2\n0,3\n0,4\n0,5\n"))
	require.NoError(t, err)

	cfg := &config.Config{Teacher: config.Annealed, LearningRate: 0.3, T: 4, Model: config.ModelConstant, Passes: 20}
	require.NoError(t, cfg.Validate())

	res, err := fit(cfg, pairs, discard())
	require.NoError(t, err)
	require.Len(t, res.coefficients, 1)
	assert.InDelta(t, 3.0, res.coefficients[0], 0.2)
}
