package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/born-ml/online/internal/config"
	"github.com/born-ml/online/internal/cost"
	"github.com/born-ml/online/internal/crisp"
	"github.com/born-ml/online/internal/model"
	"github.com/born-ml/online/internal/optim"
	"github.com/born-ml/online/internal/parallel"
	"github.com/born-ml/online/internal/train"
	"github.com/born-ml/online/internal/vector"
)

// result summarizes a fit run.
type result struct {
	model        string
	cost         string
	events       int
	learningRate float64
	coefficients []float64
	meanCost     float64

	// Misclassified events, only for logistic models.
	errors     int
	classified bool
	size       int
}

func (r *result) print(out io.Writer) {
	fmt.Fprintf(out, "model:         %s\n", r.model)
	fmt.Fprintf(out, "cost:          %s\n", r.cost)
	fmt.Fprintf(out, "events:        %d\n", r.events)
	fmt.Fprintf(out, "learning rate: %g\n", r.learningRate)
	fmt.Fprintf(out, "coefficients:  %v\n", r.coefficients)
	fmt.Fprintf(out, "mean cost:     %g\n", r.meanCost)
	if r.classified {
		fmt.Fprintf(out, "errors:        %d/%d\n", r.errors, r.size)
	}
}

// readCSV reads a history from path. See parseCSV.
func readCSV(path string) ([]train.Pair[vector.Dense, float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open history")
	}
	defer f.Close()

	pairs, err := parseCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse history %s", path)
	}
	return pairs, nil
}

// parseCSV reads one event per record: the features followed by the truth
// in the last column. A first record without any numeric field is skipped
// as a header. Lines starting with '#' are comments.
func parseCSV(r io.Reader) ([]train.Pair[vector.Dense, float64], error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "read csv")
	}

	pairs := make([]train.Pair[vector.Dense, float64], 0, len(records))
	for line, record := range records {
		if line == 0 && isHeader(record) {
			continue
		}
		values, err := parseRecord(record)
		if err != nil {
			return nil, errors.Wrapf(err, "record %d", line+1)
		}
		last := len(values) - 1
		pairs = append(pairs, train.Pair[vector.Dense, float64]{
			Features: vector.Dense(values[:last]),
			Truth:    values[last],
		})
	}
	if len(pairs) == 0 {
		return nil, errors.New("history is empty")
	}
	return pairs, nil
}

func isHeader(record []string) bool {
	for _, field := range record {
		if _, err := strconv.ParseFloat(field, 64); err == nil {
			return false
		}
	}
	return true
}

func parseRecord(record []string) ([]float64, error) {
	values := make([]float64, len(record))
	for i, field := range record {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", i+1)
		}
		values[i] = v
	}
	return values, nil
}

// fit trains the model cfg describes on pairs, cfg.Passes times in order,
// logging the mean cost after every pass.
func fit(cfg *config.Config, pairs []train.Pair[vector.Dense, float64], logger *slog.Logger) (*result, error) {
	if len(pairs) == 0 {
		return nil, errors.New("history is empty")
	}
	teacher, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	dimension := pairs[0].Features.Dimension()
	var m model.Model[vector.Dense, float64]
	switch cfg.Model {
	case config.ModelConstant:
		m = model.NewConstant[vector.Dense](0)
	case config.ModelLinear:
		m = model.NewLinear[vector.Dense](dimension)
	case config.ModelLogistic:
		m = model.NewLogistic[vector.Dense](dimension)
	default:
		return nil, errors.Errorf("unknown model %q", cfg.Model)
	}

	var c cost.Cost[float64, float64]
	switch cfg.Cost {
	case config.CostLeastSquares:
		c = cost.LeastSquares{}
	case config.CostLeastAbsoluteDeviation:
		c = cost.LeastAbsoluteDeviation{}
	case config.CostMaxLikelihood:
		c = cost.MaxLikelihood{}
	default:
		return nil, errors.Errorf("unknown cost %q", cfg.Cost)
	}

	events := cfg.Passes * len(pairs)
	training := train.LearnHistory(teacher, c, m, train.Cycle(pairs, events),
		train.WithObserver(func(n int, training optim.Training) {
			if n%len(pairs) != 0 || !logger.Enabled(context.Background(), slog.LevelDebug) {
				return
			}
			logger.Debug("pass complete",
				"pass", n/len(pairs),
				"learning_rate", training.LearningRate(),
				"mean_cost", meanCost(m, c, pairs),
			)
		}),
	)

	res := &result{
		model:        cfg.Model,
		cost:         cfg.Cost,
		events:       events,
		learningRate: training.LearningRate(),
		coefficients: model.Coefficients(m),
		meanCost:     meanCost(m, c, pairs),
		size:         len(pairs),
	}
	if cfg.Model == config.ModelLogistic {
		res.classified = true
		res.errors = crisp.Errors(m.Predict, crisp.Bool, crispTruth(pairs))
	}
	logger.Info("fit complete", "events", events, "mean_cost", res.meanCost)
	return res, nil
}

func meanCost(m model.Model[vector.Dense, float64], c cost.Cost[float64, float64], pairs []train.Pair[vector.Dense, float64]) float64 {
	total := parallel.Sum(len(pairs), func(i int) float64 {
		return c.Cost(m.Predict(pairs[i].Features), pairs[i].Truth)
	}, parallel.DefaultConfig())
	return total / float64(len(pairs))
}

// crispTruth yields pairs with the truth read as a boolean.
func crispTruth(pairs []train.Pair[vector.Dense, float64]) iter.Seq2[vector.Dense, bool] {
	return func(yield func(vector.Dense, bool) bool) {
		for _, p := range pairs {
			if !yield(p.Features, crisp.Bool(p.Truth)) {
				return
			}
		}
	}
}
