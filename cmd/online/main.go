// Package main provides the online learning CLI.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/born-ml/online/internal/config"
	"github.com/born-ml/online/internal/model"
)

const version = "v0.0.1-dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *slog.Logger) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "online %s\n", version)
		return nil
	case "teacher":
		if len(args) != 2 {
			return errors.New("usage: online teacher <config.yaml>")
		}
		cfg, err := config.Load(args[1])
		if err != nil {
			return err
		}
		return describe(out, cfg)
	case "fit":
		if len(args) != 3 {
			return errors.New("usage: online fit <config.yaml> <data.csv>")
		}
		cfg, err := config.Load(args[1])
		if err != nil {
			return err
		}
		pairs, err := readCSV(args[2])
		if err != nil {
			return err
		}
		logger.Info("loaded history", "path", args[2], "events", len(pairs))

		result, err := fit(cfg, pairs, logger)
		if err != nil {
			return err
		}
		result.print(out)
		return nil
	default:
		usage(out)
		return errors.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "online - online learning for Go")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version                         Show version")
	fmt.Fprintln(out, "  teacher <config.yaml>           Describe the configured optimizer")
	fmt.Fprintln(out, "  fit <config.yaml> <data.csv>    Train a model on a CSV history")
}

// describe prints the optimizer cfg builds and its starting learning rate.
func describe(out io.Writer, cfg *config.Config) error {
	teacher, err := cfg.Build()
	if err != nil {
		return err
	}
	// Any model will do: only the rate before the first event is read.
	training := teacher.NewTraining(model.NewConstant[struct{}](0))
	fmt.Fprintf(out, "teacher:       %s (%T)\n", cfg.Teacher, teacher)
	fmt.Fprintf(out, "learning rate: %g\n", training.LearningRate())
	switch cfg.Teacher {
	case config.Annealed, config.Momentum, config.Nesterov:
		fmt.Fprintf(out, "t:             %g\n", cfg.T)
	}
	switch cfg.Teacher {
	case config.Momentum, config.Nesterov:
		fmt.Fprintf(out, "inertia:       %g\n", cfg.Inertia)
	case config.Adagrad:
		fmt.Fprintf(out, "epsilon:       %g\n", cfg.Epsilon)
	}
	return nil
}
