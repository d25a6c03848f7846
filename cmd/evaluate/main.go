package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"route-evaluation-service/internal/api/dto"
	"route-evaluation-service/internal/app"
	"route-evaluation-service/internal/config"
	"route-evaluation-service/internal/domain"
	"route-evaluation-service/internal/platform/logger"
)

// evaluate runs one evaluation and prints the result as JSON on stdout.
// Logs go to stderr.
//
//	evaluate -from "Connaught Place" -to "India Gate" -vehicle diesel
func main() {
	from := flag.String("from", "", "origin place name")
	to := flag.String("to", "", "destination place name")
	vehicle := flag.String("vehicle", string(domain.VehicleGasoline), "vehicle class: electric, gasoline or diesel")
	flag.Parse()

	if *from == "" || *to == "" {
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(*from, *to, *vehicle))
}

func run(from, to, vehicle string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel, "evaluate")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	vc, err := domain.ParseVehicleClass(vehicle)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	ctx := context.Background()

	evaluator, cleanup, err := app.BuildEvaluator(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build evaluator: %v\n", err)
		return 1
	}
	defer cleanup()

	res, err := evaluator.Evaluate(ctx, from, to, vc)
	if err != nil {
		fmt.Fprintln(os.Stderr, describeFailure(err))
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto.FromResult(res)); err != nil {
		fmt.Fprintf(os.Stderr, "encode result: %v\n", err)
		return 1
	}
	return 0
}

// describeFailure renders a one-line explanation naming the failed stage and,
// for geocoding, the place that could not be resolved.
func describeFailure(err error) string {
	kind := domain.KindOf(err)

	var evalErr *domain.EvaluationError
	if !errors.As(err, &evalErr) {
		return fmt.Sprintf("evaluation failed (%s): %v", kind, err)
	}
	if evalErr.Location != "" {
		return fmt.Sprintf("evaluation failed at %s for %q (%s): %v", evalErr.Stage, evalErr.Location, kind, evalErr.Err)
	}
	return fmt.Sprintf("evaluation failed at %s (%s): %v", evalErr.Stage, kind, evalErr.Err)
}
