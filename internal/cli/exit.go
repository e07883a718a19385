package cli

import (
	"errors"

	"github.com/specialistvlad/randscenario/internal/app"
	"github.com/specialistvlad/randscenario/internal/batch"
	"github.com/specialistvlad/randscenario/internal/config"
	"github.com/specialistvlad/randscenario/internal/generator"
	"github.com/specialistvlad/randscenario/internal/registry"
	"github.com/specialistvlad/randscenario/internal/scenario"
	"github.com/specialistvlad/randscenario/internal/sink"
)

// Classify wraps err into an *ExitError carrying the exit code for its
// category. A nil err stays nil and an *ExitError is returned unchanged.
func Classify(err error) *ExitError {
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return &ExitError{Code: exitCode(err), Message: err.Error(), Err: err}
}

func exitCode(err error) int {
	var (
		parseErr    *config.ParseError
		scenarioErr *scenario.Error
		sinkErr     *sink.Error
		batchErr    *batch.Error
		genErr      *generator.Error
	)
	switch {
	case errors.Is(err, app.ErrInvalidConfig), errors.Is(err, registry.ErrUnknownEncoder):
		return ExitUsage
	case errors.As(err, &parseErr), errors.As(err, &scenarioErr):
		return ExitScenario
	case errors.As(err, &batchErr), errors.As(err, &sinkErr), errors.As(err, &genErr):
		return ExitOutput
	default:
		return ExitFailure
	}
}
