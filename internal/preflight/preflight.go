// Package preflight provides readiness checks for the binaries and
// filesystem paths Submix depends on.
//
// These checks run in two contexts:
//   - The run command calls RunAll before scanning anything. If a
//     mandatory check fails, the run halts instead of discovering the
//     problem halfway through a library walk.
//   - The CLI "submix preflight" command displays the same results as
//     a table for operators setting up a new machine.
package preflight

import (
	"context"

	"submix/internal/config"
	"submix/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
// The subtitle directory is only checked when it differs from the movie
// directory, and the output directory is skipped when unset because the
// run creates it on demand.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckDirectoryAccess("Movie directory", cfg.Paths.MovieDir))
	if cfg.Paths.SubtitleDir != cfg.Paths.MovieDir {
		results = append(results, CheckDirectoryAccess("Subtitle directory", cfg.Paths.SubtitleDir))
	}

	for _, status := range CheckTools(ctx, cfg) {
		result := Result{Name: status.Name, Passed: status.Available, Detail: status.Command}
		if !status.Available {
			result.Detail = status.Detail
		}
		results = append(results, result)
	}

	return results
}

// Passed reports whether every result in the slice passed.
func Passed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// CheckTools evaluates the external binaries for the given config.
func CheckTools(_ context.Context, cfg *config.Config) []deps.Status {
	return deps.CheckBinaries(deps.Requirements(cfg.FFprobeBinary(), cfg.FFmpegBinary()))
}
