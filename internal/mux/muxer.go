package mux

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"log/slog"

	"submix/internal/fileutil"
	"submix/internal/logging"
	"submix/internal/plan"
	"submix/internal/services"
)

// Request describes one mux invocation.
type Request struct {
	Plan       plan.Plan
	OutputPath string
}

// commandRunner executes the transcoder with the primary input on stdin.
type commandRunner func(ctx context.Context, stdin io.Reader, name string, args ...string) error

// Muxer drives ffmpeg to build the output container for a plan. The source
// container is streamed over stdin; a partially written output is deleted on
// every non-success exit path.
type Muxer struct {
	binary string
	logger *slog.Logger
	run    commandRunner
}

// New constructs a muxer around the given ffmpeg binary name.
func New(binary string, logger *slog.Logger) *Muxer {
	if strings.TrimSpace(binary) == "" {
		binary = "ffmpeg"
	}
	return &Muxer{
		binary: binary,
		logger: logging.NewComponentLogger(logger, "muxer"),
		run:    defaultCommandRunner,
	}
}

// WithCommandRunner allows injecting a custom command runner for tests.
func (m *Muxer) WithCommandRunner(r commandRunner) {
	if m != nil && r != nil {
		m.run = r
	}
}

// Mux executes the plan and writes the output container. Cancellation and
// transcoder failures both remove the partial output; cancellation is
// reported as services.ErrInterrupted so the caller halts the run instead of
// moving to the next movie.
func (m *Muxer) Mux(ctx context.Context, req Request) error {
	if m == nil {
		return services.Wrap(services.ErrConfiguration, "mux", "", "muxer not initialized", nil)
	}
	if strings.TrimSpace(req.OutputPath) == "" {
		return services.Wrap(services.ErrConfiguration, "mux", "", "output path is required", nil)
	}
	if strings.TrimSpace(req.Plan.Source) == "" {
		return services.Wrap(services.ErrConfiguration, "mux", "", "plan has no source container", nil)
	}

	for _, input := range req.Plan.ExternalInputs {
		if _, err := os.Stat(input); err != nil {
			return services.Wrap(services.ErrNotFound, "mux", "stat subtitle", fmt.Sprintf("subtitle input %q", input), err)
		}
	}

	if err := fileutil.EnsureDir(filepath.Dir(req.OutputPath)); err != nil {
		return services.Wrap(services.ErrConfiguration, "mux", "ensure output dir", "failed to create output directory", err)
	}

	source, err := os.Open(req.Plan.Source)
	if err != nil {
		return services.Wrap(services.ErrNotFound, "mux", "open source", "source container not found", err)
	}
	defer source.Close()

	args := req.Plan.FFmpegArgs(req.OutputPath)
	m.logger.Debug("executing ffmpeg",
		logging.String("source", req.Plan.Source),
		logging.String("output", req.OutputPath),
		logging.Int("external_inputs", len(req.Plan.ExternalInputs)),
		logging.Int("directives", len(req.Plan.Directives)),
	)

	success := false
	defer func() {
		if !success {
			_ = os.Remove(req.OutputPath)
		}
	}()

	if err := m.run(ctx, source, m.binary, args...); err != nil {
		if ctx.Err() != nil {
			m.logger.Warn("mux interrupted, removing partial output",
				logging.String("output", req.OutputPath),
			)
			return services.Wrap(services.ErrInterrupted, "mux", "ffmpeg", "transcode interrupted", ctx.Err())
		}
		return services.Wrap(services.ErrExternalTool, "mux", "ffmpeg", "transcode failed", err)
	}

	if _, err := os.Stat(req.OutputPath); err != nil {
		return services.Wrap(services.ErrExternalTool, "mux", "ffmpeg", "transcoder did not produce an output file", err)
	}

	success = true
	m.logger.Info("output container written",
		logging.String("output", req.OutputPath),
		logging.Int("subtitles_added", len(req.Plan.ExternalInputs)),
	)
	return nil
}

// defaultCommandRunner executes the transcoder binary.
func defaultCommandRunner(ctx context.Context, stdin io.Reader, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
