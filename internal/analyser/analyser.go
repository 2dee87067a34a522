package analyser

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"submix/internal/catalog"
	"submix/internal/config"
	"submix/internal/fileutil"
	"submix/internal/language"
	"submix/internal/logging"
	"submix/internal/media"
	"submix/internal/media/ffprobe"
	"submix/internal/mux"
	"submix/internal/plan"
	"submix/internal/services"
)

// movieExtensions are the container types a library walk considers.
var movieExtensions = []string{".mkv", ".mp4"}

// outputSuffix marks containers produced by a previous run. Files carrying it
// are never treated as scan inputs.
const outputSuffix = " subtitles"

// Confirmer answers overwrite questions. The CLI supplies an interactive or
// fixed-policy implementation; the zero default declines everything, which is
// the safe answer for unattended runs.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type declineAll struct{}

func (declineAll) Confirm(string) bool { return false }

// probeFunc matches ffprobe.Inspect and is injectable for tests.
type probeFunc func(ctx context.Context, binary, path string) (ffprobe.Result, error)

// Outcome classifies what happened to one movie during a run.
type Outcome string

const (
	OutcomeMuxed   Outcome = "muxed"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// MovieResult records the outcome for a single movie.
type MovieResult struct {
	Path    string
	Output  string
	Outcome Outcome
	Detail  string
	Added   []language.Language
}

// Summary aggregates the results of a full run.
type Summary struct {
	Results []MovieResult
	Muxed   int
	Skipped int
	Failed  int
}

func (s *Summary) record(result MovieResult) {
	s.Results = append(s.Results, result)
	switch result.Outcome {
	case OutcomeMuxed:
		s.Muxed++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

// Gap pairs a discovered movie with the subtitle languages it still lacks.
type Gap struct {
	Movie   media.Movie
	Missing []language.Language
}

// RunOptions carries per-invocation policy.
type RunOptions struct {
	// DryRun builds and logs every plan without executing the transcoder.
	DryRun bool
}

// Analyser walks the movie library, matches loose subtitle files against each
// container, and remuxes the ones with missing languages. Movies are
// processed sequentially; errors are movie-scoped unless they signal
// interruption.
type Analyser struct {
	cfg     *config.Config
	logger  *slog.Logger
	confirm Confirmer
	muxer   *mux.Muxer
	probe   probeFunc
}

// New constructs an analyser for the given configuration.
func New(cfg *config.Config, logger *slog.Logger) *Analyser {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Analyser{
		cfg:     cfg,
		logger:  logger,
		confirm: declineAll{},
		muxer:   mux.New(cfg.FFmpegBinary(), logger),
		probe:   ffprobe.Inspect,
	}
}

// WithConfirmer installs the overwrite-confirmation policy.
func (a *Analyser) WithConfirmer(c Confirmer) {
	if a != nil && c != nil {
		a.confirm = c
	}
}

// WithMuxer replaces the transcoder executor. Tests use this to avoid
// spawning ffmpeg.
func (a *Analyser) WithMuxer(m *mux.Muxer) {
	if a != nil && m != nil {
		a.muxer = m
	}
}

// WithProbe replaces the stream inspector. Tests use this to avoid spawning
// ffprobe.
func (a *Analyser) WithProbe(p probeFunc) {
	if a != nil && p != nil {
		a.probe = p
	}
}

// Run executes a full library pass: build the catalog, discover movies, and
// mux every container with missing subtitle languages. Only one run may be
// active per log directory; a second invocation fails fast instead of racing
// the first over output files.
func (a *Analyser) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	var summary Summary

	lock := flock.New(filepath.Join(a.cfg.Paths.LogDir, "submix.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return summary, services.Wrap(services.ErrConfiguration, "run", "lock", "acquire run lock", err)
	}
	if !locked {
		return summary, services.Wrap(services.ErrConfiguration, "run", "lock", "another submix run is already active", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	logger := a.logger.With(logging.String("run_id", uuid.NewString()))

	cat, movies, err := a.survey(logger)
	if err != nil {
		return summary, err
	}

	for _, path := range movies {
		if ctx.Err() != nil {
			return summary, services.Wrap(services.ErrInterrupted, "run", "", "run interrupted", ctx.Err())
		}
		result, err := a.processMovie(ctx, logger, cat, path, opts)
		if err != nil {
			if services.HaltsRun(err) {
				return summary, err
			}
			logger.Error("movie failed",
				logging.String("movie", path),
				logging.Error(err),
			)
			summary.record(MovieResult{Path: path, Outcome: OutcomeFailed, Detail: err.Error()})
			continue
		}
		summary.record(result)
	}

	logger.Info("run complete",
		logging.Int("muxed", summary.Muxed),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
	)
	return summary, nil
}

// Scan reports the missing languages for every discovered movie without
// touching anything. Movies that fail probing are logged and omitted; the
// error return covers catalog and discovery failures only.
func (a *Analyser) Scan(ctx context.Context) ([]Gap, error) {
	_, gaps, err := a.scan(ctx)
	return gaps, err
}

func (a *Analyser) scan(ctx context.Context) (*catalog.Catalog, []Gap, error) {
	cat, movies, err := a.survey(a.logger)
	if err != nil {
		return nil, nil, err
	}

	gaps := make([]Gap, 0, len(movies))
	for _, path := range movies {
		if ctx.Err() != nil {
			return cat, gaps, services.Wrap(services.ErrInterrupted, "scan", "", "scan interrupted", ctx.Err())
		}
		movie, err := a.inspect(ctx, path)
		if err != nil {
			a.logger.Warn("skipping movie that failed inspection",
				logging.String("movie", path),
				logging.Error(err),
			)
			continue
		}
		gaps = append(gaps, Gap{
			Movie:   movie,
			Missing: plan.MissingLanguages(movie, cat, a.cfg.WantedLanguages(), a.cfg.DefaultLanguage()),
		})
	}
	return cat, gaps, nil
}

// PlanResult pairs a buildable plan with its movie and destination.
type PlanResult struct {
	Movie      media.Movie
	Plan       plan.Plan
	OutputPath string
	Added      []language.Language
}

// Plans builds the mux plan for every movie with missing languages, applying
// the same unresolved-subtitle policy as Run. Used by the plan command to
// show the exact ffmpeg invocations a run would execute.
func (a *Analyser) Plans(ctx context.Context) ([]PlanResult, error) {
	cat, gaps, err := a.scan(ctx)
	if err != nil {
		return nil, err
	}

	var results []PlanResult
	for _, gap := range gaps {
		if len(gap.Missing) == 0 {
			continue
		}
		p, resolved, err := a.buildPlan(a.logger, cat, gap.Movie, gap.Missing)
		if err != nil {
			a.logger.Warn("skipping movie without a buildable plan",
				logging.String("movie", gap.Movie.Path),
				logging.Error(err),
			)
			continue
		}
		if len(resolved) == 0 {
			continue
		}
		results = append(results, PlanResult{
			Movie:      gap.Movie,
			Plan:       p,
			OutputPath: gap.Movie.OutputPath(a.cfg.Paths.OutputDir),
			Added:      resolved,
		})
	}
	return results, nil
}

// survey builds the subtitle catalog and discovers scan candidates.
func (a *Analyser) survey(logger *slog.Logger) (*catalog.Catalog, []string, error) {
	cat, err := catalog.Build(a.cfg.Paths.SubtitleDir, a.cfg.CatalogDefaultLanguage(), logger)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := fileutil.FindFiles(a.cfg.Paths.MovieDir, movieExtensions...)
	if err != nil {
		return nil, nil, fmt.Errorf("discover movies: %w", err)
	}

	movies := candidates[:0]
	for _, path := range candidates {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if strings.HasSuffix(stem, outputSuffix) {
			continue
		}
		movies = append(movies, path)
	}

	logger.Info("library scanned",
		logging.String("movie_dir", a.cfg.Paths.MovieDir),
		logging.Int("movies", len(movies)),
		logging.Int("catalog_movies", cat.Len()),
	)
	return cat, movies, nil
}

// inspect probes one container and classifies its streams.
func (a *Analyser) inspect(ctx context.Context, path string) (media.Movie, error) {
	report, err := a.probe(ctx, a.cfg.FFprobeBinary(), path)
	if err != nil {
		return media.Movie{}, err
	}
	streams, err := media.ClassifyAll(report.Streams)
	if err != nil {
		return media.Movie{}, err
	}
	return media.NewMovie(path, streams)
}

func (a *Analyser) processMovie(ctx context.Context, logger *slog.Logger, cat *catalog.Catalog, path string, opts RunOptions) (MovieResult, error) {
	movie, err := a.inspect(ctx, path)
	if err != nil {
		return MovieResult{}, err
	}

	outputPath := movie.OutputPath(a.cfg.Paths.OutputDir)
	result := MovieResult{Path: path, Output: outputPath}

	// A confirmed-stale output is not removed here: deletion waits until a
	// resolvable plan exists, so an unresolvable wanted language can never
	// cost the operator a previously good container.
	if fileutil.PathExists(outputPath) {
		rebuild, detail, err := a.shouldRebuild(ctx, cat, outputPath)
		if err != nil {
			return MovieResult{}, err
		}
		if !rebuild {
			logger.Info("skipping movie with existing output",
				logging.String("movie", path),
				logging.String("reason", detail),
			)
			result.Outcome = OutcomeSkipped
			result.Detail = detail
			return result, nil
		}
	}

	missing := plan.MissingLanguages(movie, cat, a.cfg.WantedLanguages(), a.cfg.DefaultLanguage())
	if len(missing) == 0 {
		logger.Info("no missing subtitle languages",
			logging.String("movie", path),
		)
		result.Outcome = OutcomeSkipped
		result.Detail = "no missing languages"
		return result, nil
	}

	p, resolved, err := a.buildPlan(logger, cat, movie, missing)
	if err != nil {
		return MovieResult{}, err
	}
	if len(resolved) == 0 {
		result.Outcome = OutcomeSkipped
		result.Detail = "no resolvable subtitle files"
		return result, nil
	}
	result.Added = resolved

	if opts.DryRun {
		logger.Info("dry run, not executing transcoder",
			logging.String("movie", path),
			logging.String("ffmpeg_args", strings.Join(p.FFmpegArgs(outputPath), " ")),
		)
		result.Outcome = OutcomeSkipped
		result.Detail = "dry run"
		return result, nil
	}

	if fileutil.PathExists(outputPath) {
		if err := os.Remove(outputPath); err != nil {
			return MovieResult{}, fmt.Errorf("remove stale output: %w", err)
		}
	}

	logger.Info("muxing missing subtitles",
		logging.String("movie", path),
		logging.String("languages", languageNames(resolved)),
	)
	if err := a.muxer.Mux(ctx, mux.Request{Plan: p, OutputPath: outputPath}); err != nil {
		return MovieResult{}, err
	}

	result.Outcome = OutcomeMuxed
	return result, nil
}

// buildPlan constructs the mux plan for the missing languages, applying the
// unresolved-subtitle policy: when skip_unresolved is set, languages without
// a catalog file are dropped with a warning and the plan is rebuilt from the
// remainder. Returns the languages actually planned; an empty slice means
// nothing was resolvable.
func (a *Analyser) buildPlan(logger *slog.Logger, cat *catalog.Catalog, movie media.Movie, missing []language.Language) (plan.Plan, []language.Language, error) {
	opts := plan.Options{
		DefaultLanguage: a.cfg.DefaultLanguage(),
		VideoCodec:      a.cfg.Video.Codec,
	}

	p, err := plan.Build(movie, missing, cat, opts)
	if err == nil {
		return p, missing, nil
	}

	var unresolved *plan.UnresolvedSubtitleError
	if !errors.As(err, &unresolved) || !a.cfg.Subtitles.SkipUnresolved {
		return plan.Plan{}, nil, err
	}

	logger.Warn("dropping languages without subtitle files",
		logging.String("movie", movie.Name),
		logging.String("languages", languageNames(unresolved.Languages)),
	)

	dropped := make(map[language.Language]struct{}, len(unresolved.Languages))
	for _, lang := range unresolved.Languages {
		dropped[lang] = struct{}{}
	}
	var remaining []language.Language
	for _, lang := range missing {
		if _, ok := dropped[lang]; ok {
			continue
		}
		remaining = append(remaining, lang)
	}
	if len(remaining) == 0 {
		return plan.Plan{}, nil, nil
	}

	p, err = plan.Build(movie, remaining, cat, opts)
	if err != nil {
		return plan.Plan{}, nil, err
	}
	return p, remaining, nil
}

// shouldRebuild decides what to do with an existing output container. The
// output is probed and its own gap computed against the catalog: when it
// already carries everything the catalog offers, the movie is skipped without
// bothering the operator. Otherwise the operator decides; declining keeps the
// existing file. A rebuild always starts from the original source container.
func (a *Analyser) shouldRebuild(ctx context.Context, cat *catalog.Catalog, outputPath string) (bool, string, error) {
	existing, err := a.inspect(ctx, outputPath)
	if err != nil {
		return false, "", fmt.Errorf("inspect existing output: %w", err)
	}

	// The output was named after the source movie, so strip the marker to
	// look up catalog entries under the original name.
	existing.Name = strings.TrimSuffix(existing.Name, outputSuffix)

	missing := plan.MissingLanguages(existing, cat, a.cfg.WantedLanguages(), a.cfg.DefaultLanguage())
	if len(missing) == 0 {
		return false, "existing output is complete", nil
	}

	prompt := fmt.Sprintf("%s exists but lacks %s. Rebuild it?", outputPath, languageNames(missing))
	if !a.confirm.Confirm(prompt) {
		return false, "operator kept existing output", nil
	}
	return true, "", nil
}

func languageNames(langs []language.Language) string {
	names := make([]string, 0, len(langs))
	for _, lang := range langs {
		names = append(names, lang.Name())
	}
	return strings.Join(names, ", ")
}
