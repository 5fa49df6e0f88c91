// Package lint walks a root directory and evaluates every qualifying directory.
package lint

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/project"
	"github.com/sofic/sofic/internal/types"
)

// ErrNotDirectory is returned when the walk root is not an existing directory.
var ErrNotDirectory = errors.New("input path is not a directory")

// DirectoryResult holds the outcome for one evaluated directory.
type DirectoryResult struct {
	Dir      string
	Info     *project.Info
	Findings []types.Finding
	Err      error
	Duration time.Duration
}

// HasIssues reports whether the directory needs to be reported.
func (r DirectoryResult) HasIssues() bool {
	return len(r.Findings) > 0 || r.Err != nil
}

// Summary is the result of a walk. Results are in evaluation order.
type Summary struct {
	Root              string
	StartTime         time.Time
	Results           []DirectoryResult
	TotalFindings     int
	FailedDirectories int
	BaselineIgnored   int
}

// recalculateTotals recomputes the counters from Results.
func (s *Summary) recalculateTotals() {
	s.TotalFindings = 0
	s.FailedDirectories = 0
	for _, r := range s.Results {
		s.TotalFindings += len(r.Findings)
		if r.Err != nil {
			s.FailedDirectories++
		}
	}
}

// HasFailures reports whether any directory could not be evaluated.
func (s *Summary) HasFailures() bool {
	return s.FailedDirectories > 0
}

// Walker evaluates a root directory or its immediate children.
type Walker struct {
	concurrency int
	logger      *zap.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithConcurrency bounds how many sibling directories are evaluated at once.
// Values below 1 mean sequential evaluation.
func WithConcurrency(n int) Option {
	return func(w *Walker) {
		if n < 1 {
			n = 1
		}
		w.concurrency = n
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWalker creates a Walker. The default is sequential and silent.
func NewWalker(opts ...Option) *Walker {
	w := &Walker{
		concurrency: 1,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk evaluates root. If root itself is a git repository or JS package only
// root is evaluated. Otherwise each immediate child directory is evaluated on
// its own; grandchildren are never inspected.
//
// A directory that fails is recorded in its DirectoryResult and does not stop
// its siblings. The returned error is reserved for an unusable root.
func (w *Walker) Walk(ctx context.Context, root string) (*Summary, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", root, err)
	}
	if !fsprobe.IsDirectory(absRoot) {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, absRoot)
	}

	summary := &Summary{
		Root:      absRoot,
		StartTime: time.Now(),
	}

	if project.Qualifies(absRoot) {
		w.logger.Debug("root qualifies, evaluating it alone", zap.String("root", absRoot))
		summary.Results = []DirectoryResult{w.evaluate(absRoot)}
		summary.recalculateTotals()
		return summary, nil
	}

	dirs, err := fsprobe.SubDirectories(absRoot)
	if err != nil {
		return nil, err
	}
	w.logger.Debug("evaluating subdirectories",
		zap.String("root", absRoot),
		zap.Int("count", len(dirs)),
		zap.Int("concurrency", w.concurrency))

	results := make([]DirectoryResult, len(dirs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for i, dir := range dirs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = DirectoryResult{Dir: dir, Err: err}
				return nil
			}
			results[i] = w.evaluate(dir)
			return nil
		})
	}
	_ = g.Wait()

	summary.Results = results
	summary.recalculateTotals()
	return summary, nil
}

// evaluate runs EvaluateDirectory and never fails; errors land in the result.
func (w *Walker) evaluate(dir string) DirectoryResult {
	start := time.Now()
	info, findings, err := EvaluateDirectory(dir)
	result := DirectoryResult{
		Dir:      dir,
		Info:     info,
		Findings: findings,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		w.logger.Debug("directory failed", zap.String("dir", dir), zap.Error(err))
	} else if info != nil {
		w.logger.Debug("directory evaluated",
			zap.String("dir", dir),
			zap.Bool("git", info.IsGitRepo),
			zap.Bool("js", info.IsJSPackage),
			zap.String("host", string(info.Host)),
			zap.Int("findings", len(findings)),
			zap.Duration("duration", result.Duration))
	}
	return result
}
