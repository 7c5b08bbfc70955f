package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FileResult is the outcome of evaluating one file. Err holds the parse
// or eval failure; IO failures abort the whole batch instead.
type FileResult struct {
	Path   string
	Result *EvalResult
	Err    error
}

// EvalFiles evaluates many files concurrently, at most jobs at a time
// (0 = number of CPUs). Results come back in input order; each file gets
// its own FileSet and Bag, so workers share no mutable state.
func EvalFiles(ctx context.Context, paths []string, opts Options, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	results := make([]FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := Eval(path, opts)
			if res == nil {
				// IO failure: nothing to report per-file.
				return err
			}
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
