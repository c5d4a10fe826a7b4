package analyzer

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"textcheck/internal/input"
)

// RunParallel buffers the whole input, shards it into jobs contiguous
// line ranges, analyzes each shard on its own goroutine and merges the
// shard stores in range order. First-occurrence order is preserved
// within each shard and the merge order is deterministic, so the
// output is stable for a given jobs count.
func (a *Analyzer) RunParallel(ctx context.Context, r io.Reader, jobs int) error {
	if jobs <= 1 {
		return a.Run(ctx, r)
	}

	rd := input.NewReader(r, a.Cfg.SentenceIDs)
	var lines []input.Line
	for {
		if ctx.Err() != nil {
			break
		}
		ln, ok, err := rd.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		lines = append(lines, ln)
	}
	if len(lines) == 0 {
		return nil
	}
	if jobs > len(lines) {
		jobs = len(lines)
	}

	shards := make([]*Analyzer, jobs)
	g, ctx := errgroup.WithContext(ctx)
	chunk := (len(lines) + jobs - 1) / jobs
	for i := 0; i < jobs; i++ {
		lo := i * chunk
		hi := min(lo+chunk, len(lines))
		if lo >= hi {
			break
		}
		shard := NewWithPolicy(a.Cfg, a.Policy)
		shards[i] = shard
		part := lines[lo:hi]
		g.Go(func() error {
			for _, ln := range part {
				if ctx.Err() != nil {
					return nil
				}
				shard.ProcessLine(ln)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, shard := range shards {
		if shard != nil {
			a.Merge(shard)
		}
	}
	return nil
}
