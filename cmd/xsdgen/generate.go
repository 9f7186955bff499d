package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/xsdgen"
)

// result holds the values drawn for one declared type.
type result struct {
	Type        string   `json:"type" msgpack:"type"`
	Base        string   `json:"base" msgpack:"base"`
	Description string   `json:"description" msgpack:"description"`
	Seed        int64    `json:"seed" msgpack:"seed"`
	Values      []string `json:"values" msgpack:"values"`
	Failed      []string `json:"failed,omitempty" msgpack:"failed,omitempty"`
}

type job struct {
	logger  *slog.Logger
	types   []xsdgen.FacetType
	opts    xsdgen.Options
	seed    int64
	count   int
	workers int
	check   bool
}

// run generates every type concurrently. Results keep declaration order.
func (j job) run(ctx context.Context) ([]result, error) {
	results := make([]result, len(j.types))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(j.workers)

	for i, t := range j.types {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			r, err := j.generate(t, j.seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (j job) generate(t xsdgen.FacetType, seed int64) (result, error) {
	g, err := xsdgen.NewFromFacetType(t, j.opts)
	if err != nil {
		return result{}, err
	}
	values, err := g.Take(seed, j.count)
	if err != nil {
		return result{}, fmt.Errorf("type %q: %w", t.Name, err)
	}
	r := result{
		Type:        t.Name,
		Base:        g.TypeName(),
		Description: g.Description(),
		Seed:        seed,
		Values:      values,
	}
	if j.check {
		for _, v := range values {
			if !g.Check(v) {
				r.Failed = append(r.Failed, v)
			}
		}
	}
	j.logger.Debug("generated",
		slog.String("type", t.Name),
		slog.Int64("seed", seed),
		slog.Int("samples", len(values)),
		slog.String("description", r.Description),
	)
	return r, nil
}

func reportFailures(w io.Writer, results []result) int {
	failed := 0
	for _, r := range results {
		for _, v := range r.Failed {
			_ = writef(w, "%s: %q fails %s\n", r.Type, v, r.Description)
			failed++
		}
	}
	return failed
}
