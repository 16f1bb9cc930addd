package conformance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/distances/dataset"
	"github.com/hupe1980/distances/distance"
	"github.com/hupe1980/distances/number"
)

// SuiteReport collects the reports of one Suite run.
type SuiteReport struct {
	DType   string
	Reports []*Report
	// Skipped lists "metric/backend" checks that the backend does not support
	// for this element type.
	Skipped []string
	Elapsed time.Duration
}

// Passed reports whether every check passed.
func (s *SuiteReport) Passed() bool {
	for _, r := range s.Reports {
		if !r.Passed() {
			return false
		}
	}
	return true
}

// Failed returns the reports with at least one failure.
func (s *SuiteReport) Failed() []*Report {
	var out []*Report
	for _, r := range s.Reports {
		if !r.Passed() {
			out = append(out, r)
		}
	}
	return out
}

func (s *SuiteReport) String() string {
	var sb strings.Builder
	for i, r := range s.Reports {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}
	for _, name := range s.Skipped {
		fmt.Fprintf(&sb, "\nskip %s %s: unsupported", name, s.DType)
	}
	return sb.String()
}

// Suite checks every configured metric and candidate backend for element
// type T against the generic kernels.
//
// Cosine metrics draw values from [-CosineLimit, CosineLimit] unless a limit
// is configured. The normalized cosine metric always runs on unit-norm rows
// with the normalized tolerance. Backends that do not support T are recorded
// in Skipped.
func Suite[T number.Float](ctx context.Context, opts ...Option) (*SuiteReport, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	metrics, err := parseAll(cfg.Metrics, distance.ParseMetric)
	if err != nil {
		return nil, err
	}
	backends, err := parseAll(cfg.Backends, distance.ParseBackend)
	if err != nil {
		return nil, err
	}

	reference := distance.GenericKernels[T, T]()
	out := &SuiteReport{DType: dataset.DType[T]()}
	start := time.Now()

	for _, b := range backends {
		kernels, err := distance.BackendKernels[T, T](b)
		if errors.Is(err, distance.ErrUnsupported) {
			for _, m := range metrics {
				out.Skipped = append(out.Skipped, m.String()+"/"+b.String())
			}
			cfg.Logger.WithBackend(b.String()).InfoContext(ctx, "backend unsupported for element type", "dtype", out.DType)
			continue
		}
		if err != nil {
			return out, err
		}

		for _, m := range metrics {
			ref, err := reference.Get(m)
			if err != nil {
				return out, err
			}
			cand, err := kernels.Get(m)
			if err != nil {
				return out, err
			}

			r, err := Check(ctx, m.String()+"/"+b.String(), ref, cand, metricOptions(cfg, m)...)
			if err != nil {
				return out, err
			}
			out.Reports = append(out.Reports, r)
		}
	}

	out.Elapsed = time.Since(start)
	cfg.Logger.LogSummary(ctx, len(out.Reports), len(out.Failed()), out.Elapsed)
	return out, nil
}

// metricOptions adapts the suite configuration to one metric.
func metricOptions(cfg Config, m distance.Metric) []Option {
	opts := []Option{WithConfig(cfg)}
	if cfg.Limit == 0 && m != distance.MetricEuclideanSq && m != distance.MetricEuclidean {
		opts = append(opts, WithLimit(CosineLimit))
	}
	if m.Normalized() {
		opts = append(opts, WithNormalize(true))
	}
	return opts
}

func parseAll[E any](names []string, parse func(string) (E, error)) ([]E, error) {
	out := make([]E, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		v, err := parse(name)
		if err != nil {
			return nil, fmt.Errorf("conformance: %w", err)
		}
		out = append(out, v)
	}
	return out, nil
}
