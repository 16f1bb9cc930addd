package conformance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/distances/dataset"
	"github.com/hupe1980/distances/distance"
	"github.com/hupe1980/distances/number"
)

// Failure is one pair whose candidate result is outside tolerance.
type Failure struct {
	Dim       int
	I, J      int
	Reference float64
	Candidate float64
	Delta     float64
	Threshold float64
}

func (f Failure) String() string {
	return fmt.Sprintf("dim=%d (%d,%d) ref=%g cand=%g delta=%g threshold=%g",
		f.Dim, f.I, f.J, f.Reference, f.Candidate, f.Delta, f.Threshold)
}

// DimReport is the outcome for one dimensionality.
type DimReport struct {
	Dim      int
	Pairs    int
	Failures []Failure
	// Failing holds i*Cardinality+j for every failing pair.
	Failing *roaring.Bitmap
	Elapsed time.Duration
}

// Report is the outcome of one Check.
type Report struct {
	Name        string
	DType       string
	Cardinality int
	Tolerance   float64
	Dims        []DimReport
}

// Passed reports whether every pair of every dimensionality was in tolerance.
func (r *Report) Passed() bool {
	return r.FailureCount() == 0
}

// Pairs returns the number of pairs compared.
func (r *Report) Pairs() int {
	n := 0
	for _, d := range r.Dims {
		n += d.Pairs
	}
	return n
}

// FailureCount returns the number of failing pairs.
func (r *Report) FailureCount() int {
	n := 0
	for _, d := range r.Dims {
		n += len(d.Failures)
	}
	return n
}

// Failures returns every failure in dimension, then row, then column order.
func (r *Report) Failures() []Failure {
	var out []Failure
	for _, d := range r.Dims {
		out = append(out, d.Failures...)
	}
	return out
}

// Failed reports whether pair (i, j) failed at dimensionality dim.
func (r *Report) Failed(dim, i, j int) bool {
	for _, d := range r.Dims {
		if d.Dim == dim {
			return d.Failing.Contains(uint32(i*r.Cardinality + j))
		}
	}
	return false
}

// String summarizes the report with up to five failures.
func (r *Report) String() string {
	var sb strings.Builder
	status := "ok"
	if !r.Passed() {
		status = "FAIL"
	}
	fmt.Fprintf(&sb, "%s %s %s: %d pairs, %d failures (tolerance %g)",
		status, r.Name, r.DType, r.Pairs(), r.FailureCount(), r.Tolerance)
	for k, f := range r.Failures() {
		if k == 5 {
			sb.WriteString("\n  ...")
			break
		}
		sb.WriteString("\n  ")
		sb.WriteString(f.String())
	}
	return sb.String()
}

// DefaultTolerance returns √ε of T, or the normalized tolerance for T when
// normalized is set.
func DefaultTolerance[T number.Float](normalized bool) float64 {
	is32 := number.Epsilon[T]() == T(number.Epsilon32)
	switch {
	case normalized && is32:
		return NormalizedTolerance32
	case normalized:
		return NormalizedTolerance64
	default:
		return float64(number.Sqrt(number.Epsilon[T]()))
	}
}

// Check compares candidate against reference over cardinality² random pairs
// at each configured dimensionality.
//
// Kernel errors abort the check, since they mean the inputs were rejected
// rather than computed differently. Out-of-tolerance pairs never do: they are
// collected in the report, which is returned with a nil error.
func Check[T number.Float](ctx context.Context, name string, reference, candidate distance.Func[T, T], opts ...Option) (*Report, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	tol := cfg.Tolerance
	if tol == 0 {
		tol = DefaultTolerance[T](cfg.Normalize)
	}
	limit := cfg.Limit
	if limit == 0 {
		limit = EuclideanLimit
	}

	report := &Report{
		Name:        name,
		DType:       dataset.DType[T](),
		Cardinality: cfg.Cardinality,
		Tolerance:   tol,
	}

	for _, dim := range cfg.Dimensions {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		start := time.Now()
		dr, err := checkDim(ctx, cfg, reference, candidate, dim, limit, T(tol))
		elapsed := time.Since(start)

		cfg.Logger.LogCheck(ctx, name, dim, dr.Pairs, len(dr.Failures), elapsed, err)
		cfg.Collector.RecordCheck(name, dim, dr.Pairs, len(dr.Failures), elapsed, err)
		if err != nil {
			return report, fmt.Errorf("conformance: %s dim %d: %w", name, dim, err)
		}

		dr.Elapsed = elapsed
		report.Dims = append(report.Dims, dr)
	}

	return report, nil
}

func checkDim[T number.Float](ctx context.Context, cfg Config, reference, candidate distance.Func[T, T], dim int, limit float64, tol T) (DimReport, error) {
	dr := DimReport{Dim: dim, Failing: roaring.New()}

	xs, err := matrix[T](ctx, cfg, dim, limit, cfg.Seed)
	if err != nil {
		return dr, err
	}
	ys, err := matrix[T](ctx, cfg, dim, limit, cfg.Seed+1)
	if err != nil {
		return dr, err
	}

	n := cfg.Cardinality
	rows := make([][]Failure, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i := range n {
		g.Go(func() error {
			x := xs.Row(i)
			for j := range n {
				if j%16 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				y := ys.Row(j)

				ref, err := reference(x, y)
				if err != nil {
					return fmt.Errorf("reference (%d,%d): %w", i, j, err)
				}
				cand, err := candidate(x, y)
				if err != nil {
					return fmt.Errorf("candidate (%d,%d): %w", i, j, err)
				}

				if f, ok := compare(ref, cand, tol); !ok {
					f.Dim, f.I, f.J = dim, i, j
					rows[i] = append(rows[i], f)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dr, err
	}

	dr.Pairs = n * n
	for _, fs := range rows {
		for _, f := range fs {
			dr.Failing.Add(uint32(f.I*n + f.J))
		}
		dr.Failures = append(dr.Failures, fs...)
	}
	return dr, nil
}

// compare reports whether cand is within tol*|cand| of ref. Two NaNs agree;
// one NaN does not.
func compare[T number.Float](ref, cand, tol T) (Failure, bool) {
	f := Failure{Reference: float64(ref), Candidate: float64(cand)}

	refNaN, candNaN := number.IsNaN(ref), number.IsNaN(cand)
	if refNaN || candNaN {
		if refNaN && candNaN {
			return f, true
		}
		f.Delta = float64(number.Abs(ref - cand))
		return f, false
	}

	delta := number.Abs(ref - cand)
	threshold := tol * number.Abs(cand)
	f.Delta, f.Threshold = float64(delta), float64(threshold)
	return f, delta <= threshold
}

// matrix generates the rows for one side of a check, going through the
// fixture store when one is configured.
func matrix[T number.Float](ctx context.Context, cfg Config, dim int, limit float64, seed int64) (dataset.Matrix[T], error) {
	spec := dataset.Spec{
		Cardinality:    cfg.Cardinality,
		Dimensionality: dim,
		Min:            -limit,
		Max:            limit,
		Seed:           seed,
		Normalized:     cfg.Normalize,
	}

	if cfg.Store == nil {
		return dataset.Generate[T](spec)
	}

	c, err := dataset.ParseCompression(cfg.Compression)
	if err != nil {
		return dataset.Matrix[T]{}, err
	}

	start := time.Now()
	m, hit, err := dataset.LoadOrGenerate[T](ctx, cfg.Store, spec, dataset.WithCompression(c))
	cfg.Logger.LogFixture(ctx, dataset.Name[T](spec), hit, err)
	cfg.Collector.RecordFixture(hit, time.Since(start), err)
	return m, err
}
