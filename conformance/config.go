package conformance

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/hupe1980/distances"
	"github.com/hupe1980/distances/blobstore"
	"github.com/hupe1980/distances/dataset"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "DISTANCES_CONFORMANCE"

// DefaultDimensions are the dimensionalities checked when none are configured.
var DefaultDimensions = []int{1000, 2000, 4000, 8000, 16000, 32000}

const (
	// DefaultCardinality is the number of rows in each generated matrix.
	DefaultCardinality = 100
	// DefaultSeed seeds the x matrix; y uses DefaultSeed+1.
	DefaultSeed = 42
	// maxCardinality keeps every pair index i*cardinality+j within uint32.
	maxCardinality = 1 << 16
)

// Value ranges used when Limit is zero.
const (
	EuclideanLimit = 10
	CosineLimit    = 1
)

// Tolerances for unit-norm inputs, where results cluster around 1 and a
// tighter bound is meaningful.
const (
	NormalizedTolerance32 = 1e-5
	NormalizedTolerance64 = 1e-10
)

// Config controls a conformance run.
//
// Zero Limit and Tolerance select defaults: Check draws values from
// [-EuclideanLimit, EuclideanLimit] and Suite uses CosineLimit for cosine
// metrics. The default tolerance is √ε of the element type, or the
// Normalized tolerance when Normalize is set.
type Config struct {
	Dimensions  []int   `envconfig:"DIMENSIONS" default:"1000,2000,4000,8000,16000,32000"`
	Cardinality int     `envconfig:"CARDINALITY" default:"100"`
	Limit       float64 `envconfig:"LIMIT" default:"0"`
	Seed        int64   `envconfig:"SEED" default:"42"`
	Tolerance   float64 `envconfig:"TOLERANCE" default:"0"`
	Normalize   bool    `envconfig:"NORMALIZE" default:"false"`

	// Workers bounds the number of rows evaluated concurrently.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int `envconfig:"WORKERS" default:"0"`

	// Metrics and Backends select what Suite runs. Backends are candidates;
	// the generic backend is always the reference.
	Metrics  []string `envconfig:"METRICS" default:"euclidean_sq,euclidean,cosine,cosine_normed"`
	Backends []string `envconfig:"BACKENDS" default:"lanes,accelerated"`
	DTypes   []string `envconfig:"DTYPES" default:"float32,float64"`

	// FixtureStore locates cached fixtures; see OpenFixtureStore.
	FixtureStore string      `envconfig:"FIXTURE_STORE"`
	Compression  string      `envconfig:"COMPRESSION" default:"zstd"`
	MinIO        MinIOConfig `envconfig:"MINIO"`
	S3           S3Config    `envconfig:"S3"`

	Store     blobstore.BlobStore        `ignored:"true"`
	Logger    *distances.Logger          `ignored:"true"`
	Collector distances.MetricsCollector `ignored:"true"`
}

// MinIOConfig holds the connection settings for minio:// fixture stores.
type MinIOConfig struct {
	Endpoint  string `envconfig:"ENDPOINT" default:"localhost:9000"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Secure    bool   `envconfig:"SECURE" default:"false"`
	Region    string `envconfig:"REGION"`
}

// S3Config holds the settings for s3:// fixture stores. Credentials come from
// the default AWS chain.
type S3Config struct {
	Region   string `envconfig:"REGION"`
	Endpoint string `envconfig:"ENDPOINT"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Dimensions:  append([]int(nil), DefaultDimensions...),
		Cardinality: DefaultCardinality,
		Seed:        DefaultSeed,
		Metrics:     []string{"euclidean_sq", "euclidean", "cosine", "cosine_normed"},
		Backends:    []string{"lanes", "accelerated"},
		DTypes:      []string{"float32", "float64"},
		Compression: dataset.CompressionZSTD.String(),
		MinIO:       MinIOConfig{Endpoint: "localhost:9000"},
	}
}

// LoadConfig reads DISTANCES_CONFORMANCE_* variables. The named .env files
// are loaded first; with none given, a .env in the working directory is
// loaded if present. Variables already set in the environment win.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("conformance: load env: %w", err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("conformance: load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("conformance: %w", err)
	}
	return cfg, nil
}

// Option configures a conformance run.
type Option func(*Config)

// WithConfig replaces the whole configuration, typically one returned by
// LoadConfig. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithDimensions sets the dimensionalities to check.
func WithDimensions(dims ...int) Option {
	return func(c *Config) { c.Dimensions = append([]int(nil), dims...) }
}

// WithCardinality sets the number of rows per matrix; each dimensionality
// checks cardinality² pairs.
func WithCardinality(n int) Option {
	return func(c *Config) { c.Cardinality = n }
}

// WithLimit draws values from [-limit, limit].
func WithLimit(limit float64) Option {
	return func(c *Config) { c.Limit = limit }
}

// WithSeed sets the seed of the x matrix; y uses seed+1.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithTolerance sets the relative tolerance. A pair fails when
// |reference - candidate| > tolerance * |candidate|.
func WithTolerance(tol float64) Option {
	return func(c *Config) { c.Tolerance = tol }
}

// WithNormalize L2-normalizes every generated row.
func WithNormalize(normalize bool) Option {
	return func(c *Config) { c.Normalize = normalize }
}

// WithWorkers bounds the number of rows evaluated concurrently.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

// WithMetrics selects the metrics Suite runs.
func WithMetrics(names ...string) Option {
	return func(c *Config) { c.Metrics = append([]string(nil), names...) }
}

// WithBackends selects the candidate backends Suite runs.
func WithBackends(names ...string) Option {
	return func(c *Config) { c.Backends = append([]string(nil), names...) }
}

// WithFixtureStore caches generated matrices in store.
func WithFixtureStore(store blobstore.BlobStore) Option {
	return func(c *Config) { c.Store = store }
}

// WithCompression sets the fixture compression ("none", "lz4" or "zstd").
func WithCompression(name string) Option {
	return func(c *Config) { c.Compression = name }
}

// WithLogger sets the logger.
func WithLogger(l *distances.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithMetricsCollector sets the metrics collector.
func WithMetricsCollector(m distances.MetricsCollector) Option {
	return func(c *Config) { c.Collector = m }
}

func newConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = distances.NoopLogger()
	}
	if cfg.Collector == nil {
		cfg.Collector = distances.NoopMetricsCollector{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if len(c.Dimensions) == 0 {
		return errors.New("conformance: no dimensions")
	}
	for _, d := range c.Dimensions {
		if d < 1 {
			return fmt.Errorf("conformance: invalid dimension %d", d)
		}
	}
	if c.Cardinality < 1 || c.Cardinality > maxCardinality {
		return fmt.Errorf("conformance: cardinality %d out of range [1, %d]", c.Cardinality, maxCardinality)
	}
	if c.Limit < 0 {
		return fmt.Errorf("conformance: negative limit %g", c.Limit)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("conformance: negative tolerance %g", c.Tolerance)
	}
	if c.Workers < 0 {
		return fmt.Errorf("conformance: negative workers %d", c.Workers)
	}
	if _, err := dataset.ParseCompression(c.Compression); err != nil {
		return fmt.Errorf("conformance: %w", err)
	}
	return nil
}
