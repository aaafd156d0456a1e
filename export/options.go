package export

// Option customizes an exporter.
type Option func(*config)

type config struct {
	delimiter string
	headers   bool
	sorted    bool
}

// DefaultDelimiter separates fields unless WithDelimiter overrides it.
const DefaultDelimiter = ","

func newConfig(opts ...Option) config {
	cfg := config{delimiter: DefaultDelimiter, headers: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDelimiter sets the field separator. Panics on "".
func WithDelimiter(d string) Option {
	if d == "" {
		panic("export: WithDelimiter(\"\")")
	}

	return func(c *config) { c.delimiter = d }
}

// WithoutHeaders drops the header row and column of adjacency matrices.
func WithoutHeaders() Option {
	return func(c *config) { c.headers = false }
}

// WithSortedNodes enumerates nodes, neighbors and edges in ascending key
// order instead of map order.
func WithSortedNodes() Option {
	return func(c *config) { c.sorted = true }
}
