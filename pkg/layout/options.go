package layout

// Chart defaults.
const (
	DefaultWidth          = 1200.0
	DefaultNodeWidth      = 200.0
	DefaultNodeHeight     = 80.0
	DefaultRowHeight      = 140.0
	DefaultBaseline       = 60.0
	DefaultMinChartHeight = 700.0
)

// Tree geometry.
const (
	treeTop        = 40.0
	treeRowPitch   = 40.0
	treeRowHeight  = 30.0
	treeLeft       = 30.0
	treeIndent     = 40.0
	treeRightInset = 40.0
	treeMinHeight  = 500.0
)

type config struct {
	width     float64
	nodeW     float64
	nodeH     float64
	rowHeight float64
	baseline  float64
	minHeight float64
}

func defaults() config {
	return config{
		width:     DefaultWidth,
		nodeW:     DefaultNodeWidth,
		nodeH:     DefaultNodeHeight,
		rowHeight: DefaultRowHeight,
		baseline:  DefaultBaseline,
		minHeight: DefaultMinChartHeight,
	}
}

// Option configures [Chart] and [Tree].
type Option func(*config)

// WithWidth sets the frame width. Non-positive values are ignored.
func WithWidth(w float64) Option {
	return func(c *config) {
		if w > 0 {
			c.width = w
		}
	}
}

// WithNodeSize sets the chart box size.
func WithNodeSize(w, h float64) Option {
	return func(c *config) {
		if w > 0 && h > 0 {
			c.nodeW, c.nodeH = w, h
		}
	}
}

// WithRowHeight sets the vertical distance between chart levels.
func WithRowHeight(h float64) Option {
	return func(c *config) {
		if h > 0 {
			c.rowHeight = h
		}
	}
}

// WithBaseline sets the top of the first chart level.
func WithBaseline(y float64) Option {
	return func(c *config) {
		if y >= 0 {
			c.baseline = y
		}
	}
}

// WithMinHeight sets the minimum chart frame height.
func WithMinHeight(h float64) Option {
	return func(c *config) {
		if h >= 0 {
			c.minHeight = h
		}
	}
}

func apply(opts []Option) config {
	c := defaults()
	for _, o := range opts {
		o(&c)
	}
	return c
}
