package voronoi

import "github.com/tkbush/voronoi2d/point"

// Config carries BuildDiagram's construction-time knobs. It is built by applying a sequence
// of Option functions, the standard functional-options pattern.
type Config struct {
	polygon            []point.Point
	collapseZeroLength bool
}

// Option configures a BuildDiagram call.
type Option func(*Config)

// WithPolygon supplies an explicit convex bounding polygon, overriding the default
// axis-aligned bounding-box synthesis (§6).
func WithPolygon(corners []point.Point) Option {
	return func(c *Config) {
		c.polygon = corners
	}
}

// WithoutZeroLengthCollapse disables the §4.9 post-pass that merges vertices closer than
// epsilon, matching the Python original's remove_zero_length_edges constructor flag.
func WithoutZeroLengthCollapse() Option {
	return func(c *Config) {
		c.collapseZeroLength = false
	}
}

func applyOptions(opts ...Option) Config {
	cfg := Config{collapseZeroLength: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
