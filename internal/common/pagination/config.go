// Package pagination provides a reusable pagination framework with an
// offset strategy for top-level listings and a cursor strategy for
// comment threads. Both strategies share one response envelope.
package pagination

// Config holds offset-pagination settings for one resource.
// Clamp bounds are a per-resource knob: the product listing caps at 50
// per page, the article listing at 100.
type Config struct {
	DefaultPage  int `yaml:"default_page"`
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// DefaultConfig returns the baseline offset configuration: page=1,
// limit=10, max=100.
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}

// CursorConfig holds cursor-pagination settings for comment threads.
// Unlike the offset strategy, an out-of-range limit is rejected, not
// clamped; MaxLimit is the rejection bound.
type CursorConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	MaxLimit     int `yaml:"max_limit"`
}

// DefaultCursorConfig returns the baseline cursor configuration:
// limit=10, max=100.
func DefaultCursorConfig() CursorConfig {
	return CursorConfig{
		DefaultLimit: 10,
		MaxLimit:     100,
	}
}
