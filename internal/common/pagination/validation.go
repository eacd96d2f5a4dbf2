package pagination

import "fmt"

// WithDefaults clamps params to valid values, applying config defaults.
// Services call this so the clamp holds even when params are built
// programmatically instead of parsed from a request.
func (p Params) WithDefaults(config Config) Params {
	if p.Page <= 0 {
		p.Page = config.DefaultPage
	}
	if p.Limit <= 0 {
		p.Limit = config.DefaultLimit
	}
	if p.Limit > config.MaxLimit {
		p.Limit = config.MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = CalculateOffset(p.Page, p.Limit)
	}
	if p.Sort != SortRecent {
		p.Sort = SortID
	}
	return p
}

// Validate rejects out-of-range cursor limits. Unlike the offset
// strategy, the cursor strategy rejects instead of clamping.
func (p CursorParams) Validate(config CursorConfig) error {
	if p.Limit < 1 || p.Limit > config.MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d", config.MaxLimit)
	}
	return nil
}
