package rn2md

import "github.com/alnah/go-rn2md/internal/dateutil"

// MaxHeaderPadding bounds WithHeaderPadding in both directions.
const MaxHeaderPadding = 5

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	headerPadding    int
	headerPaddingSet bool
	headingFormat    string
	html             bool
	css              string
}

func defaultConfig() converterConfig {
	return converterConfig{headingFormat: dateutil.DefaultHeadingFormat}
}

// WithHeaderPadding adds n to every header level. Without it, entries with a
// Date get padding 1 so their headers nest below the day heading, and
// entries without one get 0.
func WithHeaderPadding(n int) Option {
	return func(c *Converter) {
		c.cfg.headerPadding = n
		c.cfg.headerPaddingSet = true
	}
}

// WithHeadingFormat sets the day heading format: a preset name (rednotebook,
// iso, european, us, long) or date tokens such as "dddd, MMMM D".
func WithHeadingFormat(format string) Option {
	return func(c *Converter) {
		c.cfg.headingFormat = format
	}
}

// WithHTML enables the HTML preview in ConvertResult.
func WithHTML(enabled bool) Option {
	return func(c *Converter) {
		c.cfg.html = enabled
	}
}

// WithCSS embeds a stylesheet in the HTML preview.
func WithCSS(css string) Option {
	return func(c *Converter) {
		c.cfg.css = css
	}
}
