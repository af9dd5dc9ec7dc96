package models

// Option tunes how models are mapped to and from a bundle.
type Option func(*mappingOptions)

type mappingOptions struct {
	legacyWidthKey bool
}

// WithLegacyWidthKey keeps compatibility with consumers that expect the
// remote video width under the "port" key.
//
// Encoding writes width as "port" instead of "width". Decoding falls back to
// "port" when "width" is missing.
func WithLegacyWidthKey() Option {
	return func(o *mappingOptions) {
		o.legacyWidthKey = true
	}
}

func applyOptions(opts []Option) mappingOptions {
	var o mappingOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
