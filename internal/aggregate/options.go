package aggregate

import "golang.org/x/text/language"

type options struct {
	locale language.Tag
}

// Option customizes locale-dependent behavior of Sort and GroupByDateBucket.
type Option func(*options)

// WithLocale selects the language used for collation and date bucket labels.
// The default is English.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

func newOptions(opts []Option) options {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
