package dysbiosis

// Option configures Rarefy and BuildDataset.
type Option func(*options)

type options struct {
	reporter Reporter
	workers  int
}

func defaultOptions() options {
	return options{
		reporter: KlogReporter{},
		workers:  1,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithReporter sets where diagnostics go. A nil reporter discards them.
func WithReporter(r Reporter) Option {
	return func(o *options) {
		if r == nil {
			r = DiscardReporter{}
		}
		o.reporter = r
	}
}

// WithWorkers sets how many rarefaction iterations BuildDataset runs at the
// same time. Values below 1 are treated as 1. The result does not depend on
// the number of workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
