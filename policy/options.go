package policy

// Option configures a Method or a Holder.
type Option func(*options)

type options struct {
	memoSize  uint32
	teardowns []func()
}

// WithMemo memoizes Run results in a table of maxTableSize entries per generation.
// Zero disables memoization.
func WithMemo(maxTableSize uint32) Option {
	return func(o *options) {
		o.memoSize = maxTableSize
	}
}

// WithTeardown registers fn to run when the holder is closed. Teardowns run in
// reverse registration order. Ignored by NewMethod.
func WithTeardown(fn func()) Option {
	return func(o *options) {
		if fn != nil {
			o.teardowns = append(o.teardowns, fn)
		}
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// teardown flattens the registered teardowns into a single callable.
func (o options) teardown() func() {
	switch len(o.teardowns) {
	case 0:
		return func() {}
	case 1:
		return o.teardowns[0]
	default:
		fns := o.teardowns
		return func() {
			for i := len(fns) - 1; i >= 0; i-- {
				fns[i]()
			}
		}
	}
}
