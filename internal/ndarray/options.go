package ndarray

// Generator defaults.
const (
	// DefaultEyeOffset places the ones on the main diagonal.
	DefaultEyeOffset = 0

	// DefaultLinspaceEndpoint includes the end value in Linspace output.
	DefaultLinspaceEndpoint = true
)

// EyeOption configures Eye.
type EyeOption func(*eyeOptions)

type eyeOptions struct {
	cols   int
	offset int
}

// WithCols sets the number of columns of an Eye matrix (default: rows).
func WithCols(cols int) EyeOption {
	return func(o *eyeOptions) {
		o.cols = cols
	}
}

// WithOffset shifts the diagonal: positive values move it above the main
// diagonal, negative values below it.
func WithOffset(offset int) EyeOption {
	return func(o *eyeOptions) {
		o.offset = offset
	}
}

func gatherEyeOptions(rows int, opts []EyeOption) eyeOptions {
	o := eyeOptions{cols: rows, offset: DefaultEyeOffset}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// LinspaceOption configures Linspace.
type LinspaceOption func(*linspaceOptions)

type linspaceOptions struct {
	endpoint bool
}

// WithEndpoint controls whether Linspace includes its end value.
func WithEndpoint(endpoint bool) LinspaceOption {
	return func(o *linspaceOptions) {
		o.endpoint = endpoint
	}
}

func gatherLinspaceOptions(opts []LinspaceOption) linspaceOptions {
	o := linspaceOptions{endpoint: DefaultLinspaceEndpoint}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
