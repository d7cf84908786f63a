package sequence

import "context"

// Generator produces a result for a request. The in-process implementation
// and the HTTP client are interchangeable behind it.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Local runs generation in the calling process. MaxCount caps the values per
// request; zero leaves only the package MaxCount.
type Local struct {
	MaxCount int64
}

var _ Generator = Local{}

func (l Local) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := req.WithinLimit(l.MaxCount); err != nil {
		return nil, err
	}

	return Generate(req)
}
