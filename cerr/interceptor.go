package cerr

import (
	"context"

	"connectrpc.com/connect"
)

// NewInterceptor returns a Connect interceptor that normalizes returned
// errors and converts them to Connect errors using ToConnectError.
func NewInterceptor() connect.Interceptor {
	return &interceptor{}
}

var _ connect.Interceptor = (*interceptor)(nil)

type interceptor struct{}

func (i *interceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		resp, err := next(ctx, req)
		if err != nil {
			return nil, ToConnectError(err)
		}
		return resp, nil
	}
}

func (i *interceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (i *interceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		err := next(ctx, conn)
		if err != nil {
			return ToConnectError(err)
		}
		return nil
	}
}
