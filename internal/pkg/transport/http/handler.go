package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

type queryBinder[T any] interface {
	*T
	BindQuery(r *http.Request) error
}

// MakeHandlerFunc serves an endpoint with the given codec. Errors are encoded by ErrorResponse.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeQueryRequest builds a *T from the URL query of r.
func DecodeQueryRequest[T any, PT queryBinder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))
	if err := req.BindQuery(r); err != nil {
		return nil, err
	}

	return req, nil
}
