package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-interconnections-service/internal/app/dto"
)

type InterconnectionService interface {
	SearchInterconnections(ctx context.Context, req dto.InterconnectionRequest) ([]dto.Interconnection, error)
}

type InterconnectionEndpoint struct {
	SearchInterconnections endpoint.Endpoint
}

func MakeInterconnectionEndpoint(service InterconnectionService) InterconnectionEndpoint {
	return InterconnectionEndpoint{
		SearchInterconnections: makeSearchInterconnectionsEndpoint(service),
	}
}

func makeSearchInterconnectionsEndpoint(service InterconnectionService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.InterconnectionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		interconnections, err := service.SearchInterconnections(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("interconnection service: %w", err)
		}

		return interconnections, nil
	}
}
