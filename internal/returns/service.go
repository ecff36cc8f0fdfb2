// File: internal/returns/service.go
package returns

import (
	"context"
	"fmt"

	"huglu_mobile_backend/internal/common"
	"huglu_mobile_backend/internal/gateway"

	"go.uber.org/zap"
)

// Gateway is the slice of the commerce client this module needs.
type Gateway interface {
	GetReturnRequests(ctx context.Context, userID string) ([]gateway.ReturnRequest, error)
	CancelReturnRequest(ctx context.Context, userID, requestID string) error
}

// Service exposes the return request operations.
type Service interface {
	GetList(ctx context.Context, userID string) (*List, error)
	Cancel(ctx context.Context, userID, requestID string) error
}

type service struct {
	gw     Gateway
	logger *zap.Logger
}

func NewService(gw Gateway, logger *zap.Logger) Service {
	return &service{gw: gw, logger: logger.Named("returns")}
}

// GetList fetches the user's return requests and derives the view model.
// Returns are financial state, so there is no sample-data fallback here.
func (s *service) GetList(ctx context.Context, userID string) (*List, error) {
	requests, err := s.gw.GetReturnRequests(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading return requests for user %s: %w", userID, err)
	}
	return BuildList(requests), nil
}

// Cancel withdraws a return request. Only pending requests may be cancelled;
// anything else is rejected before the network call.
func (s *service) Cancel(ctx context.Context, userID, requestID string) error {
	requests, err := s.gw.GetReturnRequests(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading return requests before cancel: %w", err)
	}
	var target *gateway.ReturnRequest
	for i := range requests {
		if string(requests[i].ID) == requestID {
			target = &requests[i]
			break
		}
	}
	if target == nil {
		return common.ErrNotFound.WithDetails("Return request not found.")
	}
	if target.Status != StatusPending {
		return common.ErrUnprocessableEntity.WithDetails("Only pending return requests can be cancelled.")
	}
	if err := s.gw.CancelReturnRequest(ctx, userID, requestID); err != nil {
		return fmt.Errorf("cancelling return request %s: %w", requestID, err)
	}
	return nil
}

// BuildList maps upstream return requests to the screen view model. Unknown
// statuses keep their raw value and get the default descriptor.
func BuildList(requests []gateway.ReturnRequest) *List {
	list := List{Items: make([]Item, 0, len(requests))}
	for _, r := range requests {
		list.Items = append(list.Items, Item{
			ID:           string(r.ID),
			Status:       r.Status,
			Display:      StatusDescriptor(r.Status),
			CreatedAt:    r.CreatedAt,
			ItemCount:    r.ItemCount,
			RefundAmount: r.RefundAmount,
			Reason:       r.Reason,
			CanCancel:    r.Status == StatusPending,
		})
	}
	return &list
}
