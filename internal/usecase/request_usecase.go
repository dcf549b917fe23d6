// Package usecase defines the application's use case interfaces and the
// input/output DTOs they exchange with the delivery layer.
package usecase

import (
	"context"
	"encoding/json"

	"hokhau/internal/domain/entity"
)

// CreateRequestInput carries a citizen's new change request. Ownership and
// role checks happen in the delivery layer before Create is invoked.
type CreateRequestInput struct {
	Type             string          `json:"type" validate:"required"`
	TargetHoKhauID   *uint           `json:"targetHoKhauId,omitempty"`
	TargetNhanKhauID *uint           `json:"targetNhanKhauId,omitempty"`
	Payload          json.RawMessage `json:"payload" validate:"required"`
}

// ApprovalOutcome is what a successful Approve returns: the resolved request
// row plus the handler-specific result (created resident, split summary, ...).
type ApprovalOutcome struct {
	Request *entity.Request `json:"request"`
	Data    any             `json:"data,omitempty"`
}

// RequestUsecase owns the request lifecycle: creation and exactly-once
// resolution with the per-type registry side effects.
type RequestUsecase interface {
	// Create validates the payload for the given type and persists a new
	// PENDING request on behalf of the actor.
	Create(ctx context.Context, actor entity.Actor, input *CreateRequestInput) (*entity.Request, error)

	// Approve applies the request's registry side effect and marks it
	// APPROVED, all within one transaction. A request that is not PENDING
	// fails with INVALID_STATE and is left untouched.
	Approve(ctx context.Context, actor entity.Actor, id uint) (*ApprovalOutcome, error)

	// Reject marks a PENDING request REJECTED with a non-blank reason.
	// No side-effect handler is invoked.
	Reject(ctx context.Context, actor entity.Actor, id uint, reason string) (*entity.Request, error)

	// Get retrieves a single request.
	Get(ctx context.Context, id uint) (*entity.Request, error)

	// ListMine retrieves the actor's own requests, newest first.
	ListMine(ctx context.Context, actor entity.Actor) ([]*entity.Request, error)

	// ListPending retrieves all unresolved requests, oldest first.
	ListPending(ctx context.Context) ([]*entity.Request, error)
}
