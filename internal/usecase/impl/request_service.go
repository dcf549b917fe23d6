// Package impl contains the concrete use case implementations.
package impl

import (
	"context"
	"strings"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/domain/service"
	"hokhau/internal/errors"
	"hokhau/internal/infra/metrics"
	"hokhau/internal/usecase"

	"go.uber.org/fx"
)

type requestService struct {
	requestRepo repository.RequestRepository
	txManager   repository.TransactionManager
	codeGen     service.HouseholdCodeGenerator
	metrics     *metrics.Metrics
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	TxManager   repository.TransactionManager
	CodeGen     service.HouseholdCodeGenerator
	Metrics     *metrics.Metrics `optional:"true"`
}

// NewRequestService creates the request lifecycle manager.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		txManager:   params.TxManager,
		codeGen:     params.CodeGen,
		metrics:     params.Metrics,
	}
}

// Create validates the payload for the request type and persists a PENDING
// row. Ownership and role checks are the caller's responsibility; Create
// does not re-derive identity.
func (s *requestService) Create(ctx context.Context, actor entity.Actor, input *usecase.CreateRequestInput) (*entity.Request, error) {
	requestType := entity.RequestType(input.Type)
	if !requestType.IsValid() {
		return nil, domainerrors.ErrUnsupportedRequestType
	}
	requestType = requestType.Normalize()

	if err := s.validatePayload(requestType, input); err != nil {
		return nil, err
	}

	request := &entity.Request{
		NguoiYeuCauID:    actor.ID,
		Type:             requestType,
		Payload:          input.Payload,
		Status:           entity.RequestPending,
		TargetHoKhauID:   input.TargetHoKhauID,
		TargetNhanKhauID: input.TargetNhanKhauID,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.metrics.IncrementCreated(string(requestType))

	return request, nil
}

// validatePayload runs the per-type validation rules. Types in the wire
// contract without defined payload rules are stored as-is and fail later at
// dispatch time.
func (s *requestService) validatePayload(requestType entity.RequestType, input *usecase.CreateRequestInput) error {
	switch requestType {
	case entity.RequestAddPerson, entity.RequestAddNewborn:
		var payload usecase.AddPersonPayload
		if err := parsePayload(input.Payload, &payload); err != nil {
			return err
		}
		hasTarget := input.TargetHoKhauID != nil || payload.HoKhauID != nil
		return validateAddPerson(&payload, requestType == entity.RequestAddNewborn, hasTarget)
	case entity.RequestTemporaryResidence:
		var payload usecase.TemporaryResidencePayload
		if err := parsePayload(input.Payload, &payload); err != nil {
			return err
		}
		return validateTemporaryResidence(&payload)
	case entity.RequestTemporaryAbsence:
		var payload usecase.TemporaryAbsencePayload
		if err := parsePayload(input.Payload, &payload); err != nil {
			return err
		}
		return validateTemporaryAbsence(&payload)
	case entity.RequestSplitHousehold:
		var payload usecase.SplitHouseholdPayload
		if err := parsePayload(input.Payload, &payload); err != nil {
			return err
		}
		return validateSplitHousehold(&payload)
	case entity.RequestDeceased:
		var payload usecase.DeceasedPayload
		if err := parsePayload(input.Payload, &payload); err != nil {
			return err
		}
		return validateDeceased(&payload)
	default:
		return nil
	}
}

// Approve resolves a PENDING request by running its handler and the status
// transition in one transaction, with the request row locked first so a
// concurrent resolve observes INVALID_STATE. A handler error rolls back
// everything and propagates unmodified.
func (s *requestService) Approve(ctx context.Context, actor entity.Actor, id uint) (*usecase.ApprovalOutcome, error) {
	started := time.Now()
	var outcome *usecase.ApprovalOutcome

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		requests := repos.NewRequestRepository()

		request, err := requests.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}
			return errors.Wrap(err, "failed to load request")
		}
		if request.Status != entity.RequestPending {
			return domainerrors.ErrInvalidState
		}

		handler := s.handlerFor(request.Type)
		if handler == nil {
			return domainerrors.ErrUnsupportedRequestType
		}

		data, err := handler(ctx, &approvalContext{actor: actor, request: request, repos: repos})
		if err != nil {
			return err
		}

		now := time.Now()
		reviewer := actor.ID
		request.Status = entity.RequestApproved
		request.ReviewedBy = &reviewer
		request.ReviewedAt = &now
		if err := requests.UpdateResolution(ctx, request); err != nil {
			return errors.Wrap(err, "failed to finalize request status")
		}

		outcome = &usecase.ApprovalOutcome{Request: request, Data: data}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementResolved(string(outcome.Request.Type), "approved")
	s.metrics.ObserveApprovalLatency(time.Since(started))

	return outcome, nil
}

// Reject resolves a PENDING request without invoking any handler.
func (s *requestService) Reject(ctx context.Context, actor entity.Actor, id uint, reason string) (*entity.Request, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domainerrors.NewValidation("Lý do từ chối là bắt buộc")
	}

	var rejected *entity.Request
	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		requests := repos.NewRequestRepository()

		request, err := requests.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return domainerrors.ErrRequestNotFound
			}
			return errors.Wrap(err, "failed to load request")
		}
		if request.Status != entity.RequestPending {
			return domainerrors.ErrInvalidState
		}

		now := time.Now()
		reviewer := actor.ID
		request.Status = entity.RequestRejected
		request.RejectionReason = reason
		request.ReviewedBy = &reviewer
		request.ReviewedAt = &now
		if err := requests.UpdateResolution(ctx, request); err != nil {
			return errors.Wrap(err, "failed to finalize request status")
		}

		rejected = request

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementResolved(string(rejected.Type), "rejected")

	return rejected, nil
}

// Get retrieves a single request.
func (s *requestService) Get(ctx context.Context, id uint) (*entity.Request, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return nil, domainerrors.ErrRequestNotFound
		}
		return nil, errors.Wrap(err, "failed to load request")
	}

	return request, nil
}

// ListMine retrieves the actor's own requests.
func (s *requestService) ListMine(ctx context.Context, actor entity.Actor) ([]*entity.Request, error) {
	requests, err := s.requestRepo.ListByRequester(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests by requester")
	}

	return requests, nil
}

// ListPending retrieves all unresolved requests for reviewers.
func (s *requestService) ListPending(ctx context.Context) ([]*entity.Request, error) {
	requests, err := s.requestRepo.ListByStatus(ctx, entity.RequestPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending requests")
	}

	return requests, nil
}
