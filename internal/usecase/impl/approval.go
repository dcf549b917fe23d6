package impl

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
)

// approvalContext carries everything one approval handler invocation needs.
// repos is bound to the transaction the whole approval runs in, so any error
// returned by a handler rolls back every mutation it made.
type approvalContext struct {
	actor   entity.Actor
	request *entity.Request
	repos   repository.RepositoryFactory
}

// approvalHandler applies one approved request to the registry and returns
// the type-specific result for the response envelope.
type approvalHandler func(ctx context.Context, ac *approvalContext) (any, error)

// handlerFor maps a request type to its approval handler. The switch is
// exhaustive over the types with defined apply semantics; everything else,
// including valid wire types without a handler, resolves to nil and the
// lifecycle turns that into a VALIDATION_ERROR without touching the registry.
func (s *requestService) handlerFor(t entity.RequestType) approvalHandler {
	switch t.Normalize() {
	case entity.RequestAddPerson:
		return s.applyAddPerson
	case entity.RequestAddNewborn:
		return s.applyAddNewborn
	case entity.RequestTemporaryResidence:
		return s.applyTemporaryResidence
	case entity.RequestTemporaryAbsence:
		return s.applyTemporaryAbsence
	case entity.RequestSplitHousehold:
		return s.applySplitHousehold
	case entity.RequestDeceased:
		return s.applyDeceased
	default:
		return nil
	}
}

// resolveTargetHousehold loads the household a request applies to: the
// request's explicit target wins over the payload-embedded id. The household
// must exist and be active.
func resolveTargetHousehold(ctx context.Context, ac *approvalContext, payloadHoKhauID *uint) (*entity.Household, error) {
	id := ac.request.TargetHoKhauID
	if id == nil {
		id = payloadHoKhauID
	}
	if id == nil {
		return nil, domainerrors.ErrHouseholdRequired
	}

	household, err := ac.repos.NewHouseholdRepository().FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}
		return nil, errors.Wrap(err, "failed to load target household")
	}
	if household.Status != entity.HouseholdActive {
		return nil, domainerrors.ErrHouseholdInactive
	}

	return household, nil
}

// today returns the current date truncated to day precision, the comparison
// basis for temporary-record activity windows.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
