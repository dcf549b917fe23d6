package entity

import (
	"encoding/json"
	"time"
)

// RequestType identifies a citizen-submitted change request. The values are
// part of the wire contract with the admin UI and must not change.
type RequestType string

const (
	RequestAddPerson          RequestType = "ADD_PERSON"
	RequestAddNewborn         RequestType = "ADD_NEWBORN"
	RequestUpdatePerson       RequestType = "UPDATE_PERSON"
	RequestRemovePerson       RequestType = "REMOVE_PERSON"
	RequestChangeHead         RequestType = "CHANGE_HEAD"
	RequestUpdateHousehold    RequestType = "UPDATE_HOUSEHOLD"
	RequestSplitHousehold     RequestType = "SPLIT_HOUSEHOLD"
	RequestTemporaryResidence RequestType = "TEMPORARY_RESIDENCE"
	RequestTemporaryAbsence   RequestType = "TEMPORARY_ABSENCE"
	RequestMoveOut            RequestType = "MOVE_OUT"
	RequestDeceased           RequestType = "DECEASED"

	// Legacy aliases still submitted by older clients.
	requestAliasTamTru  RequestType = "TAM_TRU"
	requestAliasTamVang RequestType = "TAM_VANG"
)

// Normalize resolves legacy aliases to their canonical request type.
func (t RequestType) Normalize() RequestType {
	switch t {
	case requestAliasTamTru:
		return RequestTemporaryResidence
	case requestAliasTamVang:
		return RequestTemporaryAbsence
	}
	return t
}

// IsValid reports whether t (after alias normalization) is a known type.
func (t RequestType) IsValid() bool {
	switch t.Normalize() {
	case RequestAddPerson, RequestAddNewborn, RequestUpdatePerson,
		RequestRemovePerson, RequestChangeHead, RequestUpdateHousehold,
		RequestSplitHousehold, RequestTemporaryResidence,
		RequestTemporaryAbsence, RequestMoveOut, RequestDeceased:
		return true
	}
	return false
}

// RequestStatus is the resolution state of a request. The only permitted
// transitions are PENDING -> APPROVED and PENDING -> REJECTED, exactly once.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
	// RequestCancelled is reserved in the wire contract; no workflow
	// currently produces it.
	RequestCancelled RequestStatus = "CANCELLED"
)

// Request is a citizen-submitted proposal to change registry state. It is
// created PENDING and resolved exactly once by a reviewer.
type Request struct {
	ID              uint
	NguoiYeuCauID   uint // Submitting account.
	Type            RequestType
	Payload         json.RawMessage // Type-specific payload, validated per type.
	Status          RequestStatus
	TargetHoKhauID  *uint
	TargetNhanKhauID *uint
	RejectionReason string
	ReviewedBy      *uint
	ReviewedAt      *time.Time
	CreatedAt       time.Time
}
