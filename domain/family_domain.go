package domain

import (
	"errors"
	"time"
)

const (
	FamilyRoleAdmin  = "admin"
	FamilyRoleMember = "member"
)

var (
	MessageSuccessCreateFamily   = "family created successfully"
	MessageSuccessJoinFamily     = "joined family successfully"
	MessageSuccessLeaveFamily    = "left family successfully"
	MessageSuccessGetFamily      = "success get family"
	MessageSuccessGetMembers     = "success get family members"
	MessageSuccessRemoveMember   = "member removed successfully"
	MessageSuccessRegenerateCode = "invitation code regenerated successfully"
	MessageSuccessSendInvite     = "invitation sent successfully"

	MessageFailedCreateFamily   = "failed to create family"
	MessageFailedJoinFamily     = "failed to join family"
	MessageFailedLeaveFamily    = "failed to leave family"
	MessageFailedGetFamily      = "failed to get family"
	MessageFailedGetMembers     = "failed to get family members"
	MessageFailedRemoveMember   = "failed to remove member"
	MessageFailedRegenerateCode = "failed to regenerate invitation code"
	MessageFailedSendInvite     = "failed to send invitation"

	ErrFamilyNotFound    = errors.New("family not found")
	ErrNotFamilyMember   = errors.New("user is not a member of a family")
	ErrAlreadyInFamily   = errors.New("user already belongs to a family")
	ErrNotFamilyAdmin    = errors.New("only the family admin can do this")
	ErrCannotRemoveSelf  = errors.New("cannot remove yourself from the family")
	ErrInvalidInviteCode = errors.New("invalid invitation code")
	ErrMemberNotFound    = errors.New("member not found in this family")
)

type (
	CreateFamilyRequest struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
	}

	JoinFamilyRequest struct {
		Code string `json:"code" validate:"required,invitecode"`
	}

	SendInviteRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

FamilyResponse struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Code      string    `json:"code"`
		CreatedBy string    `json:"created_by"`
		Role      string    `json:"role"` // caller's role within the family
		CreatedAt time.Time `json:"created_at"`
	}

	FamilyMemberResponse struct {
		UserID    string    `json:"user_id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Role      string    `json:"role"`
		AvatarURL string    `json:"avatar_url,omitempty"`
		JoinedAt  time.Time `json:"joined_at"`
	}

	RegenerateCodeResponse struct {
		Code string `json:"code"`
	}
)
