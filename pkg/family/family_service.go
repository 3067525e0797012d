package family

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"Family-Meal-Planner/domain"
	"Family-Meal-Planner/entities"
	"Family-Meal-Planner/internal/utils/mailing"
	"Family-Meal-Planner/pkg/invite"
)

// codeAttempts bounds the regenerate-on-conflict loop when allocating an
// invitation code. With 36^6 possible codes a second attempt is already rare.
const codeAttempts = 5

type (
	FamilyService interface {
		CreateFamily(ctx context.Context, req domain.CreateFamilyRequest, userID string) (domain.FamilyResponse, error)
		JoinFamily(ctx context.Context, req domain.JoinFamilyRequest, userID string) (domain.FamilyResponse, error)
		LeaveFamily(ctx context.Context, userID string) error
		RemoveMember(ctx context.Context, targetUserID string, userID string) error
		RegenerateCode(ctx context.Context, userID string) (domain.RegenerateCodeResponse, error)
		GetMyFamily(ctx context.Context, userID string) (domain.FamilyResponse, error)
		GetMembers(ctx context.Context, userID string) ([]domain.FamilyMemberResponse, error)
		SendInvite(ctx context.Context, req domain.SendInviteRequest, userID string) error
	}

	familyService struct {
		familyRepository FamilyRepository
		sendInviteMail   func(toEmail, familyName, code string) error
	}
)

func NewFamilyService(familyRepository FamilyRepository) FamilyService {
	return &familyService{
		familyRepository: familyRepository,
		sendInviteMail:   mailing.SendFamilyInvite,
	}
}

func (s *familyService) CreateFamily(ctx context.Context, req domain.CreateFamilyRequest, userID string) (domain.FamilyResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FamilyResponse{}, domain.ErrParseUUID
	}

	var family entities.Family
	err = s.familyRepository.Transaction(ctx, func(repo FamilyRepository) error {
		if err := ensureNoMembership(ctx, repo, userID); err != nil {
			return err
		}

		for attempt := 0; ; attempt++ {
			code, err := invite.Generate()
			if err != nil {
				return err
			}
			family = entities.Family{
				Name:      req.Name,
				Code:      code,
				CreatedBy: userUUID,
			}
			err = repo.CreateFamily(ctx, &family)
			if err == nil {
				break
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < codeAttempts-1 {
				continue
			}
			return err
		}

		member := entities.FamilyMember{
			FamilyID: family.ID,
			UserID:   userUUID,
			Role:     domain.FamilyRoleAdmin,
			JoinedAt: time.Now(),
		}
		if err := repo.CreateMember(ctx, &member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyInFamily
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.FamilyResponse{}, err
	}

	return toFamilyResponse(&family, domain.FamilyRoleAdmin), nil
}

func (s *familyService) JoinFamily(ctx context.Context, req domain.JoinFamilyRequest, userID string) (domain.FamilyResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FamilyResponse{}, domain.ErrParseUUID
	}

	code := invite.Normalize(req.Code)
	if !invite.IsValidFormat(code) {
		return domain.FamilyResponse{}, domain.ErrInvalidInviteCode
	}

	var family *entities.Family
	err = s.familyRepository.Transaction(ctx, func(repo FamilyRepository) error {
		if err := ensureNoMembership(ctx, repo, userID); err != nil {
			return err
		}

		family, err = repo.GetFamilyByCode(ctx, code)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrFamilyNotFound
			}
			return err
		}

		member := entities.FamilyMember{
			FamilyID: family.ID,
			UserID:   userUUID,
			Role:     domain.FamilyRoleMember,
			JoinedAt: time.Now(),
		}
		if err := repo.CreateMember(ctx, &member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrAlreadyInFamily
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.FamilyResponse{}, err
	}

	return toFamilyResponse(family, domain.FamilyRoleMember), nil
}

// LeaveFamily removes the caller's membership. When the caller was the last
// member, the family and everything scoped to it are deleted in the same
// transaction so the old invitation code dies with it.
func (s *familyService) LeaveFamily(ctx context.Context, userID string) error {
	return s.familyRepository.Transaction(ctx, func(repo FamilyRepository) error {
		membership, err := repo.GetMembershipByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFamilyMember
			}
			return err
		}

		if err := repo.DeleteMember(ctx, membership.ID.String()); err != nil {
			return err
		}

		remaining, err := repo.CountMembers(ctx, membership.FamilyID.String())
		if err != nil {
			return err
		}
		if remaining == 0 {
			if err := repo.DeleteFamilyData(ctx, membership.FamilyID.String()); err != nil {
				return err
			}
			return repo.DeleteFamily(ctx, membership.FamilyID.String())
		}
		return nil
	})
}

func (s *familyService) RemoveMember(ctx context.Context, targetUserID string, userID string) error {
	if targetUserID == userID {
		return domain.ErrCannotRemoveSelf
	}

	return s.familyRepository.Transaction(ctx, func(repo FamilyRepository) error {
		caller, err := adminMembership(ctx, repo, userID)
		if err != nil {
			return err
		}

		target, err := repo.GetMembershipByUserID(ctx, targetUserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMemberNotFound
			}
			return err
		}
		if target.FamilyID != caller.FamilyID {
			return domain.ErrMemberNotFound
		}

		return repo.DeleteMember(ctx, target.ID.String())
	})
}

// RegenerateCode replaces the family's invitation code atomically; the old
// code stops working the moment the transaction commits.
func (s *familyService) RegenerateCode(ctx context.Context, userID string) (domain.RegenerateCodeResponse, error) {
	var newCode string
	err := s.familyRepository.Transaction(ctx, func(repo FamilyRepository) error {
		caller, err := adminMembership(ctx, repo, userID)
		if err != nil {
			return err
		}

		for attempt := 0; ; attempt++ {
			code, err := invite.Generate()
			if err != nil {
				return err
			}
			err = repo.UpdateFamilyCode(ctx, caller.FamilyID.String(), code)
			if err == nil {
				newCode = code
				return nil
			}
			if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < codeAttempts-1 {
				continue
			}
			return err
		}
	})
	if err != nil {
		return domain.RegenerateCodeResponse{}, err
	}
	return domain.RegenerateCodeResponse{Code: newCode}, nil
}

func (s *familyService) GetMyFamily(ctx context.Context, userID string) (domain.FamilyResponse, error) {
	membership, err := s.familyRepository.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FamilyResponse{}, domain.ErrNotFamilyMember
		}
		return domain.FamilyResponse{}, err
	}

	family, err := s.familyRepository.GetFamilyByID(ctx, membership.FamilyID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FamilyResponse{}, domain.ErrFamilyNotFound
		}
		return domain.FamilyResponse{}, err
	}

	return toFamilyResponse(family, membership.Role), nil
}

func (s *familyService) GetMembers(ctx context.Context, userID string) ([]domain.FamilyMemberResponse, error) {
	membership, err := s.familyRepository.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFamilyMember
		}
		return nil, err
	}

	members, err := s.familyRepository.GetMembersByFamilyID(ctx, membership.FamilyID.String())
	if err != nil {
		return nil, err
	}

	result := make([]domain.FamilyMemberResponse, 0, len(members))
	for _, m := range members {
		resp := domain.FamilyMemberResponse{
			UserID:   m.UserID.String(),
			Role:     m.Role,
			JoinedAt: m.JoinedAt,
		}
		if m.User != nil {
			resp.Name = m.User.Name
			resp.Email = m.User.Email
			resp.AvatarURL = m.User.AvatarURL
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *familyService) SendInvite(ctx context.Context, req domain.SendInviteRequest, userID string) error {
	caller, err := adminMembership(ctx, s.familyRepository, userID)
	if err != nil {
		return err
	}

	family, err := s.familyRepository.GetFamilyByID(ctx, caller.FamilyID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFamilyNotFound
		}
		return err
	}

	return s.sendInviteMail(req.Email, family.Name, family.Code)
}

func ensureNoMembership(ctx context.Context, repo FamilyRepository, userID string) error {
	_, err := repo.GetMembershipByUserID(ctx, userID)
	if err == nil {
		return domain.ErrAlreadyInFamily
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func adminMembership(ctx context.Context, repo FamilyRepository, userID string) (*entities.FamilyMember, error) {
	membership, err := repo.GetMembershipByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFamilyMember
		}
		return nil, err
	}
	if membership.Role != domain.FamilyRoleAdmin {
		return nil, domain.ErrNotFamilyAdmin
	}
	return membership, nil
}

func toFamilyResponse(family *entities.Family, role string) domain.FamilyResponse {
	return domain.FamilyResponse{
		ID:        family.ID.String(),
		Name:      family.Name,
		Code:      family.Code,
		CreatedBy: family.CreatedBy.String(),
		Role:      role,
		CreatedAt: family.CreatedAt,
	}
}
