package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dinnerclub/internal/errors"
	"dinnerclub/internal/model"
	"dinnerclub/internal/repository"
)

// Join codes avoid ambiguous characters (0/O, 1/I/L).
const joinCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
const joinCodeLength = 6

// MemberResponse is one membership joined with the user's display fields.
type MemberResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Role   string    `json:"role"`
}

// ClubService handles club lifecycle and membership.
type ClubService interface {
	Create(ctx context.Context, name, privacy string, creatorID uuid.UUID) (*model.Club, error)
	Get(ctx context.Context, clubID, userID uuid.UUID) (*model.Club, error)
	Update(ctx context.Context, clubID, userID uuid.UUID, name, privacy string) (*model.Club, error)
	JoinCode(ctx context.Context, clubID, userID uuid.UUID) (string, error)
	Join(ctx context.Context, code string, userID uuid.UUID) (*model.Club, error)
	Leave(ctx context.Context, clubID, userID uuid.UUID) error
	Members(ctx context.Context, clubID, userID uuid.UUID) ([]MemberResponse, error)
	IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
	IsOwner(ctx context.Context, clubID, userID uuid.UUID) (bool, error)
}

type clubService struct {
	clubRepo       repository.ClubRepository
	membershipRepo repository.MembershipRepository
}

// NewClubService creates a new club service.
func NewClubService(clubRepo repository.ClubRepository, membershipRepo repository.MembershipRepository) ClubService {
	return &clubService{
		clubRepo:       clubRepo,
		membershipRepo: membershipRepo,
	}
}

// Create creates a club; the creator becomes its sole initial owner.
func (s *clubService) Create(ctx context.Context, name, privacy string, creatorID uuid.UUID) (*model.Club, error) {
	if privacy != model.ClubPrivacyPublic {
		privacy = model.ClubPrivacyPrivate
	}

	club := &model.Club{
		Name:        name,
		Privacy:     privacy,
		CreatedByID: creatorID,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, fmt.Errorf("create club: %w", err)
	}

	membership := &model.Membership{
		ClubID: club.ID,
		UserID: creatorID,
		Role:   model.RoleOwner,
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("create owner membership: %w", err)
	}

	return club, nil
}

// Get returns a club to one of its members.
func (s *clubService) Get(ctx context.Context, clubID, userID uuid.UUID) (*model.Club, error) {
	club, err := s.findClub(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return nil, err
	}
	return club, nil
}

// Update lets an owner rename the club or change its privacy.
func (s *clubService) Update(ctx context.Context, clubID, userID uuid.UUID, name, privacy string) (*model.Club, error) {
	club, err := s.findClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	owner, err := s.membershipRepo.IsOwner(ctx, clubID, userID)
	if err != nil {
		return nil, fmt.Errorf("check owner role: %w", err)
	}
	if !owner {
		return nil, errors.ErrNotClubOwner
	}

	if name != "" {
		club.Name = name
	}
	if privacy == model.ClubPrivacyPublic || privacy == model.ClubPrivacyPrivate {
		club.Privacy = privacy
	}
	if err := s.clubRepo.Update(ctx, club); err != nil {
		return nil, fmt.Errorf("update club: %w", err)
	}
	return club, nil
}

// JoinCode returns the club's share code, generating one lazily on first
// request. A club carries exactly one active code at a time.
func (s *clubService) JoinCode(ctx context.Context, clubID, userID uuid.UUID) (string, error) {
	club, err := s.findClub(ctx, clubID)
	if err != nil {
		return "", err
	}
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return "", err
	}

	if club.JoinCode != nil && *club.JoinCode != "" {
		return *club.JoinCode, nil
	}

	// Regenerate on the rare collision with another club's code.
	for attempt := 0; attempt < 5; attempt++ {
		code, err := generateJoinCode()
		if err != nil {
			return "", fmt.Errorf("generate join code: %w", err)
		}
		if _, err := s.clubRepo.FindByJoinCode(ctx, code); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			return "", fmt.Errorf("check join code: %w", err)
		}
		club.JoinCode = &code
		if err := s.clubRepo.Update(ctx, club); err != nil {
			return "", fmt.Errorf("store join code: %w", err)
		}
		return code, nil
	}
	return "", fmt.Errorf("could not allocate a unique join code")
}

// Join redeems a join code, matched case-insensitively. Joining a club the
// user already belongs to is a no-op.
func (s *clubService) Join(ctx context.Context, code string, userID uuid.UUID) (*model.Club, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	club, err := s.clubRepo.FindByJoinCode(ctx, normalized)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInvalidJoinCode
		}
		return nil, fmt.Errorf("find club by code: %w", err)
	}

	member, err := s.membershipRepo.IsMember(ctx, club.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("check membership: %w", err)
	}
	if member {
		return club, nil
	}

	if err := s.membershipRepo.Create(ctx, &model.Membership{
		ClubID: club.ID,
		UserID: userID,
		Role:   model.RoleMember,
	}); err != nil {
		return nil, fmt.Errorf("create membership: %w", err)
	}
	return club, nil
}

// Leave removes the user's membership. Nothing stops the last owner from
// leaving; a club can end up ownerless.
func (s *clubService) Leave(ctx context.Context, clubID, userID uuid.UUID) error {
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return err
	}
	return s.membershipRepo.Delete(ctx, clubID, userID)
}

// Members returns the club roster with display fields.
func (s *clubService) Members(ctx context.Context, clubID, userID uuid.UUID) ([]MemberResponse, error) {
	if _, err := s.findClub(ctx, clubID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, clubID, userID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListByClub(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}

	members := make([]MemberResponse, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, MemberResponse{
			ID:     m.UserID,
			Name:   m.User.Name,
			Avatar: m.User.AvatarURL,
			Role:   m.Role,
		})
	}
	return members, nil
}

// IsMember reports whether the user belongs to the club.
func (s *clubService) IsMember(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	return s.membershipRepo.IsMember(ctx, clubID, userID)
}

// IsOwner reports whether the user holds the owner role in the club.
func (s *clubService) IsOwner(ctx context.Context, clubID, userID uuid.UUID) (bool, error) {
	return s.membershipRepo.IsOwner(ctx, clubID, userID)
}

func (s *clubService) findClub(ctx context.Context, clubID uuid.UUID) (*model.Club, error) {
	club, err := s.clubRepo.FindByID(ctx, clubID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrClubNotFound
		}
		return nil, fmt.Errorf("find club: %w", err)
	}
	return club, nil
}

func (s *clubService) requireMember(ctx context.Context, clubID, userID uuid.UUID) error {
	ok, err := s.membershipRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !ok {
		return errors.ErrNotClubMember
	}
	return nil
}

func generateJoinCode() (string, error) {
	code := make([]byte, joinCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(joinCodeAlphabet))))
		if err != nil {
			return "", err
		}
		code[i] = joinCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
