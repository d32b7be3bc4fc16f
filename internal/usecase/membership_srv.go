package usecase

import (
	"context"
	"fmt"
	"time"

	"band-booking/internal/data/entity"
	"band-booking/internal/data/repository"
	"band-booking/internal/dto/request"
	"band-booking/internal/dto/response"
	"band-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MembershipService interface {
	Apply(ctx context.Context, userID uuid.UUID, req *request.ApplyMembershipRequest) (*response.MembershipApplicationResponse, error)
	GetByStatus(ctx context.Context, status entity.ApplicationStatus) ([]response.MembershipApplicationResponse, error)
	Decide(ctx context.Context, id uuid.UUID, req *request.MembershipDecisionRequest) error
}

type membershipService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMembershipService(repo *repository.Repository, log *zap.Logger) MembershipService {
	return &membershipService{
		repo: repo,
		log:  log.With(zap.String("service", "membership")),
	}
}

// Apply files a membership application. One pending application per user;
// members and admins have nothing to apply for.
func (s *membershipService) Apply(ctx context.Context, userID uuid.UUID, req *request.ApplyMembershipRequest) (*response.MembershipApplicationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to apply")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	if user.Role != entity.RoleUser {
		return nil, fmt.Errorf("cannot apply: account is already a %s", user.Role)
	}

	pending, err := s.repo.Membership.FindPendingByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check pending application", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to apply")
	}
	if pending != nil {
		return nil, fmt.Errorf("cannot apply: a pending application already exists")
	}

	now := time.Now()
	instrument := req.Instrument
	application := &entity.MembershipApplication{
		Base: entity.Base{
			ID:        utils.GenerateUUID(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		Instrument: &instrument,
		Motivation: req.Motivation,
		Status:     entity.ApplicationPending,
	}

	if err := s.repo.Membership.Create(ctx, application); err != nil {
		s.log.Error("Failed to create application", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to apply")
	}

	s.log.Info("Membership application filed",
		zap.String("application_id", application.ID.String()),
		zap.String("user_id", userID.String()))

	resp := response.MembershipToResponse(application)
	return &resp, nil
}

func (s *membershipService) GetByStatus(ctx context.Context, status entity.ApplicationStatus) ([]response.MembershipApplicationResponse, error) {
	applications, err := s.repo.Membership.FindByStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to list applications", zap.Error(err), zap.String("status", string(status)))
		return nil, fmt.Errorf("failed to load applications")
	}

	out := make([]response.MembershipApplicationResponse, 0, len(applications))
	for _, app := range applications {
		out = append(out, response.MembershipToResponse(app))
	}
	return out, nil
}

// Decide resolves a pending application. Approval promotes the applicant
// to member, which also moves their future rentals to the borrow channel.
func (s *membershipService) Decide(ctx context.Context, id uuid.UUID, req *request.MembershipDecisionRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	application, err := s.repo.Membership.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find application", zap.Error(err), zap.String("application_id", id.String()))
		return fmt.Errorf("failed to update application")
	}
	if application == nil {
		return fmt.Errorf("application not found")
	}
	if application.Status != entity.ApplicationPending {
		return fmt.Errorf("cannot decide a %s application", application.Status)
	}

	status := entity.ApplicationStatus(req.Status)

	if err := s.repo.Membership.UpdateStatus(ctx, id, status); err != nil {
		s.log.Error("Failed to update application",
			zap.Error(err),
			zap.String("application_id", id.String()),
			zap.String("status", req.Status))
		return fmt.Errorf("failed to update application")
	}

	if status == entity.ApplicationApproved {
		if err := s.repo.User.UpdateRole(ctx, application.UserID, entity.RoleMember); err != nil {
			s.log.Error("Failed to promote user",
				zap.Error(err),
				zap.String("user_id", application.UserID.String()))
			return fmt.Errorf("application approved but promotion failed")
		}
	}

	s.log.Info("Membership application decided",
		zap.String("application_id", id.String()),
		zap.String("status", req.Status))

	return nil
}
