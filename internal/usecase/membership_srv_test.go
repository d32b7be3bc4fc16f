package usecase

import (
	"context"
	"testing"

	"band-booking/internal/data/entity"
	"band-booking/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestApplyMembership(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{users: []*entity.User{{
		Base: entity.Base{ID: userID},
		Role: entity.RoleUser,
	}}}
	memberships := &fakeMembershipRepo{}
	repo := newTestRepository(nil, nil, nil, nil, nil, users, memberships)
	svc := NewMembershipService(repo, zap.NewNop())

	apply := &request.ApplyMembershipRequest{
		Instrument: "Trombone",
		Motivation: "Played through school, want to keep marching.",
	}

	resp, err := svc.Apply(context.Background(), userID, apply)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if resp.Status != entity.ApplicationPending {
		t.Errorf("status = %s, want pending", resp.Status)
	}

	// A second application while one is pending must be refused.
	if _, err := svc.Apply(context.Background(), userID, apply); err == nil {
		t.Error("expected a second pending application to be refused")
	}
}

func TestApplyMembershipRefusedForMembers(t *testing.T) {
	userID := uuid.New()
	users := &fakeUserRepo{users: []*entity.User{{
		Base: entity.Base{ID: userID},
		Role: entity.RoleMember,
	}}}
	repo := newTestRepository(nil, nil, nil, nil, nil, users, &fakeMembershipRepo{})
	svc := NewMembershipService(repo, zap.NewNop())

	_, err := svc.Apply(context.Background(), userID, &request.ApplyMembershipRequest{
		Instrument: "Trombone",
		Motivation: "Already in, applying again anyway.",
	})
	if err == nil {
		t.Fatal("expected members to be refused")
	}
}

func TestDecideMembershipPromotesOnApproval(t *testing.T) {
	userID := uuid.New()
	applicationID := uuid.New()
	users := &fakeUserRepo{users: []*entity.User{{
		Base: entity.Base{ID: userID},
		Role: entity.RoleUser,
	}}}
	memberships := &fakeMembershipRepo{applications: []*entity.MembershipApplication{{
		Base:   entity.Base{ID: applicationID},
		UserID: userID,
		Status: entity.ApplicationPending,
	}}}
	repo := newTestRepository(nil, nil, nil, nil, nil, users, memberships)
	svc := NewMembershipService(repo, zap.NewNop())

	if err := svc.Decide(context.Background(), applicationID, &request.MembershipDecisionRequest{Status: "approved"}); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if users.users[0].Role != entity.RoleMember {
		t.Errorf("role = %s, want member after approval", users.users[0].Role)
	}
}

func TestDecideMembershipRejectionKeepsRole(t *testing.T) {
	userID := uuid.New()
	applicationID := uuid.New()
	users := &fakeUserRepo{users: []*entity.User{{
		Base: entity.Base{ID: userID},
		Role: entity.RoleUser,
	}}}
	memberships := &fakeMembershipRepo{applications: []*entity.MembershipApplication{{
		Base:   entity.Base{ID: applicationID},
		UserID: userID,
		Status: entity.ApplicationPending,
	}}}
	repo := newTestRepository(nil, nil, nil, nil, nil, users, memberships)
	svc := NewMembershipService(repo, zap.NewNop())

	if err := svc.Decide(context.Background(), applicationID, &request.MembershipDecisionRequest{Status: "rejected"}); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if users.users[0].Role != entity.RoleUser {
		t.Errorf("role = %s, want unchanged user", users.users[0].Role)
	}
}
