package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_engine/internal/apperrors"
	"github.com/SscSPs/finance_engine/internal/core/analytics"
	"github.com/SscSPs/finance_engine/internal/core/domain"
	"github.com/SscSPs/finance_engine/internal/dto"
	"github.com/google/uuid"
)

// CreateGoal validates and stores a new savings goal owned by req.UserID.
func (s *analyticsService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (result *domain.GoalRecord, err error) {
	start := time.Now()
	defer func() { s.observe(opCreateGoal, start, err) }()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid create goal request", slog.String("user_id", req.UserID))
		return nil, err
	}

	now := s.today()
	goal := domain.GoalRecord{
		GoalID:              uuid.NewString(),
		Name:                req.Name,
		CurrentAmount:       req.CurrentAmount,
		TargetAmount:        req.TargetAmount,
		TargetDate:          req.TargetDate,
		MonthlyContribution: req.MonthlyContribution,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.UserID,
		},
	}
	if err := analytics.ValidateGoal(goal, now); err != nil {
		s.logFailure(ctx, err, "Goal rejected", slog.String("user_id", req.UserID))
		return nil, err
	}

	if err := s.goalRepo.SaveGoal(ctx, goal); err != nil {
		s.LogError(ctx, err, "Failed to save goal", slog.String("goal_id", goal.GoalID))
		return nil, fmt.Errorf("failed to save goal: %w", err)
	}

	s.LogInfo(ctx, "Goal created",
		slog.String("goal_id", goal.GoalID),
		slog.String("user_id", req.UserID),
		slog.String("target_amount", goal.TargetAmount.String()))
	return &goal, nil
}

// UpdateGoal changes the mutable fields of a goal owned by req.UserID.
func (s *analyticsService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (result *domain.GoalRecord, err error) {
	start := time.Now()
	defer func() { s.observe(opUpdateGoal, start, err) }()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid update goal request", slog.String("goal_id", goalID))
		return nil, err
	}

	goal, err := s.ownedGoal(ctx, goalID, req.UserID)
	if err != nil {
		return nil, err
	}

	updated, err := analytics.UpdateGoal(*goal, analytics.GoalUpdate{
		Name:                req.Name,
		TargetAmount:        req.TargetAmount,
		TargetDate:          req.TargetDate,
		MonthlyContribution: req.MonthlyContribution,
	}, s.today())
	if err != nil {
		s.logFailure(ctx, err, "Goal update rejected", slog.String("goal_id", goalID))
		return nil, err
	}
	updated.LastUpdatedBy = req.UserID

	if err := s.goalRepo.UpdateGoal(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	s.LogInfo(ctx, "Goal updated", slog.String("goal_id", goalID), slog.String("user_id", req.UserID))
	return &updated, nil
}

// ContributeToGoal adds req.Amount to the goal's current amount.
func (s *analyticsService) ContributeToGoal(ctx context.Context, goalID string, req dto.GoalContributionRequest) (result *domain.GoalRecord, err error) {
	start := time.Now()
	defer func() { s.observe(opContributeToGoal, start, err) }()

	if err := dto.Validate(req); err != nil {
		s.logFailure(ctx, err, "Invalid goal contribution request", slog.String("goal_id", goalID))
		return nil, err
	}

	goal, err := s.ownedGoal(ctx, goalID, req.UserID)
	if err != nil {
		return nil, err
	}

	updated, err := analytics.ApplyContribution(*goal, req.Amount, s.today())
	if err != nil {
		s.logFailure(ctx, err, "Goal contribution rejected",
			slog.String("goal_id", goalID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}
	if req.Amount.IsZero() {
		return &updated, nil
	}
	updated.LastUpdatedBy = req.UserID

	if err := s.goalRepo.UpdateGoal(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	if goal.CompletedAt == nil && updated.CompletedAt != nil {
		s.LogInfo(ctx, "Goal achieved", slog.String("goal_id", goalID))
	}
	s.LogInfo(ctx, "Contribution applied to goal",
		slog.String("goal_id", goalID),
		slog.String("amount", req.Amount.String()),
		slog.String("current_amount", updated.CurrentAmount.String()))
	return &updated, nil
}

// GoalProjection reports a goal's progress and the contribution it still needs.
func (s *analyticsService) GoalProjection(ctx context.Context, goalID string) (result *domain.GoalProjection, err error) {
	start := time.Now()
	defer func() { s.observe(opGoalProjection, start, err) }()

	goal, err := s.findGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}

	projection := analytics.ProjectGoal(*goal, s.today())
	s.LogDebug(ctx, "Goal projection computed",
		slog.String("goal_id", goalID),
		slog.Bool("on_track", projection.OnTrack))
	return &projection, nil
}

func (s *analyticsService) findGoal(ctx context.Context, goalID string) (*domain.GoalRecord, error) {
	goal, err := s.goalRepo.FindGoalByID(ctx, goalID)
	if err != nil {
		s.logFailure(ctx, err, "Failed to find goal", slog.String("goal_id", goalID))
		return nil, fmt.Errorf("failed to find goal %s: %w", goalID, err)
	}
	if goal == nil {
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	return goal, nil
}

// ownedGoal loads a goal and hides goals created by other users behind ErrNotFound.
func (s *analyticsService) ownedGoal(ctx context.Context, goalID, userID string) (*domain.GoalRecord, error) {
	goal, err := s.findGoal(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal.CreatedBy != userID {
		s.LogWarn(ctx, "Goal accessed by a user who does not own it",
			slog.String("goal_id", goalID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("goal %s: %w", goalID, apperrors.ErrNotFound)
	}
	return goal, nil
}
