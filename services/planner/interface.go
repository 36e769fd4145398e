package planner

import (
	"context"
	"fmt"
	"time"

	"tripforge/models"
	"tripforge/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FallbackErrorMessage is the only failure text users ever see; the
// underlying gateway detail goes to the log.
const FallbackErrorMessage = "Failed to generate the itinerary. Please check your connection or API key and try again."

// PlannerService drives planning sessions: at most one itinerary request
// in flight per session, cell-by-cell cost edits and the derived budget
// summary.
type PlannerService interface {
	CreateSession(ctx context.Context) (*models.PlannerSession, error)
	GetSession(ctx context.Context, id string) (*models.PlannerSession, error)
	GenerateItinerary(ctx context.Context, id string, input models.TripInput) (*models.PlannerSession, error)
	UpdateCost(ctx context.Context, id string, dayIndex, activityIndex int, value any) (*models.PlannerSession, error)
	DismissError(ctx context.Context, id string) (*models.PlannerSession, error)
}

type DefaultPlannerService struct {
	Gateway ItineraryGateway
	Store   SessionStore
}

func (s *DefaultPlannerService) CreateSession(ctx context.Context) (*models.PlannerSession, error) {
	now := time.Now().UTC()
	sess := &models.PlannerSession{
		ID:        uuid.New().String(),
		Status:    models.StatusIdle,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *DefaultPlannerService) GetSession(ctx context.Context, id string) (*models.PlannerSession, error) {
	return s.Store.Get(ctx, id)
}

// GenerateItinerary runs one submission through the state machine:
// LOADING is written before the outbound call so a second submission
// observes it and is refused, then the session lands in SUCCESS or ERROR.
func (s *DefaultPlannerService) GenerateItinerary(ctx context.Context, id string, input models.TripInput) (*models.PlannerSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status == models.StatusLoading {
		return nil, ErrGenerationInFlight
	}

	// Discard the previous itinerary and overrides before the call; the
	// store is reseeded only from a fresh successful response.
	sess.Status = models.StatusLoading
	sess.Input = &input
	sess.Itinerary = nil
	sess.Costs = nil
	sess.ErrorMessage = ""
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	itinerary, genErr := s.Gateway.GenerateItinerary(ctx, input)
	if genErr != nil {
		utils.GetLogger().Error("Itinerary generation failed",
			zap.String("sessionID", sess.ID),
			zap.String("destination", input.Destination),
			zap.Error(genErr))
		sess.Status = models.StatusError
		sess.ErrorMessage = FallbackErrorMessage
	} else {
		sess.Itinerary = itinerary
		SeedCosts(sess)
		sess.Status = models.StatusSuccess
	}

	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

func (s *DefaultPlannerService) UpdateCost(ctx context.Context, id string, dayIndex, activityIndex int, value any) (*models.PlannerSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.StatusSuccess || sess.Itinerary == nil {
		return nil, ErrNoItinerary
	}
	if dayIndex < 0 || dayIndex >= len(sess.Itinerary.DailyPlans) {
		return nil, ErrActivityNotFound
	}
	if activityIndex < 0 || activityIndex >= len(sess.Itinerary.DailyPlans[dayIndex].Activities) {
		return nil, ErrActivityNotFound
	}

	if sess.Costs == nil {
		sess.Costs = make(map[string]float64)
	}
	sess.Costs[CostKey(dayIndex, activityIndex)] = CoerceCost(value)
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// DismissError moves an errored session back to IDLE. Any other status is
// returned unchanged.
func (s *DefaultPlannerService) DismissError(ctx context.Context, id string) (*models.PlannerSession, error) {
	sess, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Status != models.StatusError {
		return sess, nil
	}
	sess.Status = models.StatusIdle
	sess.ErrorMessage = ""
	sess.UpdatedAt = time.Now().UTC()
	if err := s.Store.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}
