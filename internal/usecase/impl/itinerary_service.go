package impl

import (
	"context"
	"strings"

	"wayfare/config"
	"wayfare/internal/domain/entity"
	domainerrors "wayfare/internal/domain/errors"
	"wayfare/internal/domain/repository"
	"wayfare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type itineraryService struct {
	itineraryRepo repository.ItineraryRepository
	purchaseRepo  repository.PurchaseRepository
	config        *config.Config
}

// ItineraryServiceParams holds dependencies for ItineraryService, injected by Fx.
type ItineraryServiceParams struct {
	fx.In

	ItineraryRepo repository.ItineraryRepository
	PurchaseRepo  repository.PurchaseRepository
	Config        *config.Config
}

// NewItineraryService creates a new itinerary service instance
func NewItineraryService(params ItineraryServiceParams) usecase.ItineraryUsecase {
	return &itineraryService{
		itineraryRepo: params.ItineraryRepo,
		purchaseRepo:  params.PurchaseRepo,
		config:        params.Config,
	}
}

// CreateItinerary creates a new itinerary owned by the acting creator.
// New itineraries always start unapproved; only an admin can change that.
func (s *itineraryService) CreateItinerary(ctx context.Context, actor *entity.Profile, input usecase.CreateItineraryInput) (*entity.Itinerary, error) {
	if actor == nil {
		return nil, domainerrors.ErrUnauthenticated
	}
	if actor.Role != entity.RoleInfluencer && actor.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("only creators can submit itineraries")
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.PlanDetails) == "" {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("title and plan details are required")
	}
	if input.Price <= 0 {
		return nil, domainerrors.ErrInvalidRequest.WrapMessage("price must be positive")
	}

	currency := input.Currency
	if currency == "" {
		currency = s.config.Payment.Currency
	}

	itinerary := &entity.Itinerary{
		ID:          uuid.New(),
		CreatorID:   actor.ID,
		Title:       input.Title,
		Location:    input.Location,
		Description: input.Description,
		PlanDetails: input.PlanDetails,
		Price:       round2(input.Price),
		Currency:    currency,
		IsPublished: input.Publish,
		IsApproved:  false,
	}

	if err := s.itineraryRepo.CreateItinerary(ctx, itinerary); err != nil {
		return nil, errors.Wrap(err, "failed to create itinerary")
	}

	return itinerary, nil
}

// ListPublished retrieves all published and approved itineraries.
func (s *itineraryService) ListPublished(ctx context.Context) ([]*entity.Itinerary, error) {
	itineraries, err := s.itineraryRepo.FindPublishedItineraries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find published itineraries")
	}

	return itineraries, nil
}

// GetItinerary retrieves one itinerary as seen by the viewer. Unlisted
// itineraries are visible only to their owner and admins; the day-by-day plan
// is cleared unless the viewer is the owner, an admin, or a purchaser.
func (s *itineraryService) GetItinerary(ctx context.Context, viewer *entity.Profile, id uuid.UUID) (*usecase.ItineraryDetail, error) {
	itinerary, err := s.itineraryRepo.FindItineraryByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return nil, domainerrors.ErrItineraryNotFound
		}

		return nil, errors.Wrap(err, "failed to find itinerary")
	}

	privileged := viewer != nil &&
		(viewer.ID == itinerary.CreatorID || viewer.Role == entity.RoleAdmin)

	if !(itinerary.IsPublished && itinerary.IsApproved) && !privileged {
		return nil, domainerrors.ErrItineraryNotFound
	}

	unlocked := privileged
	if !unlocked && viewer != nil {
		purchased, err := s.purchaseRepo.HasPurchase(ctx, viewer.ID, id)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check purchase existence")
		}
		unlocked = purchased
	}

	if !unlocked {
		itinerary.PlanDetails = ""
	}

	return &usecase.ItineraryDetail{
		Itinerary: itinerary,
		Unlocked:  unlocked,
	}, nil
}

// SetApproval flips the approval flag. Admin only; nothing else changes.
func (s *itineraryService) SetApproval(ctx context.Context, actor *entity.Profile, id uuid.UUID, approved bool) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if actor.Role != entity.RoleAdmin {
		return domainerrors.ErrForbidden.WrapMessage("only admins can approve itineraries")
	}

	if err := s.itineraryRepo.SetApproval(ctx, id, approved); err != nil {
		if errors.Is(err, repository.ErrItineraryNotFound) {
			return domainerrors.ErrItineraryNotFound
		}

		return errors.Wrap(err, "failed to set itinerary approval")
	}

	return nil
}
