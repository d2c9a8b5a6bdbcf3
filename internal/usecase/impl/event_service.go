package impl

import (
	"context"
	"log/slog"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/domain/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type eventService struct {
	eventRepo    repository.EventRepository
	accountRepo  repository.AccountRepository
	categoryRepo repository.CategoryRepository
	revalidator  service.PageRevalidator
	logger       *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo    repository.EventRepository
	AccountRepo  repository.AccountRepository
	CategoryRepo repository.CategoryRepository
	Revalidator  service.PageRevalidator
	Logger       *slog.Logger
}

// NewEventService creates a new event service instance
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo:    params.EventRepo,
		accountRepo:  params.AccountRepo,
		categoryRepo: params.CategoryRepo,
		revalidator:  params.Revalidator,
		logger:       params.Logger,
	}
}

// Create inserts a new event owned by the organizer account.
func (s *eventService) Create(ctx context.Context, organizerID uuid.UUID, input *usecase.EventInput, path string) (*entity.Event, error) {
	// The organizer must exist before the event references it.
	if _, err := s.accountRepo.FindByID(ctx, organizerID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrOrganizerNotFound
		}

		return nil, errors.Wrap(err, "failed to find organizer")
	}

	event := newEventFromInput(input)
	event.OrganizerID = &organizerID

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to create event")
	}

	s.revalidate(ctx, path)

	return event, nil
}

// GetByID returns one event with its organizer and category resolved.
func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// Update applies the full patch to an existing event. A missing event and a
// foreign requester fail identically, before anything is written.
func (s *eventService) Update(ctx context.Context, requesterID, eventID uuid.UUID, input *usecase.EventInput, path string) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotEventOrganizer
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	if !event.IsOrganizedBy(requesterID) {
		return nil, domainerrors.ErrNotEventOrganizer
	}

	applyEventInput(event, input)

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to update event")
	}

	s.revalidate(ctx, path)

	return event, nil
}

// List returns one page of events matching the query, newest first.
func (s *eventService) List(ctx context.Context, query usecase.ListEventsQuery) (*usecase.Paginated[*entity.Event], error) {
	filter := repository.EventFilter{
		TitleContains: query.Text,
		Offset:        usecase.Offset(query.Page, usecase.EventPageSize),
		Limit:         usecase.EventPageSize,
	}

	if query.Category != "" {
		category, err := s.categoryRepo.FindByName(ctx, query.Category)
		switch {
		case err == nil:
			filter.CategoryID = &category.ID
		case errors.Is(err, repository.ErrCategoryNotFound):
			// An unknown category name drops the filter rather than
			// producing an empty listing.
		default:
			return nil, errors.Wrap(err, "failed to resolve category filter")
		}
	}

	return s.listPage(ctx, filter, usecase.EventPageSize)
}

// ListByOrganizer returns one page of the organizer's own events.
func (s *eventService) ListByOrganizer(ctx context.Context, organizerID uuid.UUID, page int) (*usecase.Paginated[*entity.Event], error) {
	filter := repository.EventFilter{
		OrganizerID: &organizerID,
		Offset:      usecase.Offset(page, usecase.EventPageSize),
		Limit:       usecase.EventPageSize,
	}

	return s.listPage(ctx, filter, usecase.EventPageSize)
}

// ListRelated returns one page of events sharing a category, excluding the
// event being viewed.
func (s *eventService) ListRelated(ctx context.Context, categoryID, excludeEventID uuid.UUID, page int) (*usecase.Paginated[*entity.Event], error) {
	filter := repository.EventFilter{
		CategoryID: &categoryID,
		ExcludeID:  &excludeEventID,
		Offset:     usecase.Offset(page, usecase.RelatedEventPageSize),
		Limit:      usecase.RelatedEventPageSize,
	}

	return s.listPage(ctx, filter, usecase.RelatedEventPageSize)
}

// Delete removes an event if present. Deleting an absent event is a no-op
// and does not trigger revalidation.
func (s *eventService) Delete(ctx context.Context, id uuid.UUID, path string) error {
	deleted, err := s.eventRepo.Delete(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to delete event")
	}

	if deleted {
		s.revalidate(ctx, path)
	}

	return nil
}

func (s *eventService) listPage(ctx context.Context, filter repository.EventFilter, pageSize int) (*usecase.Paginated[*entity.Event], error) {
	events, total, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return &usecase.Paginated[*entity.Event]{
		Items:      events,
		TotalPages: usecase.TotalPages(total, pageSize),
	}, nil
}

// revalidate drops the cached rendering of one path. Cache invalidation
// failures never undo a committed mutation; they are logged and the stale
// page expires on its own.
func (s *eventService) revalidate(ctx context.Context, path string) {
	if s.revalidator == nil || path == "" {
		return
	}

	if err := s.revalidator.Revalidate(ctx, path); err != nil && s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to invalidate cached page",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
}

func newEventFromInput(input *usecase.EventInput) *entity.Event {
	event := &entity.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		ImageURL:    input.ImageURL,
		StartAt:     input.StartAt,
		EndAt:       input.EndAt,
		Price:       input.Price,
		IsFree:      input.IsFree,
		URL:         input.URL,
	}
	if input.CategoryID != uuid.Nil {
		categoryID := input.CategoryID
		event.CategoryID = &categoryID
	}

	return event
}

func applyEventInput(event *entity.Event, input *usecase.EventInput) {
	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.ImageURL = input.ImageURL
	event.StartAt = input.StartAt
	event.EndAt = input.EndAt
	event.Price = input.Price
	event.IsFree = input.IsFree
	event.URL = input.URL

	if input.CategoryID != uuid.Nil {
		categoryID := input.CategoryID
		event.CategoryID = &categoryID
	} else {
		event.CategoryID = nil
	}
}
