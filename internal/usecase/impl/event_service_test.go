package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	mockRepo "evently/internal/mocks/repository"
	mockSvc "evently/internal/mocks/service"
	"evently/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestEventService() (*eventService, *mockRepo.EventRepository, *mockRepo.AccountRepository, *mockRepo.CategoryRepository, *mockSvc.PageRevalidator) {
	eventRepo := &mockRepo.EventRepository{}
	accountRepo := &mockRepo.AccountRepository{}
	categoryRepo := &mockRepo.CategoryRepository{}
	revalidator := &mockSvc.PageRevalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewEventService(EventServiceParams{
		EventRepo:    eventRepo,
		AccountRepo:  accountRepo,
		CategoryRepo: categoryRepo,
		Revalidator:  revalidator,
		Logger:       logger,
	})

	return service.(*eventService), eventRepo, accountRepo, categoryRepo, revalidator
}

func testEventInput() *usecase.EventInput {
	return &usecase.EventInput{
		Title:       "Go Conference",
		Description: "A conference about Go",
		Location:    "Berlin",
		ImageURL:    "https://img.example.com/gopher.png",
		StartAt:     time.Now().Add(24 * time.Hour),
		EndAt:       time.Now().Add(30 * time.Hour),
		Price:       "25",
		IsFree:      false,
		URL:         "https://goconf.example.com",
		CategoryID:  uuid.New(),
	}
}

func TestEventService_Create_Success(t *testing.T) {
	service, eventRepo, accountRepo, _, revalidator := createTestEventService()
	ctx := context.Background()
	organizerID := uuid.New()
	input := testEventInput()

	accountRepo.On("FindByID", ctx, organizerID).Return(&entity.Account{ID: organizerID}, nil)
	eventRepo.On("Create", ctx, mock.MatchedBy(func(e *entity.Event) bool {
		return e.Title == input.Title && e.OrganizerID != nil && *e.OrganizerID == organizerID
	})).Return(nil)
	revalidator.On("Revalidate", ctx, "/profile").Return(nil)

	event, err := service.Create(ctx, organizerID, input, "/profile")
	require.NoError(t, err)
	assert.Equal(t, input.Title, event.Title)
	require.NotNil(t, event.CategoryID)
	assert.Equal(t, input.CategoryID, *event.CategoryID)

	eventRepo.AssertExpectations(t)
	revalidator.AssertExpectations(t)
}

func TestEventService_Create_OrganizerMissing(t *testing.T) {
	service, eventRepo, accountRepo, _, _ := createTestEventService()
	ctx := context.Background()
	organizerID := uuid.New()

	accountRepo.On("FindByID", ctx, organizerID).Return(nil, repository.ErrAccountNotFound)

	_, err := service.Create(ctx, organizerID, testEventInput(), "/profile")
	assert.ErrorIs(t, err, domainerrors.ErrOrganizerNotFound)

	eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventService_Update_Success(t *testing.T) {
	service, eventRepo, _, _, revalidator := createTestEventService()
	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()
	input := testEventInput()

	stored := &entity.Event{ID: eventID, Title: "Old title", OrganizerID: &organizerID}
	eventRepo.On("FindByID", ctx, eventID).Return(stored, nil)
	eventRepo.On("Update", ctx, mock.MatchedBy(func(e *entity.Event) bool {
		return e.ID == eventID && e.Title == input.Title
	})).Return(nil)
	revalidator.On("Revalidate", ctx, "/events/"+eventID.String()).Return(nil)

	event, err := service.Update(ctx, organizerID, eventID, input, "/events/"+eventID.String())
	require.NoError(t, err)
	assert.Equal(t, input.Title, event.Title)

	eventRepo.AssertExpectations(t)
	revalidator.AssertExpectations(t)
}

func TestEventService_Update_ForeignRequester(t *testing.T) {
	service, eventRepo, _, _, revalidator := createTestEventService()
	ctx := context.Background()
	organizerID := uuid.New()
	eventID := uuid.New()

	stored := &entity.Event{ID: eventID, OrganizerID: &organizerID}
	eventRepo.On("FindByID", ctx, eventID).Return(stored, nil)

	_, err := service.Update(ctx, uuid.New(), eventID, testEventInput(), "/events")
	assert.ErrorIs(t, err, domainerrors.ErrNotEventOrganizer)

	// The stored record is never mutated on an authorization failure.
	eventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	revalidator.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
}

func TestEventService_Update_EventMissing(t *testing.T) {
	service, eventRepo, _, _, _ := createTestEventService()
	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.On("FindByID", ctx, eventID).Return(nil, repository.ErrEventNotFound)

	// A missing event fails the same way as a foreign requester.
	_, err := service.Update(ctx, uuid.New(), eventID, testEventInput(), "/events")
	assert.ErrorIs(t, err, domainerrors.ErrNotEventOrganizer)
}

func TestEventService_Update_DetachedOrganizer(t *testing.T) {
	service, eventRepo, _, _, _ := createTestEventService()
	ctx := context.Background()
	eventID := uuid.New()

	// An event whose organizer was deleted cannot be modified by anyone.
	stored := &entity.Event{ID: eventID, OrganizerID: nil}
	eventRepo.On("FindByID", ctx, eventID).Return(stored, nil)

	_, err := service.Update(ctx, uuid.New(), eventID, testEventInput(), "/events")
	assert.ErrorIs(t, err, domainerrors.ErrNotEventOrganizer)
}

func TestEventService_List_Pagination(t *testing.T) {
	service, eventRepo, _, _, _ := createTestEventService()
	ctx := context.Background()

	eventRepo.On("List", ctx, mock.MatchedBy(func(f repository.EventFilter) bool {
		return f.Offset == usecase.EventPageSize && f.Limit == usecase.EventPageSize
	})).Return([]*entity.Event{{Title: "A"}}, int64(13), nil)

	page, err := service.List(ctx, usecase.ListEventsQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	// ceil(13 / 6) = 3
	assert.Equal(t, 3, page.TotalPages)
}

func TestEventService_List_CategoryFilter(t *testing.T) {
	service, eventRepo, _, categoryRepo, _ := createTestEventService()
	ctx := context.Background()
	category := &entity.Category{ID: uuid.New(), Name: "Music"}

	categoryRepo.On("FindByName", ctx, "Music").Return(category, nil)
	eventRepo.On("List", ctx, mock.MatchedBy(func(f repository.EventFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == category.ID
	})).Return([]*entity.Event{}, int64(0), nil)

	page, err := service.List(ctx, usecase.ListEventsQuery{Category: "Music", Page: 1})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
}

func TestEventService_List_UnknownCategoryDropsFilter(t *testing.T) {
	service, eventRepo, _, categoryRepo, _ := createTestEventService()
	ctx := context.Background()

	categoryRepo.On("FindByName", ctx, "Nope").Return(nil, repository.ErrCategoryNotFound)
	eventRepo.On("List", ctx, mock.MatchedBy(func(f repository.EventFilter) bool {
		return f.CategoryID == nil
	})).Return([]*entity.Event{{Title: "A"}}, int64(1), nil)

	page, err := service.List(ctx, usecase.ListEventsQuery{Category: "Nope", Page: 1})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestEventService_ListRelated_ExcludesViewedEvent(t *testing.T) {
	service, eventRepo, _, _, _ := createTestEventService()
	ctx := context.Background()
	categoryID := uuid.New()
	excludeID := uuid.New()

	eventRepo.On("List", ctx, mock.MatchedBy(func(f repository.EventFilter) bool {
		return f.CategoryID != nil && *f.CategoryID == categoryID &&
			f.ExcludeID != nil && *f.ExcludeID == excludeID &&
			f.Limit == usecase.RelatedEventPageSize
	})).Return([]*entity.Event{}, int64(4), nil)

	page, err := service.ListRelated(ctx, categoryID, excludeID, 1)
	require.NoError(t, err)
	// ceil(4 / 3) = 2
	assert.Equal(t, 2, page.TotalPages)
}

func TestEventService_Delete_Present(t *testing.T) {
	service, eventRepo, _, _, revalidator := createTestEventService()
	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.On("Delete", ctx, eventID).Return(true, nil)
	revalidator.On("Revalidate", ctx, "/events").Return(nil)

	require.NoError(t, service.Delete(ctx, eventID, "/events"))
	revalidator.AssertExpectations(t)
}

func TestEventService_Delete_Absent(t *testing.T) {
	service, eventRepo, _, _, revalidator := createTestEventService()
	ctx := context.Background()
	eventID := uuid.New()

	eventRepo.On("Delete", ctx, eventID).Return(false, nil)

	// Deleting an absent event is a silent no-op without revalidation.
	require.NoError(t, service.Delete(ctx, eventID, "/events"))
	revalidator.AssertNotCalled(t, "Revalidate", mock.Anything, mock.Anything)
}
