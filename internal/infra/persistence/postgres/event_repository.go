package postgres

import (
	"context"

	"evently/internal/domain/entity"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/repository"
	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category or organizer reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves an event with its category and organizer resolved.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel

	if err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("Organizer").
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	return toEventDomain(&eventM), nil
}

// Update saves the modified event fields, including category reassignment.
// The organizer reference is never changed here; ownership transfers are not
// a supported operation.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("id = ?", event.ID).
		Updates(map[string]any{
			"title":       event.Title,
			"description": event.Description,
			"location":    event.Location,
			"image_url":   event.ImageURL,
			"start_at":    event.StartAt,
			"end_at":      event.EndAt,
			"price":       event.Price,
			"is_free":     event.IsFree,
			"url":         event.URL,
			"category_id": event.CategoryID,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid category reference")
		}

		return errors.Wrap(result.Error, "failed to update event")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID. It reports whether a record was actually
// deleted; a missing event is not an error.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EventModel{})

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to delete event")
	}

	return result.RowsAffected > 0, nil
}

// List returns the filtered events ordered by creation time descending, plus
// the total match count before offset/limit.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.EventModel{})

	if filter.TitleContains != "" {
		query = query.Where("title ILIKE ?", "%"+filter.TitleContains+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.OrganizerID != nil {
		query = query.Where("organizer_id = ?", *filter.OrganizerID)
	}
	if filter.ExcludeID != nil {
		query = query.Where("id <> ?", *filter.ExcludeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count events")
	}

	var eventModels []*model.EventModel
	query = query.
		Preload("Category").
		Preload("Organizer").
		Order("created_at DESC").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, total, nil
}

// DetachOrganizer clears the organizer reference on every event owned by the
// given account.
func (repo *eventRepository) DetachOrganizer(ctx context.Context, organizerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.EventModel{}).
		Where("organizer_id = ?", organizerID).
		Update("organizer_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach organizer from events")
	}

	return nil
}

// --- Mapper Functions ---

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		ImageURL:    data.ImageURL,
		StartAt:     data.StartAt,
		EndAt:       data.EndAt,
		Price:       data.Price,
		IsFree:      data.IsFree,
		URL:         data.URL,
		CategoryID:  data.CategoryID,
		OrganizerID: data.OrganizerID,
		Category:    toCategoryDomain(data.Category),
		Organizer:   toProfileDomain(data.Organizer),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromEventDomain converts a domain Event entity to a GORM EventModel. The
// association structs are intentionally left nil so GORM does not upsert the
// referenced rows.
func fromEventDomain(data *entity.Event) *model.EventModel {
	if data == nil {
		return nil
	}

	return &model.EventModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		ImageURL:    data.ImageURL,
		StartAt:     data.StartAt,
		EndAt:       data.EndAt,
		Price:       data.Price,
		IsFree:      data.IsFree,
		URL:         data.URL,
		CategoryID:  data.CategoryID,
		OrganizerID: data.OrganizerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
