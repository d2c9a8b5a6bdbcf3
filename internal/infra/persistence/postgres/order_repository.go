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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order. The unique payment-session id absorbs webhook
// redelivery: a second insert for the same session reports a duplicate.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrder
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEventNotFound.WrapMessage("invalid event or buyer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByID retrieves an order with its event resolved.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Event").
		Preload("Buyer").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// ListByBuyer returns the buyer's orders ordered by creation time descending
// with the total count, resolving each order's event and the event's organizer.
func (repo *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, offset, limit int) ([]*entity.Order, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("buyer_id = ?", buyerID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders by buyer")
	}

	var orderModels []*model.OrderModel
	query = query.
		Preload("Event").
		Preload("Event.Organizer").
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders by buyer")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// ListByEvent returns the flat order projection for one event. The buyer-name
// filter matches the concatenated first and last name case-insensitively.
func (repo *orderRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, buyerName string) ([]*entity.OrderRow, error) {
	var rows []*entity.OrderRow

	query := `
		SELECT o.id,
		       o.total_amount,
		       o.created_at,
		       e.title AS event_title,
		       e.id AS event_id,
		       COALESCE(TRIM(CONCAT(a.first_name, ' ', a.last_name)), '') AS buyer_name
		FROM orders o
		JOIN events e ON e.id = o.event_id
		LEFT JOIN accounts a ON a.id = o.buyer_id
		WHERE o.event_id = ?
		  AND CONCAT(a.first_name, ' ', a.last_name) ILIKE ?
		ORDER BY o.created_at DESC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, eventID, "%"+buyerName+"%").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders by event")
	}

	return rows, nil
}

// DetachBuyer clears the buyer reference on every order placed by the given
// account.
func (repo *orderRepository) DetachBuyer(ctx context.Context, buyerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("buyer_id = ?", buyerID).
		Update("buyer_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach buyer from orders")
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:               data.ID,
		PaymentSessionID: data.PaymentSessionID,
		TotalAmount:      data.TotalAmount,
		EventID:          data.EventID,
		BuyerID:          data.BuyerID,
		Event:            toEventDomain(data.Event),
		Buyer:            toProfileDomain(data.Buyer),
		CreatedAt:        data.CreatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               data.ID,
		PaymentSessionID: data.PaymentSessionID,
		TotalAmount:      data.TotalAmount,
		EventID:          data.EventID,
		BuyerID:          data.BuyerID,
		CreatedAt:        data.CreatedAt,
	}
}
