package repositories

import (
	"errors"
	"fmt"

	"bank-console/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAuditWrite       = errors.New("failed to write audit log")
	ErrAuditLogNotFound = errors.New("audit log not found")
)

// AuditLogRepository handles database operations for audit logs
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		db: db,
	}
}

// Create creates a new audit log entry
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	if log == nil {
		return errors.New("audit log cannot be nil")
	}

	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("%w: %w", ErrAuditWrite, err)
	}

	return nil
}

// GetByID retrieves an audit log by its ID
func (r *AuditLogRepository) GetByID(id uuid.UUID) (*models.AuditLog, error) {
	log := &models.AuditLog{}
	if err := r.db.First(log, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuditLogNotFound
		}
		return nil, fmt.Errorf("failed to get audit log by ID: %w", err)
	}

	return log, nil
}

// GetByCustomerID retrieves audit logs for a specific customer, newest first
func (r *AuditLogRepository) GetByCustomerID(customerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("customer_id = ?", customerID), offset, limit, "customer")
}

// GetByAction retrieves audit logs for a specific action, newest first
func (r *AuditLogRepository) GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("action = ?", action), offset, limit, "action")
}

// GetBySession retrieves audit logs written by one run of the console, newest first
func (r *AuditLogRepository) GetBySession(sessionID string, offset, limit int) ([]*models.AuditLog, int64, error) {
	return r.page(r.db.Model(&models.AuditLog{}).Where("session_id = ?", sessionID), offset, limit, "session")
}

// GetRecent returns the newest entries across all customers
func (r *AuditLogRepository) GetRecent(limit int) ([]*models.AuditLog, error) {
	if limit <= 0 || limit > 1000 {
		limit = 20
	}

	var logs []*models.AuditLog
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent audit logs: %w", err)
	}
	return logs, nil
}

func (r *AuditLogRepository) page(query *gorm.DB, offset, limit int, filter string) ([]*models.AuditLog, int64, error) {
	if limit <= 0 || limit > 1000 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	var logs []*models.AuditLog
	var total int64

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit logs by %s: %w", filter, err)
	}

	return logs, total, nil
}
