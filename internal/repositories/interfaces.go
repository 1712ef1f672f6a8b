package repositories

import (
	"bank-console/internal/models"

	"github.com/google/uuid"
)

// CustomerRepositoryInterface defines the contract for the customer directory.
// Customers are always returned ordered by last name then first name.
type CustomerRepositoryInterface interface {
	Create(customer *models.Customer) error
	Rename(id uuid.UUID, firstName, lastName string) error
	List() []*models.Customer
	GetByIndex(index int) (*models.Customer, error)
	GetByID(id uuid.UUID) (*models.Customer, error)
	Count() int
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByCustomerID(customerID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetBySession(sessionID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetRecent(limit int) ([]*models.AuditLog, error)
}
