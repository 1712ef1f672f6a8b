package repositories

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"bank-console/internal/models"

	"github.com/google/uuid"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository is the in-memory customer directory
type CustomerRepository struct {
	customers []*models.Customer
	mutex     sync.RWMutex
}

// NewCustomerRepository creates an empty customer directory
func NewCustomerRepository() CustomerRepositoryInterface {
	return &CustomerRepository{}
}

// Create adds a customer and restores the sort order
func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if slices.ContainsFunc(r.customers, func(c *models.Customer) bool { return c.ID == customer.ID }) {
		return fmt.Errorf("customer %s already exists", customer.ID)
	}
	r.customers = append(r.customers, customer)
	r.sort()
	return nil
}

// Rename changes a customer's name and restores the sort order
func (r *CustomerRepository) Rename(id uuid.UUID, firstName, lastName string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrCustomerNotFound
	}
	if err := r.customers[i].Rename(firstName, lastName); err != nil {
		return fmt.Errorf("failed to rename customer: %w", err)
	}
	r.sort()
	return nil
}

// List returns a snapshot of the directory in display order
func (r *CustomerRepository) List() []*models.Customer {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return slices.Clone(r.customers)
}

// GetByIndex returns the customer at a zero-based position in display order
func (r *CustomerRepository) GetByIndex(index int) (*models.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if index < 0 || index >= len(r.customers) {
		return nil, ErrCustomerNotFound
	}
	return r.customers[index], nil
}

// GetByID retrieves a customer by ID
func (r *CustomerRepository) GetByID(id uuid.UUID) (*models.Customer, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrCustomerNotFound
	}
	return r.customers[i], nil
}

// Count returns the number of customers
func (r *CustomerRepository) Count() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.customers)
}

func (r *CustomerRepository) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(r.customers, func(c *models.Customer) bool { return c.ID == id })
}

// caller holds the write lock
func (r *CustomerRepository) sort() {
	slices.SortStableFunc(r.customers, models.CompareCustomers)
}
