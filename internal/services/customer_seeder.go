package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
)

// demoCustomers is the directory the console starts with, as first and last names
var demoCustomers = [][2]string{
	{"Tony", "Womack"},
	{"Craig", "Counsell"},
	{"Luis", "Gonzales"},
	{"Matt", "Williams"},
	{"Steve", "Finley"},
	{"Danny", "Bautista"},
	{"Mark", "Grace"},
	{"Damian", "Miller"},
	{"Curt", "Schilling"},
}

// draws per requested random customer before giving up on invalid names
const maxDrawsPerCustomer = 5

type customerSeeder struct {
	bankService BankServiceInterface
	faker       *gofakeit.Faker
}

// NewCustomerSeeder creates a seeder that opens customers through bankService.
// A zero seed draws random names from a random source.
func NewCustomerSeeder(bankService BankServiceInterface, seed uint64) CustomerSeederInterface {
	return &customerSeeder{
		bankService: bankService,
		faker:       gofakeit.New(seed),
	}
}

// Seed opens the demo customers when demo is set, then random more with
// generated names. It returns how many customers were created.
func (s *customerSeeder) Seed(ctx context.Context, demo bool, random int) (int, error) {
	created := 0

	if demo {
		for _, name := range demoCustomers {
			if _, err := s.bankService.CreateCustomer(ctx, name[0], name[1]); err != nil {
				return created, fmt.Errorf("failed to seed %s %s: %w", name[0], name[1], err)
			}
			created++
		}
	}

	for draws := 0; random > 0 && draws < random*maxDrawsPerCustomer; draws++ {
		_, err := s.bankService.CreateCustomer(ctx, s.faker.FirstName(), s.faker.LastName())
		if errors.Is(err, ErrInvalidName) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed random customer: %w", err)
		}
		created++
		random--
	}

	return created, nil
}
