package repositories

import (
	"testing"
	"time"

	"bank-console/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestCustomerRepository(t *testing.T) {
	suite.Run(t, new(CustomerRepositorySuite))
}

type CustomerRepositorySuite struct {
	suite.Suite
	repo CustomerRepositoryInterface
}

func (s *CustomerRepositorySuite) SetupTest() {
	s.repo = NewCustomerRepository()
}

func (s *CustomerRepositorySuite) newCustomer(first, last string) *models.Customer {
	terms := models.AccountTerms{
		CheckingOpening: decimal.NewFromInt(100),
		SavingOpening:   decimal.NewFromInt(100),
		SavingRate:      decimal.NewFromFloat(0.06),
		LoanPrincipal:   decimal.NewFromInt(1000),
		LoanRate:        decimal.NewFromFloat(0.12),
		LoanTermMonths:  12,
		LoanPolicy:      models.AccrueSeparately,
	}
	c, err := models.NewCustomer(first, last, terms, time.Now)
	s.Require().NoError(err)
	return c
}

func (s *CustomerRepositorySuite) names() []string {
	var names []string
	for _, c := range s.repo.List() {
		names = append(names, c.FullName())
	}
	return names
}

func (s *CustomerRepositorySuite) TestCustomerRepository_CreateKeepsOrder() {
	s.NoError(s.repo.Create(s.newCustomer("Tony", "Womack")))
	s.NoError(s.repo.Create(s.newCustomer("Craig", "Counsell")))
	s.NoError(s.repo.Create(s.newCustomer("Steve", "Finley")))
	s.NoError(s.repo.Create(s.newCustomer("Alan", "Finley")))

	s.Equal([]string{"Craig Counsell", "Alan Finley", "Steve Finley", "Tony Womack"}, s.names())
	s.Equal(4, s.repo.Count())
}

func (s *CustomerRepositorySuite) TestCustomerRepository_CreateDuplicate() {
	c := s.newCustomer("Mark", "Grace")
	s.NoError(s.repo.Create(c))

	s.Error(s.repo.Create(c))
	s.Error(s.repo.Create(nil))
	s.Equal(1, s.repo.Count())
}

func (s *CustomerRepositorySuite) TestCustomerRepository_RenameResorts() {
	womack := s.newCustomer("Tony", "Womack")
	s.NoError(s.repo.Create(womack))
	s.NoError(s.repo.Create(s.newCustomer("Mark", "Grace")))

	s.NoError(s.repo.Rename(womack.ID, "Jay", "Bell"))

	s.Equal([]string{"Jay Bell", "Mark Grace"}, s.names())
	first, err := s.repo.GetByIndex(0)
	s.NoError(err)
	s.Equal(womack.ID, first.ID)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_RenameErrors() {
	c := s.newCustomer("Mark", "Grace")
	s.NoError(s.repo.Create(c))

	s.ErrorIs(s.repo.Rename(uuid.New(), "Jay", "Bell"), ErrCustomerNotFound)
	s.ErrorIs(s.repo.Rename(c.ID, "", "Bell"), models.ErrNameRequired)
	s.Equal("Mark Grace", c.FullName())
}

func (s *CustomerRepositorySuite) TestCustomerRepository_GetByIndex() {
	s.NoError(s.repo.Create(s.newCustomer("Mark", "Grace")))

	c, err := s.repo.GetByIndex(0)
	s.NoError(err)
	s.Equal("Grace", c.LastName)

	_, err = s.repo.GetByIndex(1)
	s.ErrorIs(err, ErrCustomerNotFound)
	_, err = s.repo.GetByIndex(-1)
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_GetByID() {
	c := s.newCustomer("Curt", "Schilling")
	s.NoError(s.repo.Create(c))

	found, err := s.repo.GetByID(c.ID)
	s.NoError(err)
	s.Same(c, found)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrCustomerNotFound)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_ListIsSnapshot() {
	s.NoError(s.repo.Create(s.newCustomer("Mark", "Grace")))

	list := s.repo.List()
	list[0] = nil

	c, err := s.repo.GetByIndex(0)
	s.NoError(err)
	s.NotNil(c)
}

func (s *CustomerRepositorySuite) TestCustomerRepository_RandomNamesStaySorted() {
	faker := gofakeit.New(42)
	for i := 0; i < 50; i++ {
		s.NoError(s.repo.Create(s.newCustomer(faker.FirstName(), faker.LastName())))
	}

	list := s.repo.List()
	s.Len(list, 50)
	for i := 1; i < len(list); i++ {
		s.LessOrEqual(models.CompareCustomers(list[i-1], list[i]), 0)
	}
}
