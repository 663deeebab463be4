package customer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	appcustomer "github.com/tu-usuario/bicirent-pro/internal/application/customer"
	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
)

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	lastLimit int
}

func (f *fakeCustomerRepo) Save(_ context.Context, c *entity.Customer) error {
	f.customers[c.ID] = c
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id string) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context, limit, _ int) ([]*entity.Customer, error) {
	f.lastLimit = limit
	var out []*entity.Customer
	for _, c := range f.customers {
		out = append(out, c)
	}
	return out, nil
}

func newFixture() (*appcustomer.UseCase, *fakeCustomerRepo) {
	repo := &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
	return appcustomer.NewUseCase(repo), repo
}

func TestCreateCustomer_NormalizaContacto(t *testing.T) {
	uc, repo := newFixture()

	out, err := uc.CreateCustomer(context.Background(), dto.CreateCustomerRequest{
		Name:  "Ana Pérez",
		Email: "  Ana.Perez@Example.COM ",
		Phone: "+57 300 123 4567",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "ana.perez@example.com", out.Email,
		"el email se normaliza a minúsculas y sin espacios")
	assert.Equal(t, "+57 300 123 4567", out.Phone)
	assert.Len(t, repo.customers, 1)
}

func TestCreateCustomer_ValidacionPropaga(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.CreateCustomer(context.Background(), dto.CreateCustomerRequest{
		Name: "Ana", Email: "sin-arroba", Phone: "3001234567",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, repo.customers)
}

func TestGetCustomer_NoExiste(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.GetCustomer(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListCustomers_PaginacionSaneada(t *testing.T) {
	uc, repo := newFixture()

	_, err := uc.ListCustomers(context.Background(), -5, -1)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit, "límite fuera de rango cae al valor por defecto")

	_, err = uc.ListCustomers(context.Background(), 500, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)

	_, err = uc.ListCustomers(context.Background(), 50, 0)
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}
