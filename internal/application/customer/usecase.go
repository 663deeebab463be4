package customer

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// UseCase casos de uso del registro de clientes.
type UseCase struct {
	customerRepo repository.CustomerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo}
}

// CreateCustomer valida vía factoría y persiste el cliente.
func (uc *UseCase) CreateCustomer(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := entity.NewCustomer(in.Name, in.Email, in.Phone)
	if err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetCustomer obtiene un cliente por ID.
func (uc *UseCase) GetCustomer(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// ListCustomers lista clientes paginados.
func (uc *UseCase) ListCustomers(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	customers, err := uc.customerRepo.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email.String(),
		Phone: c.Phone.String(),
	}
}
