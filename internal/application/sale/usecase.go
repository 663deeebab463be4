package sale

import (
	"context"

	"github.com/tu-usuario/bicirent-pro/internal/application/dto"
	"github.com/tu-usuario/bicirent-pro/internal/application/ports"
	"github.com/tu-usuario/bicirent-pro/internal/domain"
	"github.com/tu-usuario/bicirent-pro/internal/domain/entity"
	"github.com/tu-usuario/bicirent-pro/internal/domain/repository"
)

// UseCase orquesta las ventas sobre los agregados Sale, Bike y el libro de
// inventario. Igual que en alquileres, los pasos no son atómicos y los efectos
// aplicados no se revierten ante un fallo posterior.
type UseCase struct {
	saleRepo     repository.SaleRepository
	bikeRepo     repository.BikeRepository
	invRepo      repository.InventoryRepository
	customerRepo repository.CustomerRepository
	receipts     ports.ReceiptGenerator
	events       ports.EventPublisher
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	bikeRepo repository.BikeRepository,
	invRepo repository.InventoryRepository,
	customerRepo repository.CustomerRepository,
	receipts ports.ReceiptGenerator,
	events ports.EventPublisher,
) *UseCase {
	return &UseCase{
		saleRepo:     saleRepo,
		bikeRepo:     bikeRepo,
		invRepo:      invRepo,
		customerRepo: customerRepo,
		receipts:     receipts,
		events:       events,
	}
}

// CreateSale crea la venta en PENDING. El precio en 0 toma el vigente de la
// bicicleta. No toca inventario ni bicicletas: eso ocurre al confirmar.
func (uc *UseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "requiere al menos una bicicleta")
	}
	items := make([]entity.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.BikeID == "" {
			return nil, domain.NewValidationError("items.bikeId", "es obligatorio")
		}
		price := it.PriceCents
		if price == 0 {
			bike, err := uc.bikeRepo.FindByID(ctx, it.BikeID)
			if err != nil {
				return nil, err
			}
			if bike == nil {
				return nil, domain.ErrNotFound
			}
			price = bike.PriceCents
		}
		items = append(items, entity.SaleItem{BikeID: it.BikeID, PriceCents: price})
	}

	sale, err := entity.NewSale(in.CustomerID, items)
	if err != nil {
		return nil, err
	}
	if err := uc.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}
	uc.publish(ctx, sale.PullEvents())
	return toSaleResponse(sale), nil
}

// UpdateSaleStatus aplica confirm o cancel. Al confirmar, la venta se persiste
// PRIMERO y luego los efectos por ítem (salida OUT/SALE del libro y bicicleta
// a SOLD); bicicletas ausentes se omiten sin fallar. Sin rollback de efectos
// ya aplicados.
func (uc *UseCase) UpdateSaleStatus(ctx context.Context, saleID, action string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}

	switch action {
	case "confirm":
		if err := sale.Confirm(); err != nil {
			return nil, err
		}
		if err := uc.saleRepo.Save(ctx, sale); err != nil {
			return nil, err
		}
		uc.publish(ctx, sale.PullEvents())
		if err := uc.applyConfirmSideEffects(ctx, sale); err != nil {
			return nil, err
		}
	case "cancel":
		// Cancelar solo toca la venta; el inventario nunca salió.
		if err := sale.Cancel(); err != nil {
			return nil, err
		}
		if err := uc.saleRepo.Save(ctx, sale); err != nil {
			return nil, err
		}
		uc.publish(ctx, sale.PullEvents())
	default:
		return nil, domain.NewValidationError("action", "debe ser confirm o cancel")
	}

	return toSaleResponse(sale), nil
}

// applyConfirmSideEffects registra una salida OUT/SALE por ítem y pasa cada
// bicicleta encontrada a SOLD, persistiendo cada efecto según se produce.
func (uc *UseCase) applyConfirmSideEffects(ctx context.Context, sale *entity.Sale) error {
	for _, item := range sale.Items {
		movement, err := entity.NewInventoryMovement(entity.NewMovementParams{
			BikeID:   item.BikeID,
			Type:     entity.MovementTypeOUT,
			Reason:   entity.MovementReasonSale,
			Quantity: 1,
			Notes:    "venta " + sale.ID,
		})
		if err != nil {
			return err
		}
		if err := uc.invRepo.SaveMovement(ctx, movement); err != nil {
			return err
		}
		uc.publish(ctx, movement.PullEvents())

		bike, err := uc.bikeRepo.FindByID(ctx, item.BikeID)
		if err != nil {
			return err
		}
		if bike == nil {
			continue // referencia huérfana: se omite sin fallar
		}
		if err := bike.MarkAsSold(); err != nil {
			return err
		}
		if err := uc.bikeRepo.Save(ctx, bike); err != nil {
			return err
		}
		uc.publish(ctx, bike.PullEvents())
	}
	return nil
}

// CalculateTVA consulta pura: impuesto sobre el total de la venta.
func (uc *UseCase) CalculateTVA(ctx context.Context, saleID string, ratePercent float64) (*dto.TVAResponse, error) {
	if ratePercent < 0 {
		return nil, domain.NewValidationError("rate", "debe ser >= 0")
	}
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.TVAResponse{
		SaleID:      sale.ID,
		RatePercent: ratePercent,
		TotalCents:  sale.TotalCents,
		TaxCents:    sale.CalculateTVA(ratePercent),
	}, nil
}

// GenerateReceipt produce el comprobante PDF de una venta confirmada.
func (uc *UseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if sale.Status != entity.SaleStatusConfirmed {
		return nil, domain.NewInvalidTransitionError("sale", string(sale.Status), "RECEIPT")
	}

	customer, err := uc.customerRepo.FindByID(ctx, sale.CustomerID)
	if err != nil {
		return nil, err
	}
	bikes := make(map[string]*entity.Bike, len(sale.Items))
	for _, item := range sale.Items {
		bike, err := uc.bikeRepo.FindByID(ctx, item.BikeID)
		if err != nil {
			return nil, err
		}
		if bike != nil {
			bikes[item.BikeID] = bike
		}
	}
	return uc.receipts.GenerateSaleReceipt(sale, customer, bikes)
}

// GetSale obtiene una venta por ID.
func (uc *UseCase) GetSale(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListSales lista ventas con filtros opcionales por cliente y estado.
func (uc *UseCase) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*dto.SaleResponse, error) {
	sales, err := uc.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

func (uc *UseCase) publish(ctx context.Context, events []entity.DomainEvent) {
	if uc.events != nil && len(events) > 0 {
		uc.events.Publish(ctx, events...)
	}
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{BikeID: it.BikeID, PriceCents: it.PriceCents})
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		Items:      items,
		Status:     string(s.Status),
		TotalCents: s.TotalCents,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}
