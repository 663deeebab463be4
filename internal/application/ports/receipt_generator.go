package ports

import "github.com/tu-usuario/bicirent-pro/internal/domain/entity"

// ReceiptGenerator produce el comprobante de una venta en PDF.
type ReceiptGenerator interface {
	GenerateSaleReceipt(sale *entity.Sale, customer *entity.Customer, bikes map[string]*entity.Bike) ([]byte, error)
}
