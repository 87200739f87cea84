package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/domain/entity"
)

// InvoiceStats agregados para el dashboard.
type InvoiceStats struct {
	Count      int
	GrossTotal decimal.Decimal
}

// InvoiceRepository define el puerto de persistencia de rachunki procesados.
// El número del rachunek es la clave natural: guardar dos veces el mismo número
// reemplaza la versión anterior.
type InvoiceRepository interface {
	Save(ctx context.Context, inv *entity.Invoice) error
	// GetByNumber devuelve nil, nil si no existe.
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	// Latest devuelve el último rachunek guardado o nil, nil si no hay ninguno.
	Latest(ctx context.Context) (*entity.Invoice, error)
	Stats(ctx context.Context) (InvoiceStats, error)
}
