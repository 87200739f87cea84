// Package memory guarda los rachunki en el proceso. Es el driver por defecto:
// los datos se pierden al reiniciar.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/finbot-api/internal/domain"
	"github.com/jhoicas/finbot-api/internal/domain/entity"
	"github.com/jhoicas/finbot-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo mapa número -> rachunek protegido con RWMutex.
type InvoiceRepo struct {
	mu     sync.RWMutex
	items  map[string]*entity.Invoice
	latest string
}

// NewInvoiceRepository construye un repositorio vacío.
func NewInvoiceRepository() *InvoiceRepo {
	return &InvoiceRepo{items: make(map[string]*entity.Invoice)}
}

// Save guarda una copia; un número repetido reemplaza la versión anterior
// conservando su ID. Un ID ya asignado a otro número devuelve domain.ErrConflict.
func (r *InvoiceRepo) Save(_ context.Context, inv *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.items[inv.Number]; ok {
		inv.ID = prev.ID
	} else if inv.ID != "" {
		for _, other := range r.items {
			if other.ID == inv.ID {
				return fmt.Errorf("%w: id %s ya pertenece al rachunek %s", domain.ErrConflict, inv.ID, other.Number)
			}
		}
	}
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	r.items[inv.Number] = clone(inv)
	r.latest = inv.Number
	return nil
}

// GetByNumber devuelve una copia o nil, nil.
func (r *InvoiceRepo) GetByNumber(_ context.Context, number string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.items[number]
	if !ok {
		return nil, nil
	}
	return clone(inv), nil
}

// Latest devuelve el último rachunek guardado.
func (r *InvoiceRepo) Latest(_ context.Context) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.items[r.latest]
	if !ok {
		return nil, nil
	}
	return clone(inv), nil
}

// Stats cuenta y suma el bruto de todos los rachunki.
func (r *InvoiceRepo) Stats(_ context.Context) (repository.InvoiceStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := repository.InvoiceStats{Count: len(r.items), GrossTotal: decimal.Zero}
	for _, inv := range r.items {
		s.GrossTotal = s.GrossTotal.Add(inv.GrossTotal)
	}
	return s, nil
}

func clone(inv *entity.Invoice) *entity.Invoice {
	c := *inv
	c.Lines = append([]entity.InvoiceLine(nil), inv.Lines...)
	c.Notes = append([]string(nil), inv.Notes...)
	c.PDF = append([]byte(nil), inv.PDF...)
	return &c
}
