// Package sales implementa el ciclo de vida de una venta: creación, reserva de
// piezas, confirmaciones de pago y envío, y consultas con totales derivados.
//
// Cada operación que muta stock o estado corre dentro de una transacción
// (TxRunner) y re-lee el estado actual con bloqueo de fila antes de decidir:
// nunca se confía en un estado leído fuera de la transacción.
package sales

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/inventory"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
	"github.com/jhoicas/Boutique-api/internal/domain/sale"
)

// UseCase casos de uso de ventas.
type UseCase struct {
	txRunner TxRunner
	sales    repository.SaleRepository
	users    repository.UserRepository
}

// NewUseCase construye el caso de uso. salesRepo va atado al pool (lecturas
// fuera de transacción); las mutaciones usan los repos que entrega el TxRunner.
func NewUseCase(txRunner TxRunner, salesRepo repository.SaleRepository, users repository.UserRepository) *UseCase {
	return &UseCase{txRunner: txRunner, sales: salesRepo, users: users}
}

// CreateSale abre una venta en estado open-no-pieces.
func (uc *UseCase) CreateSale(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	clientName := strings.TrimSpace(in.ClientName)
	if clientName == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("consultar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	s := &entity.Sale{
		ID:         uuid.New().String(),
		UserID:     userID,
		ClientName: clientName,
		Phone:      strings.TrimSpace(in.Phone),
		Address:    strings.TrimSpace(in.Address),
		Status:     sale.StatusOpenNoPieces,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.sales.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	return &dto.SaleResponse{
		ID:         s.ID,
		ClientName: s.ClientName,
		Phone:      s.Phone,
		Address:    s.Address,
		Status:     s.Status,
		TotalValue: decimal.Zero,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}, nil
}

// AddPiece reserva stock de la pieza contra la venta, en una sola transacción:
// bloquea la venta, verifica propiedad de la pieza, descuenta stock vía el
// ledger (inventory.Reserve, con bloqueo de fila) y crea o incrementa la línea.
// Si era la primera pieza y la venta estaba en open-no-pieces, avanza a
// open-awaiting-payment. Sobre una venta cerrada la adición se rechaza.
func (uc *UseCase) AddPiece(ctx context.Context, userID, saleID string, in dto.AddPieceRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQty
	}
	if in.PieceID == "" {
		return nil, fmt.Errorf("%w: piece_id es obligatorio", domain.ErrInvalidInput)
	}

	err := uc.txRunner.Run(ctx, func(salesRepo repository.SaleRepository, piecesRepo repository.PieceRepository) error {
		s, err := salesRepo.GetForUpdate(ctx, saleID, userID)
		if err != nil {
			return fmt.Errorf("bloquear venta: %w", err)
		}
		if s == nil {
			return domain.ErrSaleNotFound
		}
		if sale.IsClosed(s.Status) {
			return domain.ErrSaleClosed
		}

		piece, err := piecesRepo.GetByIDAndUser(ctx, in.PieceID, userID)
		if err != nil {
			return fmt.Errorf("consultar pieza: %w", err)
		}
		if piece == nil {
			return domain.ErrPieceNotFound
		}

		if _, err := inventory.Reserve(ctx, piecesRepo, in.PieceID, in.Quantity); err != nil {
			return err
		}

		now := time.Now()
		if err := salesRepo.UpsertLine(ctx, &entity.SalePiece{
			SaleID:    saleID,
			PieceID:   in.PieceID,
			Quantity:  in.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return fmt.Errorf("guardar línea: %w", err)
		}

		if s.Status == sale.StatusOpenNoPieces {
			if err := salesRepo.UpdateStatus(ctx, saleID, sale.StatusOpenAwaitingPayment); err != nil {
				return fmt.Errorf("avanzar estado: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, userID, saleID)
}

// ConfirmPayment confirma el pago de las piezas: open-awaiting-payment →
// calculate-shipping. Requiere al menos una línea.
func (uc *UseCase) ConfirmPayment(ctx context.Context, userID, saleID string) (*dto.SaleResponse, error) {
	err := uc.txRunner.Run(ctx, func(salesRepo repository.SaleRepository, _ repository.PieceRepository) error {
		s, err := salesRepo.GetForUpdate(ctx, saleID, userID)
		if err != nil {
			return fmt.Errorf("bloquear venta: %w", err)
		}
		if s == nil {
			return domain.ErrSaleNotFound
		}
		if sale.IsClosed(s.Status) {
			return domain.ErrSaleClosed
		}
		count, err := salesRepo.CountLines(ctx, saleID)
		if err != nil {
			return fmt.Errorf("contar líneas: %w", err)
		}
		if count == 0 {
			return domain.ErrSaleWithoutPieces
		}
		if !sale.CanTransition(s.Status, sale.StatusCalculateShipping) {
			return domain.ErrInvalidTransition
		}
		return salesRepo.UpdateStatus(ctx, saleID, sale.StatusCalculateShipping)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, userID, saleID)
}

// SetShippingValue registra el costo de envío (valor manual, >= 0). Si la venta
// está en calculate-shipping avanza a shipping-awaiting-payment; en cualquier
// otro estado abierto solo corrige el valor sin mover el estado. Sobre una
// venta cerrada se rechaza: su total ya es definitivo.
func (uc *UseCase) SetShippingValue(ctx context.Context, userID, saleID string, value decimal.Decimal) (*dto.SaleResponse, error) {
	if value.IsNegative() {
		return nil, domain.ErrNegativeValue
	}
	err := uc.txRunner.Run(ctx, func(salesRepo repository.SaleRepository, _ repository.PieceRepository) error {
		s, err := salesRepo.GetForUpdate(ctx, saleID, userID)
		if err != nil {
			return fmt.Errorf("bloquear venta: %w", err)
		}
		if s == nil {
			return domain.ErrSaleNotFound
		}
		if sale.IsClosed(s.Status) {
			return domain.ErrSaleClosed
		}
		if err := salesRepo.SetShippingValue(ctx, saleID, value); err != nil {
			return fmt.Errorf("guardar valor de envío: %w", err)
		}
		if s.Status == sale.StatusCalculateShipping {
			return salesRepo.UpdateStatus(ctx, saleID, sale.StatusShippingAwaitingPayment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, userID, saleID)
}

// ConfirmShippingPayment confirma el pago del envío: exige estado exactamente
// shipping-awaiting-payment y valor de envío ya registrado.
func (uc *UseCase) ConfirmShippingPayment(ctx context.Context, userID, saleID string) (*dto.SaleResponse, error) {
	err := uc.txRunner.Run(ctx, func(salesRepo repository.SaleRepository, _ repository.PieceRepository) error {
		s, err := salesRepo.GetForUpdate(ctx, saleID, userID)
		if err != nil {
			return fmt.Errorf("bloquear venta: %w", err)
		}
		if s == nil {
			return domain.ErrSaleNotFound
		}
		if sale.IsClosed(s.Status) {
			return domain.ErrSaleClosed
		}
		if s.Status != sale.StatusShippingAwaitingPayment {
			return domain.ErrInvalidTransition
		}
		// Guarda contra cualquier camino que llegue aquí sin valor registrado.
		if s.ShippingValue == nil {
			return domain.ErrShippingValueUnset
		}
		return salesRepo.UpdateStatus(ctx, saleID, sale.StatusShippingDatePending)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, userID, saleID)
}

// ConfirmShippingDate fija la fecha de envío y cierra la venta:
// shipping-date-pending → closed.
func (uc *UseCase) ConfirmShippingDate(ctx context.Context, userID, saleID string) (*dto.SaleResponse, error) {
	err := uc.txRunner.Run(ctx, func(salesRepo repository.SaleRepository, _ repository.PieceRepository) error {
		s, err := salesRepo.GetForUpdate(ctx, saleID, userID)
		if err != nil {
			return fmt.Errorf("bloquear venta: %w", err)
		}
		if s == nil {
			return domain.ErrSaleNotFound
		}
		if sale.IsClosed(s.Status) {
			return domain.ErrSaleClosed
		}
		if s.Status != sale.StatusShippingDatePending {
			return domain.ErrInvalidTransition
		}
		return salesRepo.UpdateStatus(ctx, saleID, sale.StatusClosed)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetSale(ctx, userID, saleID)
}

// ListSales pagina las ventas del usuario, más recientes primero, con totales
// derivados. statuses admite varios valores separados por coma.
func (uc *UseCase) ListSales(ctx context.Context, userID string, q dto.ListSalesQuery) (*dto.SaleListResponse, error) {
	q.DefaultPage()
	var statuses []string
	for _, s := range strings.Split(q.Status, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if !sale.IsValid(s) {
			return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, s)
		}
		statuses = append(statuses, s)
	}

	found, total, err := uc.sales.ListByUser(ctx, userID, statuses, q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	out := &dto.SaleListResponse{
		Sales: make([]dto.SaleResponse, 0, len(found)),
		Page:  dto.PageResponse{Limit: q.Limit, Offset: q.Offset, Total: total},
	}
	for _, s := range found {
		out.Sales = append(out.Sales, *toSaleResponse(s, nil))
	}
	return out, nil
}

// GetSale devuelve la venta con líneas y totales, o ErrSaleNotFound si no
// existe o pertenece a otro usuario.
func (uc *UseCase) GetSale(ctx context.Context, userID, saleID string) (*dto.SaleResponse, error) {
	s, err := uc.sales.GetWithTotals(ctx, saleID, userID)
	if err != nil {
		return nil, fmt.Errorf("consultar venta: %w", err)
	}
	if s == nil {
		return nil, domain.ErrSaleNotFound
	}
	lines, err := uc.sales.ListLines(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("listar líneas: %w", err)
	}
	return toSaleResponse(s, lines), nil
}

func toSaleResponse(s *repository.SaleWithTotals, lines []repository.SaleLine) *dto.SaleResponse {
	out := &dto.SaleResponse{
		ID:            s.ID,
		ClientName:    s.ClientName,
		Phone:         s.Phone,
		Address:       s.Address,
		Status:        s.Status,
		ShippingValue: s.ShippingValue,
		TotalPieces:   s.TotalPieces,
		TotalValue:    s.TotalValue,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, dto.SaleLineResponse{
			PieceID:     l.PieceID,
			Description: l.Description,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Subtotal:    l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	return out
}
