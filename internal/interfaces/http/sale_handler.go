package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/sales"
)

// SaleHandler maneja el ciclo de vida de las ventas.
type SaleHandler struct {
	uc      *sales.UseCase
	receipt *sales.ReceiptUseCase
}

// NewSaleHandler construye el handler de ventas.
func NewSaleHandler(uc *sales.UseCase, receipt *sales.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, receipt: receipt}
}

// Create godoc
// @Summary      Abrir una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateSaleRequest  true  "client_name, phone, address"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.CreateSale(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// List godoc
// @Summary      Listar ventas del usuario
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "estados separados por coma"
// @Param        limit   query  int     false  "tamaño de página (máx 100)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.SaleListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	var q dto.ListSalesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.ListSales(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de una venta con sus líneas
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.GetSale(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// AddPiece godoc
// @Summary      Agregar una pieza a la venta, reservando stock
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "id de la venta"
// @Param        body  body  dto.AddPieceRequest   true  "piece_id, quantity"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/pieces [post]
func (h *SaleHandler) AddPiece(c *fiber.Ctx) error {
	var in dto.AddPieceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.AddPiece(c.UserContext(), GetUserID(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// ConfirmPayment godoc
// @Summary      Confirmar el pago de las piezas
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/confirm-payment [post]
func (h *SaleHandler) ConfirmPayment(c *fiber.Ctx) error {
	sale, err := h.uc.ConfirmPayment(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// SetShippingValue godoc
// @Summary      Registrar el costo de envío
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                       true  "id de la venta"
// @Param        body  body  dto.SetShippingValueRequest  true  "shipping_value >= 0"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/shipping-value [put]
func (h *SaleHandler) SetShippingValue(c *fiber.Ctx) error {
	var in dto.SetShippingValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	sale, err := h.uc.SetShippingValue(c.UserContext(), GetUserID(c), c.Params("id"), in.ShippingValue)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// ConfirmShippingPayment godoc
// @Summary      Confirmar el pago del envío
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/confirm-shipping-payment [post]
func (h *SaleHandler) ConfirmShippingPayment(c *fiber.Ctx) error {
	sale, err := h.uc.ConfirmShippingPayment(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// ConfirmShippingDate godoc
// @Summary      Confirmar la fecha de envío y cerrar la venta
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/confirm-shipping-date [post]
func (h *SaleHandler) ConfirmShippingDate(c *fiber.Ctx) error {
	sale, err := h.uc.ConfirmShippingDate(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sale)
}

// Receipt godoc
// @Summary      Descargar el recibo de la venta en PDF
// @Tags         sales
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	pdfBytes, err := h.receipt.Generate(c.UserContext(), GetUserID(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="recibo-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}
