package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/inventory"
)

// InventoryHandler maneja piezas y el árbol de categorías.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// CreatePiece godoc
// @Summary      Archivar una pieza bajo una ruta de categorías
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePieceRequest  true  "category_path, description, quantity, price"
// @Success      201   {object}  dto.PieceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/pieces [post]
func (h *InventoryHandler) CreatePiece(c *fiber.Ctx) error {
	var in dto.CreatePieceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	piece, err := h.uc.CreatePiece(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(piece)
}

// ListPieces godoc
// @Summary      Listar piezas del usuario con filtros
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        category_id     query  string  false  "filtrar por categoría"
// @Param        subcategory_id  query  string  false  "filtrar por subcategoría"
// @Param        gender_id       query  string  false  "filtrar por género"
// @Param        search          query  string  false  "búsqueda en descripción (ignora acentos)"
// @Success      200  {array}  dto.PieceResponse
// @Router       /api/inventory/pieces [get]
func (h *InventoryHandler) ListPieces(c *fiber.Ctx) error {
	var q dto.FilterPiecesQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	pieces, err := h.uc.ListPieces(c.UserContext(), GetUserID(c), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pieces)
}

// SetQuantity godoc
// @Summary      Ajustar la cantidad de una pieza
// @Tags         inventory
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id de la pieza"
// @Param        body  body  dto.SetQuantityRequest   true  "quantity >= 0"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/pieces/{id}/quantity [put]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetQuantity(c.UserContext(), GetUserID(c), c.Params("id"), in.Quantity); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SetPrice godoc
// @Summary      Actualizar el precio de una pieza
// @Tags         inventory
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string               true  "id de la pieza"
// @Param        body  body  dto.SetPriceRequest  true  "price >= 0"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/pieces/{id}/price [put]
func (h *InventoryHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetPrice(c.UserContext(), GetUserID(c), c.Params("id"), in.Price); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePiece godoc
// @Summary      Eliminar una pieza
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la pieza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/pieces/{id} [delete]
func (h *InventoryHandler) DeletePiece(c *fiber.Ctx) error {
	if err := h.uc.DeletePiece(c.UserContext(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CategoryTree godoc
// @Summary      Árbol de categorías con las piezas del usuario en las hojas
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.TreeNode
// @Router       /api/inventory/tree [get]
func (h *InventoryHandler) CategoryTree(c *fiber.Ctx) error {
	tree, err := h.uc.CategoryTree(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tree)
}
