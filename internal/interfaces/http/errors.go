package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
)

// codeFor traduce un error de dominio a su código de API.
func codeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return "EMAIL_EXISTS"
	case errors.Is(err, domain.ErrInvalidTransition):
		return "INVALID_TRANSITION"
	case errors.Is(err, domain.ErrSaleClosed):
		return "SALE_CLOSED"
	case errors.Is(err, domain.ErrSaleWithoutPieces):
		return "SALE_WITHOUT_PIECES"
	case errors.Is(err, domain.ErrShippingValueUnset):
		return "SHIPPING_VALUE_UNSET"
	case errors.Is(err, domain.ErrPieceInUse):
		return "PIECE_IN_USE"
	case errors.Is(err, domain.ErrWeakPassword):
		return "WEAK_PASSWORD"
	case domain.IsValidation(err):
		return "VALIDATION"
	case domain.IsNotFound(err):
		return "NOT_FOUND"
	case domain.IsConflict(err):
		return "CONFLICT"
	default:
		return "INTERNAL"
	}
}

// respondError mapea las familias de error del dominio a códigos HTTP:
// validación 400, no encontrado 404, conflicto 409, resto 500. El detalle de
// errores internos no se expone al cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: codeFor(err), Message: err.Error()})
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: codeFor(err), Message: err.Error()})
	case domain.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: codeFor(err), Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}
