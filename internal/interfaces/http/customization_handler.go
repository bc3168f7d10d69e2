package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gitcsdev/drcoffee-api/internal/application/dto"
	"github.com/gitcsdev/drcoffee-api/internal/application/usecase"
	"github.com/gitcsdev/drcoffee-api/internal/domain"
)

// CustomizationHandler maneja las peticiones HTTP para opciones de
// personalización. El listado es público (el cliente arma su bebida);
// las mutaciones viven bajo el grupo admin.
type CustomizationHandler struct {
	uc *usecase.CustomizationUseCase
}

// NewCustomizationHandler construye el handler.
func NewCustomizationHandler(uc *usecase.CustomizationUseCase) *CustomizationHandler {
	return &CustomizationHandler{uc: uc}
}

// ListActive godoc
// @Summary      Listar opciones de personalización activas (público)
// @Tags         customization-options
// @Produce      json
// @Success      200  {array}  dto.CustomizationOptionResponse
// @Router       /api/customization-options [get]
func (h *CustomizationHandler) ListActive(c *fiber.Ctx) error {
	out, err := h.uc.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar todas las opciones de personalización
// @Tags         customization-options
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CustomizationOptionResponse
// @Router       /api/admin/customization-options [get]
func (h *CustomizationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear opción de personalización
// @Tags         customization-options
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomizationOptionRequest  true  "Datos de la opción"
// @Success      201   {object}  dto.CustomizationOptionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/customization-options [post]
func (h *CustomizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomizationOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return customizationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener opción por ID
// @Tags         customization-options
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la opción"
// @Success      200  {object}  dto.CustomizationOptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/customization-options/{id} [get]
func (h *CustomizationHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "opción no encontrada"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar opción de personalización
// @Tags         customization-options
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                                   true  "ID de la opción"
// @Param        body  body  dto.UpdateCustomizationOptionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CustomizationOptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/customization-options/{id} [put]
func (h *CustomizationHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateCustomizationOptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(int64(id), in)
	if err != nil {
		return customizationError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "opción no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar opción de personalización (borrado físico)
// @Tags         customization-options
// @Security     Bearer
// @Param        id  path  int  true  "ID de la opción"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/customization-options/{id} [delete]
func (h *CustomizationHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(int64(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "opción no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func customizationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe una opción con ese código"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
