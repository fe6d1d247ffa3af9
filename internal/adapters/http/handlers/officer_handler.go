package handlers

import (
	"errors"

	"memtrack/internal/core/domain"
	"memtrack/internal/core/services"
	"memtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OfficerHandler handles officer administration endpoints (Admin only)
type OfficerHandler struct {
	officerService *services.OfficerService
}

// NewOfficerHandler creates a new officer handler
func NewOfficerHandler(officerService *services.OfficerService) *OfficerHandler {
	return &OfficerHandler{officerService: officerService}
}

// List handles listing all officer accounts
// @Summary List officers
// @Description Get all officer accounts, newest first (Admin only)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /officers [get]
func (h *OfficerHandler) List(c *fiber.Ctx) error {
	officers, err := h.officerService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list officers")
	}

	return response.Success(c, "Officers retrieved successfully", fiber.Map{
		"officers": officers,
	})
}

// Stats handles officer account statistics
// @Summary Officer statistics
// @Description Counts by role plus active/inactive/total (Admin only)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /officers/stats [get]
func (h *OfficerHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.officerService.Stats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get officer statistics")
	}

	return response.Success(c, "Statistics retrieved successfully", stats)
}

// Create handles officer account creation
// @Summary Create officer
// @Description Create a new officer account (Admin only; Admin role not creatable)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateOfficerInput true "Officer data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /officers [post]
func (h *OfficerHandler) Create(c *fiber.Ctx) error {
	var input services.CreateOfficerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	officer, err := h.officerService.Create(c.Context(), &input)
	if err != nil {
		if ve, ok := domain.AsValidationError(err); ok {
			return response.ValidationFailed(c, ve)
		}
		if errors.Is(err, domain.ErrEmailInUse) {
			return response.BadRequest(c, "Email already in use")
		}
		return response.InternalServerError(c, "Failed to create officer")
	}

	return response.Created(c, "Officer account created successfully", fiber.Map{
		"officer": officer,
	})
}

// Update handles officer account updates
// @Summary Update officer
// @Description Update an officer account; Admin accounts are protected (Admin only)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Officer ID"
// @Param body body services.UpdateOfficerInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id} [put]
func (h *OfficerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid officer ID")
	}

	var input services.UpdateOfficerInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	officer, err := h.officerService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOfficerNotFound):
			return response.NotFound(c, "Officer not found")
		case errors.Is(err, domain.ErrAdminProtected):
			return response.Forbidden(c, "Cannot edit Admin account through this route")
		case errors.Is(err, domain.ErrEmailInUse):
			return response.BadRequest(c, "Email already in use")
		default:
			if ve, ok := domain.AsValidationError(err); ok {
				return response.ValidationFailed(c, ve)
			}
			return response.InternalServerError(c, "Failed to update officer")
		}
	}

	return response.Success(c, "Officer updated successfully", fiber.Map{
		"officer": officer,
	})
}

// ResetPasswordRequest represents password reset request body
type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPassword handles officer password resets
// @Summary Reset officer password
// @Description Reset an officer's password; Admin accounts are protected (Admin only)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Officer ID"
// @Param body body ResetPasswordRequest true "New password"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id}/password [put]
func (h *OfficerHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid officer ID")
	}

	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.officerService.ResetPassword(c.Context(), id, req.Password); err != nil {
		switch {
		case errors.Is(err, domain.ErrOfficerNotFound):
			return response.NotFound(c, "Officer not found")
		case errors.Is(err, domain.ErrAdminProtected):
			return response.Forbidden(c, "Cannot reset Admin password through this route")
		default:
			if ve, ok := domain.AsValidationError(err); ok {
				return response.ValidationFailed(c, ve)
			}
			return response.InternalServerError(c, "Failed to reset password")
		}
	}

	return response.Success(c, "Password reset successfully", nil)
}

// Delete handles officer account deletion
// @Summary Delete officer
// @Description Permanently delete an officer account; Admin accounts are protected (Admin only)
// @Tags Officers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Officer ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /officers/{id} [delete]
func (h *OfficerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid officer ID")
	}

	if err := h.officerService.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrOfficerNotFound):
			return response.NotFound(c, "Officer not found")
		case errors.Is(err, domain.ErrAdminProtected):
			return response.Forbidden(c, "Cannot delete Admin account")
		default:
			return response.InternalServerError(c, "Failed to delete officer")
		}
	}

	return response.Success(c, "Officer account deleted successfully", nil)
}
