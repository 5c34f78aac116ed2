package handlers

import (
	"net/http"

	"github.com/SscSPs/warehouse_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/warehouse_management_app/internal/core/ports/services"
	"github.com/SscSPs/warehouse_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// referenceHandler serves one reference catalogue: resources, units or clients.
type referenceHandler struct {
	kind             domain.ReferenceKind
	referenceService portssvc.ReferenceSvcFacade
}

// registerReferenceRoutes mounts the CRUD routes of kind under path.
func registerReferenceRoutes(rg *gin.RouterGroup, path string, kind domain.ReferenceKind, referenceService portssvc.ReferenceSvcFacade) {
	h := &referenceHandler{kind: kind, referenceService: referenceService}

	refs := rg.Group(path)
	{
		refs.POST("", h.createReference)
		refs.GET("", h.listReferences)
		refs.GET("/:id", h.getReference)
		refs.PUT("/:id", h.updateReference)
		refs.DELETE("/:id", h.deleteReference)
		refs.POST("/:id/archive", h.setState(domain.StateArchived))
		refs.POST("/:id/activate", h.setState(domain.StateActive))
	}
}

// createReference godoc
// @Summary Create a resource, unit or client
// @Tags references
// @Accept  json
// @Produce  json
// @Param   kind path string true "resources, units or clients"
// @Param   reference body dto.ReferenceRequest true "Name and, for clients, address"
// @Success 201 {object} dto.ReferenceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Security BearerAuth
// @Router /{kind} [post]
func (h *referenceHandler) createReference(c *gin.Context) {
	var req dto.ReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ref, err := h.referenceService.CreateReference(c.Request.Context(), h.kind, req, userID)
	if err != nil {
		respondError(c, err, "Failed to create "+string(h.kind))
		return
	}
	c.JSON(http.StatusCreated, dto.ToReferenceResponse(ref))
}

// listReferences godoc
// @Summary List resources, units or clients
// @Tags references
// @Produce  json
// @Param   kind path string true "resources, units or clients"
// @Param   state query string false "ACTIVE or ARCHIVED"
// @Success 200 {object} dto.ListReferencesResponse
// @Security BearerAuth
// @Router /{kind} [get]
func (h *referenceHandler) listReferences(c *gin.Context) {
	var params dto.ListReferencesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	var state *domain.EntityState
	if params.State != "" {
		s := domain.EntityState(params.State)
		state = &s
	}

	refs, err := h.referenceService.ListReferences(c.Request.Context(), h.kind, state)
	if err != nil {
		respondError(c, err, "Failed to list "+string(h.kind)+"s")
		return
	}
	c.JSON(http.StatusOK, dto.ToListReferencesResponse(refs))
}

// getReference godoc
// @Summary Get a resource, unit or client
// @Tags references
// @Produce  json
// @Param   kind path string true "resources, units or clients"
// @Param   id path string true "ID"
// @Success 200 {object} dto.ReferenceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /{kind}/{id} [get]
func (h *referenceHandler) getReference(c *gin.Context) {
	ref, err := h.referenceService.GetReference(c.Request.Context(), h.kind, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToReferenceResponse(ref))
}

// updateReference godoc
// @Summary Rename a resource, unit or client
// @Tags references
// @Accept  json
// @Produce  json
// @Param   kind path string true "resources, units or clients"
// @Param   id path string true "ID"
// @Param   reference body dto.ReferenceRequest true "Name and, for clients, address"
// @Success 200 {object} dto.ReferenceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "Name already exists"
// @Security BearerAuth
// @Router /{kind}/{id} [put]
func (h *referenceHandler) updateReference(c *gin.Context) {
	var req dto.ReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	ref, err := h.referenceService.UpdateReference(c.Request.Context(), h.kind, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update "+string(h.kind))
		return
	}
	c.JSON(http.StatusOK, dto.ToReferenceResponse(ref))
}

// deleteReference godoc
// @Summary Delete an unused resource, unit or client
// @Tags references
// @Param   kind path string true "resources, units or clients"
// @Param   id path string true "ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Not found"
// @Failure 409 {object} ErrorResponse "In use, archive it instead"
// @Security BearerAuth
// @Router /{kind}/{id} [delete]
func (h *referenceHandler) deleteReference(c *gin.Context) {
	if err := h.referenceService.DeleteReference(c.Request.Context(), h.kind, c.Param("id")); err != nil {
		respondError(c, err, "Failed to delete "+string(h.kind))
		return
	}
	c.Status(http.StatusNoContent)
}

// setState godoc
// @Summary Archive or activate a resource, unit or client
// @Tags references
// @Produce  json
// @Param   kind path string true "resources, units or clients"
// @Param   id path string true "ID"
// @Success 200 {object} dto.ReferenceResponse
// @Failure 404 {object} ErrorResponse "Not found"
// @Security BearerAuth
// @Router /{kind}/{id}/archive [post]
// @Router /{kind}/{id}/activate [post]
func (h *referenceHandler) setState(state domain.EntityState) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		ref, err := h.referenceService.SetReferenceState(c.Request.Context(), h.kind, c.Param("id"), state, userID)
		if err != nil {
			respondError(c, err, "Failed to change state of "+string(h.kind))
			return
		}
		c.JSON(http.StatusOK, dto.ToReferenceResponse(ref))
	}
}
