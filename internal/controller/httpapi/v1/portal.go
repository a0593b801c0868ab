package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studentportal/portal/internal/entity"
	"github.com/studentportal/portal/internal/entity/dto/v1"
	"github.com/studentportal/portal/internal/usecase/portal"
	"github.com/studentportal/portal/pkg/logger"
)

type portalRoutes struct {
	p portal.Feature
	l logger.Interface
}

// NewPortalRoutes -.
func NewPortalRoutes(handler *gin.RouterGroup, p portal.Feature, l logger.Interface) {
	r := &portalRoutes{p, l}

	handler.GET("/notes", r.getNotes)
	handler.GET("/groups", r.getGroups)
	handler.GET("/enrollment", r.getEnrollment)
	handler.GET("/profile/image", r.getProfileImage)
	handler.GET("/institution/logo", r.getLogo)
	handler.POST("/refresh", r.refresh)
}

func (r *portalRoutes) fail(c *gin.Context, id entity.Identity, scope string, err error) {
	if errors.Is(err, context.Canceled) {
		r.l.Debug("client went away", "scope", scope, "user", id.UserID)
	} else {
		r.l.Error(err, "scope", scope, "user", id.UserID, "token", id.RedactedToken())
	}

	ErrorResponse(c, err)
}

func (r *portalRoutes) getNotes(c *gin.Context) {
	id := IdentityFromRequest(c)

	notes, err := r.p.GetExamNotes(c.Request.Context(), id)
	if err != nil {
		r.fail(c, id, "http - v1 - getNotes", err)

		return
	}

	c.JSON(http.StatusOK, notes)
}

func (r *portalRoutes) getGroups(c *gin.Context) {
	id := IdentityFromRequest(c)

	groups, err := r.p.GetGroups(c.Request.Context(), id)
	if err != nil {
		r.fail(c, id, "http - v1 - getGroups", err)

		return
	}

	c.JSON(http.StatusOK, groups)
}

func (r *portalRoutes) getEnrollment(c *gin.Context) {
	id := IdentityFromRequest(c)

	dia, err := r.p.GetEnrollment(c.Request.Context(), id)
	if err != nil {
		r.fail(c, id, "http - v1 - getEnrollment", err)

		return
	}

	c.JSON(http.StatusOK, dia)
}

func (r *portalRoutes) getProfileImage(c *gin.Context) {
	id := IdentityFromRequest(c)

	img, err := r.p.GetProfileImage(c.Request.Context(), id)
	if err != nil {
		r.fail(c, id, "http - v1 - getProfileImage", err)

		return
	}

	writeBinary(c, img)
}

func (r *portalRoutes) getLogo(c *gin.Context) {
	id := IdentityFromRequest(c)

	logo, err := r.p.GetLogo(c.Request.Context(), id)
	if err != nil {
		r.fail(c, id, "http - v1 - getLogo", err)

		return
	}

	writeBinary(c, logo)
}

func (r *portalRoutes) refresh(c *gin.Context) {
	id := IdentityFromRequest(c)

	if err := r.p.Invalidate(c.Request.Context(), id); err != nil {
		r.fail(c, id, "http - v1 - refresh", err)

		return
	}

	c.Status(http.StatusNoContent)
}

func writeBinary(c *gin.Context, b dto.Binary) {
	c.Header("Cache-Control", "private")
	c.Data(http.StatusOK, b.ContentType, b.Data)
}
