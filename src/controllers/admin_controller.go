package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/middleware"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/admin"
	"Backend-Yeoun-Survey/src/services/auth"
	"Backend-Yeoun-Survey/src/services/users"
	"Backend-Yeoun-Survey/src/utils"
)

// UserPage is the admin user list; stats always cover every user.
type UserPage struct {
	models.PaginatedResponse
	Stats models.UserStats `json:"stats"`
}

type AdminController struct {
	reports *admin.Service
	users   *users.Service
	auth    *auth.Service
}

func NewAdminController(reports *admin.Service, users *users.Service, auth *auth.Service) *AdminController {
	return &AdminController{reports: reports, users: users, auth: auth}
}

// ListResponses godoc
// @Summary      All survey responses, newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/responses [get]
func (h *AdminController) ListResponses(c *fiber.Ctx) error {
	var q models.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	responses, err := h.reports.Responses(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(models.Paginate(responses, q))
}

// SongStats godoc
// @Summary      Per-song participants, positions and average score
// @Description  Served from the cache; pass refresh=true to recompute
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        refresh  query  bool  false  "Recompute instead of using the cache"
// @Success      200  {object}  models.AdminReport
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/songs/stats [get]
func (h *AdminController) SongStats(c *fiber.Ctx) error {
	get := h.reports.Report
	if c.QueryBool("refresh") {
		get = h.reports.Refresh
	}
	report, err := get(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

// ListUsers godoc
// @Summary      All users, admins first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Items per page"
// @Success      200  {object}  controllers.UserPage
// @Failure      403  {object}  models.ErrorResponse
// @Router       /admin/users [get]
func (h *AdminController) ListUsers(c *fiber.Ctx) error {
	var q models.PageQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	list, stats, err := h.users.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(UserPage{PaginatedResponse: models.Paginate(list, q), Stats: stats})
}

// PromoteUser godoc
// @Summary      Grant admin to a user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body users.PromoteRequest true "Target and admin ids"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /admin/promote [post]
func (h *AdminController) PromoteUser(c *fiber.Ctx) error {
	var req users.PromoteRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	sess, _ := middleware.SessionFrom(c)

	user, err := h.users.Promote(c.UserContext(), sess.UserID, req)
	if err != nil {
		return respondError(c, err)
	}
	h.auth.InvalidateSession(c.UserContext(), user.ID)

	return c.JSON(fiber.Map{
		"success": true,
		"message": utils.Localize(c, i18n.MsgPromoted),
		"user": fiber.Map{
			"id":      user.ID,
			"name":    user.Name,
			"isAdmin": user.IsAdmin,
		},
	})
}
