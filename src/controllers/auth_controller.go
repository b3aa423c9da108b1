package controllers

import (
	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/middleware"
	"Backend-Yeoun-Survey/src/services/auth"
	"Backend-Yeoun-Survey/src/utils"
)

type AuthController struct {
	svc         *auth.Service
	allowDirect bool
}

// NewAuthController allowDirect enables the exchange-only endpoint, which is
// off in production.
func NewAuthController(svc *auth.Service, allowDirect bool) *AuthController {
	return &AuthController{svc: svc, allowDirect: allowDirect}
}

type KakaoCodeRequest struct {
	AuthorizationCode string `json:"authorizationCode" validate:"required"`
	RedirectURI       string `json:"redirectUri" validate:"omitempty,url"`
	State             string `json:"state"`
}

// KakaoLogin godoc
// @Summary      Get the Kakao authorize URL
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/kakao/login [get]
func (h *AuthController) KakaoLogin(c *fiber.Ctx) error {
	url, state, err := h.svc.AuthorizeURL(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"url": url, "state": state})
}

// KakaoCallback godoc
// @Summary      Exchange a Kakao authorization code and sign in
// @Description  Requires the state issued by /auth/kakao/login. Creates the user on first login and returns a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body controllers.KakaoCodeRequest true "Authorization code"
// @Success      200  {object}  auth.LoginResult
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      502  {object}  models.ErrorResponse
// @Router       /auth/kakao/callback [post]
func (h *AuthController) KakaoCallback(c *fiber.Ctx) error {
	req, ok, err := parseCodeRequest(c)
	if !ok {
		return err
	}

	result, err := h.svc.Login(c.UserContext(), req.AuthorizationCode, req.State, req.RedirectURI)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"user":        result.User,
		"customToken": result.CustomToken,
		"expiresAt":   result.ExpiresAt,
		"isNewUser":   result.IsNewUser,
	})
}

// KakaoDirect godoc
// @Summary      Exchange a Kakao authorization code without signing in
// @Description  Development only; returns the provider profile and stores nothing
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body controllers.KakaoCodeRequest true "Authorization code"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /auth/kakao/direct [post]
func (h *AuthController) KakaoDirect(c *fiber.Ctx) error {
	if !h.allowDirect {
		return fiber.ErrNotFound
	}
	req, ok, err := parseCodeRequest(c)
	if !ok {
		return err
	}

	user, err := h.svc.ExchangeCode(c.UserContext(), req.AuthorizationCode, req.RedirectURI)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "user": user})
}

// Me godoc
// @Summary      Restore the signed-in user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/me [get]
func (h *AuthController) Me(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	user, err := h.svc.Me(c.UserContext(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Logout godoc
// @Summary      Sign out and revoke the token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /auth/logout [post]
func (h *AuthController) Logout(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	claims, _ := middleware.ClaimsFrom(c)
	if err := h.svc.Logout(c.UserContext(), sess.Token, claims); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseCodeRequest(c *fiber.Ctx) (*KakaoCodeRequest, bool, error) {
	var req KakaoCodeRequest
	if err := c.BodyParser(&req); err != nil || req.AuthorizationCode == "" {
		return nil, false, utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgAuthMissingCode)
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return nil, false, utils.HandleValidationError(c, err)
	}
	return &req, true, nil
}
