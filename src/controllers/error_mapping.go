package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/auth"
	"Backend-Yeoun-Survey/src/services/submission"
	"Backend-Yeoun-Survey/src/services/survey"
	"Backend-Yeoun-Survey/src/services/users"
	"Backend-Yeoun-Survey/src/utils"
)

var persistStatus = map[submission.FailureKind]int{
	submission.KindPermission:  fiber.StatusForbidden,
	submission.KindUnavailable: fiber.StatusServiceUnavailable,
	submission.KindTimeout:     fiber.StatusGatewayTimeout,
	submission.KindOther:       fiber.StatusInternalServerError,
}

var authStatus = map[auth.FailureKind]int{
	auth.KindMissingCode:    fiber.StatusBadRequest,
	auth.KindExpiredCode:    fiber.StatusBadRequest,
	auth.KindMisconfigured:  fiber.StatusInternalServerError,
	auth.KindRedirect:       fiber.StatusBadRequest,
	auth.KindUpstream:       fiber.StatusBadGateway,
	auth.KindInvalidProfile: fiber.StatusBadRequest,
	auth.KindDuplicateCode:  fiber.StatusConflict,
	auth.KindInvalidState:   fiber.StatusBadRequest,
}

// respondError maps service errors onto status codes and localized messages.
func respondError(c *fiber.Ctx, err error) error {
	var (
		ve *models.ValidationError
		pe *submission.PersistenceError
		ae *auth.AuthError
	)
	switch {
	case errors.As(err, &ve):
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, ve.Key)
	case errors.Is(err, survey.ErrCompleted), errors.Is(err, submission.ErrAlreadyCompleted):
		return utils.HandleLocalizedError(c, fiber.StatusConflict, i18n.MsgAlreadyCompleted)
	case errors.Is(err, survey.ErrSubmitRequired):
		return utils.HandleLocalizedError(c, fiber.StatusConflict, i18n.MsgSubmitRequired)
	case errors.Is(err, survey.ErrWrongStep):
		return utils.HandleLocalizedError(c, fiber.StatusConflict, i18n.MsgWrongStep)
	case errors.As(err, &pe):
		return utils.HandleLocalizedError(c, persistStatus[pe.Kind], pe.MessageKey())
	case errors.As(err, &ae):
		status, ok := authStatus[ae.Kind]
		if !ok {
			status = fiber.StatusBadGateway
		}
		return utils.HandleLocalizedError(c, status, ae.MessageKey())
	case errors.Is(err, users.ErrAdminIDRequired):
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgAdminIDRequired)
	case errors.Is(err, users.ErrNotAdmin):
		return utils.HandleLocalizedError(c, fiber.StatusForbidden, i18n.MsgAdminRequired)
	case errors.Is(err, users.ErrTargetRequired):
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgTargetRequired)
	case errors.Is(err, users.ErrTargetNotFound):
		return utils.HandleLocalizedError(c, fiber.StatusNotFound, i18n.MsgTargetNotFound)
	case errors.Is(err, users.ErrUserNotFound):
		return utils.HandleLocalizedError(c, fiber.StatusNotFound, i18n.MsgAuthRequired)
	default:
		log.Printf("❌ %s %s: %v", c.Method(), c.Path(), err)
		return utils.HandleLocalizedError(c, fiber.StatusInternalServerError, i18n.MsgInternal)
	}
}

// parseBody decodes and validates the request body into dst. When it
// returns false the error response has already been written.
func parseBody(c *fiber.Ctx, dst interface{}) (bool, error) {
	if err := c.BodyParser(dst); err != nil {
		return false, utils.HandleError(c, fiber.StatusBadRequest, utils.Localize(c, i18n.MsgInvalidInput)+": "+err.Error())
	}
	if err := utils.Validate.Struct(dst); err != nil {
		return false, utils.HandleValidationError(c, err)
	}
	return true, nil
}
