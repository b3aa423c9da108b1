package controllers

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/middleware"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/submission"
	"Backend-Yeoun-Survey/src/services/survey"
	"Backend-Yeoun-Survey/src/utils"
)

type SurveyController struct {
	wizard      *survey.Service
	submissions *submission.Service
}

func NewSurveyController(wizard *survey.Service, submissions *submission.Service) *SurveyController {
	return &SurveyController{wizard: wizard, submissions: submissions}
}

// --------- Input DTOs ---------

type PositionsRequest struct {
	Positions []string `json:"positions" validate:"dive,mainposition"`
}

type SongsRequest struct {
	SongIDs []int `json:"songIds" validate:"dive,gt=0"`
}

type SongDetailRequest struct {
	SelectedPositions *[]string `json:"selectedPositions" validate:"omitempty,dive,detailedposition"`
	CompletionScore   *int      `json:"completionScore" validate:"omitempty,min=0,max=10"`
	ClearScore        bool      `json:"clearScore"`
	Opinion           *string   `json:"opinion" validate:"omitempty,max=2000"`
}

// CheckCompletion godoc
// @Summary      Check whether a user has submitted the survey
// @Description  Returns only the name and submission time, never the answers
// @Tags         survey
// @Produce      json
// @Param        userId  query  string  true  "User ID"
// @Success      200  {object}  models.CompletionStatus
// @Failure      400  {object}  models.ErrorResponse
// @Router       /survey/check [get]
func (h *SurveyController) CheckCompletion(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgInvalidInput)
	}
	status, err := h.submissions.Completion(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(status)
}

// GetState godoc
// @Summary      Current wizard step for the caller
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Router       /survey/state [get]
func (h *SurveyController) GetState(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	view, err := h.wizard.State(c.UserContext(), sess)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// Advance godoc
// @Summary      Move to the next step
// @Description  Blocked with 400 until the current step has its minimum input
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /survey/advance [post]
func (h *SurveyController) Advance(c *fiber.Ctx) error {
	return h.transition(c, h.wizard.Advance)
}

// Retreat godoc
// @Summary      Move to the previous step
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Router       /survey/retreat [post]
func (h *SurveyController) Retreat(c *fiber.Ctx) error {
	return h.transition(c, h.wizard.Retreat)
}

// NextSong godoc
// @Summary      Move to the next participating song
// @Description  On the last song answers 409; the client must submit instead
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /survey/songs/next [post]
func (h *SurveyController) NextSong(c *fiber.Ctx) error {
	return h.transition(c, h.wizard.NextSong)
}

// PrevSong godoc
// @Summary      Move to the previous participating song
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Router       /survey/songs/prev [post]
func (h *SurveyController) PrevSong(c *fiber.Ctx) error {
	return h.transition(c, h.wizard.PrevSong)
}

// SetPositions godoc
// @Summary      Replace the caller's main positions
// @Tags         survey
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body controllers.PositionsRequest true "Main positions"
// @Success      200  {object}  survey.View
// @Failure      400  {object}  models.ErrorResponse
// @Router       /survey/positions [put]
func (h *SurveyController) SetPositions(c *fiber.Ctx) error {
	var req PositionsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	sess, _ := middleware.SessionFrom(c)
	return h.respondView(c)(h.wizard.SetPositions(c.UserContext(), sess, req.Positions))
}

// SetSongs godoc
// @Summary      Replace the caller's participating songs
// @Tags         survey
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body controllers.SongsRequest true "Song ids in selection order"
// @Success      200  {object}  survey.View
// @Failure      400  {object}  models.ErrorResponse
// @Router       /survey/songs [put]
func (h *SurveyController) SetSongs(c *fiber.Ctx) error {
	var req SongsRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}
	sess, _ := middleware.SessionFrom(c)
	return h.respondView(c)(h.wizard.SetSongs(c.UserContext(), sess, req.SongIDs))
}

// UpdateSongDetail godoc
// @Summary      Merge answers for one song
// @Description  Only the fields present in the body are changed
// @Tags         survey
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        songId  path  int  true  "Song ID"
// @Param        body body controllers.SongDetailRequest true "Partial song detail"
// @Success      200  {object}  survey.View
// @Failure      400  {object}  models.ErrorResponse
// @Router       /survey/songs/{songId} [patch]
func (h *SurveyController) UpdateSongDetail(c *fiber.Ctx) error {
	songID, err := strconv.Atoi(c.Params("songId"))
	if err != nil || songID <= 0 {
		return utils.HandleLocalizedError(c, fiber.StatusBadRequest, i18n.MsgUnknownSong)
	}
	var req SongDetailRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	patch := survey.DetailPatch{
		SelectedPositions: req.SelectedPositions,
		CompletionScore:   req.CompletionScore,
		ClearScore:        req.ClearScore,
		Opinion:           req.Opinion,
	}
	sess, _ := middleware.SessionFrom(c)
	return h.respondView(c)(h.wizard.SetSongDetail(c.UserContext(), sess, songID, patch))
}

// Submit godoc
// @Summary      Submit the survey
// @Description  Writes one response per user; the wizard completes only after the write succeeds
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      403  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Failure      504  {object}  models.ErrorResponse
// @Router       /survey/submit [post]
func (h *SurveyController) Submit(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	resp, view, err := h.wizard.Submit(c.UserContext(), sess)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"response": resp,
		"state":    view,
	})
}

// GetResponse godoc
// @Summary      The caller's stored response
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SurveyResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /survey/response [get]
func (h *SurveyController) GetResponse(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	resp, err := h.submissions.Response(c.UserContext(), sess.UserID)
	if err != nil {
		return respondError(c, err)
	}
	if resp == nil {
		return utils.HandleLocalizedError(c, fiber.StatusNotFound, i18n.MsgResponseNotFound)
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary      Discard the caller's draft
// @Tags         survey
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  survey.View
// @Router       /survey/reset [post]
func (h *SurveyController) Reset(c *fiber.Ctx) error {
	sess, _ := middleware.SessionFrom(c)
	return h.respondView(c)(h.wizard.Reset(c.UserContext(), sess))
}

func (h *SurveyController) transition(c *fiber.Ctx, op func(ctx context.Context, sess models.Session) (*survey.View, error)) error {
	sess, _ := middleware.SessionFrom(c)
	return h.respondView(c)(op(c.UserContext(), sess))
}

func (h *SurveyController) respondView(c *fiber.Ctx) func(*survey.View, error) error {
	return func(view *survey.View, err error) error {
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(view)
	}
}
