package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-Yeoun-Survey/src/i18n"
	"Backend-Yeoun-Survey/src/models"
	"Backend-Yeoun-Survey/src/services/admin"
	"Backend-Yeoun-Survey/src/services/auth"
	"Backend-Yeoun-Survey/src/services/submission"
	"Backend-Yeoun-Survey/src/services/survey"
	"Backend-Yeoun-Survey/src/services/users"
	"Backend-Yeoun-Survey/src/utils"
)

type memStore struct {
	mu   sync.Mutex
	docs map[string]models.SurveyResponse
}

func (m *memStore) Exists(_ context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.docs[userID]
	return ok, nil
}

func (m *memStore) Get(_ context.Context, userID string) (*models.SurveyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[userID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (m *memStore) Put(_ context.Context, resp *models.SurveyResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[resp.UserID] = *resp
	return nil
}

func (m *memStore) List(context.Context) ([]models.SurveyResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.SurveyResponse, 0, len(m.docs))
	for _, d := range m.docs {
		out = append(out, d)
	}
	return out, nil
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestCatalogEndpoints(t *testing.T) {
	app := fiber.New()
	app.Get("/songs", GetSongs)
	app.Get("/positions", GetPositions)

	req := httptest.NewRequest(http.MethodGet, "/songs", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var songs []models.Song
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&songs))
	assert.Len(t, songs, 18)
	assert.Equal(t, 1, songs[0].ID)

	status, body := doRequest(t, app, http.MethodGet, "/positions?main="+url.QueryEscape("기타"), "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body["available"], "기타 리드")
	assert.NotContains(t, body["available"], "기타")
}

func TestCalendarEndpoints(t *testing.T) {
	app := fiber.New()
	app.Get("/calendar/events", GetCalendarEvents)
	app.Get("/calendar/month", GetCalendarMonth)
	app.Get("/calendar/today", GetCalendarToday)

	req := httptest.NewRequest(http.MethodGet, "/calendar/events?year=2024&month=12", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	var events []models.CalendarEvent
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
	assert.Len(t, events, 4)

	req = httptest.NewRequest(http.MethodGet, "/calendar/today?date=2024-12-20", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	events = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&events))
	require.Len(t, events, 1)
	assert.Equal(t, "2", events[0].ID)

	status, _ := doRequest(t, app, http.MethodGet, "/calendar/month?year=2024&month=12", "")
	assert.Equal(t, fiber.StatusOK, status)

	status, body := doRequest(t, app, http.MethodGet, "/calendar/month?year=2024&month=13", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, i18n.MsgInvalidInput, body["code"])

	status, _ = doRequest(t, app, http.MethodGet, "/calendar/today?date=20-12-2024", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestKakaoEndpointsWithoutService(t *testing.T) {
	app := fiber.New()
	h := NewAuthController(nil, false)
	app.Post("/auth/kakao/direct", h.KakaoDirect)
	app.Post("/auth/kakao/callback", h.KakaoCallback)

	status, _ := doRequest(t, app, http.MethodPost, "/auth/kakao/direct", `{"authorizationCode":"abc"}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body := doRequest(t, app, http.MethodPost, "/auth/kakao/callback", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, i18n.MsgAuthMissingCode, body["code"])

	status, body = doRequest(t, app, http.MethodPost, "/auth/kakao/callback", `{"authorizationCode":"abc","redirectUri":"not a url"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["details"], "redirectUri")
}

func TestRespondErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", models.NewValidationError("positions", i18n.MsgNeedPosition), fiber.StatusBadRequest, i18n.MsgNeedPosition},
		{"completed", survey.ErrCompleted, fiber.StatusConflict, i18n.MsgAlreadyCompleted},
		{"already stored", submission.ErrAlreadyCompleted, fiber.StatusConflict, i18n.MsgAlreadyCompleted},
		{"last song", survey.ErrSubmitRequired, fiber.StatusConflict, i18n.MsgSubmitRequired},
		{"permission", &submission.PersistenceError{Kind: submission.KindPermission, Err: errors.New("denied")}, fiber.StatusForbidden, i18n.MsgPersistPermission},
		{"unavailable", &submission.PersistenceError{Kind: submission.KindUnavailable, Err: errors.New("down")}, fiber.StatusServiceUnavailable, i18n.MsgPersistUnavailable},
		{"timeout", &submission.PersistenceError{Kind: submission.KindTimeout, Err: context.DeadlineExceeded}, fiber.StatusGatewayTimeout, i18n.MsgPersistTimeout},
		{"reused code", auth.ErrDuplicateCode, fiber.StatusConflict, i18n.MsgAuthDuplicateCode},
		{"not admin", users.ErrNotAdmin, fiber.StatusForbidden, i18n.MsgAdminRequired},
		{"no target", users.ErrTargetNotFound, fiber.StatusNotFound, i18n.MsgTargetNotFound},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, i18n.MsgInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return respondError(c, tc.err) })

			status, body := doRequest(t, app, http.MethodGet, "/", "")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, body["code"])
		})
	}
}

func newSurveyApp(store submission.Store) *fiber.App {
	subs := submission.NewService(store, submission.NewMemoryMirror())
	h := NewSurveyController(survey.NewService(survey.NewMemoryDraftStore(), subs, subs), subs)

	app := fiber.New()
	app.Get("/survey/check", h.CheckCompletion)
	authed := app.Group("/survey", func(c *fiber.Ctx) error {
		c.Locals("session", models.Session{UserID: "kakao_7", Name: "민지"})
		return c.Next()
	})
	authed.Get("/state", h.GetState)
	authed.Post("/advance", h.Advance)
	authed.Put("/positions", h.SetPositions)
	authed.Put("/songs", h.SetSongs)
	authed.Patch("/songs/:songId", h.UpdateSongDetail)
	authed.Post("/submit", h.Submit)
	authed.Get("/response", h.GetResponse)
	return app
}

func TestSurveyFlowOverHTTP(t *testing.T) {
	store := &memStore{docs: map[string]models.SurveyResponse{}}
	app := newSurveyApp(store)

	status, body := doRequest(t, app, http.MethodPost, "/survey/advance", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "positions", body["step"])

	status, body = doRequest(t, app, http.MethodPost, "/survey/advance", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, i18n.MsgNeedPosition, body["code"])

	status, _ = doRequest(t, app, http.MethodPut, "/survey/positions", `{"positions":["피아노"]}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPut, "/survey/positions", `{"positions":["보컬"]}`)
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doRequest(t, app, http.MethodPost, "/survey/advance", "")
	require.Equal(t, fiber.StatusOK, status)
	status, _ = doRequest(t, app, http.MethodPut, "/survey/songs", `{"songIds":[3]}`)
	require.Equal(t, fiber.StatusOK, status)
	status, body = doRequest(t, app, http.MethodPost, "/survey/advance", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "details", body["step"])

	status, _ = doRequest(t, app, http.MethodPatch, "/survey/songs/3", `{"selectedPositions":["보컬"],"completionScore":11}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = doRequest(t, app, http.MethodPatch, "/survey/songs/3", `{"selectedPositions":["보컬"],"completionScore":9,"opinion":"좋았어요"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["isLastSong"])

	status, body = doRequest(t, app, http.MethodPost, "/survey/submit", "")
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "complete", body["state"].(map[string]interface{})["step"])

	status, body = doRequest(t, app, http.MethodPost, "/survey/submit", "")
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, i18n.MsgAlreadyCompleted, body["code"])

	status, body = doRequest(t, app, http.MethodGet, "/survey/check?userId=kakao_7", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["isCompleted"])
	meta := body["responseData"].(map[string]interface{})
	assert.Equal(t, "민지", meta["userName"])
	assert.NotContains(t, meta, "songDetails")

	status, body = doRequest(t, app, http.MethodGet, "/survey/response", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "kakao_7", body["userId"])
}

func TestSurveyCheckRequiresUserID(t *testing.T) {
	app := newSurveyApp(&memStore{docs: map[string]models.SurveyResponse{}})

	status, _ := doRequest(t, app, http.MethodGet, "/survey/check", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body := doRequest(t, app, http.MethodGet, "/survey/check?userId=nobody", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["isCompleted"])
}

func TestAdminResponsesPaging(t *testing.T) {
	store := &memStore{docs: map[string]models.SurveyResponse{}}
	for _, id := range []string{"a", "b", "c"} {
		store.docs[id] = models.SurveyResponse{UserID: id, UserName: id}
	}
	h := NewAdminController(admin.NewService(store, admin.NewMemoryReportCache()), nil, nil)
	app := fiber.New()
	app.Get("/admin/responses", h.ListResponses)
	app.Get("/admin/songs/stats", h.SongStats)

	status, body := doRequest(t, app, http.MethodGet, "/admin/responses", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 3)
	assert.EqualValues(t, 3, body["total"])

	status, body = doRequest(t, app, http.MethodGet, "/admin/responses?page=2&limit=2", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"], 1)
	assert.Equal(t, true, body["hasPrevious"])

	status, body = doRequest(t, app, http.MethodGet, "/admin/songs/stats?refresh=true", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["songs"], 18)
}

func TestGetResponseBeforeSubmitIsLocalized404(t *testing.T) {
	app := newSurveyApp(&memStore{docs: map[string]models.SurveyResponse{}})

	status, body := doRequest(t, app, http.MethodGet, "/survey/response", "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, i18n.MsgResponseNotFound, body["code"])
	assert.Equal(t, i18n.Localize(i18n.Default(), i18n.MsgResponseNotFound), body["message"])
}

func TestKakaoCallbackRejectsUnknownState(t *testing.T) {
	svc := auth.NewService(auth.NewKakaoClient(auth.KakaoConfig{ClientID: "client-id"}), auth.NewMemoryCodeGuard(),
		auth.NewMemoryStateStore(), nil, utils.NewTokenIssuer("test-secret", time.Hour), utils.NewSessionStore(nil))
	h := NewAuthController(svc, true)
	app := fiber.New()
	app.Get("/auth/kakao/login", h.KakaoLogin)
	app.Post("/auth/kakao/callback", h.KakaoCallback)

	status, body := doRequest(t, app, http.MethodGet, "/auth/kakao/login", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, body["state"])
	assert.Contains(t, body["url"], "kauth.kakao.com")

	for _, payload := range []string{
		`{"authorizationCode":"abc"}`,
		`{"authorizationCode":"abc","state":"forged"}`,
	} {
		status, body = doRequest(t, app, http.MethodPost, "/auth/kakao/callback", payload)
		assert.Equal(t, fiber.StatusBadRequest, status, payload)
		assert.Equal(t, i18n.MsgAuthInvalidState, body["code"], payload)
	}
}
