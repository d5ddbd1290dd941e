//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/spaarke-dev/spaakre-website/internal/domain/submission"
	"github.com/spaarke-dev/spaakre-website/internal/handler/api"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
	"github.com/spaarke-dev/spaakre-website/tests/common/httptest"
	commandsmock "github.com/spaarke-dev/spaakre-website/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContactHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	handler      *api.ContactHandler
}

func (s *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.handler = api.NewContactHandler(s.mockCommands)

	s.router.POST("/api/contact", s.handler.Submit)
}

func (s *ContactHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

func contactBody() map[string]any {
	return map[string]any{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"company": "Analytical Engines",
		"reason":  "Demo",
		"message": "I would like a demo.",
	}
}

func (s *ContactHandlerTestSuite) TestSubmit() {
	url := "/api/contact"

	s.Run("success: 200 with ok body", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeOK}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(), nil)
		httptest.AssertOKResponse(s.T(), rec)
	})

	s.Run("success: request fields arrive trimmed with the token split off", func() {
		body := contactBody()
		body["name"] = "  Ada Lovelace  "
		body["captchaToken"] = " tok-1 "

		want := submission.Contact{
			Name:    "Ada Lovelace",
			Email:   "ada@example.com",
			Company: "Analytical Engines",
			Reason:  "Demo",
			Message: "I would like a demo.",
		}
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), want, "tok-1", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeOK}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertOKResponse(s.T(), rec)
	})

	s.Run("success: forwarded-for header is handed through verbatim", func() {
		s.mockCommands.EXPECT().
			SubmitContact(gomock.Any(), gomock.Any(), "", "203.0.113.7, 10.0.0.1").
			Return(commands.Outcome{Code: commands.OutcomeOK}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(),
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"})
		httptest.AssertOKResponse(s.T(), rec)
	})

	s.Run("bot: silent accept renders exactly like success", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeBotSilentOK}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(), nil)
		httptest.AssertOKResponse(s.T(), rec)
		s.JSONEq(`{"ok":true}`, rec.Body.String())
	})

	s.Run("error: 400 CAPTCHA_FAILED", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeCaptchaFailed}).Times(1)

		body := contactBody()
		body["captchaToken"] = "tok-bad"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "CAPTCHA_FAILED")
	})

	s.Run("error: 429 carries a numeric Retry-After header", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeRateLimited, RetryAfter: 42}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "RATE_LIMITED")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "42"})
	})

	s.Run("error: 400 VALIDATION_ERROR with per-field messages", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{
				Code:   commands.OutcomeValidationError,
				Fields: map[string]string{"email": "A valid email address is required."},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(), nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
		s.Equal("A valid email address is required.", body.Fields["email"])
	})

	s.Run("error: 500 INTERNAL_ERROR", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeInternalError}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, contactBody(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "INTERNAL_ERROR")
	})
}
