//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/spaarke-dev/spaakre-website/internal/handler/api"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"
	"github.com/spaarke-dev/spaakre-website/tests/common/httptest"
	commandsmock "github.com/spaarke-dev/spaakre-website/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EarlyReleaseHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSubmissionCommands
	handler      *api.EarlyReleaseHandler
}

func (s *EarlyReleaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSubmissionCommands(s.mockCtrl)
	s.handler = api.NewEarlyReleaseHandler(s.mockCommands)

	s.router.POST("/api/early-release", s.handler.Submit)
}

func (s *EarlyReleaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEarlyReleaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(EarlyReleaseHandlerTestSuite))
}

func signupBody() map[string]any {
	return map[string]any{
		"name":         "Ada Lovelace",
		"email":        "ada@example.com",
		"captchaToken": "tok-ok",
	}
}

func (s *EarlyReleaseHandlerTestSuite) TestSubmit() {
	url := "/api/early-release"

	s.Run("success: 200 with ok body", func() {
		s.mockCommands.EXPECT().SubmitSignup(gomock.Any(), gomock.Any(), "tok-ok", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeOK}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signupBody(), nil)
		httptest.AssertOKResponse(s.T(), rec)
	})

	s.Run("error: validation detail is stripped down to the error code", func() {
		s.mockCommands.EXPECT().SubmitSignup(gomock.Any(), gomock.Any(), "tok-ok", gomock.Any()).
			Return(commands.Outcome{
				Code:   commands.OutcomeValidationError,
				Fields: map[string]string{"email": "A valid email address is required."},
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signupBody(), nil)
		body := httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "VALIDATION_ERROR")
		s.Empty(body.Fields)
	})

	s.Run("error: 400 CAPTCHA_FAILED when no token was sent", func() {
		body := signupBody()
		delete(body, "captchaToken")
		s.mockCommands.EXPECT().SubmitSignup(gomock.Any(), gomock.Any(), "", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeCaptchaFailed}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "CAPTCHA_FAILED")
	})

	s.Run("error: 429 carries Retry-After", func() {
		s.mockCommands.EXPECT().SubmitSignup(gomock.Any(), gomock.Any(), "tok-ok", gomock.Any()).
			Return(commands.Outcome{Code: commands.OutcomeRateLimited, RetryAfter: 7}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, signupBody(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "RATE_LIMITED")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Retry-After": "7"})
	})
}
