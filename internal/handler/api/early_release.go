package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/spaarke-dev/spaakre-website/internal/handler/dto/request"
	resdto "github.com/spaarke-dev/spaakre-website/internal/handler/dto/response"
	"github.com/spaarke-dev/spaakre-website/internal/handler/httperr"
	"github.com/spaarke-dev/spaakre-website/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type EarlyReleaseHandler struct {
	cmds commands.SubmissionCommands
}

func NewEarlyReleaseHandler(cmds commands.SubmissionCommands) *EarlyReleaseHandler {
	return &EarlyReleaseHandler{cmds: cmds}
}

// @Summary Early release signup
// @Description Register interest in the early release; CAPTCHA is mandatory
// @Tags early-release
// @Accept json
// @Produce json
// @Param request body reqdto.EarlyReleaseRequest true "Signup"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} resdto.SubmissionResponse
// @Failure 429 {object} resdto.SubmissionResponse
// @Failure 500 {object} resdto.SubmissionResponse
// @Router /api/early-release [post]
func (h *EarlyReleaseHandler) Submit(c *gin.Context) {
	var req reqdto.EarlyReleaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, string(commands.OutcomeInternalError), nil)
		return
	}

	form, captchaToken := req.ToDomain()
	outcome := h.cmds.SubmitSignup(c.Request.Context(), form, captchaToken, c.GetHeader("X-Forwarded-For"))

	if outcome.Code == commands.OutcomeRateLimited {
		c.Header("Retry-After", strconv.Itoa(outcome.RetryAfter))
	}

	status, body := resdto.FromOutcome(outcome)
	// Signup responses carry no per-field detail
	body.Fields = nil
	c.JSON(status, body)
}
