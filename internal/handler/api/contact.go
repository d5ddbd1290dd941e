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

type ContactHandler struct {
	cmds commands.SubmissionCommands
}

func NewContactHandler(cmds commands.SubmissionCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Submit contact form
// @Description Validate, rate-limit, persist, and forward a contact inquiry
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact submission"
// @Success 200 {object} resdto.SubmissionResponse
// @Failure 400 {object} resdto.SubmissionResponse
// @Failure 429 {object} resdto.SubmissionResponse
// @Failure 500 {object} resdto.SubmissionResponse
// @Router /api/contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Unparsable bodies fall into the generic internal bucket; no
		// decoder detail leaks to the caller.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, string(commands.OutcomeInternalError), nil)
		return
	}

	form, captchaToken := req.ToDomain()
	outcome := h.cmds.SubmitContact(c.Request.Context(), form, captchaToken, c.GetHeader("X-Forwarded-For"))

	if outcome.Code == commands.OutcomeRateLimited {
		c.Header("Retry-After", strconv.Itoa(outcome.RetryAfter))
	}

	status, body := resdto.FromOutcome(outcome)
	c.JSON(status, body)
}
