package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shootbook/services/booking"
	"shootbook/services/session"
	"shootbook/services/wizard"
	"shootbook/utils"
)

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, op string, err error) {
	logger := getLogger(c)

	var stepErr *wizard.StepError
	var subErr *booking.SubmissionError
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking session not found or expired", "")
	case errors.As(err, &stepErr):
		utils.JSONFieldError(c, http.StatusUnprocessableEntity, "step_invalid",
			"step "+string(stepErr.Step)+" has invalid fields", stepErr.Fields)
	case errors.As(err, &subErr):
		status := http.StatusUnprocessableEntity
		if subErr.Code == booking.CodeSlotUnavailable {
			status = http.StatusConflict
		}
		utils.JSONFieldError(c, status, subErr.Code, subErr.Message, subErr.Fields)
	case errors.Is(err, wizard.ErrSessionSubmitted),
		errors.Is(err, wizard.ErrNoPreviousStep),
		errors.Is(err, wizard.ErrSubmitFromReview),
		errors.Is(err, wizard.ErrNotAtReview):
		c.JSON(http.StatusConflict, utils.ErrorResponse{Message: err.Error(), Code: "invalid_transition"})
	default:
		logger.Error(op+": unexpected failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}
