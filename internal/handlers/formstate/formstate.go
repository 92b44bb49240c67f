// Package formstate writes use-case results back to the browser.
package formstate

import (
	"net/http"

	"github.com/GlebRadaev/invoicedash/internal/domain"
	"github.com/GlebRadaev/invoicedash/internal/dto"
	"github.com/GlebRadaev/invoicedash/pkg/metrics"
	"github.com/GlebRadaev/invoicedash/pkg/utils"
	"go.uber.org/zap"
)

const MsgInternalError = "Internal server error"

// Respond records the outcome and renders it: redirects become 303 See Other,
// everything else is the form state as JSON.
func Respond(w http.ResponseWriter, r *http.Request, useCase string, res *domain.FormResult, err error) {
	if err != nil {
		metrics.ObserveResult(useCase, "fault")
		zap.L().Error("use case failed", zap.String("use_case", useCase), zap.Error(err))
		utils.RespondWithError(w, http.StatusInternalServerError, MsgInternalError)
		return
	}

	metrics.ObserveResult(useCase, res.Outcome.String())
	if res.Outcome == domain.OutcomeRedirect {
		http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
		return
	}
	utils.RespondWithJSON(w, Status(res.Outcome), dto.NewFormState(res))
}

func Status(outcome domain.Outcome) int {
	switch outcome {
	case domain.OutcomeRedirect:
		return http.StatusSeeOther
	case domain.OutcomeDone:
		return http.StatusOK
	case domain.OutcomeValidationFailed:
		return http.StatusUnprocessableEntity
	case domain.OutcomeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
