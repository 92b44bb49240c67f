package dto

import "github.com/GlebRadaev/invoicedash/internal/domain"

// FormStateDTO is the state a form is re-rendered with after a submission.
type FormStateDTO struct {
	Errors  map[string][]string `json:"errors,omitempty" example:"amount:Please enter an amount greater than $0."`
	Message string              `json:"message,omitempty" example:"Missing Fields. Failed to Create Invoice."`
	Success bool                `json:"success" example:"false"`
}

func NewFormState(res *domain.FormResult) FormStateDTO {
	return FormStateDTO{
		Errors:  res.Errors,
		Message: res.Message,
		Success: res.Success,
	}
}
