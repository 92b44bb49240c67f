package domain

// Outcome tags a FormResult.
type Outcome int

const (
	// OutcomeRedirect means the write succeeded and the caller must navigate to RedirectTo.
	OutcomeRedirect Outcome = iota
	// OutcomeDone means the write succeeded and no navigation follows.
	OutcomeDone
	OutcomeValidationFailed
	OutcomeConflict
	OutcomeStoreFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRedirect:
		return "redirect"
	case OutcomeDone:
		return "done"
	case OutcomeValidationFailed:
		return "validation_failed"
	case OutcomeConflict:
		return "conflict"
	case OutcomeStoreFailed:
		return "store_failed"
	default:
		return "unknown"
	}
}

// FormResult is what a use case hands back for one form submission.
type FormResult struct {
	Outcome    Outcome
	Errors     map[string][]string
	Message    string
	Success    bool
	RedirectTo string
}

func Redirect(to string) *FormResult {
	return &FormResult{Outcome: OutcomeRedirect, RedirectTo: to}
}

func ValidationFailed(errs map[string][]string, message string) *FormResult {
	return &FormResult{Outcome: OutcomeValidationFailed, Errors: errs, Message: message}
}

func Conflict(message string) *FormResult {
	return &FormResult{Outcome: OutcomeConflict, Message: message}
}

func StoreFailed(message string) *FormResult {
	return &FormResult{Outcome: OutcomeStoreFailed, Message: message}
}

func Done(message string) *FormResult {
	return &FormResult{Outcome: OutcomeDone, Message: message}
}
