package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/presidential-roast/internal/types"
)

// Submission length policy. Twitter handles are measured after the leading
// "@" is stripped.
const (
	minIdeaLength    = 10
	minResumeLength  = 20
	minHandleLength  = 1
	maxHandleLength  = 30
	maxContentLength = 10000
)

var validate = validator.New()

// ValidationError reports a rejected submission. It is returned before any
// generation work starts and is never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ValidateSubmission checks a submission against the length and category
// policy. A nil return means the pipeline may run.
func ValidateSubmission(sub types.Submission) error {
	if err := validate.Struct(sub); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := "content"
			if verrs[0].Field() == "Category" {
				field = "type"
			}
			return &ValidationError{Field: field, Message: "required field is missing"}
		}
		return &ValidationError{Field: "request", Message: "invalid submission"}
	}

	if !sub.Category.Valid() {
		return &ValidationError{
			Field:   "type",
			Message: "must be one of: idea, resume, twitter",
		}
	}

	content := strings.TrimSpace(sub.RawText)
	if content == "" {
		return &ValidationError{Field: "content", Message: "must not be empty"}
	}
	if len(content) > maxContentLength {
		return &ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must be at most %d characters", maxContentLength),
		}
	}

	switch sub.Category {
	case types.CategoryIdea:
		if len(content) < minIdeaLength {
			return &ValidationError{
				Field:   "content",
				Message: fmt.Sprintf("idea must be at least %d characters", minIdeaLength),
			}
		}
	case types.CategoryResume:
		if len(content) < minResumeLength {
			return &ValidationError{
				Field:   "content",
				Message: fmt.Sprintf("resume must be at least %d characters", minResumeLength),
			}
		}
	case types.CategoryTwitter:
		handle := strings.TrimPrefix(content, "@")
		if len(handle) < minHandleLength || len(handle) > maxHandleLength {
			return &ValidationError{
				Field:   "content",
				Message: fmt.Sprintf("handle must be %d-%d characters", minHandleLength, maxHandleLength),
			}
		}
	}

	return nil
}
