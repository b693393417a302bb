package calltrash

import "github.com/heartmarshall/callhistory-backend/internal/domain"

// ListInput pages through the trash.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks the paging bounds. Zero limit means the storage default.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
