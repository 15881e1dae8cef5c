package staff

import (
	"github.com/csi515/beautyhub-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name   string  `json:"name"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"` // defaults to true
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStaffRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Role   *string `json:"role,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StaffResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      *string `json:"role,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ListStaffResponse struct {
	TotalCount int             `json:"total_count"`
	Staff      []StaffResponse `json:"staff"`
}
