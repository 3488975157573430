// Package domain defines transfer objects crossing the service boundary
// and their validation constraints.
package domain

import (
	"time"

	"github.com/kharvol/tms/internal/message"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/validation"
)

// UserInfoDTO is the externally-facing representation of a user account.
//
// The envelope fields (ID through ModifiedDate) are read-only: they are
// never copied from input and always populated on output. Entity fields
// are pointers so that an absent field is distinguishable from an empty
// one, which full and partial updates depend on. Password is write-only
// and never populated on output.
type UserInfoDTO struct {
	ID           string     `json:"id,omitempty"`
	CreatedBy    string     `json:"createdBy,omitempty"`
	CreatedDate  *time.Time `json:"createdDate,omitempty"`
	ModifiedBy   string     `json:"modifiedBy,omitempty"`
	ModifiedDate *time.Time `json:"modifiedDate,omitempty"`

	Username    *string     `json:"username,omitempty"`
	Password    *string     `json:"password,omitempty"`
	FirstName   *string     `json:"firstName,omitempty"`
	LastName    *string     `json:"lastName,omitempty"`
	Nickname    *string     `json:"nickname,omitempty"`
	Status      *string     `json:"status,omitempty"`
	DateOfBirth *model.Date `json:"dateOfBirth,omitempty"`
}

// UserInfoRules builds the constraint set for user accounts. Password
// constraints apply only on create: an update never requires the secret.
func UserInfoRules(msg *message.Service) *validation.Rules[UserInfoDTO] {
	return validation.NewRules[UserInfoDTO](msg).
		Constraint("username", message.CodeUsernameBlank,
			func(d UserInfoDTO) bool { return validation.NotBlank(d.Username) }).
		Constraint("firstName", message.CodeFirstNameBlank,
			func(d UserInfoDTO) bool { return validation.NotBlank(d.FirstName) }).
		Constraint("status", message.CodeStatusBlank,
			func(d UserInfoDTO) bool { return validation.NotBlank(d.Status) }).
		Constraint("password", message.CodePasswordBlank,
			func(d UserInfoDTO) bool { return validation.NotBlank(d.Password) }, validation.OnCreate).
		Constraint("password", message.CodePasswordSize,
			func(d UserInfoDTO) bool { return validation.MinLen(d.Password, 8) }, validation.OnCreate).
		Constraint("password", message.CodePasswordPattern,
			func(d UserInfoDTO) bool { return validation.HasLowerUpperDigit(d.Password) }, validation.OnCreate)
}

// String returns a pointer to v, for building sparse DTOs.
func String(v string) *string { return &v }

// DateOf returns a pointer to d, for building sparse DTOs.
func DateOf(d model.Date) *model.Date { return &d }
