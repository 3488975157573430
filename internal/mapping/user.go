// Package mapping implements the pure transfer-object/record translation
// per entity type, plus the settable-fields tables backing patch merges.
package mapping

import (
	"github.com/kharvol/tms/internal/domain"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/patch"
)

// UserInfoMapper translates between UserInfoDTO and the UserInfo record.
//
// The envelope is never copied from a transfer object, and the password
// never crosses in either direction: on output it is write-only, on input
// it reaches the record only through the save hook that hashes it.
type UserInfoMapper struct{}

// ToModel builds a new record from d for creation.
func (UserInfoMapper) ToModel(d domain.UserInfoDTO) *model.UserInfo {
	m := &model.UserInfo{}
	UserInfoMapper{}.MergeInto(m, d)
	return m
}

// ToDTO builds a transfer object from m. Empty record fields map to nil
// so they are absent from the serialized form.
func (UserInfoMapper) ToDTO(m *model.UserInfo) domain.UserInfoDTO {
	d := domain.UserInfoDTO{
		ID:         m.ID,
		CreatedBy:  m.CreatedBy,
		ModifiedBy: m.ModifiedBy,
	}
	if !m.CreatedDate.IsZero() {
		t := m.CreatedDate
		d.CreatedDate = &t
	}
	if !m.ModifiedDate.IsZero() {
		t := m.ModifiedDate
		d.ModifiedDate = &t
	}
	if m.Username != "" {
		d.Username = domain.String(m.Username)
	}
	if m.FirstName != "" {
		d.FirstName = domain.String(m.FirstName)
	}
	if m.LastName != "" {
		d.LastName = domain.String(m.LastName)
	}
	if m.Nickname != "" {
		d.Nickname = domain.String(m.Nickname)
	}
	if m.Status != "" {
		d.Status = domain.String(m.Status)
	}
	if !m.DateOfBirth.IsZero() {
		d.DateOfBirth = domain.DateOf(m.DateOfBirth)
	}
	return d
}

// Overwrite applies full-update semantics: non-nil DTO fields replace the
// record fields, nil DTO fields clear them.
func (UserInfoMapper) Overwrite(m *model.UserInfo, d domain.UserInfoDTO) {
	m.Username = deref(d.Username)
	m.FirstName = deref(d.FirstName)
	m.LastName = deref(d.LastName)
	m.Nickname = deref(d.Nickname)
	m.Status = deref(d.Status)
	if d.DateOfBirth != nil {
		m.DateOfBirth = *d.DateOfBirth
	} else {
		m.DateOfBirth = model.Date{}
	}
}

// MergeInto applies partial-update semantics: only non-nil DTO fields
// replace the record fields.
func (UserInfoMapper) MergeInto(m *model.UserInfo, d domain.UserInfoDTO) {
	if d.Username != nil {
		m.Username = *d.Username
	}
	if d.FirstName != nil {
		m.FirstName = *d.FirstName
	}
	if d.LastName != nil {
		m.LastName = *d.LastName
	}
	if d.Nickname != nil {
		m.Nickname = *d.Nickname
	}
	if d.Status != nil {
		m.Status = *d.Status
	}
	if d.DateOfBirth != nil {
		m.DateOfBirth = *d.DateOfBirth
	}
}

// DecodePatch turns a patch document into a sparse DTO: only the
// document's valued fields come back non-nil.
func (UserInfoMapper) DecodePatch(doc patch.Document) (domain.UserInfoDTO, error) {
	var d domain.UserInfoDTO
	if err := doc.Decode(&d); err != nil {
		return domain.UserInfoDTO{}, err
	}
	return d, nil
}

// UserInfoClearers is the settable-fields table for user accounts: the
// patchable field names with their zero-value setters. Envelope fields are
// read-only and deliberately not listed, so a patch naming them fails as
// malformed.
func UserInfoClearers() map[string]func(*model.UserInfo) {
	return map[string]func(*model.UserInfo){
		"username":    func(m *model.UserInfo) { m.Username = "" },
		"password":    func(m *model.UserInfo) { m.Password = "" },
		"firstName":   func(m *model.UserInfo) { m.FirstName = "" },
		"lastName":    func(m *model.UserInfo) { m.LastName = "" },
		"nickname":    func(m *model.UserInfo) { m.Nickname = "" },
		"status":      func(m *model.UserInfo) { m.Status = "" },
		"dateOfBirth": func(m *model.UserInfo) { m.DateOfBirth = model.Date{} },
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
