package service

import (
	"context"
	"slices"

	"github.com/kharvol/tms/internal/crypto"
	"github.com/kharvol/tms/internal/domain"
	"github.com/kharvol/tms/internal/errs"
	"github.com/kharvol/tms/internal/mapping"
	"github.com/kharvol/tms/internal/message"
	"github.com/kharvol/tms/internal/model"
	"github.com/kharvol/tms/internal/repository"
)

// User account statuses accepted by save, update and patch.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// AllowedStatuses is the closed set of valid account statuses.
var AllowedStatuses = []string{StatusActive, StatusInactive}

// UserInfoService is the user-account specialization of the lifecycle
// engine: it adds username uniqueness, the status allow-list and password
// hashing as hook overrides, keeping the engine itself domain-free.
type UserInfoService struct {
	*Base[domain.UserInfoDTO, *model.UserInfo]

	repo   repository.UserInfoRepository
	msg    *message.Service
	mapper mapping.UserInfoMapper
}

// NewUserInfoService wires the lifecycle engine for user accounts.
func NewUserInfoService(repo repository.UserInfoRepository, msg *message.Service,
	opts ...Option[domain.UserInfoDTO, *model.UserInfo]) *UserInfoService {

	s := &UserInfoService{repo: repo, msg: msg}
	hooks := Hooks[domain.UserInfoDTO, *model.UserInfo]{
		ValidateOnExist:     s.validateOnExist,
		ValidateOnDuplicate: s.validateOnDuplicate,
		BeforeSave:          s.beforeSave,
		BeforeUpdate:        s.beforeUpdate,
		ValidatePatched:     s.validateStatus,
	}
	s.Base = NewBase(repo, s.mapper, domain.UserInfoRules(msg), mapping.UserInfoClearers(), hooks, opts...)
	return s
}

// FindByUsername loads a user by its natural key.
func (s *UserInfoService) FindByUsername(ctx context.Context, username string) (domain.UserInfoDTO, error) {
	m, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return domain.UserInfoDTO{}, err
	}
	return s.mapper.ToDTO(m), nil
}

func (s *UserInfoService) validateOnExist(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NotFoundf(s.msg.Get(ctx, message.CodeUserIDDoesNotExist))
	}
	return nil
}

func (s *UserInfoService) validateOnDuplicate(ctx context.Context, d domain.UserInfoDTO) error {
	username := strValue(d.Username)
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if exists {
		return errs.AlreadyExistsf(s.msg.Get(ctx, message.CodeUsernameAlreadyExists, username))
	}
	return nil
}

// beforeSave enforces the status allow-list and stores the password hash;
// the mapper never copies the plaintext into the record.
func (s *UserInfoService) beforeSave(ctx context.Context, d *domain.UserInfoDTO, m *model.UserInfo) error {
	if err := s.validateStatus(ctx, *d); err != nil {
		return err
	}
	encoded, err := crypto.EncodePassword(strValue(d.Password))
	if err != nil {
		return err
	}
	m.Password = encoded
	return nil
}

func (s *UserInfoService) beforeUpdate(ctx context.Context, d *domain.UserInfoDTO, m *model.UserInfo) error {
	if err := s.validateStatus(ctx, *d); err != nil {
		return err
	}
	if d.Username != nil {
		taken, err := s.repo.ExistsByUsernameExcludingID(ctx, *d.Username, m.ID)
		if err != nil {
			return err
		}
		if taken {
			return errs.AlreadyExistsf(s.msg.Get(ctx, message.CodeUsernameAlreadyExists, *d.Username))
		}
	}
	return nil
}

func (s *UserInfoService) validateStatus(ctx context.Context, d domain.UserInfoDTO) error {
	status := strValue(d.Status)
	if !slices.Contains(AllowedStatuses, status) {
		return errs.InvalidValuef(s.msg.Get(ctx, message.CodeStatusNotAllowed, status, AllowedStatuses))
	}
	return nil
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
