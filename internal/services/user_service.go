package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	passwordSvc domain.PasswordService
}

// NewUserService creates a new user service
func NewUserService(
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		passwordSvc: passwordSvc,
	}
}

func normalizePage(page domain.Pagination) domain.Pagination {
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 10
	}
	return page
}

func pageInfo(total int64, page domain.Pagination) domain.PageInfo {
	totalPages := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return domain.PageInfo{
		Total:      total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: totalPages,
	}
}

// List implements domain.UserService. Password digests never leave the
// service.
func (s *UserServiceImpl) List(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, domain.PageInfo, error) {
	page = normalizePage(page)
	users, total, err := s.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, domain.PageInfo{}, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, pageInfo(total, page), nil
}

// GetByID implements domain.UserService
func (s *UserServiceImpl) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// Create implements domain.UserService
func (s *UserServiceImpl) Create(ctx context.Context, user *domain.User, plainPassword string) (*domain.User, error) {
	if existing, err := s.userRepo.FindByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, domain.ErrEmailExists
	}
	if existing, err := s.userRepo.FindByMobile(ctx, user.Mobile); err == nil && existing != nil {
		return nil, domain.ErrMobileExists
	}

	hash, err := s.passwordSvc.Hash(plainPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash

	if user.Role == "" {
		user.Role = domain.RoleUser
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// Update implements domain.UserService. A SUPER_ADMIN cannot change
// their own role, so the system always keeps an operable top role.
func (s *UserServiceImpl) Update(ctx context.Context, id uint, changes domain.UserUpdate, actorID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Role != nil && *changes.Role != user.Role &&
		user.Role == domain.RoleSuperAdmin && id == actorID {
		return nil, domain.ErrOwnRoleChange
	}

	if changes.Email != nil && *changes.Email != user.Email {
		if existing, err := s.userRepo.FindByEmail(ctx, *changes.Email); err == nil && existing != nil {
			return nil, domain.ErrEmailExists
		}
		user.Email = *changes.Email
	}
	if changes.Mobile != nil && *changes.Mobile != user.Mobile {
		if existing, err := s.userRepo.FindByMobile(ctx, *changes.Mobile); err == nil && existing != nil {
			return nil, domain.ErrMobileExists
		}
		user.Mobile = *changes.Mobile
	}
	if changes.Name != nil {
		user.Name = *changes.Name
	}
	if changes.Role != nil {
		user.Role = *changes.Role
	}
	if changes.Password != nil {
		hash, err := s.passwordSvc.Hash(*changes.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// SetDisabled implements domain.UserService. Disabling a user also
// removes their sessions; outstanding tokens die at the middleware's
// user re-check either way, this just keeps the table honest.
func (s *UserServiceImpl) SetDisabled(ctx context.Context, id uint, disabled bool, actorID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if disabled {
		now := time.Now()
		user.IsDisabled = true
		user.DisabledAt = &now
		user.DisabledBy = &actorID
	} else {
		user.IsDisabled = false
		user.DisabledAt = nil
		user.DisabledBy = nil
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if disabled {
		if err := s.sessionRepo.DeleteByUserID(ctx, id); err != nil {
			log.Printf("SESSION_CLEANUP_FAILED: user_id=%d error=%v", id, err)
		}
		log.Printf("USER_DISABLED: user_id=%d by=%d", id, actorID)
	} else {
		log.Printf("USER_ENABLED: user_id=%d by=%d", id, actorID)
	}

	out := *user
	out.PasswordHash = ""
	return &out, nil
}

// Delete implements domain.UserService
func (s *UserServiceImpl) Delete(ctx context.Context, id uint, actorID uint) error {
	if id == actorID {
		return domain.ErrSelfDelete
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if user.Role == domain.RoleSuperAdmin {
		count, err := s.userRepo.CountByRole(ctx, domain.RoleSuperAdmin)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domain.ErrLastSuperAdmin
		}
	}

	if err := s.sessionRepo.DeleteByUserID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Printf("USER_DELETED: user_id=%d by=%d", id, actorID)
	return nil
}
