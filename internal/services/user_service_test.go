package services

import (
	"context"
	"errors"
	"testing"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/mocks"
)

func createUserServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	sessionRepo domain.SessionRepository,
	passwordSvc domain.PasswordService) domain.UserService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if sessionRepo == nil {
		sessionRepo = mocks.NewMockSessionRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	return NewUserService(userRepo, sessionRepo, passwordSvc)
}

func rolePtr(r domain.Role) *domain.Role { return &r }

func strPtr(s string) *string { return &s }

func TestUserServiceImpl_Create(t *testing.T) {
	tests := []struct {
		name          string
		user          domain.User
		password      string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
		validateUser  func(t *testing.T, user *domain.User)
	}{
		{
			name:     "successful creation defaults role to USER",
			user:     domain.User{Name: "New User", Email: "new@example.com", Mobile: "+911111111111"},
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.CreateFunc = func(ctx context.Context, user *domain.User) error {
					user.ID = 7
					return nil
				}
			},
			validateUser: func(t *testing.T, user *domain.User) {
				if user == nil {
					t.Fatal("user is nil")
				}
				if user.Role != domain.RoleUser {
					t.Errorf("expected role USER, got %s", user.Role)
				}
				if user.PasswordHash != "" {
					t.Error("expected password hash to be stripped from result")
				}
				if user.ID != 7 {
					t.Errorf("expected ID 7, got %d", user.ID)
				}
			},
		},
		{
			name:     "duplicate email",
			user:     domain.User{Email: "taken@example.com", Mobile: "+911111111111"},
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByEmailFunc = func(ctx context.Context, email string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrEmailExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on duplicate email")
				}
			},
		},
		{
			name:     "duplicate mobile",
			user:     domain.User{Email: "new@example.com", Mobile: "+911234567890"},
			password: "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByMobileFunc = func(ctx context.Context, mobile string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrMobileExists,
			validateUser: func(t *testing.T, user *domain.User) {
				if user != nil {
					t.Error("expected user to be nil on duplicate mobile")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := createUserServiceForTest(t, userRepo, nil, nil)
			user := tt.user

			got, err := svc.Create(createTestContext(t), &user, tt.password)

			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			tt.validateUser(t, got)
		})
	}
}

func TestUserServiceImpl_Update_OwnRoleChange(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		user := createValidUser(t)
		user.ID = id
		user.Role = domain.RoleSuperAdmin
		return user, nil
	}

	svc := createUserServiceForTest(t, userRepo, nil, nil)
	ctx := createTestContext(t)

	// A super admin demoting themselves is rejected.
	_, err := svc.Update(ctx, 1, domain.UserUpdate{Role: rolePtr(domain.RoleAdmin)}, 1)
	if !errors.Is(err, domain.ErrOwnRoleChange) {
		t.Fatalf("expected ErrOwnRoleChange, got %v", err)
	}

	// The same change by another actor is allowed.
	if _, err := svc.Update(ctx, 1, domain.UserUpdate{Role: rolePtr(domain.RoleAdmin)}, 2); err != nil {
		t.Fatalf("expected no error for another actor, got %v", err)
	}
}

func TestUserServiceImpl_Update_RehashesPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return createValidUser(t), nil
	}
	var savedHash string
	userRepo.UpdateFunc = func(ctx context.Context, user *domain.User) error {
		savedHash = user.PasswordHash
		return nil
	}

	svc := createUserServiceForTest(t, userRepo, nil, nil)

	got, err := svc.Update(createTestContext(t), 1, domain.UserUpdate{Password: strPtr("newpassword")}, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if savedHash != "hashed_newpassword" {
		t.Errorf("expected rehashed password to be persisted, got %q", savedHash)
	}
	if got.PasswordHash != "" {
		t.Error("expected password hash to be stripped from result")
	}
}

func TestUserServiceImpl_SetDisabled(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		return createValidUser(t), nil
	}

	sessionsDeleted := false
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.DeleteByUserIDFunc = func(ctx context.Context, userID uint) error {
		sessionsDeleted = true
		return nil
	}

	svc := createUserServiceForTest(t, userRepo, sessionRepo, nil)
	ctx := createTestContext(t)

	user, err := svc.SetDisabled(ctx, 1, true, 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !user.IsDisabled {
		t.Error("expected user to be disabled")
	}
	if user.DisabledAt == nil || user.DisabledBy == nil || *user.DisabledBy != 9 {
		t.Error("expected disable audit fields to be stamped")
	}
	if !sessionsDeleted {
		t.Error("expected sessions to be deleted on disable")
	}

	sessionsDeleted = false
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		u := createValidUser(t)
		u.IsDisabled = true
		return u, nil
	}

	user, err = svc.SetDisabled(ctx, 1, false, 9)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.IsDisabled || user.DisabledAt != nil || user.DisabledBy != nil {
		t.Error("expected disable audit fields to be cleared on enable")
	}
	if sessionsDeleted {
		t.Error("expected no session cleanup on enable")
	}
}

func TestUserServiceImpl_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		actorID       uint
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:    "self delete rejected",
			id:      1,
			actorID: 1,
			setupMocks: func(userRepo *mocks.MockUserRepository) {
			},
			expectedError: domain.ErrSelfDelete,
		},
		{
			name:    "last super admin protected",
			id:      1,
			actorID: 2,
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					user := createValidUser(t)
					user.Role = domain.RoleSuperAdmin
					return user, nil
				}
				userRepo.CountByRoleFunc = func(ctx context.Context, role domain.Role) (int64, error) {
					return 1, nil
				}
			},
			expectedError: domain.ErrLastSuperAdmin,
		},
		{
			name:    "super admin deletable when another remains",
			id:      1,
			actorID: 2,
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					user := createValidUser(t)
					user.Role = domain.RoleSuperAdmin
					return user, nil
				}
				userRepo.CountByRoleFunc = func(ctx context.Context, role domain.Role) (int64, error) {
					return 2, nil
				}
			},
		},
		{
			name:    "regular user deleted",
			id:      1,
			actorID: 2,
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			tt.setupMocks(userRepo)

			svc := createUserServiceForTest(t, userRepo, nil, nil)

			err := svc.Delete(createTestContext(t), tt.id, tt.actorID)
			if tt.expectedError != nil {
				if !errors.Is(err, tt.expectedError) {
					t.Fatalf("expected %v, got %v", tt.expectedError, err)
				}
			} else if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestUserServiceImpl_List_StripsPasswords(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.ListFunc = func(ctx context.Context, filter domain.UserFilter, page domain.Pagination) ([]domain.User, int64, error) {
		return []domain.User{*createValidUser(t), *createValidUser(t)}, 25, nil
	}

	svc := createUserServiceForTest(t, userRepo, nil, nil)

	users, info, err := svc.List(createTestContext(t), domain.UserFilter{}, domain.Pagination{Page: 2, Limit: 10})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	for i, u := range users {
		if u.PasswordHash != "" {
			t.Errorf("user %d: expected password hash to be stripped", i)
		}
	}
	if info.Total != 25 || info.Page != 2 || info.Limit != 10 || info.TotalPages != 3 {
		t.Errorf("unexpected page info: %+v", info)
	}
}
