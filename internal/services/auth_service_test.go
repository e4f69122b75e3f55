package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/mocks"
)

func TestAuthServiceImpl_Login(t *testing.T) {
	tests := []struct {
		name           string
		identifier     string
		password       string
		setupMocks     func(*mocks.MockUserRepository, *mocks.MockSessionRepository, *mocks.MockPasswordService)
		expectedError  error
		validateResult func(t *testing.T, result *domain.AuthResult)
	}{
		{
			name:       "successful login by email",
			identifier: "test@example.com",
			password:   "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: nil,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result == nil {
					t.Fatal("result is nil")
				}
				if result.Tokens.AccessToken == "" {
					t.Error("expected access token to be issued")
				}
				if result.Tokens.RefreshToken == "" {
					t.Error("expected refresh token to be issued")
				}
				if result.User.PasswordHash != "" {
					t.Error("expected password hash to be stripped from result")
				}
				if result.User.LastLoginAt == nil {
					t.Error("expected last login to be stamped")
				}
			},
		},
		{
			name:       "unknown identifier",
			identifier: "nobody@example.com",
			password:   "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for unknown identifier")
				}
			},
		},
		{
			name:       "wrong password",
			identifier: "test@example.com",
			password:   "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return createValidUser(t), nil
				}
			},
			expectedError: domain.ErrInvalidCredentials,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for wrong password")
				}
			},
		},
		{
			name:       "disabled user",
			identifier: "test@example.com",
			password:   "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					user := createValidUser(t)
					user.IsDisabled = true
					return user, nil
				}
			},
			expectedError: domain.ErrUserDisabled,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for disabled user")
				}
			},
		},
		{
			name:       "disabled user with wrong password still reports disabled",
			identifier: "test@example.com",
			password:   "wrongpassword",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					user := createValidUser(t)
					user.IsDisabled = true
					return user, nil
				}
			},
			expectedError: domain.ErrUserDisabled,
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil for disabled user")
				}
			},
		},
		{
			name:       "session count fails",
			identifier: "test@example.com",
			password:   "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				sessionRepo.CountActiveFunc = func(ctx context.Context, userID uint) (int64, error) {
					return 0, errors.New("database error")
				}
			},
			expectedError: errors.New("failed to count sessions"),
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil when session count fails")
				}
			},
		},
		{
			name:       "session creation fails",
			identifier: "test@example.com",
			password:   "password123",
			setupMocks: func(userRepo *mocks.MockUserRepository, sessionRepo *mocks.MockSessionRepository, passwordSvc *mocks.MockPasswordService) {
				userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
					return createValidUser(t), nil
				}
				sessionRepo.CreateFunc = func(ctx context.Context, session *domain.UserSession) error {
					return errors.New("database error")
				}
			},
			expectedError: errors.New("failed to create session"),
			validateResult: func(t *testing.T, result *domain.AuthResult) {
				if result != nil {
					t.Error("expected result to be nil when session creation fails")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			sessionRepo := mocks.NewMockSessionRepository()
			passwordSvc := mocks.NewMockPasswordService()

			tt.setupMocks(userRepo, sessionRepo, passwordSvc)

			authService := createAuthServiceForTest(t, userRepo, sessionRepo, passwordSvc, nil, nil, nil)
			ctx := createTestContext(t)

			result, err := authService.Login(ctx, tt.identifier, tt.password, createTestDevice(t))

			if tt.expectedError != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError.Error()) {
					t.Errorf("expected error containing '%s', got '%s'", tt.expectedError.Error(), err.Error())
				}
			} else {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
			}

			tt.validateResult(t, result)
		})
	}
}

// Unknown identifier and wrong password must be indistinguishable so
// login responses carry no account enumeration signal.
func TestAuthServiceImpl_Login_NoEnumerationSignal(t *testing.T) {
	unknownRepo := mocks.NewMockUserRepository()
	unknownRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}

	knownRepo := mocks.NewMockUserRepository()
	knownRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	ctx := createTestContext(t)

	_, errUnknown := createAuthServiceForTest(t, unknownRepo, nil, nil, nil, nil, nil).
		Login(ctx, "nobody@example.com", "password123", createTestDevice(t))
	_, errWrongPassword := createAuthServiceForTest(t, knownRepo, nil, nil, nil, nil, nil).
		Login(ctx, "test@example.com", "wrongpassword", createTestDevice(t))

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown identifier: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if errUnknown.Error() != errWrongPassword.Error() {
		t.Errorf("error messages differ: %q vs %q", errUnknown.Error(), errWrongPassword.Error())
	}
}

func TestAuthServiceImpl_Login_StoresDigestsNotTokens(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	var stored *domain.UserSession
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.UserSession) error {
		stored = session
		return nil
	}

	tokenSvc := mocks.NewMockTokenService()
	authService := createAuthServiceForTest(t, userRepo, sessionRepo, nil, tokenSvc, nil, nil)

	result, err := authService.Login(createTestContext(t), "test@example.com", "password123", createTestDevice(t))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stored == nil {
		t.Fatal("expected a session row to be created")
	}

	if stored.AccessTokenHash == result.Tokens.AccessToken {
		t.Error("session stores the raw access token instead of its digest")
	}
	if stored.RefreshTokenHash == result.Tokens.RefreshToken {
		t.Error("session stores the raw refresh token instead of its digest")
	}
	if stored.AccessTokenHash != tokenSvc.Digest(result.Tokens.AccessToken) {
		t.Error("access token digest does not resolve the stored session")
	}
	if stored.RefreshTokenHash != tokenSvc.Digest(result.Tokens.RefreshToken) {
		t.Error("refresh token digest does not resolve the stored session")
	}
	if len(stored.AccessTokenHash) != 64 {
		t.Errorf("expected 64-char hex digest, got %d chars", len(stored.AccessTokenHash))
	}
	if !stored.IsActive {
		t.Error("expected new session to be active")
	}
}

func TestAuthServiceImpl_Login_SessionCap(t *testing.T) {
	tests := []struct {
		name          string
		maxSetting    string
		activeCount   int64
		expectedEvict int // 0 means no eviction expected
	}{
		{
			name:          "below cap creates without eviction",
			maxSetting:    "2",
			activeCount:   1,
			expectedEvict: 0,
		},
		{
			name:          "at cap evicts exactly one",
			maxSetting:    "2",
			activeCount:   2,
			expectedEvict: 1,
		},
		{
			name:          "over cap evicts down to cap",
			maxSetting:    "2",
			activeCount:   5,
			expectedEvict: 4,
		},
		{
			name:          "missing setting falls back to default of two",
			maxSetting:    "",
			activeCount:   2,
			expectedEvict: 1,
		},
		{
			name:          "garbage setting falls back to default of two",
			maxSetting:    "not-a-number",
			activeCount:   1,
			expectedEvict: 0,
		},
		{
			name:          "cap of one evicts the only session",
			maxSetting:    "1",
			activeCount:   1,
			expectedEvict: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
				return createValidUser(t), nil
			}

			evicted := -1
			created := false
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.CountActiveFunc = func(ctx context.Context, userID uint) (int64, error) {
				return tt.activeCount, nil
			}
			sessionRepo.DeleteOldestActiveFunc = func(ctx context.Context, userID uint, n int) error {
				evicted = n
				return nil
			}
			sessionRepo.CreateFunc = func(ctx context.Context, session *domain.UserSession) error {
				created = true
				return nil
			}

			settings := mocks.NewMockSettingsCache(map[string]string{})
			if tt.maxSetting != "" {
				settings.Settings[SettingMaxLoginSessions] = tt.maxSetting
			}

			authService := createAuthServiceForTest(t, userRepo, sessionRepo, nil, nil, settings, nil)

			_, err := authService.Login(createTestContext(t), "test@example.com", "password123", createTestDevice(t))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if tt.expectedEvict == 0 {
				if evicted != -1 {
					t.Errorf("expected no eviction, got %d", evicted)
				}
			} else if evicted != tt.expectedEvict {
				t.Errorf("expected %d evictions, got %d", tt.expectedEvict, evicted)
			}
			if !created {
				t.Error("expected new session to be created")
			}
		})
	}
}

func TestAuthServiceImpl_Login_LockUnavailableStillAdmits(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	created := false
	sessionRepo := mocks.NewMockSessionRepository()
	sessionRepo.CreateFunc = func(ctx context.Context, session *domain.UserSession) error {
		created = true
		return nil
	}

	loginLock := mocks.NewMockLoginLock()
	loginLock.AcquireFunc = func(ctx context.Context, userID uint) (func(), bool) {
		return func() {}, false
	}

	authService := createAuthServiceForTest(t, userRepo, sessionRepo, nil, nil, nil, loginLock)

	_, err := authService.Login(createTestContext(t), "test@example.com", "password123", createTestDevice(t))
	if err != nil {
		t.Fatalf("expected login to proceed without the lock, got %v", err)
	}
	if !created {
		t.Error("expected session to be created without the lock")
	}
}

func TestAuthServiceImpl_Login_TTLsComeFromSettings(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIdentifierFunc = func(ctx context.Context, identifier string) (*domain.User, error) {
		return createValidUser(t), nil
	}

	var accessSpec, refreshSpec string
	tokenSvc := mocks.NewMockTokenService()
	tokenSvc.IssueAccessTokenFunc = func(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
		accessSpec = ttlSpec
		return "access_token", time.Now().Add(time.Minute), nil
	}
	tokenSvc.IssueRefreshTokenFunc = func(payload domain.TokenPayload, ttlSpec string) (string, time.Time, error) {
		refreshSpec = ttlSpec
		return "refresh_token", time.Now().Add(time.Hour), nil
	}

	settings := mocks.NewMockSettingsCache(map[string]string{
		SettingAccessTokenExpiry:  "15m",
		SettingRefreshTokenExpiry: "30d",
	})

	authService := createAuthServiceForTest(t, userRepo, nil, nil, tokenSvc, settings, nil)

	if _, err := authService.Login(createTestContext(t), "test@example.com", "password123", createTestDevice(t)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if accessSpec != "15m" {
		t.Errorf("expected access TTL spec 15m, got %q", accessSpec)
	}
	if refreshSpec != "30d" {
		t.Errorf("expected refresh TTL spec 30d, got %q", refreshSpec)
	}
}

func TestAuthServiceImpl_Logout(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		deleteErr    error
		expectDelete bool
		expectError  bool
	}{
		{
			name:         "deletes session by token digest",
			token:        "some.access.token",
			expectDelete: true,
		},
		{
			name:         "empty token is a no-op",
			token:        "",
			expectDelete: false,
		},
		{
			name:         "repository error surfaces",
			token:        "some.access.token",
			deleteErr:    errors.New("database error"),
			expectDelete: true,
			expectError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotHash string
			deleted := false
			sessionRepo := mocks.NewMockSessionRepository()
			sessionRepo.DeleteByAccessTokenHashFunc = func(ctx context.Context, hash string) error {
				deleted = true
				gotHash = hash
				return tt.deleteErr
			}

			tokenSvc := mocks.NewMockTokenService()
			authService := createAuthServiceForTest(t, nil, sessionRepo, nil, tokenSvc, nil, nil)

			err := authService.Logout(createTestContext(t), tt.token)

			if tt.expectError && err == nil {
				t.Fatal("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if deleted != tt.expectDelete {
				t.Fatalf("expected delete=%v, got %v", tt.expectDelete, deleted)
			}
			if tt.expectDelete {
				if gotHash == tt.token {
					t.Error("logout passed the raw token instead of its digest")
				}
				if gotHash != tokenSvc.Digest(tt.token) {
					t.Errorf("expected digest %q, got %q", tokenSvc.Digest(tt.token), gotHash)
				}
			}
		})
	}
}

func TestAuthServiceImpl_GetUserProfile(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		if id == 1 {
			return createValidUser(t), nil
		}
		return nil, domain.ErrUserNotFound
	}

	authService := createAuthServiceForTest(t, userRepo, nil, nil, nil, nil, nil)
	ctx := createTestContext(t)

	user, err := authService.GetUserProfile(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected user 1, got %d", user.ID)
	}

	if _, err := authService.GetUserProfile(ctx, 42); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
