package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
)

// defaultSettings seeds a workable runtime policy for most tests.
func defaultSettings() map[string]string {
	return map[string]string{
		"JWT_SECRET":           "e2e-access-secret",
		"JWT_REFRESH_SECRET":   "e2e-refresh-secret",
		"MAX_LOGIN_SESSIONS":   "2",
		"ACCESS_TOKEN_EXPIRY":  "1h",
		"REFRESH_TOKEN_EXPIRY": "7d",
	}
}

// UserFixture creates users through the real password service so logins
// go through genuine bcrypt verification.
type UserFixture struct {
	srv *TestServer
	seq int
}

func NewUserFixture(srv *TestServer) *UserFixture {
	return &UserFixture{srv: srv}
}

// Create inserts a user with the given role; the password is always
// "password123".
func (f *UserFixture) Create(t *testing.T, role domain.Role) *domain.User {
	t.Helper()
	f.seq++

	hash, err := f.srv.PasswordSvc.Hash("password123")
	require.NoError(t, err, "fixture password should hash")

	user := &domain.User{
		Name:         fmt.Sprintf("Fixture User %d", f.seq),
		Email:        fmt.Sprintf("user%d@example.com", f.seq),
		Mobile:       fmt.Sprintf("+9190000000%02d", f.seq),
		PasswordHash: hash,
		Role:         role,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.srv.UserRepo.Create(ctx, user), "fixture user should create")
	return user
}

// Disable flips the user's disabled flag directly in storage.
func (f *UserFixture) Disable(t *testing.T, user *domain.User) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	now := time.Now()
	user.IsDisabled = true
	user.DisabledAt = &now
	require.NoError(t, f.srv.UserRepo.Update(ctx, user), "fixture user should disable")
}
