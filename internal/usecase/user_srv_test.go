package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meem-backend/internal/dto/request"
	"meem-backend/pkg/utils"
)

func newUserTestService(deps *testDeps) UserService {
	return NewUserService(deps.repo, deps.store, deps.mail, deps.config, zap.NewNop())
}

func profileReq(email, userName string) *request.SaveProfileRequest {
	return &request.SaveProfileRequest{
		UserName:     userName,
		MobileNumber: "08123456789",
		Gender:       "female",
		Email:        email,
		Logo: &request.UploadImageRequest{
			FileName:    "logo.png",
			ContentType: "image/png",
			Data:        []byte("logo-bytes"),
		},
	}
}

func TestSaveProfile_CreatesNewProfile(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	svc := newUserTestService(deps)

	resp, err := svc.SaveProfile(ctx, profileReq("fresh@meem.app", "Fresh User"))
	require.NoError(t, err)
	assert.Equal(t, "Fresh User", resp.Username)
	assert.NotEmpty(t, resp.LogoURL)

	// logo lands under logo/, not in the image catalog
	require.Len(t, deps.store.objects, 1)
	assert.True(t, strings.HasPrefix(deps.store.objects[0].Key, "logo/"))
	assert.Empty(t, deps.images.images)

	user := deps.users.users["fresh@meem.app"]
	require.NotNil(t, user)
	require.NotNil(t, user.MobileNumber)
	assert.Equal(t, "08123456789", *user.MobileNumber)
	require.NotNil(t, user.Gender)
	assert.Equal(t, "female", *user.Gender)
}

func TestSaveProfile_UpdatesExistingKeepsPassword(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	svc := newUserTestService(deps)

	hashed, err := utils.HashPassword("keep-me")
	require.NoError(t, err)
	seedUser(t, deps, "existing@meem.app", "Old Name", &hashed)

	_, err = svc.SaveProfile(ctx, profileReq("existing@meem.app", "New Name"))
	require.NoError(t, err)

	user := deps.users.users["existing@meem.app"]
	assert.Equal(t, "New Name", user.Username)
	require.NotNil(t, user.LogoURL)
	// credentials survive a profile save
	require.NotNil(t, user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("keep-me", *user.PasswordHash))
	// still one account
	assert.Len(t, deps.users.users, 1)
}

func TestSaveProfile_RequiresLogo(t *testing.T) {
	deps := newTestDeps()
	svc := newUserTestService(deps)

	req := profileReq("nologo@meem.app", "No Logo")
	req.Logo = nil

	_, err := svc.SaveProfile(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, deps.store.objects)
}

func TestSaveProfile_UploadFailureLeavesProfileUntouched(t *testing.T) {
	deps := newTestDeps()
	deps.store.putErr = errors.New("bucket unavailable")
	svc := newUserTestService(deps)

	_, err := svc.SaveProfile(context.Background(), profileReq("broken@meem.app", "Broken"))
	require.Error(t, err)
	assert.Empty(t, deps.users.users)
}

func TestGetByEmail(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	svc := newUserTestService(deps)

	seedUser(t, deps, "known@meem.app", "Known", nil)

	resp, err := svc.GetByEmail(ctx, "known@meem.app")
	require.NoError(t, err)
	assert.Equal(t, "Known", resp.Username)

	_, err = svc.GetByEmail(ctx, "unknown@meem.app")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	svc := newUserTestService(deps)

	hashed, err := utils.HashPassword("right-pass")
	require.NoError(t, err)
	seedUser(t, deps, "member@meem.app", "Member", &hashed)
	// OTP-only identity without a password
	seedUser(t, deps, "otp-only@meem.app", "", nil)

	resp, err := svc.Login(ctx, &request.LoginRequest{Email: "member@meem.app", Password: "right-pass"})
	require.NoError(t, err)
	assert.Equal(t, "Member", resp.Username)

	// unknown email, wrong password, and passwordless identity all fail the
	// same way
	_, err = svc.Login(ctx, &request.LoginRequest{Email: "nobody@meem.app", Password: "right-pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "member@meem.app", Password: "wrong-pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &request.LoginRequest{Email: "otp-only@meem.app", Password: "right-pass"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSendWelcomeEmail(t *testing.T) {
	ctx := context.Background()
	deps := newTestDeps()
	svc := newUserTestService(deps)

	require.NoError(t, svc.SendWelcomeEmail(ctx, "hello@meem.app"))
	require.Len(t, deps.mail.sent, 1)
	assert.Equal(t, "hello@meem.app", deps.mail.sent[0].To)

	deps.mail.sendErr = errors.New("smtp down")
	err := svc.SendWelcomeEmail(ctx, "hello@meem.app")
	require.ErrorIs(t, err, ErrMailDelivery)
}
