package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	userRepo "attendai/database/repository/user"
	"attendai/models"
	"attendai/services/notification"
	"attendai/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var codePattern = regexp.MustCompile(`\d{6}`)

type fixture struct {
	svc    *DefaultUserService
	repo   *userRepo.MemoryUserRepo
	mailer *notification.ConsoleMailer
}

func newFixture() fixture {
	utils.Logger = zap.NewNop()
	repo := userRepo.NewMemoryUserRepo()
	mailer := notification.NewConsoleMailer(zap.NewNop())
	svc := NewDefaultUserService(repo, NewMemoryOTPStore(), NewDirectDispatcher(mailer), time.Hour)
	return fixture{svc: svc, repo: repo, mailer: mailer}
}

func (f fixture) lastCode(t *testing.T) string {
	sent := f.mailer.Sent()
	require.NotEmpty(t, sent)
	code := codePattern.FindString(sent[len(sent)-1].PlainText)
	require.NotEmpty(t, code)
	return code
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.svc.SendOTP(ctx, " Ada@Example.com "))
	assert.Equal(t, "ada@example.com", f.mailer.Sent()[0].To)

	resp, err := f.svc.Register(ctx, models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "secret1", OTP: f.lastCode(t),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)

	sub, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, sub)

	stored, err := f.repo.GetByID(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)

	login, err := f.svc.Login(ctx, models.LoginRequest{Email: "ADA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, resp.User, login.User)

	_, err = f.svc.Login(ctx, models.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.svc.Login(ctx, models.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegister_RejectsBadOTP(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.svc.Register(ctx, models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "secret1", OTP: "000000"})
	assert.ErrorIs(t, err, ErrInvalidOTP)

	require.NoError(t, f.svc.SendOTP(ctx, "a@b.c"))
	_, err = f.svc.Register(ctx, models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "secret1", OTP: f.lastCode(t)})
	require.NoError(t, err)

	require.NoError(t, f.svc.SendOTP(ctx, "a@b.c"))
	_, err = f.svc.Register(ctx, models.RegisterRequest{Name: "A", Email: "a@b.c", Password: "secret1", OTP: f.lastCode(t)})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMemoryOTPStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryOTPStore()
	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "a@b.c", "123456", time.Minute))
	assert.ErrorIs(t, s.Consume(ctx, "a@b.c", "654321"), ErrInvalidOTP)
	require.NoError(t, s.Consume(ctx, "a@b.c", "123456"))
	assert.ErrorIs(t, s.Consume(ctx, "a@b.c", "123456"), ErrInvalidOTP, "codes are single use")

	require.NoError(t, s.Save(ctx, "a@b.c", "123456", time.Minute))
	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, s.Consume(ctx, "a@b.c", "123456"), ErrInvalidOTP)
}
