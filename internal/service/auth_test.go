package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/lib/hasher"
	"github.com/deppfellow/go-signup/internal/testutil"
)

func newTestAuthService(t *testing.T, store UserStore, notifier WelcomeNotifier) *AuthService {
	t.Helper()

	h, err := hasher.NewBcrypt(bcrypt.MinCost)
	require.NoError(t, err)

	log := zerolog.Nop()
	return NewAuthService(store, h, notifier, &log)
}

func validRequest() *SignupRequest {
	return &SignupRequest{Name: "Ann", EmailAddress: "ann@x.com", Password: "longenough"}
}

func TestSignupCreatesUser(t *testing.T) {
	store := testutil.NewUserStore()
	svc := newTestAuthService(t, store, nil)

	resp, err := svc.Signup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, MsgUserCreated, resp.Message)

	user, ok := store.User("ann@x.com")
	require.True(t, ok)
	assert.Equal(t, "Ann", user.Name)
	assert.NotEqual(t, "longenough", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("longenough")))
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := testutil.NewUserStore()
	svc := newTestAuthService(t, store, nil)

	_, err := svc.Signup(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), validRequest())

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, MsgEmailExists, httpErr.Message)
	assert.Equal(t, CodeEmailAlreadyExists, httpErr.Code)
	assert.Equal(t, 1, store.Count())
}

func TestSignupStoreFailure(t *testing.T) {
	store := testutil.NewUserStore()
	store.Err = errors.New("creating user: connection reset")
	svc := newTestAuthService(t, store, nil)

	_, err := svc.Signup(context.Background(), validRequest())

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, MsgUserCreateError, httpErr.Message)
	assert.Equal(t, "creating user: connection reset", httpErr.Detail)
	assert.Zero(t, store.Count())
}

func TestSignupEnqueuesWelcomeEmail(t *testing.T) {
	notifier := &testutil.WelcomeNotifier{}
	svc := newTestAuthService(t, testutil.NewUserStore(), notifier)

	_, err := svc.Signup(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"ann@x.com"}, notifier.Sent)
}

func TestSignupIgnoresWelcomeEmailFailure(t *testing.T) {
	notifier := &testutil.WelcomeNotifier{Err: errors.New("redis down")}
	store := testutil.NewUserStore()
	svc := newTestAuthService(t, store, notifier)

	resp, err := svc.Signup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, MsgUserCreated, resp.Message)
	assert.Equal(t, 1, store.Count())
}

func TestSignupRequestSanitize(t *testing.T) {
	req := &SignupRequest{
		Name:         "  <Ann>  ",
		EmailAddress: "  Ann.Smith+x@GMail.com ",
		Password:     " pass/word ",
	}

	req.Sanitize()

	assert.Equal(t, "&lt;Ann&gt;", req.Name)
	assert.Equal(t, "annsmith@gmail.com", req.EmailAddress)
	assert.Equal(t, "pass&#x2F;word", req.Password)
}

func TestSignupRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	req := validRequest()
	req.Name = "An"
	assert.Error(t, req.Validate())
}
