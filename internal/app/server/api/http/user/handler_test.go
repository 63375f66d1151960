package user

import (
	"context"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/user"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, login, password string, role user.Role, bio string) (int64, error) {
	args := m.Called(ctx, login, password, role, bio)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockService) Authenticate(ctx context.Context, login, password string) (*user.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

var handlerSecret = []byte("handler-test-secret")

func TestHandler_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, "anna", "secret-pass", user.RoleTutor, mock.Anything).Return(int64(5), nil)
		h := NewHandler(svc, handlerSecret, slog.Default(), nil)

		input := &registerInput{}
		input.Body.Login = "anna"
		input.Body.Password = "secret-pass"
		input.Body.Role = "tutor"
		input.Body.Bio = "I have taught German to adult learners for a decade and built my own course material."

		resp, err := h.register(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.Body.ID)
		assert.Equal(t, "anna", resp.Body.Login)
		assert.Equal(t, user.RoleTutor, resp.Body.Role)
	})

	t.Run("LoginTaken", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Register", mock.Anything, "anna", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), user.ErrLoginTaken)
		h := NewHandler(svc, handlerSecret, slog.Default(), nil)

		input := &registerInput{}
		input.Body.Login = "anna"
		input.Body.Password = "secret-pass"
		input.Body.Role = "learner"

		_, err := h.register(context.Background(), input)
		var se huma.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 409, se.GetStatus())
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success_TokenValidates", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Authenticate", mock.Anything, "anna", "secret-pass").
			Return(&user.User{ID: 3, Login: "anna", Role: user.RoleTutor}, nil)
		h := NewHandler(svc, handlerSecret, slog.Default(), nil)

		input := &loginInput{}
		input.Body.Login = "anna"
		input.Body.Password = "secret-pass"

		resp, err := h.login(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, user.RoleTutor, resp.Body.Role)

		id, role, err := user.ValidateToken(handlerSecret, resp.Body.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
		assert.Equal(t, user.RoleTutor, role)
	})

	// Bad credentials answer 400, not 401: a 401 would make the client treat
	// a typo as an expired session and wipe its stored token.
	t.Run("InvalidCredentials", func(t *testing.T) {
		svc := new(MockService)
		svc.On("Authenticate", mock.Anything, "anna", "wrong").Return(nil, user.ErrInvalidAuth)
		h := NewHandler(svc, handlerSecret, slog.Default(), nil)

		input := &loginInput{}
		input.Body.Login = "anna"
		input.Body.Password = "wrong"

		_, err := h.login(context.Background(), input)
		var se huma.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 400, se.GetStatus())
	})
}
