package user

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"tutorlink/internal/domain/user"
)

// Handler serves account registration and login. Unlike the tutor surface,
// auth responses travel bare, without the result envelope.
type Handler struct {
	service    user.Servicer
	secret     []byte
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, secret []byte, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		secret:     secret,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	role := user.Role(input.Body.Role)
	userID, err := h.service.Register(ctx, input.Body.Login, input.Body.Password, role, input.Body.Bio)
	if err != nil {
		if errors.Is(err, user.ErrLoginTaken) {
			return nil, huma.Error409Conflict("Login already taken")
		}
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Login: input.Body.Login, Role: role},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Login, input.Body.Password)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid credentials")
	}

	token, err := user.IssueToken(h.secret, u)
	if err != nil {
		h.log.Error("issue token", "err", err)
		return nil, huma.Error500InternalServerError("could not issue token")
	}

	return &loginOutput{
		Body: LoginResponse{Token: token, Role: u.Role},
	}, nil
}
