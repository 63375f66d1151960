package user

import "tutorlink/internal/domain/user"

type registerInput struct {
	Body registerRequest
}

type registerRequest struct {
	Login    string `json:"login" minLength:"3" maxLength:"32" doc:"Account login"`
	Password string `json:"password" minLength:"8" doc:"Account password"`
	Role     string `json:"role" enum:"learner,tutor,admin" doc:"Requested role"`
	Bio      string `json:"bio,omitempty" doc:"Tutor bio, required for tutor accounts"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID    int64     `json:"id"`
	Login string    `json:"login"`
	Role  user.Role `json:"role"`
}

type loginInput struct {
	Body user.Credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token string    `json:"token"`
	Role  user.Role `json:"role"`
}
