package user

import "time"

type Role string

const (
	RoleLearner Role = "learner"
	RoleTutor   Role = "tutor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleLearner, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         Role
	Bio          string
	CreatedAt    time.Time
}

// Session is the already-loaded client session state handed to the route
// guard and the HTTP adapter. A zero Session means "not authenticated".
type Session struct {
	Token  string
	UserID int64
	Login  string
	Role   Role
}

// Authenticated reports whether a credential is present at all.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
