// Package authz is the role gate in front of protected surfaces. It is a
// pure decision over already-loaded session state: it never fetches the
// session itself, and both the client command layer and the API middleware
// call the same function.
package authz

import "tutorlink/internal/domain/user"

// Target names a navigation destination for a denied request.
type Target string

const (
	TargetSignIn         Target = "sign-in"
	TargetHome           Target = "home"
	TargetTutorDashboard Target = "tutor-dashboard"
	TargetAdminDashboard Target = "admin-dashboard"
)

// Decision is the guard's verdict. Allowed false always carries a redirect
// target; there is no generic "forbidden" outcome.
type Decision struct {
	Allowed  bool
	Redirect Target
}

var allow = Decision{Allowed: true}

// Authorize gates access to a surface. requiredRole == "" means any
// authenticated session may enter; callers pass what the route declares.
//
// Unauthenticated sessions are sent to sign-in. Authenticated sessions with
// the wrong role are sent to their own landing page: tutors and admins to
// their dashboards, everyone else home.
func Authorize(sess user.Session, requiredRole user.Role) Decision {
	if !sess.Authenticated() {
		return Decision{Redirect: TargetSignIn}
	}
	if requiredRole == "" || sess.Role == requiredRole {
		return allow
	}
	return Decision{Redirect: landing(sess.Role)}
}

// landing picks the role-appropriate destination for a mismatch.
func landing(r user.Role) Target {
	switch r {
	case user.RoleTutor:
		return TargetTutorDashboard
	case user.RoleAdmin:
		return TargetAdminDashboard
	default:
		return TargetHome
	}
}
