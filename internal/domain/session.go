package domain

type SessionState string

const (
	SessionInitializing                 SessionState = "initializing"
	SessionUnauthenticated              SessionState = "unauthenticated"
	SessionAuthenticatedPendingIdentity SessionState = "authenticated_pending_identity"
	SessionAuthenticated                SessionState = "authenticated"
)

// Session is a point-in-time copy of the session controller state.
// IsAuthenticated implies Token is set; it does not imply User is populated.
type Session struct {
	State           SessionState
	IsAuthenticated bool
	IsLoading       bool
	User            *Identity
	Token           string
}

func (s Session) HasIdentity() bool {
	return s.IsAuthenticated && s.User != nil
}

func (s Session) Username() string {
	if s.User == nil {
		return ""
	}

	return s.User.Username
}
