package app

import "net/http"

type sessionKey string

// SessionKeyUserId holds the authenticated user's identifier. The session
// is established by the external identity layer; this service only reads
// the opaque id and never validates credentials itself.
const SessionKeyUserId = sessionKey("userID")

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}
