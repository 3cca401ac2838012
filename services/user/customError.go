package user

// AuthError signals a credential or account problem. Its message is safe to
// surface to the client.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	return e.Message
}
