package orientation

// Gate checks the shared access token carried on every request.
//
// The comparison is plain string equality, matching the intake
// service's existing behavior. There is no rate limiting, lockout, or
// timing-safe comparison; the token gates access to a form-filling
// flow, not to stored data. See DESIGN.md for the known-weakness note.
type Gate struct {
	secret string
}

// NewGate creates a Gate for the configured shared secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Check returns an unauthorized error carrying the given user-facing
// message unless token equals the configured secret.
func (g *Gate) Check(token, userMessage string) error {
	if token != g.secret {
		return NewUnauthorizedError(userMessage)
	}
	return nil
}
