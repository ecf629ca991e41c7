package auth

// Verifier checks a presented credential. Handlers depend on this
// interface only, so the static secret can be replaced with a real
// credential check without touching route logic.
type Verifier interface {
	Verify(secret string) bool
}

// StaticSecret verifies against a single configured shared secret.
type StaticSecret struct {
	secret string
}

// NewStaticSecret builds a Verifier for the configured api_password.
func NewStaticSecret(secret string) *StaticSecret {
	return &StaticSecret{secret: secret}
}

// Verify reports whether the presented value equals the configured
// secret. Comparison is plain string equality, not constant-time.
func (v *StaticSecret) Verify(secret string) bool {
	return secret == v.secret
}
