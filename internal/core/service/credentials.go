package service

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier decides whether a login attempt's password matches
// the stored credential. It is the single seam through which credential
// comparison flows, so the storage scheme can change without touching the
// store's transition logic.
type CredentialVerifier func(stored, candidate string) bool

// PlaintextVerifier compares credentials byte-for-byte. This matches the
// sample dataset, which carries plain-text passwords.
func PlaintextVerifier(stored, candidate string) bool {
	return stored == candidate
}

// BcryptVerifier treats the stored credential as a bcrypt hash. Drop-in
// replacement for PlaintextVerifier once registration starts hashing.
func BcryptVerifier(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
