package signature

import (
	"encoding/hex"

	"cryptoshim/internal/digest"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes the scheme name and PublicKeyBytes with SHA-256 and truncates to
// 10 bytes (20 hex chars).
func Fingerprint(v Verifier) string {
	st := digest.New(digest.SHA256)
	st.Update([]byte(v.Scheme()))
	st.Update([]byte{0})
	st.Update(v.PublicKeyBytes())
	return hex.EncodeToString(st.Finalize()[:10])
}
