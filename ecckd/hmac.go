package ecckd

import (
	"crypto/hmac"
	"crypto/sha512"
	"errors"

	"github.com/ModChain/secp256k1"
)

var (
	ErrShaKeyInvalid = errors.New("generated key zero or overflow, try next one")
)

// hmacCKD returns IL as a scalar along with the chain code IR for a given seed
// and salt.
//
// See: https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
func hmacCKD(seed, salt []byte) (il secp256k1.ModNScalar, chainCode []byte, err error) {
	data := hmac.New(sha512.New, salt)
	if _, err = data.Write(seed); err != nil {
		return
	}
	I := data.Sum(nil)

	var key [32]byte
	copy(key[:], I[:32]) // IL
	chainCode = I[32:]   // IR

	// In case parse256(IL) ≥ n or ki = 0, the resulting key is invalid, and one should proceed with the next value for i. (Note: this has probability lower than 1 in 2127.)
	il, err = secp256k1.ParseModNScalar(&key)
	if err != nil || il.IsZero() {
		err = ErrShaKeyInvalid
	}

	return
}
