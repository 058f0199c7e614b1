package entity

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"time"
)

// CodeTTL is how long a verification code stays acceptable.
const CodeTTL = 10 * time.Minute

var codeSpace = big.NewInt(1_000_000)

// codeSource is the randomness behind verification codes.
var codeSource io.Reader = rand.Reader

// NewVerificationCode returns a uniformly random six digit code, zero padded,
// and the instant after which it is no longer accepted.
func NewVerificationCode(now time.Time) (string, time.Time, error) {
	n, err := rand.Int(codeSource, codeSpace)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), now.Add(CodeTTL), nil
}
