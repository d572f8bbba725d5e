package random

import (
	"crypto/rand"
	"math/big"
)

var allowedLetters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

// Letters returns a random string of n letters.
func Letters(n uint) (string, error) {
	letters := make([]rune, n)
	for i := range letters {
		letterIndex, err := rand.Int(rand.Reader, big.NewInt(int64(len(allowedLetters))))
		if err != nil {
			return "", err
		}
		letters[i] = allowedLetters[letterIndex.Int64()]
	}
	return string(letters), nil
}

// Index returns a uniformly random index in [0, n). It falls back to 0 when
// the system randomness source fails so callers can treat it as infallible.
func Index(n int) int {
	if n <= 1 {
		return 0
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(idx.Int64())
}
