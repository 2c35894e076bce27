package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

func RandomString(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}
	return string(result)
}

func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// GenerateApiKey mints a key of the form bz_<uuid-without-dashes>. The raw
// key is shown to the caller once; callers persist only the hash and the
// prefix for lookup.
func GenerateApiKey() (raw, prefix, hash string) {
	raw = "bz_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	prefix = raw[:10]
	hash = HashToken(raw)
	return raw, prefix, hash
}
