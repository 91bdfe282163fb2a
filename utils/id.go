package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// NewEntityID returns a permanent identifier of the form
// <prefix>-<unix millis>-<random suffix>.
func NewEntityID(prefix string) string {
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), suffix)
}

// IsTempID reports whether id is a client-side placeholder that must be
// replaced on first save. Anything shorter than ten characters is treated
// as a placeholder too.
func IsTempID(id string) bool {
	return id == "" || strings.HasPrefix(id, "temp-") || len(id) < 10
}
