package classify

import (
	"crypto/rand"
	"encoding/base64"
	"strconv"
	"time"
)

// newCallID returns an opaque token identifying one model call in the logs.
func newCallID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return strconv.FormatInt(time.Now().UnixNano(), 10)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
