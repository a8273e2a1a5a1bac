package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

func EncodeSeqCursor(seq int64) string {
	return base64.URLEncoding.EncodeToString([]byte(fmt.Sprintf("%s:%d", CursorVersionV1, seq)))
}

// DecodeSeqCursor accepts an encoded cursor or a bare sequence number. Empty
// means from the start.
func DecodeSeqCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, nil
	}

	if decoded, err := base64.URLEncoding.DecodeString(cursor); err == nil {
		if payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":"); ok {
			return parseSeq(payload)
		}
	}

	return parseSeq(cursor)
}

func parseSeq(s string) (int64, error) {
	seq, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor: %w", err)
	}
	if seq < 0 {
		return 0, fmt.Errorf("invalid cursor: negative sequence")
	}
	return seq, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
