package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeOffsetToken creates an opaque token pointing at position offset of an ordered collection.
// The collection name is part of the token so tokens of one listing are rejected by another.
func EncodeOffsetToken(collection string, offset int) string {
	tokenStr := fmt.Sprintf("%s|%d", collection, offset)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeOffsetToken parses a token produced by EncodeOffsetToken for the same collection.
func DecodeOffsetToken(collection, token string) (int, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != collection {
		return 0, fmt.Errorf("invalid pagination token format (collection %q)", parts[0])
	}

	offset, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (offset parse): %w", err)
	}
	if offset < 0 {
		return 0, fmt.Errorf("invalid pagination token format (negative offset)")
	}
	return offset, nil
}
