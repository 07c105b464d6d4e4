package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/finsight_dashboard/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor from the timestamp and id of the
// last audit entry on a page.
func EncodeToken(timestamp time.Time, entryID string) string {
	tokenStr := fmt.Sprintf("%s|%s", timestamp.Format(timeFormat), entryID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into a timestamp and entry id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	timestamp, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	return timestamp, parts[1], nil
}

// PageEntries returns up to limit entries that follow the cursor in token, plus the
// cursor of the next page when more entries remain. entries must already be in
// display order. An empty token starts at the beginning; a non-positive limit
// returns everything after the cursor.
func PageEntries(entries []domain.AuditLogEntry, limit int, token string) ([]domain.AuditLogEntry, *string, error) {
	start := 0
	if token != "" {
		timestamp, id, err := DecodeToken(token)
		if err != nil {
			return nil, nil, err
		}
		start = -1
		for i, e := range entries {
			if e.ID == id && e.Timestamp.Equal(timestamp) {
				start = i + 1
				break
			}
		}
		if start == -1 {
			return nil, nil, fmt.Errorf("invalid pagination token: entry %s not found", id)
		}
	}

	remaining := entries[start:]
	if limit <= 0 || len(remaining) <= limit {
		return remaining, nil, nil
	}
	page := remaining[:limit]
	last := page[len(page)-1]
	next := EncodeToken(last.Timestamp, last.ID)
	return page, &next, nil
}
