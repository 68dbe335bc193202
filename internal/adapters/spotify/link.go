package spotify

import (
	"fmt"
	"net/url"
	"strings"
)

// ParsePlaylistID extracts a playlist ID from a share URL, a spotify: URI,
// or a raw ID.
func ParsePlaylistID(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("spotify adapter: empty playlist reference")
	}

	if strings.HasPrefix(trimmed, "spotify:") {
		parts := strings.Split(trimmed, ":")
		if len(parts) != 3 || parts[1] != "playlist" || parts[2] == "" {
			return "", fmt.Errorf("spotify adapter: invalid playlist URI %q", input)
		}
		return parts[2], nil
	}

	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("spotify adapter: invalid playlist URL %q: %w", input, err)
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		for i, seg := range segments {
			if seg == "playlist" && i+1 < len(segments) && segments[i+1] != "" {
				return segments[i+1], nil
			}
		}
		return "", fmt.Errorf("spotify adapter: no playlist ID in URL %q", input)
	}

	if strings.ContainsAny(trimmed, "/?") {
		return "", fmt.Errorf("spotify adapter: invalid playlist ID %q", input)
	}
	return trimmed, nil
}
