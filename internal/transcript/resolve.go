package transcript

import (
	"net/url"
	"strings"

	"github.com/nguyentantai21042004/video-digest/internal/model"
)

// pathPrefixes are youtube.com paths whose next segment is the video ID.
var pathPrefixes = []string{"shorts", "embed", "live", "v"}

// ResolveIdentifier extracts the video ID from a reference. Recognised shapes:
//
//	https://youtu.be/<ID>[?...]
//	https://www.youtube.com/watch?v=<ID>[&...]
//	https://www.youtube.com/{shorts,embed,live,v}/<ID>
//
// Anything else is returned unchanged apart from surrounding whitespace.
func (s *implSource) ResolveIdentifier(ref model.VideoReference) string {
	return ResolveIdentifier(ref)
}

// ResolveIdentifier is the stateless form of Source.ResolveIdentifier.
func ResolveIdentifier(ref model.VideoReference) string {
	raw := strings.TrimSpace(string(ref))

	switch {
	case strings.Contains(raw, "youtu.be"):
		if id := lastPathSegment(raw); id != "" {
			return id
		}
	case strings.Contains(raw, "youtube.com"):
		if id := idFromYouTubeURL(raw); id != "" {
			return id
		}
	}
	return raw
}

func lastPathSegment(raw string) string {
	u, err := parseLoose(raw)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	return parts[len(parts)-1]
}

func idFromYouTubeURL(raw string) string {
	u, err := parseLoose(raw)
	if err != nil {
		return ""
	}
	if v := u.Query().Get("v"); v != "" {
		return v
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+1 < len(parts); i++ {
		for _, prefix := range pathPrefixes {
			if parts[i] == prefix {
				return parts[i+1]
			}
		}
	}
	return ""
}

// parseLoose accepts URLs with or without a scheme.
func parseLoose(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	return url.Parse(raw)
}
