package domain

import (
	"errors"
	"net/url"
	"strings"
)

// Platform is the social network a post was published on.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
)

var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrInvalidPostURL      = errors.New("invalid post url")
)

// ParsePlatform normalises a platform name.
func ParsePlatform(s string) (Platform, error) {
	switch p := Platform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformTikTok, PlatformInstagram, PlatformYouTube:
		return p, nil
	default:
		return "", ErrUnsupportedPlatform
	}
}

// PostRef identifies a post independently of how its URL is spelled.
type PostRef struct {
	Platform Platform
	ID       string
}

// ParsePostURL extracts the platform and post id from a post URL. Profile
// links and unknown hosts are rejected with ErrInvalidPostURL.
func ParsePostURL(rawURL string) (PostRef, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return PostRef{}, ErrInvalidPostURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return PostRef{}, ErrInvalidPostURL
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	segments := pathSegments(u.Path)

	switch {
	case host == "vm.tiktok.com" || host == "vt.tiktok.com":
		// short links carry a share code, not the video id
		if len(segments) >= 1 {
			return PostRef{PlatformTikTok, "share:" + segments[0]}, nil
		}
	case host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com"):
		// https://www.tiktok.com/@user/video/123
		if len(segments) >= 3 && strings.HasPrefix(segments[0], "@") && segments[1] == "video" {
			return PostRef{PlatformTikTok, segments[2]}, nil
		}
	case host == "instagram.com" || host == "m.instagram.com":
		if len(segments) >= 2 && (segments[0] == "p" || segments[0] == "reel" || segments[0] == "reels") {
			return PostRef{PlatformInstagram, segments[1]}, nil
		}
	case host == "youtu.be":
		if len(segments) >= 1 {
			return PostRef{PlatformYouTube, segments[0]}, nil
		}
	case host == "youtube.com" || host == "m.youtube.com":
		if v := strings.TrimSpace(u.Query().Get("v")); v != "" {
			return PostRef{PlatformYouTube, v}, nil
		}
		if len(segments) >= 2 && (segments[0] == "shorts" || segments[0] == "live" || segments[0] == "embed") {
			return PostRef{PlatformYouTube, segments[1]}, nil
		}
	}
	return PostRef{}, ErrInvalidPostURL
}

// NormalizePostURL trims the URL and drops the fragment and tracking query.
// YouTube watch links keep their "v" parameter. Duplicates are detected on
// PostRef, not on this string.
func NormalizePostURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return "", ErrInvalidPostURL
	}
	u.Fragment = ""
	u.Host = strings.ToLower(u.Host)
	if v := u.Query().Get("v"); v != "" {
		u.RawQuery = url.Values{"v": []string{v}}.Encode()
	} else {
		u.RawQuery = ""
	}
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String(), nil
}

func pathSegments(p string) []string {
	parts := strings.Split(strings.Trim(p, "/"), "/")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
