package provider

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// maxDepth bounds how deep into a response the view count is searched.
const maxDepth = 6

// viewKeys are the field names the provider uses for a view count,
// depending on platform and endpoint version.
var viewKeys = []string{
	"views", "view_count", "viewCount", "playCount", "play_count",
	"video_view_count", "videoViewCount", "plays",
}

// containerKeys are the wrappers a count may be nested in.
var containerKeys = []string{
	"data", "result", "stats", "statistics", "metrics", "items", "video", "media", "post", "itemInfo", "itemStruct",
}

// extractViews finds the view count in a decoded JSON document. Values
// may be numbers, numeric strings ("12,345") or abbreviated strings
// ("1.2M").
func extractViews(doc any) (int64, bool) {
	return search(doc, 0)
}

func search(v any, depth int) (int64, bool) {
	if depth > maxDepth {
		return 0, false
	}
	switch t := v.(type) {
	case map[string]any:
		for _, k := range viewKeys {
			if raw, ok := t[k]; ok {
				if n, ok := toCount(raw); ok {
					return n, true
				}
			}
		}
		for _, k := range containerKeys {
			if inner, ok := t[k]; ok {
				if n, ok := search(inner, depth+1); ok {
					return n, true
				}
			}
		}
	case []any:
		if len(t) > 0 {
			return search(t[0], depth+1)
		}
	}
	return 0, false
}

func toCount(v any) (int64, bool) {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, n >= 0
		}
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatCount(f)
	case float64:
		return floatCount(t)
	case string:
		return parseCountString(t)
	case map[string]any:
		// {"views": {"count": 123}}
		if inner, ok := t["count"]; ok {
			return toCount(inner)
		}
	}
	return 0, false
}

func floatCount(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(math.Floor(f)), true
}

func parseCountString(s string) (int64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(s, ",", ""), "_", ""))
	if s == "" {
		return 0, false
	}
	var scale int64
	switch strings.ToUpper(s[len(s)-1:]) {
	case "K":
		scale = 1e3
	case "M":
		scale = 1e6
	case "B":
		scale = 1e9
	}
	if scale != 0 {
		return parseAbbreviated(s[:len(s)-1], scale)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, n >= 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return floatCount(f)
}

// parseAbbreviated reads the number part of a display value such as "1.2M"
// in exact decimal and rounds down.
func parseAbbreviated(num string, scale int64) (int64, bool) {
	whole, frac, _ := strings.Cut(strings.TrimSpace(num), ".")
	if whole == "" && frac == "" {
		return 0, false
	}
	var n int64
	if whole != "" {
		w, err := strconv.ParseInt(whole, 10, 64)
		if err != nil || w < 0 || w > math.MaxInt64/scale {
			return 0, false
		}
		n = w * scale
	}
	for _, r := range frac {
		if r < '0' || r > '9' {
			return 0, false
		}
		scale /= 10
		d := int64(r-'0') * scale
		if n > math.MaxInt64-d {
			return 0, false
		}
		n += d
	}
	return n, true
}
