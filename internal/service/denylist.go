package service

import "strings"

// slugDenylist matches exact slugs plus "*-suffix" and "prefix-*" wildcards.
type slugDenylist struct {
	exact    map[string]struct{}
	prefixes []string
	suffixes []string
}

func newSlugDenylist(patterns []string) *slugDenylist {
	d := &slugDenylist{exact: make(map[string]struct{})}
	for _, raw := range patterns {
		value := strings.TrimSpace(strings.ToLower(raw))
		switch {
		case value == "" || value == "*":
			continue
		case strings.HasPrefix(value, "*"):
			d.suffixes = append(d.suffixes, strings.TrimPrefix(value, "*"))
		case strings.HasSuffix(value, "*"):
			d.prefixes = append(d.prefixes, strings.TrimSuffix(value, "*"))
		default:
			d.exact[value] = struct{}{}
		}
	}
	return d
}

func (d *slugDenylist) IsDenied(slug string) bool {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return false
	}
	if _, ok := d.exact[slug]; ok {
		return true
	}
	for _, suffix := range d.suffixes {
		if strings.HasSuffix(slug, suffix) {
			return true
		}
	}
	for _, prefix := range d.prefixes {
		if strings.HasPrefix(slug, prefix) {
			return true
		}
	}
	return false
}
