package mentions

import "regexp"

var handleRe = regexp.MustCompile(`@([A-Za-z0-9_.]{2,32})`)

// Extract returns the distinct @handle tokens found in content, in order of
// first appearance. Resolving handles to user identities is the profile
// service's job; callers without a resolver persist an empty mention set.
func Extract(content string) []string {
	matches := handleRe.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	handles := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		handles = append(handles, m[1])
	}

	return handles
}

// Resolver maps @handles to user identities. No implementation ships with
// this service; the gateway and REST layer treat a nil resolver as "mentions
// unresolved" and store an empty set.
type Resolver interface {
	Resolve(handles []string) ([]string, error)
}

// ResolveAll runs extraction and resolution in one step, degrading to an
// empty set when no resolver is configured or resolution fails.
func ResolveAll(content string, r Resolver) []string {
	handles := Extract(content)
	if len(handles) == 0 || r == nil {
		return nil
	}

	ids, err := r.Resolve(handles)
	if err != nil {
		return nil
	}

	return ids
}
