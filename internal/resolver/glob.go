package resolver

import (
	"path/filepath"
	"strings"
)

// MatchesGlob checks if a file path matches any of the include patterns
// and does not match any of the exclude patterns. An empty include list
// matches every path (the whole program is checked by default).
func MatchesGlob(filePath string, includePatterns []string, excludePatterns []string) bool {
	filePath = filepath.ToSlash(filePath)

	for _, pattern := range excludePatterns {
		if globMatch(filePath, filepath.ToSlash(pattern)) {
			return false
		}
	}

	if len(includePatterns) == 0 {
		return true
	}
	for _, pattern := range includePatterns {
		if globMatch(filePath, filepath.ToSlash(pattern)) {
			return true
		}
	}
	return false
}

// globMatch matches a path against a glob pattern with ** support.
// Matching is suffix-oriented: "app/**/*.tsx" matches any file under an
// "app/" directory whose name matches "*.tsx".
func globMatch(filePath, pattern string) bool {
	if matched, _ := filepath.Match(pattern, filePath); matched {
		return true
	}

	if strings.Contains(pattern, "**") {
		parts := strings.SplitN(pattern, "**", 2)
		prefix := strings.TrimSuffix(parts[0], "/")
		suffix := strings.TrimPrefix(parts[1], "/")

		if prefix == "" {
			if suffix == "" {
				return true
			}
			if matched, _ := filepath.Match(suffix, filepath.Base(filePath)); matched {
				return true
			}
		} else {
			searchStr := "/" + prefix + "/"
			idx := strings.Index(filePath, searchStr)
			if idx >= 0 {
				remaining := filePath[idx+len(searchStr):]
				if suffix == "" {
					return true
				}
				if matched, _ := filepath.Match(suffix, filepath.Base(remaining)); matched {
					return true
				}
				if matched, _ := filepath.Match(suffix, remaining); matched {
					return true
				}
			}
		}
		return false
	}

	// No ** — try matching just the basename
	matched, _ := filepath.Match(filepath.Base(pattern), filepath.Base(filePath))
	return matched
}
