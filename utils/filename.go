package utils

import (
	"regexp"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and joins its alphanumeric runs with hyphens.
// Example: "Riverside Stadium (North)" -> "riverside-stadium-north"
func Slugify(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
}

// ArtifactBaseName builds the file name stem shared by the files of one quote.
// Falls back to "quote" when neither name has usable characters.
func ArtifactBaseName(clientName, projectName string) string {
	parts := []string{}
	for _, s := range []string{clientName, projectName} {
		if slug := Slugify(s); slug != "" {
			parts = append(parts, slug)
		}
	}
	if len(parts) == 0 {
		return "quote"
	}
	base := strings.Join(parts, "-")
	if len(base) > 80 {
		base = strings.TrimRight(base[:80], "-")
	}
	return base
}
