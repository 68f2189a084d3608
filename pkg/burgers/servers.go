package burgers

import (
	"regexp"
)

const (
	// ServerLocal is the index of the local development server.
	ServerLocal = 0
)

// ServerList contains the server URLs the API is published on.
var ServerList = []string{
	ServerLocal: "http://127.0.0.1:8000",
}

var placeholderPattern = regexp.MustCompile(`\{([^{}]+)\}`)

// Placeholders returns the names of the {name} placeholders in serverURL in
// order of appearance. Repeated names are listed once.
func Placeholders(serverURL string) []string {
	var names []string

	seen := make(map[string]bool)

	for _, match := range placeholderPattern.FindAllStringSubmatch(serverURL, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			names = append(names, match[1])
		}
	}

	return names
}

// TemplateURL replaces every {name} placeholder in serverURL with
// params[name]. Keys without a placeholder are ignored and substituted values
// are not scanned again. A placeholder without a matching key yields a
// *TemplateError listing every missing name.
func TemplateURL(serverURL string, params map[string]string) (string, error) {
	var missing []string

	resolved := placeholderPattern.ReplaceAllStringFunc(serverURL, func(placeholder string) string {
		name := placeholder[1 : len(placeholder)-1]

		value, ok := params[name]
		if !ok {
			missing = append(missing, name)

			return placeholder
		}

		return value
	})

	if len(missing) > 0 {
		return "", &TemplateError{URL: serverURL, Missing: missing}
	}

	return resolved, nil
}
