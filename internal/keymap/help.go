package keymap

import "strings"

// keyLabels shortens key names for the help bar.
var keyLabels = map[string]string{
	" ":     "space",
	"left":  "←",
	"right": "→",
}

// Label returns the display name of a key.
func Label(key string) string {
	if l, ok := keyLabels[key]; ok {
		return l
	}
	return key
}

// HelpItems returns "key label" pairs for the first key of each binding.
func HelpItems(bindings []Binding) []string {
	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		items = append(items, Label(b.Keys[0])+" "+b.Short)
	}
	return items
}

// Help joins HelpItems with sep.
func Help(bindings []Binding, sep string) string {
	return strings.Join(HelpItems(bindings), sep)
}
