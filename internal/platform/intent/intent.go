// Package intent defines the visual intents shared by components.
package intent

const classPrefix = "bp3-intent-"

// Intent tags a component with a semantic color. The zero value is None and
// contributes no class.
type Intent uint8

const (
	None Intent = iota
	Primary
	Success
	Warning
	Danger
)

var intentNames = [...]string{
	None:    "none",
	Primary: "primary",
	Success: "success",
	Warning: "warning",
	Danger:  "danger",
}

// String returns the lowercase intent name.
func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// ClassNames returns the CSS classes the intent adds to a component.
func (i Intent) ClassNames() []string {
	if i == None || int(i) >= len(intentNames) {
		return nil
	}
	return []string{classPrefix + intentNames[i]}
}

// Parse resolves a lowercase intent name. The empty string parses as None.
func Parse(raw string) (Intent, bool) {
	if raw == "" {
		return None, true
	}
	for i, name := range intentNames {
		if name == raw {
			return Intent(i), true
		}
	}
	return None, false
}
