package domain

// Option represents one selectable entry of the panel
type Option struct {
	Label    string `toml:"label" json:"label"`
	Value    string `toml:"value" json:"value"`
	Disabled bool   `toml:"disabled,omitempty" json:"disabled,omitempty"`
}

// Values returns the values of a selection in order
func Values(selection []Option) []string {
	values := make([]string, 0, len(selection))
	for _, o := range selection {
		values = append(values, o.Value)
	}
	return values
}

// ContainsValue checks if a selection holds an option with the given value
func ContainsValue(selection []Option, value string) bool {
	for _, o := range selection {
		if o.Value == value {
			return true
		}
	}
	return false
}

// With returns a new selection with option appended
func With(selection []Option, option Option) []Option {
	out := make([]Option, 0, len(selection)+1)
	out = append(out, selection...)
	return append(out, option)
}

// Without returns a new selection with every option of the given value removed
func Without(selection []Option, value string) []Option {
	out := make([]Option, 0, len(selection))
	for _, o := range selection {
		if o.Value != value {
			out = append(out, o)
		}
	}
	return out
}

// FromValues picks the options whose values are listed, in option order.
// Unknown values are dropped.
func FromValues(options []Option, values []string) []Option {
	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}
	var out []Option
	for _, o := range options {
		if wanted[o.Value] {
			out = append(out, o)
		}
	}
	return out
}
