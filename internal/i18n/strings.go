package i18n

// Keys of the built-in string table
const (
	AllItemsAreSelected = "allItemsAreSelected"
	NoOptions           = "noOptions"
	Search              = "search"
	SelectAll           = "selectAll"
	SelectSomeItems     = "selectSomeItems"
	Close               = "close"
)

var defaults = map[string]string{
	AllItemsAreSelected: "All items are selected.",
	NoOptions:           "No options",
	Search:              "Search",
	SelectAll:           "Select All",
	SelectSomeItems:     "Select...",
	Close:               "Close",
}

// Resolve returns the user-facing label for key.
// A non-empty override wins over the built-in default; a key known to
// neither resolves to itself.
func Resolve(key string, overrides map[string]string) string {
	if s, ok := overrides[key]; ok && s != "" {
		return s
	}
	if s, ok := defaults[key]; ok {
		return s
	}
	return key
}
