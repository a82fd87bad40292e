package commands

import (
	"fmt"
	"strings"

	"multiselect/internal/domain"
)

// parseOption reads a "label=value" argument. A bare word is used as both.
// A leading "!" marks the option disabled.
func parseOption(arg string) (domain.Option, error) {
	var opt domain.Option
	if strings.HasPrefix(arg, "!") {
		opt.Disabled = true
		arg = arg[1:]
	}

	label, value, found := strings.Cut(arg, "=")
	if !found {
		value = label
	}
	if label == "" || value == "" {
		return domain.Option{}, fmt.Errorf("invalid option %q: expected label=value", arg)
	}

	opt.Label = label
	opt.Value = value
	return opt, nil
}

func parseOptions(args []string) ([]domain.Option, error) {
	options := make([]domain.Option, 0, len(args))
	for _, arg := range args {
		opt, err := parseOption(arg)
		if err != nil {
			return nil, err
		}
		if domain.ContainsValue(options, opt.Value) {
			return nil, fmt.Errorf("duplicate option value %q", opt.Value)
		}
		options = append(options, opt)
	}
	return options, nil
}
