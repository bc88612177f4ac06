// Package utils holds field validators shared by the ent schemas.
package utils

import "fmt"

// EnumValidator restricts a string column to a fixed value set. Used for
// status and unit fields whose stored strings double as wire values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
