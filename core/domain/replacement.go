// ABOUTME: Replacement domain model describing the token substitution
// ABOUTME: Source occurrences in rendered text are swapped for Target

package domain

import "errors"

// Replacement is a literal, case-sensitive token substitution
type Replacement struct {
	Source string
	Target string
}

// DefaultReplacement is the substitution the service performs out of the box
var DefaultReplacement = Replacement{Source: "Yale", Target: "Fale"}

// Validate checks the replacement can be applied
func (r Replacement) Validate() error {
	if r.Source == "" {
		return errors.New("replacement source cannot be empty")
	}
	return nil
}
