package service

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

const taxNumberMinLength = 2

// TaxNumberValidator checks tax numbers against the per-country patterns
// stored in the catalog. Patterns are compiled with the RE2 engine, which
// runs in time linear in the input, so a hostile pattern cannot backtrack.
type TaxNumberValidator struct {
	mu       sync.RWMutex
	compiled map[string]*regexp.Regexp
}

func NewTaxNumberValidator() *TaxNumberValidator {
	return &TaxNumberValidator{compiled: make(map[string]*regexp.Regexp)}
}

// ExtractCountryCode returns the first two characters of the trimmed tax
// number, upper-cased.
func ExtractCountryCode(rawTaxNumber string) (string, error) {
	runes := []rune(strings.TrimSpace(rawTaxNumber))
	if len(runes) < taxNumberMinLength {
		return "", invalidInput("too short")
	}
	return strings.ToUpper(string(runes[:taxNumberMinLength])), nil
}

// Matches tests taxNumber against pattern exactly as written: no anchors are
// added, so an unanchored pattern matches any substring. A pattern that does
// not compile is a configuration error.
func (v *TaxNumberValidator) Matches(taxNumber, pattern string) (bool, error) {
	re, err := v.compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(taxNumber), nil
}

// IsAnchored reports whether pattern is pinned to both ends of the input.
func IsAnchored(pattern string) bool {
	start := strings.HasPrefix(pattern, "^") || strings.HasPrefix(pattern, `\A`)
	end := (strings.HasSuffix(pattern, "$") && !strings.HasSuffix(pattern, `\$`)) || strings.HasSuffix(pattern, `\z`)
	return start && end
}

func (v *TaxNumberValidator) compile(pattern string) (*regexp.Regexp, error) {
	v.mu.RLock()
	re, ok := v.compiled[pattern]
	v.mu.RUnlock()
	if ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid tax number pattern %q: %w", pattern, err)
	}

	v.mu.Lock()
	v.compiled[pattern] = re
	v.mu.Unlock()
	return re, nil
}
