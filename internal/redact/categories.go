package redact

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is one PII matcher: a name, a pattern, and optional refinements.
// The pattern must be a Go (RE2) regexp, so worst-case matching stays linear
// in the input and crafted documents cannot trigger pathological backtracking.
type Category struct {
	Name string

	pattern *regexp.Regexp
	// group selects a submatch to redact instead of the whole match
	// (e.g. the captured name after a "Name:" label). 0 means the full match.
	group int
	// valid, when set, vets a raw match before it becomes a span.
	valid func(text string, start, end int) bool
}

// NewCategory builds a custom category from a pattern string. group selects
// the submatch to redact; pass 0 for the whole match.
func NewCategory(name, pattern string, group int) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name must not be empty")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Category{}, fmt.Errorf("compiling pattern for category %s: %w", name, err)
	}
	if group < 0 || group > re.NumSubexp() {
		return Category{}, fmt.Errorf("category %s: group %d out of range (pattern has %d groups)", name, group, re.NumSubexp())
	}
	return Category{Name: name, pattern: re, group: group}, nil
}

// Builtin category patterns. The original PCRE shapes used lookarounds for
// digit boundaries; RE2 has none, so those checks moved into valid funcs.
var (
	reSSN   = regexp.MustCompile(`(?i)\b(?:SSN\s*[:#]?\s*)?\d{3}[-–]\d{2}[-–]\d{4}\b`)
	reEmail = regexp.MustCompile(`\b[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}\b`)
	rePhone = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reCard  = regexp.MustCompile(`\b(?:\d[ -]*?){13,19}\b`)
	reIPv4  = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\b`)
	reDOB   = regexp.MustCompile(`(?i)\b(?:DOB|Date of Birth|Birth\s*Date)\s*[:=]?\s*\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}\b`)
	reAddr  = regexp.MustCompile(`(?i)\b\d{1,6}\s+(?:[A-Za-z]+\s+){0,4}(?:Street|St|Avenue|Ave|Boulevard|Blvd|Drive|Dr|Road|Rd|Lane|Ln|Court|Ct|Way|Place|Pl|Circle|Cir)\.?\b`)
	reName  = regexp.MustCompile(`(?:(?:Full\s+)?Name|Contact|Prepared\s+by|Author|Recipient)\s*[:=]\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,3})`)
)

// Builtin returns the fixed, ordered list of built-in PII categories.
// The order is most-specific-first and doubles as the tie-break when two
// overlapping spans have equal length.
func Builtin() []Category {
	return []Category{
		{Name: "SSN", pattern: reSSN},
		{Name: "EMAIL", pattern: reEmail},
		{Name: "PHONE", pattern: rePhone, valid: digitBoundary},
		{Name: "CREDIT_CARD", pattern: reCard, valid: validCardNumber},
		{Name: "IPV4", pattern: reIPv4},
		{Name: "DATE_OF_BIRTH", pattern: reDOB},
		{Name: "US_ADDRESS", pattern: reAddr},
		{Name: "PERSON_NAME", pattern: reName, group: 1},
	}
}

// digitBoundary rejects matches embedded in a longer digit run, standing in
// for the (?<!\d) and (?!\d) assertions of the source pattern.
func digitBoundary(text string, start, end int) bool {
	if start > 0 && isDigit(text[start-1]) {
		return false
	}
	if end < len(text) && isDigit(text[end]) {
		return false
	}
	return true
}

// validCardNumber gates card matches on the Luhn checksum so arbitrary
// 13-19 digit runs are not masked.
func validCardNumber(text string, start, end int) bool {
	var digits []byte
	for i := start; i < end; i++ {
		if isDigit(text[i]) {
			digits = append(digits, text[i])
		}
	}
	return luhnValid(string(digits))
}

// luhnValid reports whether digits passes the Luhn checksum. Sequences
// shorter than 13 digits are never valid card numbers.
func luhnValid(digits string) bool {
	if len(digits) < 13 {
		return false
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[len(digits)-1-i]
		if !isDigit(c) {
			return false
		}
		n := int(c - '0')
		if i%2 == 1 {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
	}
	return sum%10 == 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

type categoryFile struct {
	Categories []struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
		Group   int    `yaml:"group"`
	} `yaml:"categories"`
}

// LoadCategories reads an ordered category list from a YAML file. The file
// fully replaces the built-in list, so order in the file is precedence order.
func LoadCategories(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading categories file: %w", err)
	}
	var cf categoryFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parsing categories file: %w", err)
	}
	if len(cf.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s defines no categories", path)
	}
	cats := make([]Category, 0, len(cf.Categories))
	for _, entry := range cf.Categories {
		c, err := NewCategory(strings.TrimSpace(entry.Name), entry.Pattern, entry.Group)
		if err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, nil
}
