package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CodePointRange is a closed interval of codepoints as the UCD data files
// spell them: a single codepoint or `XXXX..YYYY`.
type CodePointRange struct {
	From rune
	To   rune
}

func (r *CodePointRange) String() string {
	if r.From == r.To {
		return fmt.Sprintf("%04X", r.From)
	}
	return fmt.Sprintf("%04X..%04X", r.From, r.To)
}

type field string

func (f field) symbol() string {
	return string(f)
}

func (f field) normalizedSymbol() string {
	return NormalizeSymbolicValue(string(f))
}

func (f field) codePointRange() (*CodePointRange, error) {
	var from, to string
	if i := strings.Index(string(f), ".."); i >= 0 {
		from, to = string(f)[:i], string(f)[i+2:]
	} else {
		from, to = string(f), string(f)
	}
	lo, err := strconv.ParseUint(from, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid codepoint range %#v: %w", string(f), err)
	}
	hi, err := strconv.ParseUint(to, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid codepoint range %#v: %w", string(f), err)
	}
	return &CodePointRange{
		From: rune(lo),
		To:   rune(hi),
	}, nil
}

// NormalizeSymbolicValue applies UAX #44 loose matching: case, whitespace,
// underscores, hyphens, and a leading `is` are not significant.
var symValReplacer = strings.NewReplacer("_", "", "-", "", "\x20", "")

func NormalizeSymbolicValue(original string) string {
	v := strings.ToLower(symValReplacer.Replace(original))
	if strings.HasPrefix(v, "is") && v != "is" {
		return v[2:]
	}
	return v
}

const missingPrefix = "@missing:"

// parser splits UCD data files into per-line field records. Semicolons
// separate fields, `#` starts a comment, and `# @missing:` comments carry
// default-value records that surface through defaultFields.
//
// File-specific meaning of the fields is up to the per-file parsers wrapping
// this one.
//
// https://www.unicode.org/reports/tr44/#Format_Conventions
type parser struct {
	scanner       *bufio.Scanner
	fields        []field
	defaultFields []field
	err           error
}

func newParser(r io.Reader) *parser {
	return &parser{
		scanner: bufio.NewScanner(r),
	}
}

func (p *parser) parse() bool {
	for p.scanner.Scan() {
		p.fields, p.defaultFields = parseRecord(p.scanner.Text())
		if p.fields != nil || p.defaultFields != nil {
			return true
		}
	}
	p.err = p.scanner.Err()
	return false
}

func parseRecord(src string) ([]field, []field) {
	body := src
	var comment string
	if i := strings.IndexByte(src, '#'); i >= 0 {
		body = src[:i]
		comment = strings.TrimSpace(src[i+1:])
	}
	var fields []field
	if strings.TrimSpace(body) != "" {
		fields = splitFields(body)
	}
	var defaultFields []field
	if strings.HasPrefix(comment, missingPrefix) {
		defaultFields = splitFields(strings.TrimPrefix(comment, missingPrefix))
	}
	return fields, defaultFields
}

func splitFields(src string) []field {
	var fields []field
	for _, f := range strings.Split(src, ";") {
		fields = append(fields, field(strings.TrimSpace(f)))
	}
	return fields
}
