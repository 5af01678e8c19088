package ucd

import "io"

type BinaryProperties struct {
	// Properties maps each normalized property name to its codepoint ranges,
	// in file order with adjacent records merged.
	Properties map[string][]*CodePointRange
}

// ParseBinaryProperties parses the shared format of PropList.txt and
// DerivedCoreProperties.txt: one codepoint range and one binary property name
// per record.
func ParseBinaryProperties(r io.Reader) (*BinaryProperties, error) {
	props := map[string][]*CodePointRange{}
	p := newParser(r)
	for p.parse() {
		if len(p.fields) < 2 {
			continue
		}
		cp, err := p.fields[0].codePointRange()
		if err != nil {
			return nil, err
		}
		name := p.fields[1].normalizedSymbol()
		rs := props[name]
		if n := len(rs); n > 0 && cp.From-rs[n-1].To == 1 {
			rs[n-1].To = cp.To
		} else {
			props[name] = append(rs, cp)
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return &BinaryProperties{
		Properties: props,
	}, nil
}
