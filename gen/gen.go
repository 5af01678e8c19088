package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"regexp"
	"strings"
	"text/template"

	"github.com/nihei9/ucdex/trie"
)

var identifierRE = regexp.MustCompile(`^[A-Za-z_][0-9A-Za-z_]*$`)

const trieSetTemplate = `// Code generated by ucdex. DO NOT EDIT.

package {{ .PkgName }}

import "github.com/nihei9/ucdex/trie"

// {{ .VarName }} is a compiled codepoint set covering {{ .SpaceWidth }} codepoints.
// Query it with {{ .VarName }}.Contains.
var {{ .VarName }} = trie.MustDecode([]byte({{ .Literal }}))
`

// GenTrieSet renders a compiled trie as a Go source file that rebuilds it at
// package initialization via trie.MustDecode. The emitted literal is the
// exact MarshalBinary image, so the embedded set answers queries identically
// to the compiled one.
func GenTrieSet(t *trie.TrieSet, pkgName, varName string) ([]byte, error) {
	if !identifierRE.MatchString(pkgName) {
		return nil, fmt.Errorf("invalid package name: %v", pkgName)
	}
	if !identifierRE.MatchString(varName) {
		return nil, fmt.Errorf("invalid variable name: %v", varName)
	}
	data, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("trieset").Parse(trieSetTemplate)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	err = tmpl.Execute(&b, struct {
		PkgName    string
		VarName    string
		SpaceWidth int
		Literal    string
	}{
		PkgName:    pkgName,
		VarName:    varName,
		SpaceWidth: t.SpaceWidth(),
		Literal:    bytesLiteral(data),
	})
	if err != nil {
		return nil, err
	}
	return format.Source(b.Bytes())
}

const literalLineBytes = 16

// bytesLiteral renders data as a concatenation of quoted string literals,
// one line per literalLineBytes bytes. Quoting goes through %q, which keeps
// every byte exact regardless of where a line break splits a UTF-8 sequence.
func bytesLiteral(data []byte) string {
	if len(data) == 0 {
		return `""`
	}
	var b strings.Builder
	for i := 0; i < len(data); i += literalLineBytes {
		end := i + literalLineBytes
		if end > len(data) {
			end = len(data)
		}
		if i > 0 {
			b.WriteString(" +\n\t")
		}
		fmt.Fprintf(&b, "%q", string(data[i:end]))
	}
	return b.String()
}
