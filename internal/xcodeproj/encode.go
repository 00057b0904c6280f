package xcodeproj

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// encoder writes a decoded pbxproj tree as OpenStep text. Strings are
// written as raw UTF-8, matching the file's "!$*UTF8*$!" header; only
// backslash, double quote, newline and tab are escaped.
type encoder struct {
	buf   bytes.Buffer
	depth int
}

func encode(root map[string]any) ([]byte, error) {
	e := &encoder{}
	e.buf.WriteString(header)
	if err := e.value(root); err != nil {
		return nil, err
	}
	e.buf.WriteByte('\n')
	return e.buf.Bytes(), nil
}

func (e *encoder) value(v any) error {
	switch v := v.(type) {
	case map[string]any:
		return e.dict(v)
	case []any:
		return e.array(v)
	case string:
		e.buf.WriteString(quote(v))
	case []byte:
		e.buf.WriteString("<" + hex.EncodeToString(v) + ">")
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

func (e *encoder) dict(m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	e.buf.WriteString("{\n")
	e.depth++
	for _, k := range keys {
		e.indent()
		e.buf.WriteString(quote(k))
		e.buf.WriteString(" = ")
		if err := e.value(m[k]); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		e.buf.WriteString(";\n")
	}
	e.depth--
	e.indent()
	e.buf.WriteByte('}')
	return nil
}

func (e *encoder) array(a []any) error {
	e.buf.WriteString("(\n")
	e.depth++
	for _, v := range a {
		e.indent()
		if err := e.value(v); err != nil {
			return err
		}
		e.buf.WriteString(",\n")
	}
	e.depth--
	e.indent()
	e.buf.WriteByte(')')
	return nil
}

func (e *encoder) indent() {
	for i := 0; i < e.depth; i++ {
		e.buf.WriteByte('\t')
	}
}

// quote returns s bare when it only holds characters Xcode leaves unquoted,
// and a double-quoted string otherwise.
func quote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuote) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuote(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case r == '_', r == '$', r == '.':
		return false
	}
	return true
}
