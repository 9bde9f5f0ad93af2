// printer.go — canonical value printing, grounded in the teacher's
// quoteString escaping (printer.go) but producing the single-line
// nested form spec §4.1 requires instead of the teacher's indented
// multi-line pretty-printer: `null`, `true`/`false`, decimal ints,
// strings raw at top level and quoted when nested, `[v1, v2, …]` lists
// and `{"k1": v1, …}` objects in insertion order.
package seed

import "strings"

// CanonicalString renders v the way `print` writes it: top-level
// strings unquoted, every other form (including strings nested inside a
// list/object) rendered with renderNested.
func CanonicalString(v Value) string {
	if v.Tag == TagStr {
		return v.AsStr()
	}
	return renderNested(v)
}

func renderNested(v Value) string {
	switch v.Tag {
	case TagNull:
		return "null"
	case TagBool:
		if v.AsBool() {
			return "true"
		}
		return "false"
	case TagInt:
		return formatInt(v.AsInt())
	case TagStr:
		return quoteString(v.AsStr())
	case TagList:
		return renderList(v.AsList())
	case TagObject:
		return renderObject(v.AsObject())
	case TagFunc:
		return "<func>"
	}
	return "<?>"
}

func renderList(l *listData) string {
	var b strings.Builder
	b.WriteByte('[')
	for idx, item := range l.Items {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(renderNested(item))
	}
	b.WriteByte(']')
	return b.String()
}

func renderObject(o *objectData) string {
	var b strings.Builder
	b.WriteByte('{')
	for idx, k := range o.Keys {
		if idx > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quoteString(k))
		b.WriteString(": ")
		b.WriteString(renderNested(o.Entries[k]))
	}
	b.WriteByte('}')
	return b.String()
}

func formatInt(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// quoteString double-quotes s and escapes the bytes print needs to
// keep nested forms legible; indexing throughout the language is
// byte-oriented, so this escapes byte-for-byte rather than rune-by-rune.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
