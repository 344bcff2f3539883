package manifest

import (
	"bytes"
	"encoding/json"
	"strings"
)

// fieldIndent aligns a fragment's continuation lines under its key inside
// the top-level manifest object.
const fieldIndent = "  "

// Fragment encodes v as 2-space indented JSON and re-indents every line after
// the first by fieldIndent. Values are built by this package from strings,
// bools and slices, so encoding cannot fail.
func Fragment(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		panic("manifest: encoding fragment: " + err.Error())
	}
	s := strings.TrimSuffix(buf.String(), "\n")
	return strings.ReplaceAll(s, "\n", "\n"+fieldIndent)
}

// Tail renders the descriptor as the text spliced after the static fields of
// the manifest template: a leading ",\n" followed by one `  "key": value`
// line group per field, separated by ",\n". An empty descriptor renders as
// the empty string.
func (d Descriptor) Tail() string {
	if len(d.Fields) == 0 {
		return ""
	}
	items := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		items[i] = fieldIndent + `"` + f.Name + `": ` + f.Fragment
	}
	return ",\n" + strings.Join(items, ",\n")
}
