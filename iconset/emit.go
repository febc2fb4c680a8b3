package iconset

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// OutputFile is the name of the generated module,
// written in the icon directory.
const OutputFile = "custom_icons.js"

const header = "const ICON = {\n"

const footer = "};\n\n"

// trailer registers the icons under the "custom" prefix,
// creating the global registry if needed.
const trailer = `  async function getIcon(name) {
    return {
      path: ICON[name],
      viewBox: "0 0 24 24"
    };
  }

  window.customIconsets = window.customIconsets || { };
  window.customIconsets['custom'] = getIcon;
`

// Emit writes the javascript module for set into w.
// Path data is written as is, between single quotes : it
// is not escaped.
func Emit(w io.Writer, set Set) error {
	_, err := w.Write(render(set))
	return err
}

// WriteFile emits set into the OutputFile of dir, replacing
// any previous content, and returns the path of the file.
func WriteFile(dir string, set Set) (string, error) {
	out := filepath.Join(dir, OutputFile)
	return out, os.WriteFile(out, render(set), 0o644)
}

func render(set Set) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	for i, entry := range set {
		buf.WriteString("\t" + entry.Name + ": '" + entry.PathData + "'")
		if i < len(set)-1 { // no trailing comma on the last entry
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(footer)
	buf.WriteString(trailer)
	return buf.Bytes()
}
