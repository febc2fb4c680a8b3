// Compiles a directory of SVG icons into a javascript
// module registering them as a custom icon set, in the format
// expected by the dashboard custom icon loader.
package iconset

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry binds a normalized name to the raw path data of an icon.
type Entry struct {
	Name     string
	PathData string
}

// Set is a list of entries, in directory listing order.
// Names are not deduplicated : the last entry wins once the
// generated object literal is evaluated.
type Set []Entry

// Scan returns the files matching *.svg directly inside dir
// (sub directories are not visited), in lexical order.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if ok, _ := filepath.Match("*.svg", entry.Name()); !ok {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		if isRegular(file) { // follows symlinks
			files = append(files, file)
		}
	}
	return files, nil
}

// NormalizeName derives an icon name from a file name :
// everything from the first ".svg" onward is dropped, then
// the name is lower-cased and only letters are kept.
// The result may be empty, for instance for "123.svg".
func NormalizeName(fileName string) string {
	fileName = filepath.Base(fileName)
	if i := strings.Index(fileName, ".svg"); i >= 0 {
		fileName = fileName[:i]
	}
	// lower casing may produce marks, such as the dot of "İ"
	lowered := cases.Lower(language.Und).String(fileName)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, lowered)
}
