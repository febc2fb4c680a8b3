// Provides extraction of the geometry of SVG icons.
// Icons are expected to hold a single top level path element,
// whose "d" attribute is returned verbatim, without compiling it.
// See iconjs/iconset for the consumer of this package.
package svgicon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoRoot is returned when the content holds no XML element at all.
	ErrNoRoot = errors.New("no root element")
	// ErrNoPath is returned when the root element has no direct path child.
	ErrNoPath = errors.New("no path element")
	// ErrNoPathData is returned when the path element has no (or an empty) d attribute.
	ErrNoPathData = errors.New("no path data")
	// ErrNotWellFormed is returned for content the XML decoder accepts
	// but which is not a well-formed document.
	ErrNotWellFormed = errors.New("xml document is not well formed")
)

// ReadPathDataStream parses the SVG document read from stream and
// returns the "d" attribute of the first child of the root element
// whose local name is "path".
// Namespace prefixes are ignored, both for the element and the attribute.
func ReadPathDataStream(stream io.Reader) (string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.PreserveDuplicateAttrs = true
	if _, err := doc.ReadFrom(stream); err != nil {
		return "", err
	}
	if err := checkDocument(doc); err != nil {
		return "", err
	}
	root := doc.Root()
	path := firstChild(root, "path")
	if path == nil {
		return "", ErrNoPath
	}
	d, ok := localAttr(path, "d")
	if !ok || d == "" {
		return "", ErrNoPathData
	}
	return d, nil
}

// ReadPathData reads the path data from the named file.
// The returned error, if any, mentions iconFile.
func ReadPathData(iconFile string) (string, error) {
	fin, err := os.Open(iconFile)
	if err != nil {
		return "", err
	}
	defer fin.Close()
	d, err := ReadPathDataStream(fin)
	if err != nil {
		return "", fmt.Errorf("svg icon %s: %w", iconFile, err)
	}
	return d, nil
}

// checkDocument rejects several root elements, text around
// the root and duplicate attributes
func checkDocument(doc *etree.Document) error {
	var roots int
	var stray bool
	for _, tok := range doc.Child {
		switch tok := tok.(type) {
		case *etree.Element:
			roots++
		case *etree.CharData:
			if strings.TrimSpace(strings.TrimPrefix(tok.Data, "\ufeff")) != "" {
				stray = true
			}
		}
	}
	switch {
	case roots == 0:
		return ErrNoRoot
	case roots > 1:
		return fmt.Errorf("%w: %d root elements", ErrNotWellFormed, roots)
	case stray:
		return fmt.Errorf("%w: text outside the root element", ErrNotWellFormed)
	}
	return checkAttrs(doc.Root())
}

func checkAttrs(el *etree.Element) error {
	seen := make(map[string]bool, len(el.Attr))
	for _, attr := range el.Attr {
		key := attr.FullKey()
		if seen[key] {
			return fmt.Errorf("%w: duplicate attribute %s on <%s>", ErrNotWellFormed, key, el.FullTag())
		}
		seen[key] = true
	}
	for _, child := range el.ChildElements() {
		if err := checkAttrs(child); err != nil {
			return err
		}
	}
	return nil
}

// firstChild only looks at the direct children of el
func firstChild(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}

func localAttr(el *etree.Element, key string) (string, bool) {
	for _, attr := range el.Attr {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}
