package iconset

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/benoitkugler/iconjs/svgicon"
)

// ErrNoIcons is returned by Compiler.Run when the directory
// holds no SVG file. It is not a failure : nothing is written.
var ErrNoIcons = errors.New("no svgs found")

// Compiler sequences the compilation of one directory.
type Compiler struct {
	Dir string

	Out io.Writer   // progress lines, defaults to os.Stdout
	Log *log.Logger // per file errors, defaults to stderr
}

func (c *Compiler) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Compiler) logger() *log.Logger {
	if c.Log == nil {
		return log.New(os.Stderr, "", 0)
	}
	return c.Log
}

// Run scans the directory, extracts the path data of every icon
// and writes the OutputFile. Icons which can't be read are logged
// and skipped.
// If the directory has no SVG, ErrNoIcons is returned and
// the output file is left untouched.
func (c *Compiler) Run() (Set, error) {
	files, err := Scan(c.Dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		fmt.Fprintln(c.out(), "No svgs found.")
		return nil, ErrNoIcons
	}

	var set Set
	for _, file := range files {
		entry, ok := c.compile(file)
		if ok {
			set = append(set, entry)
		}
	}

	if _, err = WriteFile(c.Dir, set); err != nil {
		return set, err
	}
	return set, nil
}

func (c *Compiler) compile(file string) (Entry, bool) {
	fileName := filepath.Base(file)
	name := NormalizeName(fileName)
	fmt.Fprintf(c.out(), "Processing %s - custom:%s\n", fileName, name)

	d, err := svgicon.ReadPathData(file)
	if err != nil {
		logger := c.logger()
		logger.Println(err)
		logger.Printf("Error while reading file: %s", file)
		return Entry{}, false
	}
	return Entry{Name: name, PathData: d}, true
}
