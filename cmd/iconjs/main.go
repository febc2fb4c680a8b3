// Iconjs compiles a directory of SVG icons into a custom_icons.js
// module, registering the icons under the "custom" prefix of the
// dashboard icon loader.
//
// Usage:
//
//	iconjs -path=/config/www/icons [-preview=/tmp/icons.png]
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strings"

	"github.com/benoitkugler/iconjs/iconset"
	"github.com/benoitkugler/iconjs/svgraster"
)

var version = "dev"

func getVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

const usage = "Please provide the path using the following format:  iconjs -path=/config/www/icons/"

const exitInvalid = -1

// options are the parsed command line arguments
type options struct {
	path    string
	preview string
}

// argValue returns the value of the first argument of the form
// -name=value, the name being case insensitive.
// The value is kept verbatim, and may contain '='.
func argValue(args []string, name string) string {
	prefix := "-" + name + "="
	for _, arg := range args {
		if len(arg) >= len(prefix) && strings.EqualFold(arg[:len(prefix)], prefix) {
			return arg[len(prefix):]
		}
	}
	return ""
}

func parseArgs(args []string) options {
	return options{
		path:    argValue(args, "path"),
		preview: argValue(args, "preview"),
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) > 0 && (args[0] == "--version" || args[0] == "-v") {
		fmt.Fprintf(stdout, "iconjs %s\n", getVersion())
		return 0
	}

	opts := parseArgs(args)
	if opts.path == "" {
		fmt.Fprintln(stderr, "Path not found.")
		fmt.Fprintln(stderr, usage)
		return exitInvalid
	}
	if !iconset.IsDir(opts.path) {
		fmt.Fprintln(stderr, "Invalid path supplied.")
		fmt.Fprintln(stderr, usage)
		return exitInvalid
	}

	logger := log.New(stderr, "", 0)
	compiler := iconset.Compiler{Dir: opts.path, Out: stdout, Log: logger}
	set, err := compiler.Run()
	if errors.Is(err, iconset.ErrNoIcons) {
		fmt.Fprintln(stdout, "done")
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return exitInvalid
	}

	if opts.preview != "" && len(set) > 0 {
		failed, err := svgraster.DefaultSheet.WritePNG(opts.preview, set)
		for _, name := range failed {
			logger.Printf("Invalid path data for icon custom:%s", name)
		}
		if err != nil {
			fmt.Fprintf(stderr, "Error writing preview: %s\n", err)
			return exitInvalid
		}
		fmt.Fprintf(stdout, "Preview written to %s\n", opts.preview)
	}

	fmt.Fprintln(stdout, "done")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
