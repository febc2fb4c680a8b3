package iconset

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	for _, test := range []struct {
		fileName, name string
	}{
		{"Home-2.svg", "home"},
		{"ARROW_UP.svg", "arrowup"},
		{"123.svg", ""},
		{"home", "home"},
		{"fan.svg.svg", "fan"},
		{"light.svg-bak.svg", "light"},
		{"my icon (v2).svg", "myiconv"},
		{"Épée.svg", "épée"},
		{"ΟΔΟΣ.svg", "οδος"},
		{"İstanbul.svg", "istanbul"},
		{"ǅemal.svg", "ǆemal"},
		{"/some/dir/Bulb_On.svg", "bulbon"},
	} {
		name := NormalizeName(test.fileName)
		if name != test.name {
			t.Errorf("NormalizeName(%q): expected %q, got %q", test.fileName, test.name, name)
		}
		if again := NormalizeName(name); again != name {
			t.Errorf("NormalizeName is not idempotent on %q: %q", name, again)
		}
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.svg":      "",
		"a.svg":      "",
		"c.SVG.txt":  "",
		"notes.txt":  "",
		"d.svg.orig": "",
	})
	if err := os.Mkdir(filepath.Join(dir, "folder.svg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFiles(t, filepath.Join(dir, "sub"), map[string]string{"nested.svg": ""})

	files, err := Scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{filepath.Join(dir, "a.svg"), filepath.Join(dir, "b.svg")}
	if !reflect.DeepEqual(files, expected) {
		t.Errorf("expected %v, got %v", expected, files)
	}

	if _, err := Scan(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error on missing directory")
	}
}

func TestEmit(t *testing.T) {
	set := Set{
		{Name: "home", PathData: "M1 2"},
		{Name: "", PathData: "M3 4"},
		{Name: "home", PathData: "M5'6"},
	}
	var buf bytes.Buffer
	if err := Emit(&buf, set); err != nil {
		t.Fatal(err)
	}
	expected := "const ICON = {\n" +
		"\thome: 'M1 2',\n" +
		"\t: 'M3 4',\n" +
		"\thome: 'M5'6'\n" +
		"};\n\n" + trailer
	if got := buf.String(); got != expected {
		t.Errorf("unexpected output:\n%s\nexpected:\n%s", got, expected)
	}
}

func TestEmitCommas(t *testing.T) {
	for n := 0; n < 5; n++ {
		var set Set
		for i := 0; i < n; i++ {
			set = append(set, Entry{Name: "icon", PathData: "M0 0"})
		}
		var buf bytes.Buffer
		if err := Emit(&buf, set); err != nil {
			t.Fatal(err)
		}
		var withComma, entries int
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.HasPrefix(line, "\ticon:") {
				continue
			}
			entries++
			if strings.HasSuffix(line, ",") {
				withComma++
			}
		}
		if entries != n {
			t.Errorf("expected %d entries, got %d", n, entries)
		}
		if n > 0 && withComma != n-1 {
			t.Errorf("expected %d lines with comma, got %d", n-1, withComma)
		}
	}
}

func TestWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{OutputFile: strings.Repeat("stale content\n", 100)})

	out, err := WriteFile(dir, Set{{Name: "a", PathData: "M0 0"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "stale") {
		t.Error("previous content should be replaced")
	}
	if !strings.HasPrefix(string(b), "const ICON = {\n\ta: 'M0 0'\n};") {
		t.Errorf("unexpected content %s", b)
	}
}

func newTestCompiler(dir string) (*Compiler, *bytes.Buffer, *bytes.Buffer) {
	var out, logs bytes.Buffer
	return &Compiler{Dir: dir, Out: &out, Log: log.New(&logs, "", 0)}, &out, &logs
}

func TestCompilerNoIcons(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.md": "icons"})

	c, out, _ := newTestCompiler(dir)
	set, err := c.Run()
	if !errors.Is(err, ErrNoIcons) {
		t.Fatalf("expected ErrNoIcons, got %v", err)
	}
	if len(set) != 0 {
		t.Errorf("unexpected entries %v", set)
	}
	if !strings.Contains(out.String(), "No svgs found.") {
		t.Errorf("missing report in %q", out.String())
	}
	if _, err := os.Stat(filepath.Join(dir, OutputFile)); !os.IsNotExist(err) {
		t.Error("output file should not be created")
	}
}

func TestCompiler(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"home.svg":     `<svg><path d="M1 2"/></svg>`,
		"bad.svg":      "not an svg",
		"Light-2.svg":  `<svg xmlns="http://www.w3.org/2000/svg"><title>light</title><path d="M3 4Z"/></svg>`,
		"nopath.svg":   `<svg><g><path d="M0 0"/></g></svg>`,
		"zzz-last.svg": `<svg><circle r="1"/></svg>`,
	})

	c, out, logs := newTestCompiler(dir)
	set, err := c.Run()
	if err != nil {
		t.Fatal(err)
	}
	expected := Set{{Name: "light", PathData: "M3 4Z"}, {Name: "home", PathData: "M1 2"}}
	if !reflect.DeepEqual(set, expected) {
		t.Errorf("expected %v, got %v", expected, set)
	}

	for _, file := range []string{"Light-2.svg", "bad.svg", "home.svg", "nopath.svg", "zzz-last.svg"} {
		if !strings.Contains(out.String(), "Processing "+file+" - custom:") {
			t.Errorf("missing progress line for %s", file)
		}
	}
	for _, file := range []string{"bad.svg", "nopath.svg", "zzz-last.svg"} {
		if !strings.Contains(logs.String(), "Error while reading file: "+filepath.Join(dir, file)) {
			t.Errorf("missing error for %s in %s", file, logs.String())
		}
	}

	b, err := os.ReadFile(filepath.Join(dir, OutputFile))
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)
	if !strings.Contains(content, "\thome: 'M1 2'\n") {
		t.Errorf("missing last entry (without comma) in %s", content)
	}
	if !strings.Contains(content, "\tlight: 'M3 4Z',\n") {
		t.Errorf("missing entry in %s", content)
	}
	if strings.Contains(content, "bad") {
		t.Error("failed icons should not be emitted")
	}
	if !strings.HasSuffix(content, trailer) {
		t.Error("missing trailer")
	}
}
