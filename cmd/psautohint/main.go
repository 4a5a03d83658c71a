// Command psautohint hints a single glyph outline given in bez format
// against a fontinfo text blob, and prints the hinted bez to stdout (or
// a file, if -out is given). Grounded on the teacher's cmd/dumpfont
// structure: flag parsing, a read-parse-act-report shape, exit code 1
// on any failure.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/appleboy/psautohint/autohint"
	"github.com/appleboy/psautohint/bez"
	"github.com/appleboy/psautohint/fontinfo"
	"github.com/appleboy/psautohint/report"
)

var (
	bezFile      = flag.String("bez", "", "filename of the glyph outline to hint (bez format)")
	fontInfoFile = flag.String("fontinfo", "", "filename of the fontinfo blob describing this font's zones and stems")
	outFile      = flag.String("out", "", "filename to write the hinted bez to (default: stdout)")
	glyphName    = flag.String("name", "", "glyph name, used only in reported diagnostics")
	allowEdit    = flag.Bool("edit", true, "allow structural path edits (flex detection, smoothing)")
	allowSubst   = flag.Bool("subst", true, "allow hint substitution across the glyph")
)

func main() {
	flag.Parse()

	if *bezFile == "" {
		fmt.Fprintln(os.Stderr, "psautohint: -bez is required")
		os.Exit(1)
	}

	bezData, err := os.ReadFile(*bezFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psautohint: reading %s: %v\n", *bezFile, err)
		os.Exit(1)
	}

	path, err := bez.Parse(string(bezData))
	if err != nil {
		fmt.Fprintf(os.Stderr, "psautohint: parsing %s: %v\n", *bezFile, err)
		os.Exit(1)
	}

	var fi *fontinfo.FontInfo
	if *fontInfoFile != "" {
		fiData, err := os.ReadFile(*fontInfoFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "psautohint: reading %s: %v\n", *fontInfoFile, err)
			os.Exit(1)
		}
		fi, err = fontinfo.ParseFontInfo(string(fiData))
		if err != nil {
			fmt.Fprintf(os.Stderr, "psautohint: parsing %s: %v\n", *fontInfoFile, err)
			os.Exit(1)
		}
	}

	obs := report.NewLogObserver(log.New(os.Stderr, "psautohint: ", 0))
	opts := autohint.Options{AllowEdit: *allowEdit, AllowHintSub: *allowSubst}
	ctx := autohint.NewContext(fi, opts, obs).Name(*glyphName)

	result, err := ctx.Hint(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "psautohint: hinting %s: %v\n", *glyphName, err)
		os.Exit(1)
	}

	out := bez.EmitHinted(path, result.Sets)
	if *outFile == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(*outFile, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "psautohint: writing %s: %v\n", *outFile, err)
		os.Exit(1)
	}
}
