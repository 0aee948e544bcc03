/*
The tagscan tool reports the metadata tag regions found in a single audio
file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/scanlib/tagscan"
)

var (
	mode   string
	custom string
)

var usage = func() {
	fmt.Fprintf(os.Stderr, "usage: %s [optional flags] filename\n", os.Args[0])
	flag.PrintDefaults()
}

func init() {
	flag.StringVar(&mode, "mode", "comfort", "scan mode: full, comfort, or custom")
	flag.StringVar(&custom, "formats", "", "comma-separated format list for -mode=custom")
	flag.Usage = usage
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	path := flag.Arg(0)

	cfg, err := resolveConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building scan configuration: %v\n", err)
		os.Exit(1)
	}

	regions, err := tagscan.Detect(path, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error scanning %s: %v\n", path, err)
		os.Exit(1)
	}

	if len(regions) == 0 {
		fmt.Println("no tag regions found")
		return
	}
	for _, r := range regions {
		fmt.Printf("%-32s offset=%-10d size=%d\n", r.Format, r.Offset, r.Size)
	}
}

func resolveConfig(path string) (tagscan.ScanConfiguration, error) {
	switch mode {
	case "full":
		return tagscan.FullScan(), nil
	case "custom":
		formats, err := parseFormats(custom)
		if err != nil {
			return tagscan.ScanConfiguration{}, err
		}
		return tagscan.CustomScan(formats)
	default:
		return tagscan.ComfortScan(), nil
	}
}

// parseFormats splits a comma-separated -formats value into Format values,
// matching each entry against the package's stable display names (e.g.
// "ID3v2.3", "RIFF-INFO").
func parseFormats(s string) ([]tagscan.Format, error) {
	known := make(map[tagscan.Format]bool)
	for _, f := range tagscan.FullScanPriority() {
		known[f] = true
	}
	var out []tagscan.Format
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f := tagscan.Format(name)
		if !known[f] {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		out = append(out, f)
	}
	return out, nil
}
