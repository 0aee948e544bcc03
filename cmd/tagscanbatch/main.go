/*
The tagscanbatch tool scans a directory tree of audio files and reports
how many tag regions of each format were found. The whole tree is scanned
first; a progress bar then advances once per file as the results are
tallied, so it does not move while the scan itself runs.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/scanlib/tagscan"
)

var (
	root        string
	concurrency int
)

func init() {
	flag.StringVar(&root, "path", "", "path to directory containing audio files")
	flag.IntVar(&concurrency, "concurrency", 4, "number of files scanned concurrently")
}

func main() {
	flag.Parse()

	if root == "" {
		fmt.Println("you must specify -path")
		flag.Usage()
		os.Exit(1)
	}

	paths, err := walkPath(root)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	bar := progressbar.Default(int64(len(paths)), "scanning")

	results := tagscan.DetectBatch(paths, tagscan.ComfortScan(), tagscan.BatchOptions{Concurrency: concurrency})

	counts := make(map[tagscan.Format]int)
	var accessErrors int
	for _, r := range results {
		bar.Add(1)
		if r.Err != nil {
			accessErrors++
			continue
		}
		for _, region := range r.Regions {
			counts[region.Format]++
		}
	}

	fmt.Println()
	fmt.Printf("scanned %d files (%d unreadable)\n", len(results), accessErrors)
	for _, f := range tagscan.FullScanPriority() {
		if n := counts[f]; n > 0 {
			fmt.Printf("%-32s %d\n", f, n)
		}
	}
}

func walkPath(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	return paths, err
}
