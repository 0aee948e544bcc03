package tagscan

import "sync"

// BatchOptions configures DetectBatch's optional parallelism. The zero
// value runs sequentially, matching the spec's "no concurrency mandated"
// default.
type BatchOptions struct {
	// Concurrency is the maximum number of files scanned at once. Values
	// less than 2 run sequentially.
	Concurrency int
}

// BatchResult pairs a scanned path with its outcome: the detected regions,
// or the error that prevented detection (typically ErrFileAccess). A
// failure on one path never prevents the others from being processed.
type BatchResult struct {
	Path    string
	Regions []Region
	Err     error
}

// DetectBatch scans every path in paths with the same ScanConfiguration,
// returning one BatchResult per input path in input order. A per-file
// failure is recorded on that file's result only; it never aborts the
// batch or reorders other results.
func DetectBatch(paths []string, cfg ScanConfiguration, opts ...BatchOptions) []BatchResult {
	var o BatchOptions
	if len(opts) > 0 {
		o = opts[0]
	}

	results := make([]BatchResult, len(paths))

	if o.Concurrency < 2 {
		for i, p := range paths {
			regions, err := Detect(p, cfg)
			results[i] = BatchResult{Path: p, Regions: regions, Err: err}
		}
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < o.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				regions, err := Detect(paths[i], cfg)
				results[i] = BatchResult{Path: paths[i], Regions: regions, Err: err}
			}
		}()
	}
	for i := range paths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
