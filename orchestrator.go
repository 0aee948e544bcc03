package tagscan

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/scanlib/tagscan/internal/tlog"
)

// Detect scans a single file and returns every tag region matching cfg's
// resolved format set. It returns ErrFileAccess if the file cannot be
// opened; otherwise it always returns, even for a file with no
// recognizable tags (an empty slice, not an error).
func Detect(path string, cfg ScanConfiguration) ([]Region, error) {
	targets := resolveTargets(path, cfg)
	targetSet := make(map[Format]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	f, bufs, length, err := openBuffers(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var regions []Region
	for _, s := range strategiesFor(targets) {
		if !s.canDetect(bufs) {
			continue
		}
		regions = append(regions, detectSafely(s, f, bufs, length)...)
	}

	var out []Region
	for _, r := range regions {
		if targetSet[r.Format] {
			out = append(out, r)
		}
	}
	return out, nil
}

// detectSafely invokes a strategy's detect, recovering from any panic so
// that one misbehaving strategy can never abort the scan or take down the
// caller — the orchestrator-level backstop for the "no strategy may abort
// the scan" rule.
func detectSafely(s strategy, f *os.File, bufs FileBuffers, length int64) (regions []Region) {
	defer func() {
		if r := recover(); r != nil {
			tlog.Errorf("strategy panicked, skipping: %v", r)
			regions = nil
		}
	}()
	return s.detect(f, bufs, length)
}

func resolveTargets(path string, cfg ScanConfiguration) []Format {
	switch cfg.Mode() {
	case CustomScanMode:
		return cfg.CustomFormats()
	case ComfortScanMode:
		ext := strings.TrimPrefix(filepath.Ext(path), ".")
		return ComfortScanPriority(ext)
	default:
		return FullScanPriority()
	}
}
