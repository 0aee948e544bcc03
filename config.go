package tagscan

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned by CustomScan when given an empty or nil
// format list.
var ErrInvalidArgument = errors.New("tagscan: invalid argument")

// Mode identifies which of the three scanning policies a ScanConfiguration
// encodes.
type Mode int

const (
	// FullScanMode probes every format in FullScanPriority order.
	FullScanMode Mode = iota
	// ComfortScanMode probes the formats conventional for the file's
	// extension, falling back to the full-scan order for unknown
	// extensions.
	ComfortScanMode
	// CustomScanMode probes exactly the caller-supplied format list, in
	// the given order.
	CustomScanMode
)

func (m Mode) String() string {
	switch m {
	case FullScanMode:
		return "FullScan"
	case ComfortScanMode:
		return "ComfortScan"
	case CustomScanMode:
		return "CustomScan"
	default:
		return "Unknown"
	}
}

// ScanConfiguration selects which tag formats a scan looks for. Build one
// with FullScan, ComfortScan, or CustomScan — there is no exported way to
// construct one directly, so a zero-value ScanConfiguration behaves as
// FullScan (mode's zero value is FullScanMode).
type ScanConfiguration struct {
	mode    Mode
	formats []Format
}

// FullScan returns a configuration that probes every known format, in the
// canonical priority order returned by FullScanPriority.
func FullScan() ScanConfiguration {
	return ScanConfiguration{mode: FullScanMode}
}

// ComfortScan returns a configuration that probes the formats conventional
// for a file's extension. The extension is derived from the path passed to
// Detect, not from any path given here, so one ScanConfiguration value can
// be reused across files with different extensions.
func ComfortScan() ScanConfiguration {
	return ScanConfiguration{mode: ComfortScanMode}
}

// CustomScan returns a configuration that probes exactly the given formats,
// in order. It fails with ErrInvalidArgument if formats is empty or nil.
// The stored sequence is a defensive copy, so later mutation of the
// caller's slice has no effect on the configuration.
func CustomScan(formats []Format) (ScanConfiguration, error) {
	if len(formats) == 0 {
		return ScanConfiguration{}, fmt.Errorf("tagscan: custom scan requires a non-empty format list: %w", ErrInvalidArgument)
	}
	cp := make([]Format, len(formats))
	copy(cp, formats)
	return ScanConfiguration{mode: CustomScanMode, formats: cp}, nil
}

// Mode returns the scan policy this configuration encodes.
func (c ScanConfiguration) Mode() Mode {
	return c.mode
}

// CustomFormats returns the configured format list for a CustomScanMode
// configuration, or nil for any other mode. The returned slice is a
// defensive copy; mutating it has no effect on c or on later calls.
func (c ScanConfiguration) CustomFormats() []Format {
	if c.mode != CustomScanMode {
		return nil
	}
	cp := make([]Format, len(c.formats))
	copy(cp, c.formats)
	return cp
}
