package tagscan

// registry maps every known Format to the single strategy instance that
// can detect it. Built once at package init; read-only for the life of
// the process, so it is safe to share across concurrent scans.
var registry = map[Format]strategy{}

func init() {
	strategies := []strategy{
		id3v1Strategy{},
		id3v2Strategy{},
		apeStrategy{},
		vorbisStrategy{},
		flacAppStrategy{},
		mp4Strategy{},
		riffStrategy{},
		aiffStrategy{},
		lyrics3Strategy{},
		asfStrategy{},
		matroskaStrategy{},
		dsdStrategy{},
		ttaStrategy{},
		wavpackStrategy{},
	}

	for _, s := range strategies {
		for _, f := range s.supportedFormats() {
			if existing, ok := registry[f]; ok {
				panic("tagscan: format " + string(f) + " claimed by more than one strategy: " +
					formatStrategyName(existing) + " and " + formatStrategyName(s))
			}
			registry[f] = s
		}
	}

	for _, f := range allFormats {
		if _, ok := registry[f]; !ok {
			panic("tagscan: format " + string(f) + " has no registered strategy")
		}
	}
}

// formatStrategyName is used only to build a readable panic message; the
// registry's invariant (every format claimed by exactly one strategy) is
// meant to be caught at init time during development, never in normal
// operation.
func formatStrategyName(s strategy) string {
	switch s.(type) {
	case id3v1Strategy:
		return "id3v1Strategy"
	case id3v2Strategy:
		return "id3v2Strategy"
	case apeStrategy:
		return "apeStrategy"
	case vorbisStrategy:
		return "vorbisStrategy"
	case flacAppStrategy:
		return "flacAppStrategy"
	case mp4Strategy:
		return "mp4Strategy"
	case riffStrategy:
		return "riffStrategy"
	case aiffStrategy:
		return "aiffStrategy"
	case lyrics3Strategy:
		return "lyrics3Strategy"
	case asfStrategy:
		return "asfStrategy"
	case matroskaStrategy:
		return "matroskaStrategy"
	case dsdStrategy:
		return "dsdStrategy"
	case ttaStrategy:
		return "ttaStrategy"
	case wavpackStrategy:
		return "wavpackStrategy"
	default:
		return "unknown strategy"
	}
}

// strategiesFor returns the unique strategies covering formats, in
// first-appearance order, so that "one call per strategy per file" holds
// regardless of how many of a strategy's formats were requested.
func strategiesFor(formats []Format) []strategy {
	seen := make(map[Format]bool, len(formats))
	var out []strategy
	for _, f := range formats {
		s, ok := registry[f]
		if !ok {
			continue
		}
		covered := false
		for _, sf := range s.supportedFormats() {
			if seen[sf] {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		for _, sf := range s.supportedFormats() {
			seen[sf] = true
		}
		out = append(out, s)
	}
	return out
}
