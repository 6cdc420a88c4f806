package session

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// MatchType describes how the analysis engine tied a candidate to (or failed
// to tie it to) a workflow reference.
type MatchType int

const (
	MatchExact MatchType = iota
	MatchPartial
	MatchFuzzy
	MatchPath
)

// ParseMatchType maps a wire tag onto a MatchType. Unknown tags fall back to
// MatchFuzzy, the engine's own default for low-signal matches.
func ParseMatchType(tag string) MatchType {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "exact":
		return MatchExact
	case "partial":
		return MatchPartial
	case "path":
		return MatchPath
	default:
		return MatchFuzzy
	}
}

func (m MatchType) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPartial:
		return "partial"
	case MatchPath:
		return "path"
	default:
		return "fuzzy"
	}
}

// ActionMode selects what happens to confirmed candidates on the engine side.
type ActionMode int

const (
	ModeDryRun ActionMode = iota
	ModeBackup
	ModeRecycleBin
)

// ParseActionMode maps the engine's mode tag onto an ActionMode. Unknown tags
// degrade to dry run, the only mode that cannot destroy data.
func ParseActionMode(tag string) ActionMode {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "move_to_backup", "backup":
		return ModeBackup
	case "move_to_recycle_bin", "recycle_bin":
		return ModeRecycleBin
	default:
		return ModeDryRun
	}
}

func (m ActionMode) String() string {
	switch m {
	case ModeBackup:
		return "move_to_backup"
	case ModeRecycleBin:
		return "move_to_recycle_bin"
	default:
		return "dry_run"
	}
}

// LabelKey returns the i18n key for the mode's display label.
func (m ActionMode) LabelKey() string {
	switch m {
	case ModeBackup:
		return "mode.backup"
	case ModeRecycleBin:
		return "mode.recycle_bin"
	default:
		return "mode.dry_run"
	}
}

// Candidate is one item flagged by the analysis engine. Immutable once
// received; for the lifetime of a session it is identified by its position
// in the candidate list.
type Candidate struct {
	Name          string
	Directory     string
	Path          string
	RelativePath  string
	SizeBytes     int64
	SizeFormatted string
	ModifiedTime  float64
	ModelType     string
	Extension     string
	Confidence    int
	Match         MatchType
}

// DisplaySize prefers the engine's preformatted size and falls back to a
// humanized byte count.
func (c Candidate) DisplaySize() string {
	if c.SizeFormatted != "" {
		return c.SizeFormatted
	}
	if c.SizeBytes <= 0 {
		return ""
	}
	return humanize.IBytes(uint64(c.SizeBytes))
}

// ClampConfidence bounds a raw confidence score into [0, 100].
func ClampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
