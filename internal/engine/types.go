package engine

import (
	"math"

	"github.com/modelsweep/modelsweep/internal/session"
)

// Engine push event names.
const (
	EventDataReady       = "sweep.data"
	EventScanProgress    = "sweep.scan.progress"
	EventScanComplete    = "sweep.scan.complete"
	EventCleanupComplete = "sweep.cleanup.complete"
	EventRunStart        = "sweep.run.start"
	EventRunInterrupted  = "sweep.run.interrupted"
)

// wireCandidate mirrors the engine's candidate JSON. Fields are optional on
// the wire; coercion fills safe defaults rather than propagating undefined
// values into rendering.
type wireCandidate struct {
	Name          string  `json:"name"`
	Path          string  `json:"path"`
	RelativePath  string  `json:"relative_path"`
	Directory     string  `json:"directory"`
	SizeBytes     int64   `json:"size_bytes"`
	SizeFormatted string  `json:"size_formatted"`
	ModifiedTime  float64 `json:"modified_time"`
	ModelType     string  `json:"model_type"`
	Extension     string  `json:"extension"`
	Confidence    float64 `json:"unused_confidence"`
	MatchType     string  `json:"match_type"`
}

func (w wireCandidate) toCandidate() session.Candidate {
	return session.Candidate{
		Name:          w.Name,
		Path:          w.Path,
		RelativePath:  w.RelativePath,
		Directory:     w.Directory,
		SizeBytes:     w.SizeBytes,
		SizeFormatted: w.SizeFormatted,
		ModifiedTime:  w.ModifiedTime,
		ModelType:     w.ModelType,
		Extension:     w.Extension,
		Confidence:    session.ClampConfidence(int(math.Round(w.Confidence))),
		Match:         session.ParseMatchType(w.MatchType),
	}
}

// wireDataReady mirrors the engine's gate-opening payload.
type wireDataReady struct {
	SessionID    string          `json:"id"`
	Candidates   []wireCandidate `json:"models"`
	ActionMode   string          `json:"action_mode"`
	BackupFolder string          `json:"backup_folder"`
	Locale       string          `json:"lang"`
}

// DataReady opens an AwaitingDecision session for a node.
type DataReady struct {
	SessionID    string
	Candidates   []session.Candidate
	Mode         session.ActionMode
	BackupFolder string
	Locale       string
}

// ScanProgress is a visual progress update for nodes still scanning.
type ScanProgress struct {
	Progress float64 // 0-100
}

// ScanComplete summarizes a finished analysis pass.
type ScanComplete struct {
	TotalCandidates   int     `json:"total_models"`
	FlaggedCandidates int     `json:"unused_models"`
	PotentialSavings  float64 `json:"potential_savings"` // MB
}

// CleanupComplete reports how many files the engine processed.
type CleanupComplete struct {
	ProcessedCount int `json:"processed_count"`
}
