package scrub

import (
	"fmt"

	"github.com/hay-kot/scrub/internal/core/rewrite"
)

// FileResult is the outcome of processing one file.
type FileResult struct {
	Path           string            `json:"path"`
	OK             bool              `json:"ok"`
	Error          string            `json:"error,omitempty"`
	Changed        bool              `json:"changed"`
	BytesBefore    int               `json:"bytes_before"`
	BytesAfter     int               `json:"bytes_after"`
	Removals       []rewrite.Removal `json:"removals,omitempty"`
	ImportsDropped int               `json:"imports_dropped,omitempty"`
	Diff           string            `json:"diff,omitempty"`
}

// Summary is the outcome of a run.
type Summary struct {
	Mode         Mode         `json:"mode"`
	DryRun       bool         `json:"dry_run"`
	Total        int          `json:"total"`
	Succeeded    int          `json:"succeeded"`
	Failed       int          `json:"failed"`
	Changed      int          `json:"changed"`
	BytesRemoved int64        `json:"bytes_removed"`
	Files        []FileResult `json:"files"`
}

func (s *Summary) add(res FileResult) {
	s.Files = append(s.Files, res)
	if !res.OK {
		s.Failed++
		return
	}

	s.Succeeded++
	if res.Changed {
		s.Changed++
	}
	if d := res.BytesBefore - res.BytesAfter; d > 0 {
		s.BytesRemoved += int64(d)
	}
}

// Err returns a non-nil error when any file failed.
func (s Summary) Err() error {
	if s.Failed == 0 {
		return nil
	}
	return fmt.Errorf("%d file(s) failed", s.Failed)
}
