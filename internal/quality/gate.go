// Package quality decides whether a local extraction is trustworthy or the
// receipt has to be escalated to the vision backend.
package quality

import (
	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

// Thresholds for accepting a local extraction as-is.
type Thresholds struct {
	MinConfidence float64 // mean per-line confidence below this escalates
	AcceptDPI     int     // images at or above this DPI are accepted regardless
}

// Decision is the gate's verdict for one extraction attempt.
type Decision struct {
	UseTeacher  bool   // escalate to the vision backend
	RunLearning bool   // mine correction patterns from the teacher transcript
	Reason      string // short code for logs and processing notes
}

const (
	ReasonAccepted       = "accepted"
	ReasonLocalFailed    = "local_failed"
	ReasonLowConfidence  = "low_confidence"
	ReasonHighQualitySrc = "high_quality_source"
	ReasonEmptyOutput    = "empty_output"
)

// Evaluate applies the acceptance rule to a local extraction result.
//
// High-quality sources (PDFs and images scanned at or above AcceptDPI) are
// accepted on trust. Everything else is held to MinConfidence; below it the
// receipt goes to the teacher and its transcript also feeds the learner.
func Evaluate(file extract.FileMeta, res extract.Result, th Thresholds) Decision {
	// A failed or empty local pass escalates without a learning run: there
	// is no weak transcript to diff against the teacher's, so the miner
	// would have nothing to pair.
	if res.Failed() {
		return Decision{UseTeacher: true, RunLearning: false, Reason: ReasonLocalFailed}
	}
	if len(res.Lines) == 0 {
		return Decision{UseTeacher: true, RunLearning: false, Reason: ReasonEmptyOutput}
	}

	dpi := file.DPI
	if res.Meta.DPI > 0 {
		dpi = res.Meta.DPI
	}
	if file.Format == constants.PDF || dpi >= th.AcceptDPI {
		return Decision{Reason: ReasonHighQualitySrc}
	}

	if res.MeanConfidence() < th.MinConfidence {
		return Decision{UseTeacher: true, RunLearning: true, Reason: ReasonLowConfidence}
	}
	return Decision{Reason: ReasonAccepted}
}
