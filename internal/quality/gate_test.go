package quality

import (
	"testing"

	"github.com/codemarcinu/pantry-tracker/constants"
	"github.com/codemarcinu/pantry-tracker/internal/extract"
)

func linesWithConfidence(confs ...float64) []extract.Line {
	lines := make([]extract.Line, len(confs))
	for i, c := range confs {
		lines[i] = extract.Line{Text: "line", Confidence: c}
	}
	return lines
}

func TestEvaluate(t *testing.T) {
	th := Thresholds{MinConfidence: 0.8, AcceptDPI: 300}

	tests := []struct {
		name        string
		file        extract.FileMeta
		res         extract.Result
		wantTeacher bool
		wantLearn   bool
		wantReason  string
	}{
		{
			name:       "pdf accepted regardless of confidence",
			file:       extract.FileMeta{Format: constants.PDF},
			res:        extract.Result{Lines: linesWithConfidence(0.3, 0.4)},
			wantReason: ReasonHighQualitySrc,
		},
		{
			name:       "high dpi image accepted regardless of confidence",
			file:       extract.FileMeta{Format: constants.IMAGE, DPI: 300},
			res:        extract.Result{Lines: linesWithConfidence(0.5)},
			wantReason: ReasonHighQualitySrc,
		},
		{
			name:       "engine-probed dpi wins over file meta",
			file:       extract.FileMeta{Format: constants.IMAGE, DPI: 72},
			res:        extract.Result{Lines: linesWithConfidence(0.5), Meta: extract.Meta{DPI: 600}},
			wantReason: ReasonHighQualitySrc,
		},
		{
			name:       "low dpi with good confidence accepted",
			file:       extract.FileMeta{Format: constants.IMAGE, DPI: 150},
			res:        extract.Result{Lines: linesWithConfidence(0.9, 0.85)},
			wantReason: ReasonAccepted,
		},
		{
			name:        "low dpi low confidence escalates and learns",
			file:        extract.FileMeta{Format: constants.IMAGE, DPI: 150},
			res:         extract.Result{Lines: linesWithConfidence(0.6, 0.7)},
			wantTeacher: true,
			wantLearn:   true,
			wantReason:  ReasonLowConfidence,
		},
		{
			name:        "confidence exactly at threshold accepted",
			file:        extract.FileMeta{Format: constants.IMAGE, DPI: 150},
			res:         extract.Result{Lines: linesWithConfidence(0.8)},
			wantReason:  ReasonAccepted,
		},
		{
			name:        "local failure escalates without learning",
			file:        extract.FileMeta{Format: constants.IMAGE},
			res:         extract.Result{Failure: &extract.Failure{Reason: extract.ReasonTimeout}},
			wantTeacher: true,
			wantReason:  ReasonLocalFailed,
		},
		{
			name:        "empty output escalates without learning",
			file:        extract.FileMeta{Format: constants.IMAGE, DPI: 600},
			res:         extract.Result{},
			wantTeacher: true,
			wantReason:  ReasonEmptyOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.file, tt.res, th)
			if got.UseTeacher != tt.wantTeacher {
				t.Errorf("UseTeacher = %v, want %v", got.UseTeacher, tt.wantTeacher)
			}
			if got.RunLearning != tt.wantLearn {
				t.Errorf("RunLearning = %v, want %v", got.RunLearning, tt.wantLearn)
			}
			if got.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", got.Reason, tt.wantReason)
			}
		})
	}
}
