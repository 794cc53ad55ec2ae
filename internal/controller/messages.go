package controller

import "github.com/Rorical/RoriSense/internal/models"

// AnalysisDoneMsg carries the outcome of one request back to the update loop.
type AnalysisDoneMsg struct {
	RequestID  string
	Generation uint64
	Result     *models.AnalysisResult
	Err        error
}

// BarFillMsg fires after FillDelay to move the bars to their final values.
type BarFillMsg struct {
	Generation uint64
	Positive   float64
	Negative   float64
}
