package models

// ViewState is the single visible state of the analysis screen.
// Exactly one of the loading, results and error sections is shown outside Idle.
type ViewState int

const (
	Idle ViewState = iota
	Loading
	Results
	Error
)

func (s ViewState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Results:
		return "Results"
	case Error:
		return "Error"
	}
	return "Unknown"
}

// Section identifies one of the mutually exclusive output panels.
type Section int

const (
	SectionLoading Section = iota
	SectionResults
	SectionError
)

// Sections lists every output panel in render order.
var Sections = []Section{SectionLoading, SectionResults, SectionError}

func (s Section) String() string {
	switch s {
	case SectionLoading:
		return "loading"
	case SectionResults:
		return "results"
	case SectionError:
		return "error"
	}
	return "unknown"
}

// Field identifies a text element bound by the controller.
type Field int

const (
	FieldSentimentIcon Field = iota
	FieldSentimentLabel
	FieldConfidence
	FieldOriginalText
	FieldErrorTitle
	FieldErrorMessage
)

// Bar identifies a probability bar.
type Bar int

const (
	BarPositive Bar = iota
	BarNegative
)

// Tone colours the sentiment icon and label.
type Tone int

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneNegative
)
