package crawl

import "fmt"

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressYearStarted ProgressType = iota
	ProgressPageCompleted
	ProgressItemFailed
	ProgressYearCompleted
	ProgressFinished
)

// ProgressEvent reports progress during a ranking run.
type ProgressEvent struct {
	Type  ProgressType
	Year  int
	Page  int
	Slug  string
	Films int // films kept so far (page events) or ranked (year events)
	Error error
}

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Message renders the event as a human-readable status line.
func (e ProgressEvent) Message() string {
	switch e.Type {
	case ProgressYearStarted:
		return fmt.Sprintf("Fetching rankings for year %d...", e.Year)
	case ProgressPageCompleted:
		return fmt.Sprintf("Year %d: page %d done, %d films qualify so far", e.Year, e.Page, e.Films)
	case ProgressItemFailed:
		return fmt.Sprintf("Year %d: skipped %s: %v", e.Year, e.Slug, e.Error)
	case ProgressYearCompleted:
		return fmt.Sprintf("Year %d: ranked %d films", e.Year, e.Films)
	case ProgressFinished:
		return fmt.Sprintf("Rankings fetched successfully! %d films ranked.", e.Films)
	default:
		return ""
	}
}
