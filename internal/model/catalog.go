package model

// AggregatedMonth is a month merged with its resolved videos and notes.
// Built fresh per catalog request, never persisted.
type AggregatedMonth struct {
	Month
	Videos []Video `json:"videos"`
	Notes  []Note  `json:"notes"`
}

// AggregatedClass is the catalog aggregator's sole output: a class with its
// months in chronological order, each carrying its own content.
type AggregatedClass struct {
	Class
	Months []AggregatedMonth `json:"months"`
}

// PreviewVideoCount is how many videos a collapsed month exposes. Display
// truncation only; it has nothing to do with the free/paid distinction.
const PreviewVideoCount = 3

// Preview returns the first PreviewVideoCount videos by array position.
func (m *AggregatedMonth) Preview() []Video {
	if len(m.Videos) <= PreviewVideoCount {
		return m.Videos
	}
	return m.Videos[:PreviewVideoCount]
}
