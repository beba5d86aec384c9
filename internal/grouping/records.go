package grouping

import (
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
)

// The methods below let an AnalysisGroup be filtered and sorted by package
// filters through its primary analysis.

func (g AnalysisGroup) FilterID() string { return g.ID }

func (g AnalysisGroup) FilterName() string { return g.Title }

func (g AnalysisGroup) FilterDate() time.Time { return g.LatestDate }

func (g AnalysisGroup) FilterType() string {
	switch p := g.Primary.(type) {
	case Individual:
		return p.Record.AnalysisType
	case Batch:
		return p.Record.AnalysisType
	}
	return ""
}

func (g AnalysisGroup) FilterFileName() string {
	switch p := g.Primary.(type) {
	case Individual:
		return p.FileName
	case Batch:
		return p.Title
	}
	return ""
}

func (g AnalysisGroup) FilterStatus() string {
	switch p := g.Primary.(type) {
	case Individual:
		return string(p.Status)
	case Batch:
		return string(domain.UploadCompleted)
	}
	return ""
}

func (g AnalysisGroup) FilterConfidence() float64 {
	switch p := g.Primary.(type) {
	case Individual:
		return p.Record.Confidence
	case Batch:
		return p.Record.Confidence
	}
	return 0
}
