// Package grouping reconciles independently fetched uploads, individual
// analyses and batch analyses into display groups, so that a batch result is
// never listed next to the individual analyses that fed it.
package grouping

import (
	"sort"
	"time"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
)

const (
	chatAnalysisTitle = "Chat Analysis"
	batchIDPrefixLen  = 8
)

type Kind string

const (
	KindIndividual Kind = "individual"
	KindBatch      Kind = "batch"
)

// Analysis is the primary entry of a group: either an Individual or a Batch.
// Consumers are expected to type switch on it.
type Analysis interface {
	Kind() Kind
	AnalysisID() string
	Created() time.Time
	isAnalysis()
}

// Individual is an IndividualAnalysis joined with what is known about its upload.
type Individual struct {
	Record   domain.IndividualAnalysis
	Title    string
	FileName string
	Status   domain.UploadStatus
	BatchID  *string
}

func (Individual) Kind() Kind { return KindIndividual }
func (i Individual) AnalysisID() string { return i.Record.ID }
func (i Individual) Created() time.Time { return i.Record.CreatedAt }
func (Individual) isAnalysis() {}

type Batch struct {
	Record domain.BatchAnalysis
	Title  string
}

func (Batch) Kind() Kind { return KindBatch }
func (b Batch) AnalysisID() string { return b.Record.ID }
func (b Batch) Created() time.Time { return b.Record.CreatedAt }
func (Batch) isAnalysis() {}

// AnalysisGroup is rebuilt on every fetch and never persisted.
type AnalysisGroup struct {
	ID           string
	Title        string
	Primary      Analysis
	Related      []Individual
	LatestDate   time.Time
	TotalUploads int
}

// Group builds one group per batch analysis, holding the individual analyses
// of that batch's uploads, and one standalone group per remaining individual
// analysis. Groups come back newest first; equal timestamps keep no
// particular order.
func Group(uploads []domain.Upload, individual []domain.IndividualAnalysis, batches []domain.BatchAnalysis) []AnalysisGroup {
	uploadsByID := make(map[string]domain.Upload, len(uploads))
	uploadsByBatch := make(map[string][]domain.Upload)
	for _, u := range uploads {
		uploadsByID[u.ID] = u
		if u.BatchID != nil {
			uploadsByBatch[*u.BatchID] = append(uploadsByBatch[*u.BatchID], u)
		}
	}

	individualByBatch := make(map[string][]domain.IndividualAnalysis)
	for _, ia := range individual {
		if u, ok := uploadsByID[ia.UploadID]; ok && u.BatchID != nil {
			individualByBatch[*u.BatchID] = append(individualByBatch[*u.BatchID], ia)
		}
	}

	consumed := make(map[string]struct{}, len(individual))
	groups := make([]AnalysisGroup, 0, len(batches)+len(individual))

	for _, b := range batches {
		members := uploadsByBatch[b.BatchID]

		related := make([]Individual, 0, len(individualByBatch[b.BatchID]))
		for _, ia := range individualByBatch[b.BatchID] {
			if _, done := consumed[ia.ID]; done {
				continue
			}
			consumed[ia.ID] = struct{}{}
			related = append(related, toIndividual(ia, uploadsByID))
		}

		title := batchTitle(b.BatchID, members)
		groups = append(groups, AnalysisGroup{
			ID:           b.ID,
			Title:        title,
			Primary:      Batch{Record: b, Title: title},
			Related:      related,
			LatestDate:   b.CreatedAt,
			TotalUploads: len(members),
		})
	}

	for _, ia := range individual {
		if _, done := consumed[ia.ID]; done {
			continue
		}
		view := toIndividual(ia, uploadsByID)
		groups = append(groups, AnalysisGroup{
			ID:           ia.ID,
			Title:        view.Title,
			Primary:      view,
			Related:      []Individual{},
			LatestDate:   ia.CreatedAt,
			TotalUploads: 1,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].LatestDate.After(groups[j].LatestDate)
	})
	return groups
}

func toIndividual(ia domain.IndividualAnalysis, uploadsByID map[string]domain.Upload) Individual {
	u, ok := uploadsByID[ia.UploadID]
	if !ok {
		return Individual{
			Record: ia,
			Title:  chatAnalysisTitle,
			Status: domain.UploadCompleted,
		}
	}
	return Individual{
		Record:   ia,
		Title:    u.FileName,
		FileName: u.FileName,
		Status:   u.Status,
		BatchID:  u.BatchID,
	}
}

func batchTitle(batchID string, members []domain.Upload) string {
	if len(members) == 0 {
		return "Batch " + TruncateID(batchID)
	}
	return "Batch: " + members[0].FileName
}

// TruncateID shortens an identifier for display.
func TruncateID(id string) string {
	if len(id) <= batchIDPrefixLen {
		return id
	}
	return id[:batchIDPrefixLen]
}
