package analyses

import (
	"context"
	"net/http"

	"github.com/mattedesign/figmant-759992b3-sub008/internal/domain"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/dto"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/filters"
	"github.com/mattedesign/figmant-759992b3-sub008/internal/grouping"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/auth"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/utils"
	"github.com/mattedesign/figmant-759992b3-sub008/pkg/validate"
)

//go:generate mockgen -source=analyses.go -destination=mock_analyses.go -package=analyses

type Service interface {
	GetGroupedAnalyses(ctx context.Context, userID int, f filters.Filters) ([]grouping.AnalysisGroup, error)
	GetBatchAnalyses(ctx context.Context, userID int, batchID string) ([]domain.BatchAnalysis, error)
}

type AnalysesHandler struct {
	analysisService Service
}

func New(analysisService Service) *AnalysesHandler {
	return &AnalysesHandler{
		analysisService: analysisService,
	}
}

// GetAnalyses godoc
//
//	@Summary		List analyses
//	@Description	Analyses of the authenticated user grouped so that each batch comparison carries the individual analyses of its uploads.
//	@Tags			Analyses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			search		query		string	false	"Case-insensitive match on type, id or file name"
//	@Param			status		query		string	false	"Upload status or all"
//	@Param			type		query		string	false	"Analysis type or all"
//	@Param			date_range	query		string	false	"all, today, week or month"
//	@Param			sort_by		query		string	false	"date, name, confidence or status"
//	@Param			sort_order	query		string	false	"asc or desc"
//	@Success		200			{array}		dto.AnalysisGroupResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid filters"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/analyses [get]
func (h *AnalysesHandler) GetAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	q := r.URL.Query()
	req := dto.AnalysisFiltersDTO{
		Search:    q.Get("search"),
		Status:    q.Get("status"),
		Type:      q.Get("type"),
		DateRange: q.Get("date_range"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	f := filters.Default()
	f.SearchTerm = req.Search
	if req.Status != "" {
		f.Status = req.Status
	}
	if req.Type != "" {
		f.Type = req.Type
	}
	if req.DateRange != "" {
		f.DateRange = filters.DateRange(req.DateRange)
	}
	if req.SortBy != "" {
		f.SortBy = filters.SortKey(req.SortBy)
	}
	if req.SortOrder != "" {
		f.SortOrder = filters.SortOrder(req.SortOrder)
	}

	groups, err := h.analysisService.GetGroupedAnalyses(r.Context(), userID, f)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load analyses")
		return
	}

	response := make([]dto.AnalysisGroupResponseDTO, len(groups))
	for i, g := range groups {
		related := make([]dto.AnalysisResponseDTO, len(g.Related))
		for j, ia := range g.Related {
			related[j] = toAnalysisDTO(ia)
		}
		response[i] = dto.AnalysisGroupResponseDTO{
			ID:           g.ID,
			Title:        g.Title,
			Primary:      toAnalysisDTO(g.Primary),
			Related:      related,
			LatestDate:   g.LatestDate,
			TotalUploads: g.TotalUploads,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetBatchAnalyses godoc
//
//	@Summary		List batch comparisons
//	@Description	Batch analyses of the authenticated user, optionally for one batch.
//	@Tags			Analyses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			batch_id	query		string	false	"Batch identifier"
//	@Success		200			{array}		dto.BatchAnalysisResponseDTO
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/user/analyses/batches [get]
func (h *AnalysesHandler) GetBatchAnalyses(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserID(r.Context())

	batches, err := h.analysisService.GetBatchAnalyses(r.Context(), userID, r.URL.Query().Get("batch_id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load batch analyses")
		return
	}

	response := make([]dto.BatchAnalysisResponseDTO, len(batches))
	for i, b := range batches {
		response[i] = dto.BatchAnalysisResponseDTO{
			ID:             b.ID,
			BatchID:        b.BatchID,
			AnalysisType:   b.AnalysisType,
			Confidence:     b.Confidence,
			WinnerUploadID: b.WinnerUploadID,
			Results:        b.Results,
			CreatedAt:      b.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toAnalysisDTO(a grouping.Analysis) dto.AnalysisResponseDTO {
	switch v := a.(type) {
	case grouping.Individual:
		return dto.AnalysisResponseDTO{
			ID:           v.Record.ID,
			Kind:         string(grouping.KindIndividual),
			AnalysisType: v.Record.AnalysisType,
			Title:        v.Title,
			UploadID:     v.Record.UploadID,
			BatchID:      v.BatchID,
			Status:       string(v.Status),
			Confidence:   v.Record.Confidence,
			Results:      v.Record.Results,
			CreatedAt:    v.Record.CreatedAt,
		}
	case grouping.Batch:
		return dto.AnalysisResponseDTO{
			ID:             v.Record.ID,
			Kind:           string(grouping.KindBatch),
			AnalysisType:   v.Record.AnalysisType,
			Title:          v.Title,
			BatchID:        &v.Record.BatchID,
			Confidence:     v.Record.Confidence,
			WinnerUploadID: v.Record.WinnerUploadID,
			Results:        v.Record.Results,
			CreatedAt:      v.Record.CreatedAt,
		}
	}
	return dto.AnalysisResponseDTO{}
}
