package v1

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/pdf_converter/internal/domain"
)

const formatTSV = "tsv"

type ConversionsHandler struct {
	log                   *slog.Logger
	conversionsRepository ConversionsRepository
}

func NewConversionsHandler(log *slog.Logger, conversionsRepository ConversionsRepository) *ConversionsHandler {
	return &ConversionsHandler{
		log:                   log,
		conversionsRepository: conversionsRepository,
	}
}

type GetConversionsResponse struct {
	Conversions []*domain.Conversion `json:"conversions"`
	Pagination  Pagination           `json:"pagination"`
}

// GetConversions lists conversion history, newest first. With ?format=tsv
// the same page is returned as a tab separated file.
func (h *ConversionsHandler) GetConversions(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	offset := (page - 1) * limit

	conversions, total, err := h.conversionsRepository.Conversions(r.Context(), limit, offset)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get conversions",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to get conversions")
		return
	}

	if conversions == nil {
		conversions = []*domain.Conversion{}
	}

	if r.URL.Query().Get("format") == formatTSV {
		if err := writeTSV(w, conversions); err != nil {
			h.log.WarnContext(r.Context(), "failed to write tsv", slog.String("err", err.Error()))
		}
		return
	}

	writeJSON(w, http.StatusOK, GetConversionsResponse{
		Conversions: conversions,
		Pagination:  NewPagination(page, limit, total),
	})
}

func writeTSV(w http.ResponseWriter, conversions []*domain.Conversion) error {
	w.Header().Set("Content-Type", "text/tab-separated-values; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="conversions.tsv"`)

	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	enc := csvutil.NewEncoder(cw)
	if err := enc.EncodeHeader(domain.Conversion{}); err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	if len(conversions) > 0 {
		if err := enc.Encode(conversions); err != nil {
			return fmt.Errorf("failed to encode conversions: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
