package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/brainstorm/internal/generator"
	"github.com/MrSnakeDoc/brainstorm/internal/httpserver/deps"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
)

// generateRequest mirrors generator.Params with pointers where a missing
// value must be told apart from zero.
type generateRequest struct {
	PrefixLength     *int `json:"prefixLength"`
	SuffixLength     *int `json:"suffixLength"`
	IncludeNumbers   bool `json:"includeNumbers"`
	IncludeHyphens   bool `json:"includeHyphens"`
	Page             *int `json:"page"`
	PageSize         *int `json:"pageSize"`
	FilterMeaningful bool `json:"filterMeaningful"`
}

func (req generateRequest) params(defaultPageSize int) (generator.Params, error) {
	verr := &generator.ValidationError{}
	if req.PrefixLength == nil {
		verr.Add("prefixLength", "is required")
	}
	if req.SuffixLength == nil {
		verr.Add("suffixLength", "is required")
	}
	if !verr.Empty() {
		return generator.Params{}, verr
	}

	p := generator.Params{
		PrefixLength:     *req.PrefixLength,
		SuffixLength:     *req.SuffixLength,
		IncludeNumbers:   req.IncludeNumbers,
		IncludeHyphens:   req.IncludeHyphens,
		Page:             1,
		PageSize:         defaultPageSize,
		FilterMeaningful: req.FilterMeaningful,
	}
	if req.Page != nil {
		p.Page = *req.Page
	}
	if req.PageSize != nil {
		p.PageSize = *req.PageSize
	}
	return p, nil
}

// Generate serves POST /api/domains/generate.
func Generate(d deps.Deps) http.HandlerFunc {
	defaultPageSize := d.DefaultPageSize
	if defaultPageSize <= 0 {
		defaultPageSize = generator.DefaultPageSize
	}
	if maxPageSize := d.Generator.MaxPageSize(); defaultPageSize > maxPageSize {
		defaultPageSize = maxPageSize
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeBadRequest(w, d.Logger, err)
			return
		}

		params, err := req.params(defaultPageSize)
		if err == nil {
			var page *generator.Page
			page, err = d.Generator.Generate(r.Context(), params)
			if err == nil {
				writeJSON(w, d.Logger, http.StatusOK, page)
				return
			}
		}

		var verr *generator.ValidationError
		switch {
		case errors.As(err, &verr):
			writeError(w, d.Logger, http.StatusBadRequest, "Invalid input", verr.Fields)
		case errors.Is(err, generator.ErrDependency):
			writeError(w, d.Logger, http.StatusBadGateway, "Dictionary lookup failed", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			d.Logger.Debug("generation aborted", logger.Error(err))
			writeError(w, d.Logger, http.StatusServiceUnavailable, "Request cancelled", nil)
		default:
			d.Logger.Error("generation failed", logger.Error(err))
			writeError(w, d.Logger, http.StatusInternalServerError, "Internal server error", nil)
		}
	}
}
