// api/search_handler.go
package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/certsearch/certs"
	"github.com/pranav244872/certsearch/skillz"
)

// User-facing messages. Internal failures never leak detail to the client.
const (
	msgQueryRequired = "Parâmetro de busca é obrigatório"
	msgInternal      = "Erro interno ao processar a solicitação"
)

// searchQueryRequest represents the query string of GET /api/search.
// Level and Language are optional facet filters applied server-side.
type searchQueryRequest struct {
	Query    string `form:"query"`
	Level    string `form:"level"`
	Language string `form:"language"`
}

// searchResponse is returned by both search endpoints. Facets are derived from
// the full result set, before any facet filter is applied.
type searchResponse struct {
	Certifications []certs.Certification `json:"certifications"`
	Source         certs.Source          `json:"source"`
	Facets         certs.Facets          `json:"facets"`
}

////////////////////////////////////////////////////////////////////////
// Handler: searchByQuery (GET /api/search?query=...)
////////////////////////////////////////////////////////////////////////

func (server *Server) searchByQuery(ctx *gin.Context) {
	var req searchQueryRequest

	// Step 1: Bind the query string
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorMessage(msgQueryRequired))
		return
	}

	// Step 2: Run the search (normalization, cache, model)
	result, err := server.searcher.SearchQuery(ctx.Request.Context(), req.Query)
	if err != nil {
		server.respondError(ctx, err)
		return
	}

	// Step 3: Apply the optional facet filters and respond
	ctx.JSON(http.StatusOK, searchResponse{
		Certifications: certs.Filter(result.Certifications, certs.FacetSelection{
			Level:    req.Level,
			Language: req.Language,
		}),
		Source: result.Source,
		Facets: certs.DeriveFacets(result.Certifications),
	})
}

////////////////////////////////////////////////////////////////////////
// Handler: searchByPlan (POST /api/search)
////////////////////////////////////////////////////////////////////////

// searchByPlan accepts {softSkills?, hardSkills?, tools?}. An empty body is a
// plan with no criteria. A body that is not valid JSON is reported as an
// internal error, like every other failure of this endpoint.
func (server *Server) searchByPlan(ctx *gin.Context) {
	var plan skillz.Plan

	// Step 1: Bind the body; io.EOF means there was none
	if err := ctx.ShouldBindJSON(&plan); err != nil && !errors.Is(err, io.EOF) {
		server.respondError(ctx, err)
		return
	}

	// Step 2: Run the PDI search
	result, err := server.searcher.SearchPlan(ctx.Request.Context(), plan)
	if err != nil {
		server.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, searchResponse{
		Certifications: result.Certifications,
		Source:         result.Source,
		Facets:         certs.DeriveFacets(result.Certifications),
	})
}

////////////////////////////////////////////////////////////////////////
// Error helpers
////////////////////////////////////////////////////////////////////////

// respondError maps the error taxonomy onto HTTP: invalid input is a 400 with
// the user message, everything else a generic 500. The detail is only logged.
func (server *Server) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, certs.ErrInvalidInput) {
		ctx.JSON(http.StatusBadRequest, errorMessage(msgQueryRequired))
		return
	}

	server.requestLogger(ctx).Error("search request failed",
		"path", ctx.Request.URL.Path,
		"err", err,
	)
	ctx.JSON(http.StatusInternalServerError, errorMessage(msgInternal))
}

func errorMessage(msg string) gin.H {
	return gin.H{"error": msg}
}
