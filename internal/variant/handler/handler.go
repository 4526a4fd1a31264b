package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"variant-service/internal/catalog"
	"variant-service/internal/variant/model"
	varSvc "variant-service/internal/variant/service"
)

// SelectRequest — снапшот выпадашки от слоя скрейпинга + целевой вариант.
// FocusedIndex — указатель, чтобы отличить «фокус на строке 0» от
// «фокус неизвестен» (nil = -1).
type SelectRequest struct {
	Headers      []string                `json:"headers"`
	Rows         []model.RowSnapshot     `json:"rows"`
	Target       model.VariantDescriptor `json:"target"`
	FocusedIndex *int                    `json:"focusedIndex"`
	RowCount     int                     `json:"rowCount"`
}

type SelectResponse struct {
	HeaderIndices model.HeaderIndices `json:"headerIndices"`
	Candidates    []model.Candidate   `json:"candidates"`
	Choice        model.ChoiceResult  `json:"choice"`
	Confidence    model.Confidence    `json:"confidence"`
	Plan          *model.NavPlan      `json:"plan,omitempty"` // только когда строка выбрана
}

// Select — один вызов на одно событие ввода артикула:
// resolve заголовков → кандидаты → каскад → доверие → план навигации.
func Select(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		var req SelectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Target.FullID == "" {
			http.Error(w, "target.fullId is required", http.StatusBadRequest)
			return
		}

		headers := varSvc.ComputeVariantHeaderIndices(req.Headers)
		cands, err := varSvc.BuildVariantCandidates(req.Rows, headers, req.Target)
		if err != nil {
			// кривой снапшот — баг скрейпера, не «вариант не найден»
			http.Error(w, "bad snapshot: "+err.Error(), http.StatusBadRequest)
			return
		}

		choice := varSvc.ChooseBestVariantCandidate(cands)
		resp := SelectResponse{
			HeaderIndices: headers,
			Candidates:    cands,
			Choice:        choice,
			Confidence:    varSvc.ClassifyConfidence(choice.Reason),
		}
		if choice.Chosen != nil {
			focused := -1
			if req.FocusedIndex != nil {
				focused = *req.FocusedIndex
			}
			rowCount := req.RowCount
			if rowCount <= 0 {
				rowCount = len(req.Rows)
			}
			plan := varSvc.PlanNavigation(choice.Chosen.Index, focused, rowCount)
			resp.Plan = &plan
		}

		writeJSON(w, log, resp)

		log.Info().
			Int("rows", len(req.Rows)).
			Str("reason", choice.Reason).
			Str("confidence", string(resp.Confidence)).
			Dur("elapsed", time.Since(start)).
			Msg("variant select")
	}
}

type resolveRequest struct {
	Article string  `json:"article"`
	Qty     float64 `json:"qty"`
}

// ResolveVariant — внешний шаг «каталог»: артикул + количество → дескриптор.
func ResolveVariant(logger zerolog.Logger, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		var req resolveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		if req.Article == "" {
			http.Error(w, "article is required", http.StatusBadRequest)
			return
		}

		desc, ok := cat.Lookup(req.Article, req.Qty)
		if !ok {
			http.Error(w, "unknown article", http.StatusNotFound)
			return
		}
		writeJSON(w, log, desc)
	}
}

// UploadCatalog — multipart-загрузка экспорта Prodotti, подменяет каталог
// целиком.
func UploadCatalog(logger zerolog.Logger, cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		defer r.Body.Close()
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		n, err := cat.LoadFrom(file, header.Filename, atoi(r.FormValue("header_row"), 1))
		if err != nil {
			http.Error(w, "failed to read catalog: "+err.Error(), http.StatusBadRequest)
			return
		}

		variants, articles := cat.Counts()
		writeJSON(w, log, map[string]any{
			"loaded":   n,
			"variants": variants,
			"articles": articles,
		})

		log.Info().
			Str("file", header.Filename).
			Int("variants", variants).
			Int("articles", articles).
			Dur("elapsed", time.Since(start)).
			Msg("catalog loaded")
	}
}
