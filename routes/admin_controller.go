package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/cquiroga/briefing-wizard/app"
	"github.com/cquiroga/briefing-wizard/docgen"
	"github.com/cquiroga/briefing-wizard/httpx"
	"github.com/cquiroga/briefing-wizard/log"
	"github.com/cquiroga/briefing-wizard/model"
	"github.com/cquiroga/briefing-wizard/store"
)

func ListBriefings(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		items, total, err := app.List(r.Context(), filter)
		if err != nil {
			httpx.LogInternalError(w, "db.list_briefings", err)
			return
		}

		totalPages := (total + filter.Limit - 1) / filter.Limit
		render.JSON(w, r, map[string]any{
			"items":      items,
			"total":      total,
			"page":       filter.Page,
			"limit":      filter.Limit,
			"totalPages": totalPages,
		})
	}
}

func GetBriefingByID(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		record, err := app.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "get_briefing", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.get_briefing", err)
			return
		}
		render.JSON(w, r, record)
	}
}

func PatchBriefing(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var body struct {
			Status  *string `json:"status"`
			Summary *string `json:"summary"`
		}
		if err := render.DecodeJSON(r.Body, &body); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		patch := store.Patch{Summary: body.Summary}
		if body.Status != nil {
			if !model.ValidStatus(*body.Status) {
				httpx.JSONError(w, r, http.StatusBadRequest, "briefing.patch.status", "Estado inválido.")
				return
			}
			status := model.Status(*body.Status)
			patch.Status = &status
		}

		record, err := app.Update(r.Context(), id, patch)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "patch_briefing", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.patch_briefing", err)
			return
		}
		render.JSON(w, r, record)
	}
}

func ExportCSV(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseFilter(w, r)
		if !ok {
			return
		}

		records, err := app.ListAll(r.Context(), filter)
		if err != nil {
			httpx.LogInternalError(w, "db.export_briefings", err)
			return
		}

		filename := "briefings-" + time.Now().Format("2006-01-02") + ".csv"
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		if err := docgen.WriteCSV(w, records); err != nil {
			log.Errorf("export.csv.write: %s", err)
		}
	}
}

func ExportDocx(app app.App) http.HandlerFunc {
	return exportDocument(app, "docx",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		docgen.RenderDocx)
}

func ExportXlsx(app app.App) http.HandlerFunc {
	return exportDocument(app, "xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		docgen.RenderXlsx)
}

func exportDocument(app app.App, ext, contentType string, renderDoc func(model.BriefingData) ([]byte, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		record, err := app.FindByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			httpx.LogNotFound(w, "export_briefing", id)
			return
		}
		if err != nil {
			httpx.LogInternalError(w, "db.export_briefing", err)
			return
		}

		data, err := record.Data()
		if err != nil {
			httpx.LogInternalError(w, "export.parse_data", err)
			return
		}
		doc, err := renderDoc(data)
		if err != nil {
			httpx.LogInternalError(w, "export.render."+ext, err)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "briefing-"+record.ID+"."+ext))
		w.Write(doc)
	}
}

func parseFilter(w http.ResponseWriter, r *http.Request) (store.Filter, bool) {
	q := r.URL.Query()
	filter := store.Filter{
		Type:   q.Get("type"),
		Status: q.Get("status"),
		Page:   1,
		Limit:  20,
	}

	if filter.Type != "" && !model.ValidType(filter.Type) {
		httpx.JSONError(w, r, http.StatusBadRequest, "briefing.filter.type", "Tipo de briefing inválido.")
		return store.Filter{}, false
	}
	if filter.Status != "" && !model.ValidStatus(filter.Status) {
		httpx.JSONError(w, r, http.StatusBadRequest, "briefing.filter.status", "Estado inválido.")
		return store.Filter{}, false
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	return filter, true
}
