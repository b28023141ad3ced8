package routes

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/Jrmarques7/ISABELA-TCC/app"
	"github.com/Jrmarques7/ISABELA-TCC/httpx"
	"github.com/Jrmarques7/ISABELA-TCC/log"
	"github.com/Jrmarques7/ISABELA-TCC/model"
	"github.com/Jrmarques7/ISABELA-TCC/report"
)

func DeleteResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := app.DeleteAll(r.Context()); err != nil {
			httpx.LogInternalError(w, r, "db.delete_responses", err)
			return
		}

		log.Info("all responses deleted")
		render.JSON(w, r, MessageBody{
			Success: true,
			Message: "Todas as respostas foram removidas",
		})
	}
}

func ExportCSV(app app.App) http.HandlerFunc {
	return exportHandler(app, "csv", "text/csv; charset=utf-8", report.ExportCSV)
}

func ExportJSON(app app.App) http.HandlerFunc {
	return exportHandler(app, "json", "application/json", report.ExportJSON)
}

type exportFunc func(w io.Writer, responses []model.SurveyResponse) error

func exportHandler(app app.App, ext, contentType string, export exportFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses, err := app.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.get_responses", err)
			return
		}

		buf := httpx.NewResponseBuffer()
		err = export(buf, responses)
		switch {
		case errors.Is(err, report.ErrNoData):
			httpx.LogNotFound(w, r, "export."+ext, err.Error())
			return
		case err != nil:
			httpx.LogInternalError(w, r, "export."+ext, err)
			return
		}

		buf.Header().Set("Content-Type", contentType)
		buf.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
			"filename": report.Filename(ext, time.Now()),
		}))
		if err = buf.Flush(w); err != nil {
			log.Warnf("export.%s.write: %s", ext, err)
		}
	}
}

func ReportPage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses, err := app.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.get_responses", err)
			return
		}

		buf := httpx.NewResponseBuffer()
		if err = report.RenderHTML(buf, report.Build(responses)); err != nil {
			httpx.LogInternalError(w, r, "report.render", err)
			return
		}

		buf.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err = buf.Flush(w); err != nil {
			log.Warnf("report.write: %s", err)
		}
	}
}
