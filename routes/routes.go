package routes

import (
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Jrmarques7/ISABELA-TCC/app"
	"github.com/Jrmarques7/ISABELA-TCC/httpx"
	"github.com/Jrmarques7/ISABELA-TCC/public"
	"github.com/Jrmarques7/ISABELA-TCC/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	var creds *httpx.AdminCredentials
	if app.AdminEnabled() {
		creds = &httpx.AdminCredentials{
			Username:     app.AdminUser,
			PasswordHash: []byte(app.AdminPasswordHash),
		}
	}
	admin := middlewares.Admin(creds)

	root := chi.NewRouter()
	root.Use(middleware.RequestID, middleware.RealIP, middlewares.Logger, middleware.Recoverer)
	root.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	root.Mount("/api", apiRouter(app, admin))

	root.Post("/responder", SubmitForm(app))
	root.With(admin).Get("/relatorios", ReportPage(app))
	root.Handle("/*", servePublicFiles(public.Files))

	return root
}

func apiRouter(app app.App, admin func(http.Handler) http.Handler) http.Handler {
	api := chi.NewRouter()

	api.Post("/respostas", CreateResponse(app))
	api.Get("/respostas", ListResponses(app))
	api.Get("/estatisticas", GetStats(app))

	api.Group(func(r chi.Router) {
		r.Use(admin)

		r.Delete("/respostas", DeleteResponses(app))
		r.Get("/exportar/csv", ExportCSV(app))
		r.Get("/exportar/json", ExportJSON(app))
	})

	return api
}

// servePublicFiles serves the client shell, falling back to index.html for
// any path that is not a file.
func servePublicFiles(files fs.FS) http.Handler {
	fileServer := http.FileServer(http.FS(files))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		if name != "" {
			if info, err := fs.Stat(files, name); err != nil || info.IsDir() {
				if err != nil && !errors.Is(err, fs.ErrNotExist) {
					httpx.LogInternalError(w, r, "static.stat", err)
					return
				}
				r.URL.Path = "/"
			}
		}
		fileServer.ServeHTTP(w, r)
	})
}
