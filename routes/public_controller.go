package routes

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Jrmarques7/ISABELA-TCC/app"
	"github.com/Jrmarques7/ISABELA-TCC/form"
	"github.com/Jrmarques7/ISABELA-TCC/httpx"
	"github.com/Jrmarques7/ISABELA-TCC/log"
	"github.com/Jrmarques7/ISABELA-TCC/model"
)

const maxBodyBytes = 64 << 10

type CreatedBody struct {
	Success bool   `json:"success"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type MessageBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeResponse(w http.ResponseWriter, r *http.Request) (resp model.SurveyResponse, err error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&resp); err != nil {
		return
	}
	if dec.More() {
		err = errors.New("unexpected data after JSON body")
		return
	}
	return
}

func CreateResponse(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := decodeResponse(w, r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = errors.New("empty body")
			}
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_body", "%s", err)
			return
		}
		storeResponse(w, r, app, resp, func(id int64) {
			render.JSON(w, r, created(id))
		})
	}
}

func created(id int64) CreatedBody {
	return CreatedBody{
		Success: true,
		ID:      id,
		Message: "Resposta salva com sucesso",
	}
}

// SubmitForm accepts the HTML form post of the client shell. Scripted posts
// asking for JSON get the same answer as the API, plain posts are redirected.
func SubmitForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.parse_form", "%s", err)
			return
		}

		resp, err := form.Collect(r.PostForm)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.collect_form", "%s", err)
			return
		}
		storeResponse(w, r, app, resp, func(id int64) {
			if render.GetAcceptedContentType(r) == render.ContentTypeJSON {
				render.JSON(w, r, created(id))
				return
			}
			http.Redirect(w, r, "/?enviado=1", http.StatusSeeOther)
		})
	}
}

func storeResponse(w http.ResponseWriter, r *http.Request, app app.App, resp model.SurveyResponse, done func(id int64)) {
	resp.ID = 0
	resp.Normalize()
	if err := resp.Validate(); err != nil {
		httpx.LogStatusMsg(w, r, http.StatusBadRequest, log.DebugLevel, "request.validate", "%s", err)
		return
	}

	id, err := app.Create(r.Context(), resp)
	if err != nil {
		httpx.LogInternalError(w, r, "db.insert_response", err)
		return
	}

	log.Debugf("response %d stored", id)
	done(id)
}

func ListResponses(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses, err := app.List(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.get_responses", err)
			return
		}

		render.JSON(w, r, responses)
	}
}

func GetStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := app.Stats(r.Context())
		if err != nil {
			httpx.LogInternalError(w, r, "db.get_stats", err)
			return
		}

		render.JSON(w, r, stats)
	}
}
