package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Jrmarques7/ISABELA-TCC/log"
)

// ErrorBody is the envelope of every failed API call.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Will log an error, and send an HTTP response with status 500 exposing the error message
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.Errorf("%s: %s", code, err)
	writeError(w, r, http.StatusInternalServerError, err.Error())
}

// Will log a debug message, and send an HTTP response with status 404
func LogNotFound(w http.ResponseWriter, r *http.Request, code string, msg string) {
	log.Debugf("%s: not found (%s)", code, msg)
	writeError(w, r, http.StatusNotFound, msg)
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted message
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string, args ...any) {
	errMsg := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", errMsg)
	writeError(w, r, status, errMsg)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, ErrorBody{Success: false, Error: msg})
}
