package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Jrmarques7/ISABELA-TCC/model"
)

// ErrNoData is returned when there is nothing to export.
var ErrNoData = errors.New("não há dados para exportar")

const (
	utf8BOM  = "\ufeff"
	listJoin = "; "
)

var csvHeader = []string{
	"ID",
	"Data Envio",
	Titles[model.FieldQ11],
	Titles[model.FieldQ12],
	Titles[model.FieldQ13],
	Titles[model.FieldQ14Dialogo],
	Titles[model.FieldQ14Formato],
	Titles[model.FieldQ15],
	Titles[ratingKey(model.RatingEstrutura)],
	Titles[ratingKey(model.RatingVinculo)],
	Titles[ratingKey(model.RatingCarga)],
	Titles[ratingKey(model.RatingFluxo)],
	Titles[ratingKey(model.RatingSistematiz)],
}

// Filename returns the date-stamped download name for ext ("csv", "json").
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("pesquisa_respostas_%s.%s", now.UTC().Format("2006-01-02"), ext)
}

// ExportCSV writes a BOM-prefixed CSV with every cell quoted and
// multi-choice answers joined by "; ".
func ExportCSV(w io.Writer, responses []model.SurveyResponse) error {
	if len(responses) == 0 {
		return ErrNoData
	}

	lines := make([]string, 0, len(responses)+1)
	lines = append(lines, quoteRow(csvHeader))
	for _, r := range responses {
		lines = append(lines, quoteRow(csvRow(r)))
	}

	_, err := io.WriteString(w, utf8BOM+strings.Join(lines, "\n"))
	return err
}

func csvRow(r model.SurveyResponse) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.DataEnvio.UTC().Format(time.RFC3339),
		model.Deref(r.Q11),
		strings.Join(r.Q12, listJoin),
		model.Deref(r.Q13),
		model.Deref(r.Q14Dialogo),
		model.Deref(r.Q14Formato),
		strings.Join(r.Q15, listJoin),
		model.Deref(r.Q16.Estrutura),
		model.Deref(r.Q16.Vinculo),
		model.Deref(r.Q16.Carga),
		model.Deref(r.Q16.Fluxo),
		model.Deref(r.Q16.Sistematizacao),
	}
}

func quoteRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// ExportJSON writes the responses as an indented JSON array.
func ExportJSON(w io.Writer, responses []model.SurveyResponse) error {
	if len(responses) == 0 {
		return ErrNoData
	}

	b, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
