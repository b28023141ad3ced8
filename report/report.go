// Package report aggregates survey responses into charts and exports them.
// Everything is recomputed from the responses handed in; nothing is cached.
package report

import (
	"embed"
	"html/template"
	"io"

	"github.com/Jrmarques7/ISABELA-TCC/model"
)

const NoDataText = "Sem dados para exibir"

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"noData": func() string { return NoDataText }}).
	ParseFS(templateFS, "templates/*.html"))

// Titles of every reported question, keyed by field ("q16.<sub>" for ratings).
var Titles = map[string]string{
	model.FieldQ11:                    "Q11 - Autonomia",
	model.FieldQ12:                    "Q12 - Instrumentos",
	model.FieldQ13:                    "Q13 - Viés",
	model.FieldQ14Dialogo:             "Q14 - Diálogo Multidisciplinar",
	model.FieldQ14Formato:             "Q14 - Formato Relação",
	model.FieldQ15:                    "Q15 - Planejamento",
	ratingKey(model.RatingEstrutura):  "Q16 - Estrutura Física",
	ratingKey(model.RatingVinculo):    "Q16 - Vínculo Empregatício",
	ratingKey(model.RatingCarga):      "Q16 - Carga Horária",
	ratingKey(model.RatingFluxo):      "Q16 - Fluxo de Trabalho",
	ratingKey(model.RatingSistematiz): "Q16 - Sistematização",
}

var questionOrder = []string{
	model.FieldQ11, model.FieldQ12, model.FieldQ13,
	model.FieldQ14Dialogo, model.FieldQ14Formato, model.FieldQ15,
}

func ratingKey(sub string) string {
	return model.FieldQ16 + "." + sub
}

type Section struct {
	Field string
	Title string
	Chart Chart
}

type Report struct {
	Total    int
	Sections []Section
}

// Build tallies every question of the survey.
func Build(responses []model.SurveyResponse) Report {
	rep := Report{Total: len(responses)}
	for _, field := range questionOrder {
		rep.Sections = append(rep.Sections, Section{
			Field: field,
			Title: Titles[field],
			Chart: Bars(Tally(responses, field)),
		})
	}
	for _, sub := range model.RatingKeys {
		key := ratingKey(sub)
		rep.Sections = append(rep.Sections, Section{
			Field: key,
			Title: Titles[key],
			Chart: Bars(TallyNested(responses, sub)),
		})
	}
	return rep
}

// RenderHTML writes the full report page.
func RenderHTML(w io.Writer, rep Report) error {
	return templates.ExecuteTemplate(w, "page", rep)
}

// RenderText writes every section as a text chart.
func RenderText(w io.Writer, rep Report) error {
	for _, s := range rep.Sections {
		if _, err := io.WriteString(w, "\n"+s.Title+"\n"); err != nil {
			return err
		}
		if err := RenderBarsText(w, s.Chart); err != nil {
			return err
		}
	}
	return nil
}
