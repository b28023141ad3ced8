// Package form maps a submitted survey form onto a model.SurveyResponse.
package form

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"github.com/Jrmarques7/ISABELA-TCC/model"
)

type input struct {
	Q11               string   `schema:"q11"`
	Q12               []string `schema:"q12"`
	Q13               string   `schema:"q13"`
	Q13Outro          string   `schema:"q13_outro"`
	Q14Dialogo        string   `schema:"q14_dialogo"`
	Q14Formato        string   `schema:"q14_formato"`
	Q15               []string `schema:"q15"`
	Q15Outra          string   `schema:"q15_outra"`
	Q16Estrutura      string   `schema:"q16_estrutura"`
	Q16Vinculo        string   `schema:"q16_vinculo"`
	Q16Carga          string   `schema:"q16_carga"`
	Q16Fluxo          string   `schema:"q16_fluxo"`
	Q16Sistematizacao string   `schema:"q16_sistematizacao"`
}

var decoder = newDecoder()

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// Collect reads the form values into a response, folding the free-text
// "other" answers of q13 and q15 into their base field.
func Collect(values url.Values) (model.SurveyResponse, error) {
	var in input
	if err := decoder.Decode(&in, values); err != nil {
		return model.SurveyResponse{}, err
	}

	r := model.SurveyResponse{
		Q11:        model.String(in.Q11),
		Q12:        nonEmpty(in.Q12),
		Q13:        model.String(foldScalar(in.Q13, model.OtherQ13, in.Q13Outro)),
		Q14Dialogo: model.String(in.Q14Dialogo),
		Q14Formato: model.String(in.Q14Formato),
		Q15:        foldList(nonEmpty(in.Q15), model.OtherQ15, in.Q15Outra),
		Q16: model.RatingGroup{
			Estrutura:      model.String(in.Q16Estrutura),
			Vinculo:        model.String(in.Q16Vinculo),
			Carga:          model.String(in.Q16Carga),
			Fluxo:          model.String(in.Q16Fluxo),
			Sistematizacao: model.String(in.Q16Sistematizacao),
		},
	}
	return r, nil
}

// foldScalar merges text into value as "<category>: <text>" when value is
// the category and text is not blank.
func foldScalar(value, category, text string) string {
	text = strings.TrimSpace(text)
	if value != category || text == "" {
		return value
	}
	return category + ": " + text
}

func foldList(labels []string, category, text string) []string {
	for i, label := range labels {
		if label == category {
			labels[i] = foldScalar(label, category, text)
			break
		}
	}
	return labels
}

func nonEmpty(labels []string) []string {
	out := []string{}
	for _, l := range labels {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
