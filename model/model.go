package model

import (
	"time"
)

// Survey fields, as named in the form, the API and the report.
const (
	FieldQ11         = "q11"
	FieldQ12         = "q12"
	FieldQ13         = "q13"
	FieldQ14Dialogo  = "q14_dialogo"
	FieldQ14Formato  = "q14_formato"
	FieldQ15         = "q15"
	FieldQ16         = "q16"
	RatingEstrutura  = "estrutura"
	RatingVinculo    = "vinculo"
	RatingCarga      = "carga"
	RatingFluxo      = "fluxo"
	RatingSistematiz = "sistematizacao"
)

// Categories that accept a free-text elaboration.
const (
	OtherQ13 = "Outro"
	OtherQ15 = "Outra"
)

var (
	ScalarFields = []string{FieldQ11, FieldQ13, FieldQ14Dialogo, FieldQ14Formato}
	ListFields   = []string{FieldQ12, FieldQ15}
	RatingKeys   = []string{RatingEstrutura, RatingVinculo, RatingCarga, RatingFluxo, RatingSistematiz}
)

type SurveyResponse struct {
	ID         int64       `json:"id,omitempty"`
	DataEnvio  time.Time   `json:"dataEnvio"`
	Q11        *string     `json:"q11"`
	Q12        []string    `json:"q12"`
	Q13        *string     `json:"q13"`
	Q14Dialogo *string     `json:"q14_dialogo"`
	Q14Formato *string     `json:"q14_formato"`
	Q15        []string    `json:"q15"`
	Q16        RatingGroup `json:"q16"`
}

type RatingGroup struct {
	Estrutura      *string `json:"estrutura"`
	Vinculo        *string `json:"vinculo"`
	Carga          *string `json:"carga"`
	Fluxo          *string `json:"fluxo"`
	Sistematizacao *string `json:"sistematizacao"`
}

type Stats struct {
	Total          int        `json:"total"`
	UltimaResposta *time.Time `json:"ultimaResposta"`
}

// Values returns the labels answered for field: the list itself for
// multi-choice fields, a single element for an answered single-choice field.
func (r SurveyResponse) Values(field string) []string {
	switch field {
	case FieldQ12:
		return r.Q12
	case FieldQ15:
		return r.Q15
	case FieldQ11:
		return single(r.Q11)
	case FieldQ13:
		return single(r.Q13)
	case FieldQ14Dialogo:
		return single(r.Q14Dialogo)
	case FieldQ14Formato:
		return single(r.Q14Formato)
	}
	return nil
}

// Rating returns the q16 answer for sub, or nil.
func (r SurveyResponse) Rating(sub string) *string {
	switch sub {
	case RatingEstrutura:
		return r.Q16.Estrutura
	case RatingVinculo:
		return r.Q16.Vinculo
	case RatingCarga:
		return r.Q16.Carga
	case RatingFluxo:
		return r.Q16.Fluxo
	case RatingSistematiz:
		return r.Q16.Sistematizacao
	}
	return nil
}

// Normalize replaces nil lists with empty ones and empty strings with nil.
func (r *SurveyResponse) Normalize() {
	if r.Q12 == nil {
		r.Q12 = []string{}
	}
	if r.Q15 == nil {
		r.Q15 = []string{}
	}
	for _, p := range []**string{
		&r.Q11, &r.Q13, &r.Q14Dialogo, &r.Q14Formato,
		&r.Q16.Estrutura, &r.Q16.Vinculo, &r.Q16.Carga, &r.Q16.Fluxo, &r.Q16.Sistematizacao,
	} {
		if *p != nil && **p == "" {
			*p = nil
		}
	}
}

func single(s *string) []string {
	if s == nil || *s == "" {
		return nil
	}
	return []string{*s}
}

// String returns a pointer to s, or nil when s is empty.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
