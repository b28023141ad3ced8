package model

import (
	"fmt"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

const (
	MaxTextLength = 500
	MaxListLength = 30
)

// Validate checks the response against the request schema. Absent fields
// are accepted; every violation found is reported in the returned error.
func (r SurveyResponse) Validate() error {
	var result *multierror.Error

	texts := map[string]*string{
		FieldQ11:                          r.Q11,
		FieldQ13:                          r.Q13,
		FieldQ14Dialogo:                   r.Q14Dialogo,
		FieldQ14Formato:                   r.Q14Formato,
		FieldQ16 + "." + RatingEstrutura:  r.Q16.Estrutura,
		FieldQ16 + "." + RatingVinculo:    r.Q16.Vinculo,
		FieldQ16 + "." + RatingCarga:      r.Q16.Carga,
		FieldQ16 + "." + RatingFluxo:      r.Q16.Fluxo,
		FieldQ16 + "." + RatingSistematiz: r.Q16.Sistematizacao,
	}
	for _, name := range append(append([]string{}, ScalarFields...), ratingNames()...) {
		if v := texts[name]; v != nil && utf8.RuneCountInString(*v) > MaxTextLength {
			result = multierror.Append(result, fmt.Errorf("%s: longer than %d characters", name, MaxTextLength))
		}
	}

	for _, name := range ListFields {
		labels := r.Values(name)
		if len(labels) > MaxListLength {
			result = multierror.Append(result, fmt.Errorf("%s: more than %d options", name, MaxListLength))
		}
		for i, label := range labels {
			switch {
			case label == "":
				result = multierror.Append(result, fmt.Errorf("%s[%d]: empty option", name, i))
			case utf8.RuneCountInString(label) > MaxTextLength:
				result = multierror.Append(result, fmt.Errorf("%s[%d]: longer than %d characters", name, i, MaxTextLength))
			}
		}
	}

	if result != nil {
		result.ErrorFormat = formatErrors
	}
	return result.ErrorOrNil()
}

func ratingNames() []string {
	names := make([]string, len(RatingKeys))
	for i, k := range RatingKeys {
		names[i] = FieldQ16 + "." + k
	}
	return names
}

func formatErrors(errs []error) string {
	msg := "invalid response"
	for i, err := range errs {
		if i == 0 {
			msg += ": "
		} else {
			msg += "; "
		}
		msg += err.Error()
	}
	return msg
}
