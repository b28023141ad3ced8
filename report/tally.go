package report

import "github.com/Jrmarques7/ISABELA-TCC/model"

// Tally counts how many responses chose each label of field. Multi-choice
// fields count every selected label once per response; empty answers are
// not counted.
func Tally(responses []model.SurveyResponse, field string) map[string]int {
	counts := map[string]int{}
	for _, r := range responses {
		for _, label := range r.Values(field) {
			if label == "" {
				continue
			}
			counts[label]++
		}
	}
	return counts
}

// TallyNested counts the answers given to one q16 rating.
func TallyNested(responses []model.SurveyResponse, sub string) map[string]int {
	counts := map[string]int{}
	for _, r := range responses {
		if v := r.Rating(sub); v != nil && *v != "" {
			counts[*v]++
		}
	}
	return counts
}
