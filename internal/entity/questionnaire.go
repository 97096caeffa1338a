package entity

import (
	screeningDomain "LittleSteps/internal/api/screening"
)

const (
	QuestionnaireLength = 20
	MarkerCount         = 10
)

// QuestionnaireResult bundles parent questionnaire answers with the child
// attributes the scorer consumes.
type QuestionnaireResult struct {
	Responses []bool
	AgeMonths int
	Sex       Sex
	Jaundice  bool
	FamilyASD bool
}

func (q *QuestionnaireResult) Validate() error {
	if len(q.Responses) != QuestionnaireLength {
		return screeningDomain.ErrInvalidQuestionnaire
	}
	return nil
}

// DeriveMarkers folds the 20 yes/no answers into 10 behavioural markers.
// Questions are phrased so that "yes" is the typical behaviour, so a "no"
// contributes risk. Each marker pairs question i with its rephrased twin
// i+10 and fires when the pair average crosses 0.5.
func (q *QuestionnaireResult) DeriveMarkers() [MarkerCount]int {
	var markers [MarkerCount]int
	for i := 0; i < MarkerCount; i++ {
		a, b := 0, 0
		if !q.Responses[i] {
			a = 1
		}
		if !q.Responses[i+MarkerCount] {
			b = 1
		}
		if float64(a+b)/2 >= 0.5 {
			markers[i] = 1
		}
	}
	return markers
}

// ComputeScore returns the fraction of risk markers present, in [0,1].
func (q *QuestionnaireResult) ComputeScore() float64 {
	markers := q.DeriveMarkers()
	sum := 0
	for _, m := range markers {
		sum += m
	}
	return float64(sum) / float64(MarkerCount)
}

func QuestionnaireRiskLevel(score float64) RiskLevel {
	switch {
	case score >= 0.70:
		return RiskHigh
	case score >= 0.40:
		return RiskModerate
	default:
		return RiskLow
	}
}

// EncodeResponses packs answers as a "YN..." string for storage.
func EncodeResponses(responses []bool) string {
	buf := make([]byte, len(responses))
	for i, r := range responses {
		if r {
			buf[i] = 'Y'
		} else {
			buf[i] = 'N'
		}
	}
	return string(buf)
}

func DecodeResponses(encoded string) ([]bool, error) {
	if len(encoded) != QuestionnaireLength {
		return nil, screeningDomain.ErrInvalidQuestionnaire
	}
	responses := make([]bool, len(encoded))
	for i := range encoded {
		switch encoded[i] {
		case 'Y':
			responses[i] = true
		case 'N':
			responses[i] = false
		default:
			return nil, screeningDomain.ErrInvalidQuestionnaire
		}
	}
	return responses, nil
}
