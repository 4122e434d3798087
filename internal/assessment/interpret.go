package assessment

// Band is the clinical severity tier of a total score.
type Band string

const (
	MinimalAnxiety  Band = "Minimal anxiety"
	MildAnxiety     Band = "Mild anxiety"
	ModerateAnxiety Band = "Moderate anxiety"
	SevereAnxiety   Band = "Severe anxiety"

	MinimalDepression          Band = "Minimal depression"
	MildDepression             Band = "Mild depression"
	ModerateDepression         Band = "Moderate depression"
	ModeratelySevereDepression Band = "Moderately severe depression"
	SevereDepression           Band = "Severe depression"
)

// cutoff is the inclusive upper bound of a band.
type cutoff struct {
	upTo int
	band Band
}

// GAD-7 and PHQ-9 cut points. These are the published clinical thresholds.
var (
	gad7Bands = []cutoff{
		{4, MinimalAnxiety},
		{9, MildAnxiety},
		{14, ModerateAnxiety},
		{21, SevereAnxiety},
	}
	phq9Bands = []cutoff{
		{4, MinimalDepression},
		{9, MildDepression},
		{14, ModerateDepression},
		{19, ModeratelySevereDepression},
		{27, SevereDepression},
	}
)

// Interpret maps a total score to its clinical band for the given
// instrument. Scores outside [0, MaxScore] are rejected.
func Interpret(kind Kind, score int) (Band, error) {
	var bands []cutoff
	switch kind {
	case Anxiety:
		bands = gad7Bands
	case Depression:
		bands = phq9Bands
	default:
		return "", ErrUnknownInstrument
	}
	if score < 0 {
		return "", ErrScoreOutOfRange
	}
	for _, c := range bands {
		if score <= c.upTo {
			return c.band, nil
		}
	}
	return "", ErrScoreOutOfRange
}

const (
	supportMinimal     = "Your results suggest minimal symptoms. Continue monitoring how you feel and practice self-care."
	supportMild        = "Your results suggest mild symptoms. Consider incorporating more self-care activities and stress management techniques."
	supportModerate    = "Your results suggest moderate symptoms. Consider reaching out to a mental health professional for additional support."
	supportSignificant = "Your results suggest significant symptoms. We strongly recommend speaking with a mental health professional for personalized support."
)

// SupportMessage picks an advisory text from the score alone. Its four
// tiers are coarser than the clinical bands and ignore the instrument.
func SupportMessage(score int) string {
	switch {
	case score <= 4:
		return supportMinimal
	case score <= 9:
		return supportMild
	case score <= 14:
		return supportModerate
	default:
		return supportSignificant
	}
}
