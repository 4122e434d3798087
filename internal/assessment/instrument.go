// Package assessment holds the two standardized questionnaires supported by
// Zenora (GAD-7 for anxiety, PHQ-9 for depression), their clinical scoring
// bands, and the Attempt type that collects answers and freezes a result.
//
// Everything in this package is pure: no I/O, no clock reads except the
// timestamp handed to Submit, and no knowledge of sessions or persistence.
package assessment

// Kind identifies an instrument. The string values double as the wire
// "type" field sent to the backend.
type Kind string

const (
	Anxiety    Kind = "gad7"
	Depression Kind = "phq9"
)

// MaxResponse is the highest ordinal value on every item's response scale.
const MaxResponse = 3

// Option is a single point on an item's response scale.
type Option struct {
	Value int
	Label string
}

// Item is one question of an instrument. IDs are unique within an instrument.
type Item struct {
	ID      int
	Prompt  string
	Options []Option
}

// Instrument is a static questionnaire definition.
type Instrument struct {
	Kind        Kind
	Title       string
	Description string
	Items       []Item
}

// MaxScore is the highest total an attempt on the instrument can reach.
func (in *Instrument) MaxScore() int {
	return MaxResponse * len(in.Items)
}

func (in *Instrument) item(id int) (Item, bool) {
	for _, it := range in.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

func (it Item) allows(value int) bool {
	for _, o := range it.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Label returns the human-readable name of the kind.
func (k Kind) Label() string {
	switch k {
	case Anxiety:
		return "anxiety"
	case Depression:
		return "depression"
	default:
		return string(k)
	}
}

// ParseKind accepts either the wire value ("gad7") or the human name
// ("anxiety").
func ParseKind(s string) (Kind, error) {
	switch s {
	case string(Anxiety), "anxiety":
		return Anxiety, nil
	case string(Depression), "depression":
		return Depression, nil
	default:
		return "", ErrUnknownInstrument
	}
}

// Lookup returns the catalog entry for kind. The returned instrument is
// shared and must not be modified.
func Lookup(kind Kind) (*Instrument, error) {
	switch kind {
	case Anxiety:
		return gad7, nil
	case Depression:
		return phq9, nil
	default:
		return nil, ErrUnknownInstrument
	}
}

// Instruments lists the catalog in display order.
func Instruments() []*Instrument {
	return []*Instrument{gad7, phq9}
}

func frequencyScale() []Option {
	return []Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
}

func items(prompts ...string) []Item {
	out := make([]Item, len(prompts))
	for i, p := range prompts {
		out[i] = Item{ID: i + 1, Prompt: p, Options: frequencyScale()}
	}
	return out
}

const twoWeeks = "Over the last 2 weeks, how often have you been bothered by the following problems?"

var gad7 = &Instrument{
	Kind:        Anxiety,
	Title:       "Anxiety Assessment (GAD-7)",
	Description: twoWeeks,
	Items: items(
		"Feeling nervous, anxious, or on edge",
		"Not being able to stop or control worrying",
		"Worrying too much about different things",
		"Trouble relaxing",
		"Being so restless that it is hard to sit still",
		"Becoming easily annoyed or irritable",
		"Feeling afraid as if something awful might happen",
	),
}

var phq9 = &Instrument{
	Kind:        Depression,
	Title:       "Depression Assessment (PHQ-9)",
	Description: twoWeeks,
	Items: items(
		"Little interest or pleasure in doing things",
		"Feeling down, depressed, or hopeless",
		"Trouble falling or staying asleep, or sleeping too much",
		"Feeling tired or having little energy",
		"Poor appetite or overeating",
		"Feeling bad about yourself - or that you are a failure or have let yourself or your family down",
		"Trouble concentrating on things, such as reading the newspaper or watching television",
		"Moving or speaking so slowly that other people could have noticed. Or the opposite - being so fidgety or restless that you have been moving around a lot more than usual",
		"Thoughts that you would be better off dead, or of hurting yourself in some way",
	),
}
