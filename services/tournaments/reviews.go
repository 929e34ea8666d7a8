package tournaments

import (
	_ "embed"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

//go:embed reviews.yaml
var reviewsYAML []byte

type KillerQuote struct {
	Text    string `yaml:"text" json:"text"`
	Speaker string `yaml:"speaker" json:"speaker"`
	Side    string `yaml:"side" json:"side"`
}

type JudgeQuote struct {
	Text  string `yaml:"text" json:"text"`
	Judge string `yaml:"judge" json:"judge"`
}

// Review is Terrance's own write-up of a single debate.
type Review struct {
	DebateTake  string       `yaml:"debate_take" json:"debateTake"`
	JudgesTake  string       `yaml:"judges_take" json:"judgesTake"`
	KillerQuote *KillerQuote `yaml:"killer_quote" json:"killerQuote,omitempty"`
	JudgeQuote  *JudgeQuote  `yaml:"judge_quote" json:"judgeQuote,omitempty"`
}

// Reviews holds reviews by debate ID.
type Reviews map[string]Review

// LoadReviews decodes the embedded review set.
func LoadReviews() (Reviews, error) {
	return ParseReviews(reviewsYAML)
}

func ParseReviews(data []byte) (Reviews, error) {
	reviews := Reviews{}
	if err := yaml.Unmarshal(data, &reviews); err != nil {
		return nil, xerrors.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}

func (r Reviews) Lookup(debateID string) (Review, bool) {
	review, ok := r[debateID]
	return review, ok
}
