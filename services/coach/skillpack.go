// Package coach serves Terrance's debate skill pack, both as JSON for agents and as a
// page for humans.
package coach

import (
	_ "embed"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

//go:embed skillpack.yaml
var skillPackYAML []byte

type SkillPack struct {
	Coach          string         `yaml:"coach" json:"coach"`
	Version        string         `yaml:"version" json:"version"`
	Description    string         `yaml:"description" json:"description"`
	Format         Format         `yaml:"format" json:"format"`
	Rubric         Rubric         `yaml:"rubric" json:"rubric"`
	Strategies     []Strategy     `yaml:"strategies" json:"strategies"`
	CommonMistakes []Mistake      `yaml:"common_mistakes" json:"commonMistakes"`
	TournamentMeta TournamentMeta `yaml:"tournament_meta" json:"tournamentMeta"`
	TerranceWisdom []string       `yaml:"terrance_wisdom" json:"terranceWisdom"`
}

type Format struct {
	Sides        []string   `yaml:"sides" json:"sides"`
	PostsPerSide int        `yaml:"posts_per_side" json:"postsPerSide"`
	TotalPosts   int        `yaml:"total_posts" json:"totalPosts"`
	CharLimits   CharLimits `yaml:"char_limits" json:"charLimits"`
	JurySize     int        `yaml:"jury_size" json:"jurySize"`
	BlindVoting  bool       `yaml:"blind_voting" json:"blindVoting"`
	TurnOrder    []string   `yaml:"turn_order" json:"turnOrder"`
}

type CharLimits struct {
	Opening    int `yaml:"opening" json:"opening"`
	Subsequent int `yaml:"subsequent" json:"subsequent"`
}

// Rubric keeps the criteria as fields so they always serialize in weight order.
type Rubric struct {
	ClashAndRebuttal     Criterion `yaml:"clash_and_rebuttal" json:"clashAndRebuttal"`
	EvidenceAndReasoning Criterion `yaml:"evidence_and_reasoning" json:"evidenceAndReasoning"`
	Clarity              Criterion `yaml:"clarity" json:"clarity"`
	Conduct              Criterion `yaml:"conduct" json:"conduct"`
}

type Criterion struct {
	Weight      int      `yaml:"weight" json:"weight"`
	Description string   `yaml:"description" json:"description"`
	Tips        []string `yaml:"tips" json:"tips"`
}

type Strategy struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Phase       string `yaml:"phase" json:"phase"`
	Difficulty  string `yaml:"difficulty" json:"difficulty"`
}

type Mistake struct {
	Mistake     string `yaml:"mistake" json:"mistake"`
	Severity    string `yaml:"severity" json:"severity"`
	Explanation string `yaml:"explanation" json:"explanation"`
}

type TournamentMeta struct {
	EloSystem     string        `yaml:"elo_system" json:"eloSystem"`
	SeriesFormats SeriesFormats `yaml:"series_formats" json:"seriesFormats"`
	Forfeiting    string        `yaml:"forfeiting" json:"forfeiting"`
	Shutouts      string        `yaml:"shutouts" json:"shutouts"`
	SideBias      string        `yaml:"side_bias" json:"sideBias"`
}

type SeriesFormats struct {
	Bo1 string `yaml:"bo1" json:"Bo1"`
	Bo3 string `yaml:"bo3" json:"Bo3"`
	Bo5 string `yaml:"bo5" json:"Bo5"`
}

// NamedCriterion pairs a rubric entry with its display name and color for the page.
type NamedCriterion struct {
	Name  string
	Color string
	Criterion
}

// Criteria lists the rubric in weight order.
func (r Rubric) Criteria() []NamedCriterion {
	return []NamedCriterion{
		{Name: "Clash & Rebuttal", Color: "neon-magenta", Criterion: r.ClashAndRebuttal},
		{Name: "Evidence & Reasoning", Color: "neon-cyan", Criterion: r.EvidenceAndReasoning},
		{Name: "Clarity", Color: "neon-amber", Criterion: r.Clarity},
		{Name: "Conduct", Color: "neon-green", Criterion: r.Conduct},
	}
}

// LoadSkillPack decodes the embedded skill pack.
func LoadSkillPack() (*SkillPack, error) {
	return ParseSkillPack(skillPackYAML)
}

func ParseSkillPack(data []byte) (*SkillPack, error) {
	var pack SkillPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, xerrors.Errorf("decode skill pack: %w", err)
	}
	if pack.Coach == "" {
		return nil, xerrors.New("decode skill pack: missing coach")
	}
	return &pack, nil
}
