package models

import "fmt"

// SearchKind names a searchable collection of the otdb API.
type SearchKind string

const (
	SearchUsers       SearchKind = "users"
	SearchMappools    SearchKind = "mappools"
	SearchTournaments SearchKind = "tournaments"
)

// SearchKinds lists every supported SearchKind.
var SearchKinds = []SearchKind{SearchUsers, SearchMappools, SearchTournaments}

type User struct {
	ID       int    `json:"id" yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Avatar   string `json:"avatar" yaml:"avatar"`
	Cover    string `json:"cover" yaml:"cover"`
}

type Mappool struct {
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	SubmittedByID int     `json:"submitted_by_id" yaml:"submitted_by_id"`
	AvgStarRating float64 `json:"avg_star_rating" yaml:"avg_star_rating"`
}

type Tournament struct {
	ID            int    `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	Abbreviation  string `json:"abbreviation" yaml:"abbreviation"`
	Description   string `json:"description" yaml:"description"`
	Link          string `json:"link" yaml:"link"`
	SubmittedByID int    `json:"submitted_by_id" yaml:"submitted_by_id"`
}

// DisplayName is the label a tournament is listed under.
func (t Tournament) DisplayName() string {
	if t.Abbreviation == "" {
		return t.Name
	}
	return fmt.Sprintf("[%s] %s", t.Abbreviation, t.Name)
}
