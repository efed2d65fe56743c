package replay

import (
	"github.com/goccy/go-json"
)

// CardRecord is the wire form of a single card in a round log.
type CardRecord struct {
	Suit  string `json:"suit,omitempty"`
	Rank  string `json:"rank,omitempty"`
	Joker string `json:"joker,omitempty"`
}

// PlayRecord is one play inside a trick.
type PlayRecord struct {
	Player int          `json:"player"`
	Cards  []CardRecord `json:"cards"`
}

// TrickRecord is one full trick.
type TrickRecord struct {
	Leader int          `json:"leader"`
	Plays  []PlayRecord `json:"plays"`
}

// TrumpRecord is the declared trump of the round.
type TrumpRecord struct {
	Rank string `json:"rank"`
	Suit string `json:"suit,omitempty"`
}

// RoundRecord is a complete recorded round: the deal, the kitty and
// every trick in order. The analysis pipeline emits this shape, one
// JSON document per round.
type RoundRecord struct {
	Trump   TrumpRecord    `json:"trump"`
	Starter int            `json:"starter"`
	Kitty   []CardRecord   `json:"kitty,omitempty"`
	Hands   [][]CardRecord `json:"hands,omitempty"`
	Tricks  []TrickRecord  `json:"tricks"`
}

// Marshal renders the record back to its canonical JSON form.
func (r *RoundRecord) Marshal() ([]byte, error) {
	return json.Marshal(r)
}
