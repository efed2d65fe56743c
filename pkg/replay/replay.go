package replay

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/play/tractor/pkg/tractor"
	"github.com/play/tractor/pkg/worker"
)

var (
	ErrBadRecord     = errors.New("malformed round record")
	ErrBadCard       = errors.New("unknown card in record")
	ErrCardNotInHand = errors.New("recorded play not covered by hand")
)

// ParseRound decodes one recorded round from a JSON document.
func ParseRound(data []byte) (*RoundRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrBadRecord
	}
	doc := gjson.ParseBytes(data)

	r := &RoundRecord{
		Starter: int(doc.Get("starter").Int()),
		Trump: TrumpRecord{
			Rank: doc.Get("trump.rank").String(),
			Suit: doc.Get("trump.suit").String(),
		},
	}
	if r.Trump.Rank == "" {
		return nil, ErrBadRecord
	}

	for _, cr := range doc.Get("kitty").Array() {
		r.Kitty = append(r.Kitty, cardRecord(cr))
	}
	for _, hr := range doc.Get("hands").Array() {
		var hand []CardRecord
		for _, cr := range hr.Array() {
			hand = append(hand, cardRecord(cr))
		}
		r.Hands = append(r.Hands, hand)
	}
	for _, tr := range doc.Get("tricks").Array() {
		t := TrickRecord{Leader: int(tr.Get("leader").Int())}
		for _, pr := range tr.Get("plays").Array() {
			p := PlayRecord{Player: int(pr.Get("player").Int())}
			for _, cr := range pr.Get("cards").Array() {
				p.Cards = append(p.Cards, cardRecord(cr))
			}
			t.Plays = append(t.Plays, p)
		}
		r.Tricks = append(r.Tricks, t)
	}
	return r, nil
}

func cardRecord(v gjson.Result) CardRecord {
	return CardRecord{
		Suit:  v.Get("suit").String(),
		Rank:  v.Get("rank").String(),
		Joker: v.Get("joker").String(),
	}
}

// TrumpInfo converts the recorded trump declaration.
func (r *RoundRecord) TrumpInfo() tractor.TrumpInfo {
	return tractor.TrumpInfo{
		Rank: tractor.ParseRank(r.Trump.Rank),
		Suit: tractor.ParseSuit(r.Trump.Suit),
	}
}

func toCard(rec CardRecord) (tractor.Card, error) {
	if rec.Joker != "" {
		j := tractor.ParseJoker(rec.Joker)
		if j == tractor.JokerNone {
			return tractor.Card{}, ErrBadCard
		}
		return tractor.NewJoker(j), nil
	}
	suit, rank := tractor.ParseSuit(rec.Suit), tractor.ParseRank(rec.Rank)
	if suit == tractor.SuitNone || rank == tractor.RankNone {
		return tractor.Card{}, ErrBadCard
	}
	return tractor.NewCard(suit, rank), nil
}

func toCards(recs []CardRecord) (tractor.Cards, error) {
	var out tractor.Cards
	for _, rec := range recs {
		c, err := toCard(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// pickFromHand resolves recorded plays against the live hand so that
// the picked cards carry the hand's instance identities.
func pickFromHand(hand tractor.Cards, recs []CardRecord) (tractor.Cards, error) {
	taken := make(map[string]bool, len(recs))
	var out tractor.Cards
	for _, rec := range recs {
		want, err := toCard(rec)
		if err != nil {
			return nil, err
		}
		found := false
		for _, c := range hand {
			if !taken[c.ID] && c.SameAs(want) {
				out = append(out, c)
				taken[c.ID] = true
				found = true
				break
			}
		}
		if !found {
			return nil, ErrCardNotInHand
		}
	}
	return out, nil
}

// RebuildMemory replays the first upTo tricks into a fresh memory
// snapshot. Pass len(r.Tricks) for the full round.
func (r *RoundRecord) RebuildMemory(upTo int) (*tractor.Memory, error) {
	trump := r.TrumpInfo()
	m := tractor.NewMemory()
	if upTo > len(r.Tricks) {
		upTo = len(r.Tricks)
	}
	for _, tr := range r.Tricks[:upTo] {
		trick := tractor.NewTrick(tr.Leader)
		for _, pr := range tr.Plays {
			cards, err := toCards(pr.Cards)
			if err != nil {
				return nil, err
			}
			trick.AddPlay(pr.Player, cards, trump)
		}
		m.ObserveTrick(trick, trump)
	}
	return m, nil
}

// Violation is a recorded play the validator rejects.
type Violation struct {
	Trick  int
	Player int
	Cards  tractor.Cards
}

// Validate replays the whole round against the dealt hands and runs
// every recorded play through the play validator. Records without
// hands cannot be re-validated.
func (r *RoundRecord) Validate() ([]Violation, error) {
	if len(r.Hands) == 0 {
		return nil, ErrBadRecord
	}
	trump := r.TrumpInfo()

	hands := make([]tractor.Cards, len(r.Hands))
	for i, hr := range r.Hands {
		hand, err := toCards(hr)
		if err != nil {
			return nil, err
		}
		hands[i] = hand
	}
	kitty, err := toCards(r.Kitty)
	if err != nil {
		return nil, err
	}

	memory := tractor.NewMemory()
	var violations []Violation
	for ti, tr := range r.Tricks {
		trick := tractor.NewTrick(tr.Leader)
		state := &tractor.GameState{
			Trump:        trump,
			CurrentTrick: trick,
			Memory:       memory,
			Kitty:        kitty,
			RoundStarter: r.Starter,
		}
		for _, pr := range tr.Plays {
			if pr.Player < 0 || pr.Player >= len(hands) {
				return nil, ErrBadRecord
			}
			cards, err := pickFromHand(hands[pr.Player], pr.Cards)
			if err != nil {
				return nil, err
			}
			if !tractor.IsValidPlay(cards, hands[pr.Player], pr.Player, state) {
				log.Warn().Int("trick", ti).Int("player", pr.Player).
					Msg("recorded play fails validation")
				violations = append(violations, Violation{
					Trick:  ti,
					Player: pr.Player,
					Cards:  cards,
				})
			}
			trick.AddPlay(pr.Player, cards, trump)
			hands[pr.Player] = hands[pr.Player].Remove(cards)
		}
		memory.ObserveTrick(trick, trump)
	}
	return violations, nil
}

// LoadFiles parses round logs concurrently with a bounded worker pool.
func LoadFiles(paths []string, limit int) ([]*RoundRecord, error) {
	pool := worker.NewPool(limit)
	records := make([]*RoundRecord, len(paths))
	errs := make([]error, len(paths))

	for i, path := range paths {
		if err := pool.Go(func() {
			data, err := os.ReadFile(path)
			if err != nil {
				errs[i] = err
				return
			}
			records[i], errs[i] = ParseRound(data)
		}); err != nil {
			return nil, err
		}
	}
	pool.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return records, nil
}
