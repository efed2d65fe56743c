package tractor

// Deal 一次发牌结果
type Deal struct {
	Hands []Cards
	Kitty Cards // 底牌，归开局玩家扣换
}

// DealRound 洗牌并发牌
// 先按人数均分，余下的作为底牌。底牌只有开局玩家可见，
// 这直接决定了甩牌不可压判定里未见牌的不对称性。
func DealRound(s Settings) (*Deal, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	deck := NewDeck(s.Decks)
	deck.Shuffle()

	d := &Deal{Hands: make([]Cards, s.Players)}
	for i := range s.Players {
		start := i * s.HandSize
		d.Hands[i] = deck[start : start+s.HandSize].Clone()
	}
	d.Kitty = deck[s.Players*s.HandSize:].Clone()
	return d, nil
}
