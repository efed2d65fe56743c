package tractor

// Play 一次出牌
type Play struct {
	Player int
	Cards  Cards
}

// Trick 一轮出牌：每人各出一手，结算出唯一赢家
type Trick struct {
	Leader  int
	Plays   []Play
	Winner  int
	Points  int  // 本轮累计分值
	IsFinal bool // 是否为本局最后一轮，赢家队伍额外获得底牌分
}

// NewTrick 创建新的一轮，leader 为领出玩家
func NewTrick(leader int) *Trick {
	return &Trick{Leader: leader, Winner: -1}
}

// LeadingPlay 领出的牌，本轮还没人出牌时返回 nil
func (t *Trick) LeadingPlay() Cards {
	if len(t.Plays) == 0 {
		return nil
	}
	return t.Plays[0].Cards
}

// AddPlay 记录一次出牌并更新当前赢家与分值
// 出牌的合法性由 IsValidPlay 负责，这里只做结算。
func (t *Trick) AddPlay(player int, cards Cards, trump TrumpInfo) {
	t.Plays = append(t.Plays, Play{Player: player, Cards: cards})
	t.Points += cards.Points()
	t.resolveWinner(trump)
}

func (t *Trick) resolveWinner(trump TrumpInfo) {
	if len(t.Plays) == 0 {
		t.Winner = -1
		return
	}
	winning := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if beats(p.Cards, winning.Cards, trump) {
			winning = p
		}
	}
	t.Winner = winning.Player
}

// beats 判断 candidate 是否压过当前赢家的 winning
// 标准牌型要同型同长：同区域比牌力，主牌可以毙掉副牌。
// 甩牌只能被清一色主牌毙：主牌的分解结构必须盖住甩牌的结构。
func beats(candidate, winning Cards, trump TrumpInfo) bool {
	if len(candidate) != len(winning) {
		return false
	}
	ctxC, okC := comboSuitContext(candidate, trump)
	if !okC {
		return false
	}
	ctxW, _ := comboSuitContext(winning, trump)

	winningType := GetComboType(winning, trump)
	if winningType != ComboTypeNotStraight {
		if GetComboType(candidate, trump) != winningType {
			return false
		}
		if ctxC == ctxW {
			return CompareCombos(NewCombo(candidate, trump), NewCombo(winning, trump), trump) > 0
		}
		// 区域不同：只有主牌能毙副牌
		return ctxC == SuitNone && ctxW != SuitNone
	}

	// 甩牌：毙牌必须全是主牌，且结构（对子数、各拖拉机长度）盖得住
	if ctxC != SuitNone {
		return false
	}
	ws := AnalyzeComboStructure(winning, trump)
	cs := AnalyzeComboStructure(candidate, trump)
	if cs.TotalPairs < ws.TotalPairs || !coversTractorSizes(cs.TractorSizes, ws.TractorSizes) {
		return false
	}
	if ctxW != SuitNone {
		return true
	}
	// 两手主牌之间比最大的牌
	return maxStrength(candidate, trump) > maxStrength(winning, trump)
}

// coversTractorSizes 判断 have（降序）能否逐一盖住 want（降序）
func coversTractorSizes(have, want []int) bool {
	if len(have) < len(want) {
		return false
	}
	for i, w := range want {
		if have[i] < w {
			return false
		}
	}
	return true
}
