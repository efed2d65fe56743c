package tractor

import "sort"

// ComboStructure 一组同区域牌的最优分解结果
type ComboStructure struct {
	TotalLength  int
	TotalPairs   int   // 对子总数，含拖拉机内的对子
	TractorCount int
	TractorSizes []int // 各拖拉机的对子数，降序
	Components   []Combo
}

// TractorPairs 拖拉机内的对子总数
func (s ComboStructure) TractorPairs() (total int) {
	for _, size := range s.TractorSizes {
		total += size
	}
	return
}

// SingleCount 散牌张数
func (s ComboStructure) SingleCount() int {
	return s.TotalLength - 2*s.TotalPairs
}

// AnalyzeComboStructure 把一组同区域的牌分解为互不重叠的最优牌型组合
// 先保证拖拉机总长度最大，再保证对子数最多，任何一张牌不会计入两个牌型。
// 反复取最长的拖拉机（等长取牌力高的），剩余的牌再配对。
// 甩牌校验和跟牌的反作弊结构比较共用这一个分解，避免两条路径口径不一。
func AnalyzeComboStructure(cards Cards, trump TrumpInfo) ComboStructure {
	remaining := cards.Clone()
	var comps []Combo

	for {
		candidates := FindAllTractors(remaining, trump)
		if len(candidates) == 0 {
			break
		}
		best := candidates[0]
		for _, t := range candidates[1:] {
			if len(t.Cards) > len(best.Cards) ||
				(len(t.Cards) == len(best.Cards) && t.Strength > best.Strength) {
				best = t
			}
		}
		comps = append(comps, best)
		remaining = remaining.Remove(best.Cards)
	}

	// 剩余的牌配对，再剩下的作为散牌
	used := make(map[string]bool)
	for i, c := range remaining {
		if used[c.ID] {
			continue
		}
		for j := i + 1; j < len(remaining); j++ {
			d := remaining[j]
			if !used[d.ID] && d.CommonID == c.CommonID {
				used[c.ID], used[d.ID] = true, true
				comps = append(comps, Combo{
					Type:     ComboTypePair,
					Cards:    Cards{c, d},
					Strength: trump.Strength(c),
				})
				break
			}
		}
	}
	for _, c := range remaining {
		if !used[c.ID] {
			comps = append(comps, Combo{
				Type:     ComboTypeSingle,
				Cards:    Cards{c},
				Strength: trump.Strength(c),
			})
		}
	}

	// 拖拉机在前、对子次之、散牌最后，同类按牌力降序
	sort.SliceStable(comps, func(i, j int) bool {
		if comps[i].Type != comps[j].Type {
			return comps[i].Type > comps[j].Type
		}
		if len(comps[i].Cards) != len(comps[j].Cards) {
			return len(comps[i].Cards) > len(comps[j].Cards)
		}
		return comps[i].Strength > comps[j].Strength
	})

	s := ComboStructure{
		TotalLength: len(cards),
		Components:  comps,
	}
	for _, comp := range comps {
		switch comp.Type {
		case ComboTypeTractor:
			s.TractorCount++
			s.TractorSizes = append(s.TractorSizes, len(comp.Cards)/2)
			s.TotalPairs += len(comp.Cards) / 2
		case ComboTypePair:
			s.TotalPairs++
		}
	}
	return s
}

// MultiCombo 甩牌：同一区域内多个牌型一次性打出
type MultiCombo struct {
	Suit         Suit // 甩牌所在花色，SuitNone 表示主牌
	Components   []Combo
	TotalLength  int
	TotalPairs   int
	TractorPairs int
}

// NewMultiCombo 按最优分解构造甩牌
// 牌必须同属一个区域（一个副花色、或全部是主牌），否则返回 false。
func NewMultiCombo(cards Cards, trump TrumpInfo) (MultiCombo, bool) {
	suit, ok := comboSuitContext(cards, trump)
	if !ok {
		return MultiCombo{}, false
	}
	s := AnalyzeComboStructure(cards, trump)
	return MultiCombo{
		Suit:         suit,
		Components:   s.Components,
		TotalLength:  s.TotalLength,
		TotalPairs:   s.TotalPairs,
		TractorPairs: s.TractorPairs(),
	}, true
}

// comboSuitContext 判断一组牌所属的区域
// 全部是主牌返回 SuitNone；全部是同一副花色返回该花色；混杂返回 false。
func comboSuitContext(cards Cards, trump TrumpInfo) (Suit, bool) {
	if len(cards) == 0 {
		return SuitNone, false
	}
	if trump.IsTrump(cards[0]) {
		for _, c := range cards[1:] {
			if !trump.IsTrump(c) {
				return SuitNone, false
			}
		}
		return SuitNone, true
	}
	suit := cards[0].Suit
	for _, c := range cards[1:] {
		if trump.IsTrump(c) || c.Suit != suit {
			return SuitNone, false
		}
	}
	return suit, true
}
