package tractor

import "sort"

// FindAllTractors 找出牌中所有可能的拖拉机
// 先按逻辑牌取对，再按拖拉机序数分层，序数连续的 >=2 层构成拖拉机；
// 连续段内每个长度 >=2 的子段也都单独上报。
// 花色分段保证了不同副花色之间、主牌与副牌之间不会误判相邻；
// 主花色级牌与副花色级牌序数相邻，跨花色级牌拖拉机按对子的
// 笛卡尔积逐一展开（同一序数上可能有多个副花色的级牌对）。
func FindAllTractors(cards Cards, trump TrumpInfo) []Combo {
	pairsAt := make(map[int][]Cards)
	for _, group := range cards.ByCommonID() {
		if len(group) >= 2 {
			lvl := trump.TractorRank(group[0])
			pairsAt[lvl] = append(pairsAt[lvl], Cards{group[0], group[1]})
		}
	}
	if len(pairsAt) < 2 {
		return nil
	}

	levels := make([]int, 0, len(pairsAt))
	for lvl := range pairsAt {
		levels = append(levels, lvl)
	}
	sort.Ints(levels)

	var out []Combo
	runStart := 0
	for i := 1; i <= len(levels); i++ {
		if i == len(levels) || levels[i] != levels[i-1]+1 {
			out = append(out, tractorsInRun(levels[runStart:i], pairsAt, trump)...)
			runStart = i
		}
	}
	return out
}

// tractorsInRun 枚举一段连续序数内的所有拖拉机窗口
func tractorsInRun(run []int, pairsAt map[int][]Cards, trump TrumpInfo) []Combo {
	var out []Combo
	for start := 0; start < len(run)-1; start++ {
		for end := start + 1; end < len(run); end++ {
			out = append(out, expandWindow(run[start:end+1], pairsAt, trump, nil)...)
		}
	}
	return out
}

// expandWindow 在窗口内逐层选对子，展开所有组合
func expandWindow(window []int, pairsAt map[int][]Cards, trump TrumpInfo, prefix Cards) []Combo {
	if len(window) == 0 {
		picked := prefix.Clone()
		return []Combo{{
			Type:     ComboTypeTractor,
			Cards:    picked,
			Strength: maxStrength(picked, trump),
		}}
	}
	var out []Combo
	for _, pair := range pairsAt[window[0]] {
		next := append(prefix.Clone(), pair...)
		out = append(out, expandWindow(window[1:], pairsAt, trump, next)...)
	}
	return out
}

// IsValidTractor 判断这些牌是否恰好构成一个拖拉机
func IsValidTractor(cards Cards, trump TrumpInfo) bool {
	if len(cards) < 4 || len(cards)%2 != 0 {
		return false
	}
	for _, t := range FindAllTractors(cards, trump) {
		if len(t.Cards) == len(cards) && cards.ContainsAll(t.Cards) {
			return true
		}
	}
	return false
}
