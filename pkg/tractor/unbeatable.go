package tractor

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// ComputeUnseen 计算某区域内其他玩家可能还持有的牌
// 从双副整牌中去掉已打出的、自己手里的、以及可见的底牌后剩下的部分。
// 底牌只有本局开局玩家看过，其他玩家传空即可，这种不对称是规则本身的要求。
func ComputeUnseen(context Suit, trump TrumpInfo, played, ownHand, visibleKitty Cards) Cards {
	seen := make(map[string]int)
	for _, group := range [][]Card{played, ownHand, visibleKitty} {
		for _, c := range group {
			if trump.InContext(c, context) {
				seen[c.CommonID]++
			}
		}
	}

	var unseen Cards
	for _, c := range NewDeck(2) {
		if !trump.InContext(c, context) {
			continue
		}
		if seen[c.CommonID] > 0 {
			seen[c.CommonID]--
			continue
		}
		unseen = append(unseen, c)
	}
	return unseen
}

// IsComboUnbeatable 判断甩牌的一个组成部分是否不可能被压
// context 为 SuitNone（主牌甩牌）时一律按可被压处理：
// 主牌甩牌的不可压判定没有可靠口径，宁可保守也不猜。
func IsComboUnbeatable(combo Combo, context Suit, played, ownHand Cards, trump TrumpInfo, visibleKitty Cards) bool {
	if context == SuitNone {
		return false
	}
	unseen := ComputeUnseen(context, trump, played, ownHand, visibleKitty)
	return unbeatableAgainst(combo, unseen, trump)
}

// unbeatableAgainst 在给定的未见牌集合下判断牌型是否不可压
// 同一次甩牌的多个组成部分共享一次 ComputeUnseen 的结果。
// 未见牌中存在等大的牌也按可被压处理：甩出去的单张如果另一张
// 同样的牌还没露面，就不算稳。
func unbeatableAgainst(combo Combo, unseen Cards, trump TrumpInfo) bool {
	switch combo.Type {
	case ComboTypeSingle:
		for _, c := range unseen {
			if trump.Strength(c) >= combo.Strength {
				return false
			}
		}
		return true
	case ComboTypePair:
		for _, group := range unseen.ByCommonID() {
			if len(group) >= 2 && trump.Strength(group[0]) >= combo.Strength {
				return false
			}
		}
		return true
	case ComboTypeTractor:
		for _, t := range FindAllTractors(unseen, trump) {
			if len(t.Cards) == len(combo.Cards) && t.Strength >= combo.Strength {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// LeadingMultiComboResult 甩牌校验结果
type LeadingMultiComboResult struct {
	IsValid          bool
	Reasons          []string
	OthersAllVoid    bool   // 其余三家是否都已确认断门
	UnbeatableStatus []bool // 与 Components 一一对应
	Components       []Combo
}

// ValidateLeadingMultiCombo 校验一次甩牌领出
// 甩牌的每个组成部分必须满足：其余三家都已确认断门，或该部分不可能被压。
// 未见牌只计算一次，所有组成部分共享。
func ValidateLeadingMultiCombo(cards, hand Cards, player int, state *GameState) LeadingMultiComboResult {
	res := LeadingMultiComboResult{}

	context, ok := comboSuitContext(cards, state.Trump)
	if !ok {
		res.Reasons = append(res.Reasons, "cards span multiple suits")
		return res
	}

	structure := AnalyzeComboStructure(cards, state.Trump)
	res.Components = structure.Components
	res.OthersAllVoid = state.Memory != nil && state.Memory.AllOthersVoid(player, context)

	var played Cards
	if state.Memory != nil {
		played = state.Memory.Played
	}
	var unseen Cards
	if context != SuitNone {
		unseen = ComputeUnseen(context, state.Trump, played, hand, state.VisibleKitty(player))
	}

	res.IsValid = true
	for _, comp := range structure.Components {
		unbeatable := context != SuitNone && unbeatableAgainst(comp, unseen, state.Trump)
		res.UnbeatableStatus = append(res.UnbeatableStatus, unbeatable)
		if !res.OthersAllVoid && !unbeatable {
			res.IsValid = false
			res.Reasons = append(res.Reasons,
				fmt.Sprintf("component %s %v can be beaten", comp.Type, comp.Cards))
		}
	}

	if !res.IsValid {
		log.Trace().Int("player", player).Str("context", context.String()).
			Strs("reasons", res.Reasons).Msg("leading multi-combo rejected")
	}
	return res
}
