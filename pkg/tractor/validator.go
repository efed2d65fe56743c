package tractor

import "github.com/rs/zerolog/log"

// GameState 一次校验所需的对局快照
// 引擎每次调用都从快照重新计算，调用期间快照不可被修改；
// 引擎自身无状态，快照只读，多个校验可以并发进行。
type GameState struct {
	Trump        TrumpInfo
	CurrentTrick *Trick
	Memory       *Memory
	Kitty        Cards // 底牌
	RoundStarter int   // 本局开局玩家，看过底牌
}

// VisibleKitty 玩家可见的底牌
// 只有开局玩家埋过底牌，其他人一律不可见。
func (gs *GameState) VisibleKitty(player int) Cards {
	if player == gs.RoundStarter {
		return gs.Kitty
	}
	return nil
}

// IsValidPlay 判断一次出牌是否合法
// 不合法一律返回 false，不返回错误：出牌被拒绝是常态路径。
// AI 生成的候选出牌也必须经过这里，返回 false 时由调用方换牌重试。
func IsValidPlay(played, hand Cards, player int, state *GameState) bool {
	if len(played) == 0 || !hand.ContainsAll(played) {
		return false
	}
	if state.CurrentTrick == nil || len(state.CurrentTrick.Plays) == 0 {
		return validLead(played, hand, player, state)
	}
	return validFollow(played, hand, state.CurrentTrick.LeadingPlay(), state.Trump)
}

// validLead 领出校验
// 标准牌型直接放行；同一副花色的甩牌走断门/不可压校验；
// 清一色主牌且不含重复逻辑牌的甩牌放行（主牌甩牌的不可压判定无口径）；
// 其余（混副花色、含重复逻辑牌的主牌甩牌）非法。
func validLead(played, hand Cards, player int, state *GameState) bool {
	if GetComboType(played, state.Trump) != ComboTypeNotStraight {
		return true
	}
	context, ok := comboSuitContext(played, state.Trump)
	if !ok {
		log.Trace().Int("player", player).Msg("lead rejected: mixed suits")
		return false
	}
	if context != SuitNone {
		return ValidateLeadingMultiCombo(played, hand, player, state).IsValid
	}
	return !played.HasDuplicateCommon()
}

// validFollow 跟牌校验
func validFollow(played, hand, lead Cards, trump TrumpInfo) bool {
	if len(played) != len(lead) {
		return false
	}
	leadCtx, ok := comboSuitContext(lead, trump)
	if !ok {
		// 领出牌混区域，已校验的对局不会出现这种状态
		return false
	}
	relevant := relevantCards(hand, leadCtx, trump)

	leadType := GetComboType(lead, trump)
	if leadType == ComboTypeNotStraight {
		return validMultiComboFollow(played, relevant, lead, trump)
	}
	return validStraightFollow(played, relevant, lead, leadType, trump)
}

// relevantCards 手牌中属于领出区域的牌
// 领出主牌时主牌整体视作一门，与副花色同等对待。
func relevantCards(hand Cards, context Suit, trump TrumpInfo) Cards {
	var out Cards
	for _, c := range hand {
		if trump.InContext(c, context) {
			out = append(out, c)
		}
	}
	return out
}

// validStraightFollow 跟标准牌型
// 能跟同型必须跟同型；跟不了同型只能用本门牌并满足对子优先与保对；
// 本门牌不足时必须全部垫出；本门断门时任意出。
func validStraightFollow(played, relevant, lead Cards, leadType ComboType, trump TrumpInfo) bool {
	leadLen := len(lead)

	if len(relevant) >= leadLen {
		if canFormType(relevant, leadType, leadLen, trump) {
			// 有同型就必须出同型，不许把对子藏进散牌里
			return relevant.ContainsAll(played) && GetComboType(played, trump) == leadType
		}
		if !relevant.ContainsAll(played) {
			return false
		}
		return followsPairPriority(played, relevant, lead, trump)
	}

	if len(relevant) > 0 {
		// 本门牌不够：全部垫出，缺口随意补
		// 本门牌全出了，对子优先与保对自然满足
		return played.ContainsAll(relevant)
	}

	return true
}

// canFormType 本门牌里能否组出领出的牌型
func canFormType(relevant Cards, leadType ComboType, leadLen int, trump TrumpInfo) bool {
	switch leadType {
	case ComboTypeSingle:
		return len(relevant) > 0
	case ComboTypePair:
		for _, group := range relevant.ByCommonID() {
			if len(group) >= 2 {
				return true
			}
		}
		return false
	case ComboTypeTractor:
		for _, t := range FindAllTractors(relevant, trump) {
			if len(t.Cards) == leadLen {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// followsPairPriority 跟对子/拖拉机时的对子优先与保对约束
// 领出不含对子时没有约束；否则手里能配出的对子必须先出，
// 有等量不拆对的出法时拆对充散牌即非法。
func followsPairPriority(played, relevant, lead Cards, trump TrumpInfo) bool {
	leadPairs := AnalyzeComboStructure(lead, trump).TotalPairs
	if leadPairs == 0 {
		return true
	}
	availPairs := AnalyzeComboStructure(relevant, trump).TotalPairs
	required := min(leadPairs, availPairs, len(played)/2)
	if AnalyzeComboStructure(played, trump).TotalPairs < required {
		log.Trace().Int("required_pairs", required).Msg("follow rejected: pair priority")
		return false
	}
	return true
}

// validMultiComboFollow 跟甩牌的校验
// 垫牌优先：这一手把本门出空就直接合法，结构不再约束。
// 否则必须全用本门牌，且打出的对子数、拖拉机对子数不得少于
// 手里本可打出的水平（以领出结构为上限）——能出而不出即作弊。
func validMultiComboFollow(played, relevant, lead Cards, trump TrumpInfo) bool {
	if played.ContainsAll(relevant) {
		return true
	}
	if !relevant.ContainsAll(played) {
		return false
	}

	leadStruct := AnalyzeComboStructure(lead, trump)
	bestStruct := AnalyzeComboStructure(relevant, trump)
	playedStruct := AnalyzeComboStructure(played, trump)

	requiredPairs := min(leadStruct.TotalPairs, bestStruct.TotalPairs, len(lead)/2)
	if playedStruct.TotalPairs < requiredPairs {
		log.Trace().Int("required_pairs", requiredPairs).
			Int("played_pairs", playedStruct.TotalPairs).
			Msg("multi-combo follow rejected: withheld pairs")
		return false
	}

	requiredTractorPairs := min(leadStruct.TractorPairs(), bestStruct.TractorPairs())
	if playedStruct.TractorPairs() < requiredTractorPairs {
		log.Trace().Int("required_tractor_pairs", requiredTractorPairs).
			Int("played_tractor_pairs", playedStruct.TractorPairs()).
			Msg("multi-combo follow rejected: withheld tractor")
		return false
	}
	return true
}
