package tractor

// Memory 对局记忆快照：已打出的牌与各家确认断门的区域
// 由唯一的写入方根据出牌历史重建，校验调用只读传入；
// 引擎自身不持有任何跨调用状态。
type Memory struct {
	Played Cards
	voids  [4]map[Suit]bool // key 为区域：副花色，或 SuitNone 表示主牌
}

// NewMemory 创建空的记忆快照
func NewMemory() *Memory {
	m := &Memory{}
	for i := range m.voids {
		m.voids[i] = make(map[Suit]bool)
	}
	return m
}

// ObservePlay 记录一次出牌
// 跟牌中出现不属于领出区域的牌，即可确认该玩家此区域断门。
func (m *Memory) ObservePlay(player int, cards Cards, leadContext Suit, trump TrumpInfo) {
	m.Played = append(m.Played, cards...)
	for _, c := range cards {
		if !trump.InContext(c, leadContext) {
			m.voids[player][leadContext] = true
			break
		}
	}
}

// ObserveTrick 记录一整轮的出牌
func (m *Memory) ObserveTrick(t *Trick, trump TrumpInfo) {
	if t == nil || len(t.Plays) == 0 {
		return
	}
	leadCtx, ok := comboSuitContext(t.Plays[0].Cards, trump)
	if !ok {
		return
	}
	for _, play := range t.Plays {
		m.ObservePlay(play.Player, play.Cards, leadCtx, trump)
	}
}

// MarkVoid 直接标记断门，供外部记牌器使用
func (m *Memory) MarkVoid(player int, context Suit) {
	m.voids[player][context] = true
}

// IsVoid 玩家在该区域是否已确认断门
func (m *Memory) IsVoid(player int, context Suit) bool {
	return m.voids[player][context]
}

// AllOthersVoid 除 player 外的三家是否都已确认断门
func (m *Memory) AllOthersVoid(player int, context Suit) bool {
	for p := range m.voids {
		if p == player {
			continue
		}
		if !m.voids[p][context] {
			return false
		}
	}
	return true
}

// BuildMemory 从出牌历史重建记忆快照
func BuildMemory(tricks []*Trick, trump TrumpInfo) *Memory {
	m := NewMemory()
	for _, t := range tricks {
		m.ObserveTrick(t, trump)
	}
	return m
}
