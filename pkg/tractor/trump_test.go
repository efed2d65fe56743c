package tractor

import (
	"testing"
)

// TestIsTrump 测试主牌判定
func TestIsTrump(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	tests := []struct {
		name string
		card Card
		want bool
	}{
		{"大王", NewJoker(JokerBig), true},
		{"小王", NewJoker(JokerSmall), true},
		{"主花色普通牌", NewCard(SuitHeart, Rank9), true},
		{"主花色级牌", NewCard(SuitHeart, Rank2), true},
		{"副花色级牌", NewCard(SuitSpade, Rank2), true},
		{"副花色普通牌", NewCard(SuitSpade, Rank9), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trump.IsTrump(tt.card); got != tt.want {
				t.Errorf("IsTrump(%s) = %v, want %v", tt.card, got, tt.want)
			}
		})
	}

	// 无主时只有王和级牌是主
	noSuit := TrumpInfo{Rank: Rank2}
	if noSuit.IsTrump(NewCard(SuitHeart, Rank9)) {
		t.Error("without a trump suit, plain hearts are not trump")
	}
	if !noSuit.IsTrump(NewCard(SuitHeart, Rank2)) {
		t.Error("trump rank stays trump without a trump suit")
	}
}

// TestCompareCardsOrder 测试主牌区域内从大到小的全序
func TestCompareCardsOrder(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	// 从大到小排列，相邻两张前者必须严格大于后者
	descending := Cards{
		NewJoker(JokerBig),
		NewJoker(JokerSmall),
		NewCard(SuitHeart, Rank2),  // 主花色级牌
		NewCard(SuitSpade, Rank2),  // 副花色级牌
		NewCard(SuitHeart, RankA),  // 主花色普通牌
		NewCard(SuitHeart, Rank10),
		NewCard(SuitHeart, Rank3),
	}

	for i := 0; i < len(descending)-1; i++ {
		hi, lo := descending[i], descending[i+1]
		if CompareCards(hi, lo, trump) != 1 {
			t.Errorf("%s should beat %s", hi, lo)
		}
		// 反对称
		if CompareCards(lo, hi, trump) != -1 {
			t.Errorf("CompareCards(%s, %s) should be -1", lo, hi)
		}
	}

	// 副花色级牌之间互相等大
	s2, c2 := NewCard(SuitSpade, Rank2), NewCard(SuitClub, Rank2)
	if CompareCards(s2, c2, trump) != 0 {
		t.Error("off-suit trump ranks must be mutually equal")
	}

	// 同一张逻辑牌的两张实体等大
	a1, a2 := NewCard(SuitDiamond, RankA), NewCard(SuitDiamond, RankA)
	if CompareCards(a1, a2, trump) != 0 {
		t.Error("two copies of one logical card must compare equal")
	}

	// 副花色按点数比较
	if CompareCards(NewCard(SuitSpade, RankA), NewCard(SuitSpade, RankK), trump) != 1 {
		t.Error("ace should beat king in a plain suit")
	}
}

// TestCompareCardsPanics 不可比的牌直接 panic
func TestCompareCardsPanics(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	tests := []struct {
		name string
		a, b Card
	}{
		{"两个副花色", NewCard(SuitSpade, Rank5), NewCard(SuitClub, Rank5)},
		{"主牌对副牌", NewCard(SuitHeart, Rank5), NewCard(SuitSpade, Rank5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("CompareCards(%s, %s) should panic", tt.a, tt.b)
				}
			}()
			CompareCards(tt.a, tt.b, trump)
		})
	}
}

// TestTractorRank 测试拖拉机序数
func TestTractorRank(t *testing.T) {
	trump := TrumpInfo{Rank: Rank7, Suit: SuitHeart}

	adjacent := func(a, b Card) bool {
		return trump.TractorRank(b) == trump.TractorRank(a)+1
	}

	// 级牌抽走后 6 和 8 相邻（跨级拖拉机）
	if !adjacent(NewCard(SuitSpade, Rank6), NewCard(SuitSpade, Rank8)) {
		t.Error("6 and 8 should be adjacent when 7 is the trump rank")
	}
	// 正常相邻
	if !adjacent(NewCard(SuitSpade, Rank9), NewCard(SuitSpade, Rank10)) {
		t.Error("9 and 10 should be adjacent")
	}
	// 6 和 7 不相邻：7 是级牌，已归入主牌区域
	if adjacent(NewCard(SuitSpade, Rank6), NewCard(SuitSpade, Rank7)) {
		t.Error("6 and trump-rank 7 must not be adjacent")
	}

	// 不同花色各占数段，跨花色的连续点数不相邻
	if adjacent(NewCard(SuitSpade, RankA), NewCard(SuitHeart, Rank2)) {
		t.Error("runs must not cross suits")
	}

	// 主花色级牌与副花色级牌相邻（跨花色级牌拖拉机）
	if !adjacent(NewCard(SuitSpade, Rank7), NewCard(SuitHeart, Rank7)) {
		t.Error("off-suit and trump-suit trump ranks should be adjacent")
	}
	// 副花色级牌彼此同序
	if trump.TractorRank(NewCard(SuitSpade, Rank7)) != trump.TractorRank(NewCard(SuitClub, Rank7)) {
		t.Error("off-suit trump ranks share one level")
	}

	// 大小王相邻，且与级牌区域之间留有空档
	if !adjacent(NewJoker(JokerSmall), NewJoker(JokerBig)) {
		t.Error("jokers should be adjacent")
	}
	if adjacent(NewCard(SuitHeart, Rank7), NewJoker(JokerSmall)) {
		t.Error("trump rank and small joker must not be adjacent")
	}

	// 主花色 A 与副花色级牌之间留有空档
	if adjacent(NewCard(SuitHeart, RankA), NewCard(SuitSpade, Rank7)) {
		t.Error("trump-suit ace must not bridge into trump-rank levels")
	}
}
