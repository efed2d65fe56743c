package tractor

import (
	"testing"
)

// TestGetComboType 测试牌型识别
func TestGetComboType(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	s7a, s7b := NewCard(SuitSpade, Rank7), NewCard(SuitSpade, Rank7)
	s8a, s8b := NewCard(SuitSpade, Rank8), NewCard(SuitSpade, Rank8)
	s9a, s9b := NewCard(SuitSpade, Rank9), NewCard(SuitSpade, Rank9)

	tests := []struct {
		name  string
		cards Cards
		want  ComboType
	}{
		{"单张", Cards{s7a}, ComboTypeSingle},
		{"对子", Cards{s7a, s7b}, ComboTypePair},
		{"不同点数不是对子", Cards{s7a, s8a}, ComboTypeNotStraight},
		{"副花色级牌不能成对", Cards{NewCard(SuitSpade, Rank2), NewCard(SuitClub, Rank2)}, ComboTypeNotStraight},
		{"两连对拖拉机", Cards{s7a, s7b, s8a, s8b}, ComboTypeTractor},
		{"三连对拖拉机", Cards{s7a, s7b, s8a, s8b, s9a, s9b}, ComboTypeTractor},
		{"断档不是拖拉机", Cards{s7a, s7b, s9a, s9b}, ComboTypeNotStraight},
		{"奇数张不是标准牌型", Cards{s7a, s7b, s8a}, ComboTypeNotStraight},
		{"对子加散牌不是标准牌型", Cards{s7a, s7b, s8a, s9a}, ComboTypeNotStraight},
		{"王的连对", Cards{NewJoker(JokerSmall), NewJoker(JokerSmall), NewJoker(JokerBig), NewJoker(JokerBig)}, ComboTypeTractor},
		{"四张同点不是拖拉机", append(pairOf(SuitClub, Rank9), pairOf(SuitClub, Rank9)...), ComboTypeNotStraight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetComboType(tt.cards, trump); got != tt.want {
				t.Errorf("GetComboType = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestGetComboTypeOrderInvariant 识别结果与输入顺序无关
func TestGetComboTypeOrderInvariant(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	s7a, s7b := NewCard(SuitSpade, Rank7), NewCard(SuitSpade, Rank7)
	s8a, s8b := NewCard(SuitSpade, Rank8), NewCard(SuitSpade, Rank8)

	orders := []Cards{
		{s7a, s7b, s8a, s8b},
		{s8b, s7a, s8a, s7b},
		{s8a, s8b, s7b, s7a},
	}
	for _, cards := range orders {
		if got := GetComboType(cards, trump); got != ComboTypeTractor {
			t.Errorf("GetComboType(%v) = %v, want Tractor", cards, got)
		}
	}
}

// TestCompareCombos 测试同型牌的比较
func TestCompareCombos(t *testing.T) {
	trump := TrumpInfo{Rank: Rank2, Suit: SuitHeart}

	low := NewCombo(Cards{NewCard(SuitSpade, Rank9), NewCard(SuitSpade, Rank9)}, trump)
	high := NewCombo(Cards{NewCard(SuitSpade, RankQ), NewCard(SuitSpade, RankQ)}, trump)

	if CompareCombos(high, low, trump) != 1 {
		t.Error("QQ should beat 99")
	}
	if CompareCombos(low, high, trump) != -1 {
		t.Error("99 should lose to QQ")
	}

	// 型或长不匹配属于调用方错误
	single := NewCombo(Cards{NewCard(SuitSpade, RankA)}, trump)
	defer func() {
		if recover() == nil {
			t.Error("comparing pair against single should panic")
		}
	}()
	CompareCombos(single, low, trump)
}
