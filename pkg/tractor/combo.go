package tractor

import "fmt"

// ComboType 标准牌型
type ComboType uint8

const (
	ComboTypeNotStraight ComboType = iota // 非标准牌型，只能作为甩牌的组成部分
	ComboTypeSingle                       // 单张
	ComboTypePair                         // 对子
	ComboTypeTractor                      // 拖拉机
)

func (ct ComboType) String() string {
	switch ct {
	case ComboTypeSingle:
		return "Single"
	case ComboTypePair:
		return "Pair"
	case ComboTypeTractor:
		return "Tractor"
	default:
		return "NotStraight"
	}
}

// Combo 一手标准牌型
type Combo struct {
	Type     ComboType
	Cards    Cards
	Strength int // 牌型中最大牌的牌力，只在同区域内可比
}

// GetComboType 识别牌型
// 单张；对子要求两张牌 CommonID 相同（副花色级牌之间不能成对）；
// 拖拉机为同一区域内序数连续的 >=2 个对子。其余都是 NotStraight。
func GetComboType(cards Cards, trump TrumpInfo) ComboType {
	switch {
	case len(cards) == 1:
		return ComboTypeSingle
	case len(cards) == 2:
		if cards[0].CommonID == cards[1].CommonID {
			return ComboTypePair
		}
		return ComboTypeNotStraight
	case len(cards) >= 4 && len(cards)%2 == 0:
		if IsValidTractor(cards, trump) {
			return ComboTypeTractor
		}
		return ComboTypeNotStraight
	default:
		return ComboTypeNotStraight
	}
}

// NewCombo 构造牌型并计算牌力
func NewCombo(cards Cards, trump TrumpInfo) Combo {
	return Combo{
		Type:     GetComboType(cards, trump),
		Cards:    cards,
		Strength: maxStrength(cards, trump),
	}
}

func maxStrength(cards Cards, trump TrumpInfo) int {
	best := 0
	for _, c := range cards {
		if s := trump.Strength(c); s > best {
			best = s
		}
	}
	return best
}

// CompareCombos 比较两手同型同长的牌，返回 -1/0/1
// 类型或张数不同属于调用方的错误，直接 panic。
func CompareCombos(a, b Combo, trump TrumpInfo) int {
	if a.Type != b.Type || len(a.Cards) != len(b.Cards) {
		panic(fmt.Sprintf("tractor: compare mismatched combos %s(%d) vs %s(%d)",
			a.Type, len(a.Cards), b.Type, len(b.Cards)))
	}
	switch {
	case a.Strength > b.Strength:
		return 1
	case a.Strength < b.Strength:
		return -1
	default:
		return 0
	}
}
