package tractor

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Suit 牌的花色
type Suit uint8

const (
	SuitNone    Suit = iota // 无花色（大小王）
	SuitSpade               // 黑桃
	SuitHeart               // 红桃
	SuitClub                // 梅花
	SuitDiamond             // 方块
)

var suitNames = map[Suit]string{
	SuitNone:    "None",
	SuitSpade:   "Spade",
	SuitHeart:   "Heart",
	SuitClub:    "Club",
	SuitDiamond: "Diamond",
}

func (s Suit) String() string {
	return suitNames[s]
}

// ParseSuit 从名称解析花色，未知名称返回 SuitNone
func ParseSuit(name string) Suit {
	for s, n := range suitNames {
		if strings.EqualFold(n, name) {
			return s
		}
	}
	return SuitNone
}

// Rank 牌的点数，大小王没有点数
type Rank uint8

const (
	RankNone Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

var rankNames = map[Rank]string{
	RankNone: "",
	Rank2:    "2",
	Rank3:    "3",
	Rank4:    "4",
	Rank5:    "5",
	Rank6:    "6",
	Rank7:    "7",
	Rank8:    "8",
	Rank9:    "9",
	Rank10:   "10",
	RankJ:    "J",
	RankQ:    "Q",
	RankK:    "K",
	RankA:    "A",
}

func (r Rank) String() string {
	return rankNames[r]
}

// ParseRank 从名称解析点数，未知名称返回 RankNone
func ParseRank(name string) Rank {
	for r, n := range rankNames {
		if n != "" && strings.EqualFold(n, name) {
			return r
		}
	}
	return RankNone
}

// JokerType 王的类型
type JokerType uint8

const (
	JokerNone  JokerType = iota
	JokerSmall           // 小王
	JokerBig             // 大王
)

func (j JokerType) String() string {
	switch j {
	case JokerSmall:
		return "Small"
	case JokerBig:
		return "Big"
	default:
		return ""
	}
}

// ParseJoker 从名称解析王的类型
func ParseJoker(name string) JokerType {
	switch {
	case strings.EqualFold(name, "Small"):
		return JokerSmall
	case strings.EqualFold(name, "Big"):
		return JokerBig
	default:
		return JokerNone
	}
}

// Card 代表一张扑克牌
// 双副牌中同一张逻辑牌有两张实体，ID 每张唯一，CommonID 两张相同。
// 只有 CommonID 相同的两张牌才能组成对子。
type Card struct {
	Suit     Suit
	Rank     Rank
	Joker    JokerType
	ID       string // 实体牌唯一标识
	CommonID string // 逻辑牌标识，双副牌中两张实体共享
	Points   int    // 分值：5 记 5 分，10 和 K 记 10 分
}

// NewCard 创建一张普通牌
func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit:     suit,
		Rank:     rank,
		ID:       newCardID(),
		CommonID: suit.String() + "-" + rank.String(),
		Points:   cardPoints(rank),
	}
}

// NewJoker 创建一张王
func NewJoker(j JokerType) Card {
	return Card{
		Joker:    j,
		ID:       newCardID(),
		CommonID: "Joker-" + j.String(),
	}
}

// 使用uuid但是去掉分隔符号
func newCardID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func cardPoints(rank Rank) int {
	switch rank {
	case Rank5:
		return 5
	case Rank10, RankK:
		return 10
	default:
		return 0
	}
}

// IsJoker 是否为大小王
func (c Card) IsJoker() bool {
	return c.Joker != JokerNone
}

// SameAs 是否为同一张逻辑牌（不区分实体）
func (c Card) SameAs(other Card) bool {
	return c.CommonID == other.CommonID
}

func (c Card) String() string {
	if c.IsJoker() {
		return c.Joker.String() + "Joker"
	}
	return c.Rank.String() + c.Suit.String()
}

type Cards []Card

// Points 返回所有牌的分值之和
func (cs Cards) Points() (total int) {
	for _, c := range cs {
		total += c.Points
	}
	return
}

// Clone 复制一份牌列表
func (cs Cards) Clone() Cards {
	out := make(Cards, len(cs))
	copy(out, cs)
	return out
}

// ContainsAll 判断 sub 中的每张实体牌是否都在 cs 中
func (cs Cards) ContainsAll(sub Cards) bool {
	remaining := cs.Clone()
	for _, c := range sub {
		found := false
		for i, rc := range remaining {
			if rc.ID == c.ID {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Remove 移除指定的实体牌，返回剩余的牌
func (cs Cards) Remove(sub Cards) Cards {
	remaining := cs.Clone()
	for _, c := range sub {
		for i, rc := range remaining {
			if rc.ID == c.ID {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}
	return remaining
}

// ByCommonID 按逻辑牌分组
func (cs Cards) ByCommonID() map[string]Cards {
	groups := make(map[string]Cards)
	for _, c := range cs {
		groups[c.CommonID] = append(groups[c.CommonID], c)
	}
	return groups
}

// HasDuplicateCommon 是否包含重复的逻辑牌
func (cs Cards) HasDuplicateCommon() bool {
	seen := make(map[string]bool, len(cs))
	for _, c := range cs {
		if seen[c.CommonID] {
			return true
		}
		seen[c.CommonID] = true
	}
	return false
}

// Shuffle 洗牌，随机打乱牌的顺序
func (cs Cards) Shuffle() {
	rand.Shuffle(len(cs), func(i, j int) {
		cs[i], cs[j] = cs[j], cs[i]
	})
}

// NewDeck 生成指定副数的扑克牌
// decks 表示几副扑克牌，每副牌包含 52 张普通牌 + 2 张大小王 = 54 张
func NewDeck(decks int) Cards {
	if decks <= 0 {
		return nil
	}

	cards := make(Cards, 0, decks*54)

	suits := []Suit{SuitSpade, SuitHeart, SuitClub, SuitDiamond}
	ranks := []Rank{Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, Rank10, RankJ, RankQ, RankK, RankA}

	for range decks {
		for _, suit := range suits {
			for _, rank := range ranks {
				cards = append(cards, NewCard(suit, rank))
			}
		}
		cards = append(cards, NewJoker(JokerSmall))
		cards = append(cards, NewJoker(JokerBig))
	}

	return cards
}
