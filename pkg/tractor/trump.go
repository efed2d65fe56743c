package tractor

import "fmt"

// TrumpInfo 当前局的主牌信息
// Rank 为级牌，总是有值；Suit 为主花色，SuitNone 表示无主（未亮主）。
// 一张牌是否为主是推导出来的：大小王、级牌、主花色的牌都是主。
type TrumpInfo struct {
	Rank Rank
	Suit Suit
}

// IsTrump 判断是否为主牌
func (t TrumpInfo) IsTrump(c Card) bool {
	if c.IsJoker() {
		return true
	}
	if c.Rank == t.Rank {
		return true
	}
	return t.Suit != SuitNone && c.Suit == t.Suit
}

// InContext 判断牌是否属于指定区域
// ctx 为 SuitNone 表示主牌区域，否则表示对应的副花色区域。
func (t TrumpInfo) InContext(c Card, ctx Suit) bool {
	if ctx == SuitNone {
		return t.IsTrump(c)
	}
	return !t.IsTrump(c) && c.Suit == ctx
}

// 牌力常量，只用于同区域内比较
const (
	strengthBigJoker     = 1000
	strengthSmallJoker   = 999
	strengthTrumpRankIn  = 998 // 主花色的级牌
	strengthTrumpRankOff = 997 // 副花色的级牌，各花色之间同等大小
	strengthTrumpSuit    = 900 // 主花色普通牌的基准
)

// Strength 返回牌在其可比区域内的牌力
// 主牌区域：大王 > 小王 > 主花色级牌 > 副花色级牌 > 主花色普通牌
// 副牌区域：按点数比较（级牌已被归入主牌区域）
func (t TrumpInfo) Strength(c Card) int {
	switch {
	case c.Joker == JokerBig:
		return strengthBigJoker
	case c.Joker == JokerSmall:
		return strengthSmallJoker
	case c.Rank == t.Rank:
		if t.Suit != SuitNone && c.Suit == t.Suit {
			return strengthTrumpRankIn
		}
		return strengthTrumpRankOff
	case t.Suit != SuitNone && c.Suit == t.Suit:
		return strengthTrumpSuit + int(c.Rank)
	default:
		return int(c.Rank)
	}
}

// CompareCards 比较两张牌的大小，返回 -1/0/1
// 只有两张主牌之间、或同一副花色的两张牌之间才可比。
// 传入不可比的牌属于调用方的错误，直接 panic。
// 注意副花色的级牌之间互相等大，但它们不能组成对子（CommonID 不同）。
func CompareCards(a, b Card, trump TrumpInfo) int {
	aTrump, bTrump := trump.IsTrump(a), trump.IsTrump(b)
	if aTrump != bTrump || (!aTrump && a.Suit != b.Suit) {
		panic(fmt.Sprintf("tractor: compare incomparable cards %s vs %s (trump %s/%s)",
			a, b, trump.Rank, trump.Suit))
	}

	sa, sb := trump.Strength(a), trump.Strength(b)
	switch {
	case sa > sb:
		return 1
	case sa < sb:
		return -1
	default:
		return 0
	}
}

// 拖拉机序数的分段基准
// 各副花色占据互不相邻的数段，跨花色的连续点数不会误判为相邻；
// 主牌区域单独一段，级牌与大小王之间留有空档，
// 只有副花色级牌(trumpRankOffLevel)与主花色级牌(trumpRankInLevel)相邻，
// 用于跨花色级牌拖拉机。
const (
	suitBandWidth     = 100
	trumpBand         = 500
	trumpRankOffLevel = trumpBand + 20
	trumpRankInLevel  = trumpBand + 21
	smallJokerLevel   = trumpBand + 30
	bigJokerLevel     = trumpBand + 31
)

// TractorRank 返回牌的拖拉机序数
// 序数相邻的两个对子才能组成拖拉机。级牌从各花色的点数序列中抽走，
// 级牌以下的点数整体上移一位，把空档接上（如级牌为7时，66 和 88 相邻）。
func (t TrumpInfo) TractorRank(c Card) int {
	switch {
	case c.Joker == JokerBig:
		return bigJokerLevel
	case c.Joker == JokerSmall:
		return smallJokerLevel
	case c.Rank == t.Rank:
		if t.Suit != SuitNone && c.Suit == t.Suit {
			return trumpRankInLevel
		}
		return trumpRankOffLevel
	case t.Suit != SuitNone && c.Suit == t.Suit:
		return trumpBand + t.shiftedRank(c.Rank)
	default:
		return int(c.Suit)*suitBandWidth + t.shiftedRank(c.Rank)
	}
}

// shiftedRank 抽走级牌后的点数位置
func (t TrumpInfo) shiftedRank(r Rank) int {
	if r < t.Rank {
		return int(r) + 1
	}
	return int(r)
}
