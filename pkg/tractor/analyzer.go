package tractor

import (
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog/log"
)

// Analyzer 带缓存的结构分解器
// AI 在一次决策里会对同样的持牌反复调用结构分解，
// 这里按与实体无关的牌面签名缓存 AnalyzeComboStructure 的结果。
// 缓存命中时 Components 里的牌是首次计算那一份的实体，
// 只适合做结构统计，不要拿它们去做按 ID 的持牌匹配。
// 缓存自带锁，多个校验方并发使用是安全的。
type Analyzer struct {
	trump TrumpInfo
	cache *expirable.LRU[string, ComboStructure]
}

type analyzerOptions struct {
	size int
	ttl  time.Duration
}

type AnalyzerOption func(*analyzerOptions)

// apply apply options
func (o *analyzerOptions) apply(opts ...AnalyzerOption) *analyzerOptions {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// setDefault default configuration
func (o *analyzerOptions) setDefault() {
	if o.size <= 0 {
		o.size = 4096
	}
	if o.ttl <= 0 {
		o.ttl = time.Minute
	}
}

// WithCacheSize sets the cache size
func WithCacheSize(n int) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.size = n
	}
}

// WithCacheTTL sets the cache entry lifetime
func WithCacheTTL(d time.Duration) AnalyzerOption {
	return func(o *analyzerOptions) {
		o.ttl = d
	}
}

// NewAnalyzer 创建分解器，trump 固定为本局的主牌信息
func NewAnalyzer(trump TrumpInfo, opts ...AnalyzerOption) *Analyzer {
	o := new(analyzerOptions)
	o.apply(opts...).setDefault()

	return &Analyzer{
		trump: trump,
		cache: expirable.NewLRU[string, ComboStructure](o.size, nil, o.ttl),
	}
}

// Analyze 分解一组牌，优先走缓存
func (a *Analyzer) Analyze(cards Cards) ComboStructure {
	key := signature(cards)
	if s, ok := a.cache.Get(key); ok {
		return s
	}
	s := AnalyzeComboStructure(cards, a.trump)
	a.cache.Add(key, s)
	log.Trace().Str("key", key).Msg("combo structure cached")
	return s
}

// signature 与实体无关的牌面签名
func signature(cards Cards) string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.CommonID
	}
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
