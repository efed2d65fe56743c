package tractor

import (
	"errors"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

var ErrBadSettings = errors.New("settings do not cover a full deal")

// Settings 一局的发牌参数
type Settings struct {
	Decks     int // 几副牌
	Players   int // 玩家数
	HandSize  int // 每人手牌数
	KittySize int // 底牌数
}

type SettingsOption func(*Settings)

// WithDecks 设置牌的副数
func WithDecks(n int) SettingsOption {
	return func(s *Settings) {
		s.Decks = n
	}
}

// WithPlayers 设置玩家数
func WithPlayers(n int) SettingsOption {
	return func(s *Settings) {
		s.Players = n
	}
}

// WithKittySize 设置底牌数
func WithKittySize(n int) SettingsOption {
	return func(s *Settings) {
		s.KittySize = n
	}
}

// NewSettings 创建发牌参数，未设置的项取默认值
// 默认双副牌、四人、8 张底牌、每人 25 张
func NewSettings(opts ...SettingsOption) Settings {
	s := Settings{}
	for _, opt := range opts {
		opt(&s)
	}
	s.setDefault()
	return s
}

func (s *Settings) setDefault() {
	if s.Decks <= 0 {
		s.Decks = 2
	}
	if s.Players <= 0 {
		s.Players = 4
	}
	if s.KittySize <= 0 {
		s.KittySize = s.Decks*54 % s.Players
		if s.KittySize == 0 {
			s.KittySize = s.Players * 2
		}
	}
	if s.HandSize <= 0 {
		s.HandSize = (s.Decks*54 - s.KittySize) / s.Players
	}
}

// Validate 校验参数能否整除一次发牌
func (s Settings) Validate() error {
	if s.Decks*54 != s.Players*s.HandSize+s.KittySize {
		return ErrBadSettings
	}
	return nil
}

// SettingsFromViper 从配置读取发牌参数
// 缺失的项同样回落到默认值
func SettingsFromViper(v *viper.Viper) Settings {
	s := Settings{
		Decks:     cast.ToInt(v.Get("tractor.decks")),
		Players:   cast.ToInt(v.Get("tractor.players")),
		HandSize:  cast.ToInt(v.Get("tractor.hand_size")),
		KittySize: cast.ToInt(v.Get("tractor.kitty_size")),
	}
	s.setDefault()
	return s
}
