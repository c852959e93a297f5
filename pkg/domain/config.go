package domain

import "fmt"

// TalentType は生成画像に登場させるモデル（タレント）の種別です。
type TalentType string

const (
	TalentIndoWoman TalentType = "indo_woman"
	TalentIndoMan   TalentType = "indo_man"
	TalentNoModel   TalentType = "no_model"
)

// StyleType はキャンペーン全体の映像トーンです。
type StyleType string

const (
	StyleNatural   StyleType = "natural"
	StyleCinematic StyleType = "cinematic"
)

// CampaignConfig はユーザーが選択したキャンペーン設定です。
// Composer に渡した後は変更しない前提の値型です。
type CampaignConfig struct {
	TalentType  TalentType
	StyleType   StyleType
	ProductName string // 空文字の場合は画像から商品名を推測させる
}

// ParseTalentType は CLI などの文字列入力を TalentType に変換します。
func ParseTalentType(s string) (TalentType, error) {
	switch TalentType(s) {
	case TalentIndoWoman, TalentIndoMan, TalentNoModel:
		return TalentType(s), nil
	}
	return "", fmt.Errorf("不明なタレント種別です: %q (indo_woman / indo_man / no_model)", s)
}

// ParseStyleType は CLI などの文字列入力を StyleType に変換します。
func ParseStyleType(s string) (StyleType, error) {
	switch StyleType(s) {
	case StyleNatural, StyleCinematic:
		return StyleType(s), nil
	}
	return "", fmt.Errorf("不明なスタイル種別です: %q (natural / cinematic)", s)
}

// Validate は設定値の組み合わせを検証します。
func (c CampaignConfig) Validate() error {
	if _, err := ParseTalentType(string(c.TalentType)); err != nil {
		return err
	}
	if _, err := ParseStyleType(string(c.StyleType)); err != nil {
		return err
	}
	return nil
}
