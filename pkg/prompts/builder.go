package prompts

import (
	"fmt"
	"strings"

	"github.com/ghostblack/affilate-ai/pkg/domain"
)

// Instruction はキャンペーン要求1回分の指示一式です。
// SystemPrompt は system instruction として、UserCue は画像に添える
// 短いユーザーテキストとして送信されます。
type Instruction struct {
	SystemPrompt string
	UserCue      string
}

// BuildInstruction は CampaignConfig から生成指示を組み立てる純粋関数です。
// 同じ設定からは常に同じ指示が得られます（I/O なし、副作用なし）。
func BuildInstruction(cfg domain.CampaignConfig) Instruction {
	var sb strings.Builder

	sb.WriteString(instructionHeader)
	sb.WriteString("\n\nKONFIGURASI USER:\n")
	sb.WriteString(talentBlock(cfg.TalentType))
	sb.WriteString("\n\n")
	sb.WriteString(styleBlock(cfg.StyleType))
	sb.WriteString("\n\n")
	sb.WriteString(productNameContext(cfg.ProductName))
	sb.WriteString("\n\n")
	sb.WriteString(structuralRules)
	sb.WriteString("\n\n")
	sb.WriteString(sceneStructure(cfg.TalentType))
	sb.WriteString("\n\n")
	sb.WriteString(fieldRules)

	return Instruction{
		SystemPrompt: sb.String(),
		UserCue:      buildUserCue(cfg.ProductName),
	}
}

// talentBlock は modelType に対応するタレントブロックを返します。
func talentBlock(t domain.TalentType) string {
	switch t {
	case domain.TalentIndoMan:
		return talentIndoMan
	case domain.TalentIndoWoman:
		return talentIndoWoman
	default:
		return talentNoModel
	}
}

// styleBlock は styleType に対応するスタイルブロックを返します。
func styleBlock(s domain.StyleType) string {
	if s == domain.StyleCinematic {
		return styleCinematic
	}
	return styleNatural
}

// productNameContext は商品名の扱いを指示する1行を返します。
// 名前があればコピー中で逐語的に使わせ、なければ画像から推測させます。
func productNameContext(name string) string {
	if name != "" {
		return fmt.Sprintf("NAMA PRODUK USER: %q. Gunakan nama ini untuk membuat copywriting yang spesifik.", name)
	}
	return "NAMA PRODUK: Analisis dari gambar."
}

// sceneStructure は固定の3幕構成（Hook / Detail / CTA）を組み立てます。
func sceneStructure(t domain.TalentType) string {
	hook := sceneHookWithModel
	cta := sceneCtaWithModel
	if t == domain.TalentNoModel {
		hook = sceneHookNoModel
		cta = sceneCtaNoModel
	}

	var sb strings.Builder
	sb.WriteString("STRUKTUR SCENE (Storytelling Affiliate):\n")
	sb.WriteString("- Scene 1 (Hook): Shot paling menarik. " + hook + "\n")
	sb.WriteString(`  * Copywriting/Naskah: Fokus pada MASALAH atau KEINGINAN user. (Contoh: "Buat kamu yang ingin tampil keren...", "Lagi cari sepatu lari murah?")` + "\n")
	sb.WriteString("- Scene 2 (Detail/Benefit): Close Up. Fokus pada tekstur, bahan, atau kualitas produk.\n")
	sb.WriteString(`  * Copywriting/Naskah: Fokus pada SOLUSI dan FITUR. (Contoh: "Bahannya adem banget...", "Jahitannya super rapi.")` + "\n")
	sb.WriteString("- Scene 3 (Call to Action vibe): " + cta + "\n")
	sb.WriteString(`  * Copywriting/Naskah: Fokus pada AJAKAN BELI. (Contoh: "Klik keranjang kuning sebelum kehabisan!", "Diskon khusus hari ini aja.")`)
	return sb.String()
}

// buildUserCue は画像パートに添える短い依頼文を返します。
func buildUserCue(productName string) string {
	name := productName
	if name == "" {
		name = "ini"
	}
	return fmt.Sprintf("Buatkan 3 scene video affiliate yang menarik untuk produk %s.", name)
}
