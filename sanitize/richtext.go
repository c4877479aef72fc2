package sanitize

// 富文本要点是受限的 HTML 片段（编辑器只产生 b/i/u 与实体转义）。
// 这里不做完整的 HTML 解析：用词法器把输入切成 标签/实体/文本 三类记号，
// 丢弃标签、还原实体，即得到纯文本。末尾的兜底规则保证任意输入都能
// 完成切分，提取过程永不失败。

import (
	"html"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Tag", Pattern: `</?[!A-Za-z][^<>]*>`},
		{Name: "Entity", Pattern: `&[A-Za-z][A-Za-z0-9]*;|&#[0-9]+;|&#[xX][0-9A-Fa-f]+;`},
		{Name: "Text", Pattern: `[^<&]+`},
		{Name: "Stray", Pattern: `[<&]`},
	})

	markupTagType = mustTokenType("Tag")
)

// FromHTML 把富文本片段提取为规范化后的纯文本。
// 对畸形标记尽力而为，最坏情况下返回空串，绝不报错。
func FromHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	lx, err := markupLexer.LexString("", fragment)
	if err != nil {
		// 词法器自身构造失败时退回原文处理
		return NormalizePlainText(fragment)
	}

	var builder strings.Builder
	for {
		tok, err := lx.Next()
		if err != nil || tok.EOF() {
			break
		}
		if tok.Type == markupTagType {
			continue
		}
		builder.WriteString(tok.Value)
	}
	return NormalizePlainText(html.UnescapeString(builder.String()))
}

func mustTokenType(name string) lexer.TokenType {
	tt, ok := markupLexer.Symbols()[name]
	if !ok {
		panic("token " + name + " not defined")
	}
	return tt
}
