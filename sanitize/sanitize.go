// Package sanitize 提供导出前的文本规范化：把预览中允许的富文本片段
// 还原为纯文本，并把 PDF 字体处理不稳妥的 Unicode 字符替换为 ASCII 等价形式。
package sanitize

import "strings"

// replacer 的替换目标全部是普通 ASCII，不会再次命中任何替换源，
// 因此 NormalizePlainText 天然幂等。
var replacer = strings.NewReplacer(
	"—", "-", // em-dash
	"–", "-", // en-dash
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
	"•", "-",
	"Α", "A", // 希腊字母形近字符
	"Ά", "A",
	"Ν", "N",
	"Ο", "O",
	"Ό", "O",
)

// NormalizePlainText 做确定性的字符替换：各类破折号与弯引号、项目符号、
// 以及与拉丁字母形近的希腊字母。纯函数，空串进空串出，对任意输入幂等。
func NormalizePlainText(s string) string {
	if s == "" {
		return ""
	}
	return replacer.Replace(s)
}
