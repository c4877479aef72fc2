package layout

// 该文件定义布局结果：引擎输出一组已经排好坐标的页面元素，
// 渲染器按原样绘制，不再做任何排版决策。所有坐标与尺寸均为毫米。

import (
	"fmt"
	"strconv"
	"strings"
)

// 渲染侧只认两类字体族；设置中的界面字体族各自映射到其中之一。
const (
	FamilySerif = "serif"
	FamilySans  = "sans"
)

// FontRef 标识一次绘制所用的字体：字体族与是否加粗。
type FontRef struct {
	Family string `json:"family"`
	Bold   bool   `json:"bold"`
}

// Result 保存布局后的页面与文档元信息。
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// DocumentMeta 保存 PDF 元信息。
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Creator string `json:"creator"`
}

// Page 记录页面尺寸、统一边距与最终可以直接渲染的元素。
type Page struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`

	Texts  []TextBox  `json:"texts"`
	Images []ImageBox `json:"images,omitempty"`
	Rects  []Rect     `json:"rects,omitempty"`
	Lines  []Line     `json:"lines,omitempty"`
	Tables []TableBox `json:"tables,omitempty"`
}

// TextBox 表示一个已经折好行的文本块。Y 为首行顶部，
// 第 i 行绘制在 Y + i*LineSpacing 处。
type TextBox struct {
	X           float64    `json:"x"`
	Y           float64    `json:"y"`
	Width       float64    `json:"width"`
	FontSize    float64    `json:"fontSize"` // mm
	LineSpacing float64    `json:"lineSpacing"`
	Font        FontRef    `json:"font"`
	Color       Color      `json:"color"`
	Align       string     `json:"align,omitempty"` // left(默认)/center/right
	Lines       []TextLine `json:"lines"`
	Height      float64    `json:"height"`
}

// TextLine 表示排版后的一行文本内容及其实测宽度。
type TextLine struct {
	Content string  `json:"content"`
	Width   float64 `json:"width"`
}

// ImageBox 描述图片位置与尺寸；Src 为 data-URI 形式的图片数据。
type ImageBox struct {
	Src    string  `json:"src"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect 表示一个填充矩形（分区标题条）。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Fill   Color   `json:"fill"`
}

// Line 表示一条线段（页眉下方的分隔横线）。
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"` // 线宽（mm）
	Color Color   `json:"color"`
}

// TableBox 保存教育经历表格的布局信息。表格跨页时每页各有一个
// TableBox，续页重复表头行。Y 记录首行顶部，仅出现在调试输出中，
// 渲染器按各 TableRow.Y 定位行。
type TableBox struct {
	X            float64    `json:"x"`
	Y            float64    `json:"y"`
	Width        float64    `json:"width"`
	ColumnWidths []float64  `json:"columnWidths"`
	Rows         []TableRow `json:"rows"`
	BorderColor  Color      `json:"borderColor"`
	HeaderFill   Color      `json:"headerFill"`
}

// TableRow 记录每一行的高度与单元格。
type TableRow struct {
	Y        float64     `json:"y"`
	Height   float64     `json:"height"`
	IsHeader bool        `json:"isHeader"`
	Cells    []TableCell `json:"cells"`
}

// TableCell 复用 TextBox 作为单元格内容。
// 单元格文本的 X 相对于表格左缘，Y 相对于所在行顶部。
type TableCell struct {
	Text TextBox `json:"text"`
}

// Color 采用 0-255 的 RGB 数值。
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

var (
	black = Color{R: 0, G: 0, B: 0}
	white = Color{R: 255, G: 255, B: 255}
	gray  = Color{R: 51, G: 51, B: 51}
)

// ParseColor 解析 #RGB 或 #RRGGBB 形式的十六进制颜色。
func ParseColor(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3:
		r, err1 := hexByte(strings.Repeat(hex[0:1], 2))
		g, err2 := hexByte(strings.Repeat(hex[1:2], 2))
		b, err3 := hexByte(strings.Repeat(hex[2:3], 2))
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, fmt.Errorf("颜色值 %q 无法解析", value)
		}
		return Color{R: r, G: g, B: b}, nil
	case 6:
		r, err1 := hexByte(hex[0:2])
		g, err2 := hexByte(hex[2:4])
		b, err3 := hexByte(hex[4:6])
		if err1 != nil || err2 != nil || err3 != nil {
			return Color{}, fmt.Errorf("颜色值 %q 无法解析", value)
		}
		return Color{R: r, G: g, B: b}, nil
	default:
		return Color{}, fmt.Errorf("颜色值 %q 无法解析", value)
	}
}

func hexByte(s string) (int, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	return int(v), err
}
