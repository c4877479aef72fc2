package layout

// 布局引擎：按照预览的文档流语义把简历排成多页可渲染元素。
// 游标自顶向下推进，剩余空间不足时换页。文本折行委托给 Typesetter，
// 引擎本身不接触字体文件，便于用桩排版器做测试。

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ByLCY/cvpress/model"
	"github.com/ByLCY/cvpress/sanitize"
)

// 页面与文档流的几何常数（单位 mm，注明 pt 者除外）。
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	pageMargin   = 10.0
	contentWidth = pageWidth - 2*pageMargin

	headerSpace   = 35.0 // 页眉块起绘前要求的最小剩余空间
	headerAdvance = 26.0
	headerRuleGap = 4.0
	logoSize      = 18.0
	profileSize   = 22.0

	titleBarHeight  = 6.0
	titleBarAdvance = 8.0
	titleBarSpace   = 10.0

	itemSpace   = 12.0 // 条目标题起绘前要求的最小剩余空间
	dateReserve = 25.0 // 日期列在右侧预留的宽度
	pointIndent = 2.0
	pointInset  = 4.0 // 要点折行宽度 = contentWidth - pointInset
	itemGap     = 1.5

	skillListOffset = 40.0

	cellPadding = 1.5
	tableGap    = 3.0
)

// 界面字体族到渲染字体族的映射；未知值回退到 sans。
var fontFamilies = map[string]string{
	model.FontMerriweather: FamilySerif,
	model.FontLato:         FamilySans,
	model.FontRaleway:      FamilySans,
	model.FontRobotoSlab:   FamilySerif,
}

var sectionTitles = map[string]string{
	model.SectionPublications:     "Publications",
	model.SectionInternships:      "Internships",
	model.SectionProjects:         "Projects",
	model.SectionCompetitions:     "Competition/Conference",
	model.SectionAwards:           "Awards and Achievements",
	model.SectionSkills:           "Skills and Expertise",
	model.SectionResponsibilities: "Positions of Responsibility",
}

var (
	educationHeader  = []string{"Year", "Degree/Exam", "Institute", "CGPA/Marks"}
	educationWeights = []float64{0.12, 0.30, 0.42, 0.16}
)

// Build 把文档排成页面序列。sectionOrder 中的键依次展开，
// 空分区与悬空的键不产生任何输出。
func Build(doc *model.ResumeData, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Typesetter == nil {
		return nil, fmt.Errorf("缺少排版后端")
	}

	f := &flow{
		ts:        opts.Typesetter,
		st:        deriveStyles(doc.Settings),
		collector: newPageCollector(pageWidth, pageHeight, pageMargin),
		cursorY:   pageMargin,
	}

	f.header(doc)
	for _, key := range doc.SectionOrder {
		if err := f.section(doc, key); err != nil {
			return nil, err
		}
	}

	name := sanitize.NormalizePlainText(doc.Name)
	return &Result{
		Pages: f.collector.pages(),
		Meta:  DocumentMeta{Title: name, Author: name, Creator: "cvpress"},
	}, nil
}

// styles 是设置解析后的派生值：渲染字体族、基准字号（mm）、
// 行距与强调色。非法输入按预览的回退规则处理。
type styles struct {
	family      string
	baseSize    float64
	lineSpacing float64
	accent      Color
}

func deriveStyles(s model.ResumeSettings) styles {
	family, ok := fontFamilies[s.FontFamily]
	if !ok {
		family = FamilySans
	}
	pt, err := strconv.ParseFloat(s.FontSize, 64)
	if err != nil || pt <= 0 {
		pt = 10
	}
	accent, err := ParseColor(s.AccentColor)
	if err != nil {
		accent = Color{R: 74, G: 85, B: 104}
	}
	base := FromPt(pt)
	return styles{family: family, baseSize: base, lineSpacing: base * 1.3, accent: accent}
}

type flow struct {
	ts        Typesetter
	st        styles
	collector *pageCollector
	cursorY   float64
}

// ensureSpace 在剩余空间装不下 height 时换页。游标已在页顶时不换，
// 保证每次换页都有进展。
func (f *flow) ensureSpace(height float64) {
	if f.cursorY+height > f.collector.maxContentY() && f.cursorY > f.collector.margin {
		f.pageBreak()
	}
}

func (f *flow) pageBreak() {
	f.collector.newPage()
	f.cursorY = f.collector.margin
}

func (f *flow) fontRef(bold bool) FontRef {
	return FontRef{Family: f.st.family, Bold: bold}
}

func (f *flow) wrap(content string, width float64, font FontRef, size float64) ([]TextLine, error) {
	lines, err := f.ts.LayoutLines(content, width, font, size)
	if err != nil {
		return nil, fmt.Errorf("排版文本失败: %w", err)
	}
	if len(lines) == 0 {
		lines = []TextLine{{}}
	}
	return lines, nil
}

// singleLine 在指定位置放一行不折行的文本；空串不产生元素。
func (f *flow) singleLine(content string, x, y, width float64, bold bool, size float64, color Color, align string) {
	if content == "" {
		return
	}
	f.collector.curr().appendText(TextBox{
		X: x, Y: y, Width: width,
		FontSize: size, LineSpacing: f.st.lineSpacing,
		Font: f.fontRef(bold), Color: color, Align: align,
		Lines:  []TextLine{{Content: content}},
		Height: f.st.lineSpacing,
	})
}

// block 在当前游标处放置一个已折行的文本块，不推进游标。
func (f *flow) block(lines []TextLine, x, width float64, bold bool, size float64, color Color) {
	f.collector.curr().appendText(TextBox{
		X: x, Y: f.cursorY, Width: width,
		FontSize: size, LineSpacing: f.st.lineSpacing,
		Font: f.fontRef(bold), Color: color,
		Lines:  lines,
		Height: float64(len(lines)) * f.st.lineSpacing,
	})
}

// header 绘制第一页顶部的联系信息块与分隔横线。
// 左右两张图片仅在数据存在时绘制，缺失时不占位。
func (f *flow) header(doc *model.ResumeData) {
	f.ensureSpace(headerSpace)
	top := f.cursorY
	acc := f.collector.curr()

	if doc.LogoURL != "" {
		acc.appendImage(ImageBox{Src: doc.LogoURL, X: pageMargin, Y: top, Width: logoSize, Height: logoSize})
	}
	if doc.ProfileURL != "" {
		acc.appendImage(ImageBox{Src: doc.ProfileURL, X: pageWidth - pageMargin - profileSize, Y: top, Width: profileSize, Height: profileSize})
	}

	f.singleLine(sanitize.NormalizePlainText(doc.Name), pageMargin, top+5, contentWidth, true, FromPt(16), f.st.accent, "center")
	f.singleLine(sanitize.NormalizePlainText(doc.Title), pageMargin, top+11, contentWidth, false, FromPt(10.5), gray, "center")
	f.singleLine(sanitize.NormalizePlainText(doc.Specialization), pageMargin, top+16, contentWidth, false, FromPt(9.5), gray, "center")
	f.singleLine(contactLine(doc.Contact), pageMargin, top+21, contentWidth, false, FromPt(8.5), gray, "center")

	f.cursorY = top + headerAdvance
	acc.lines = append(acc.lines, Line{
		X1: pageMargin, Y1: f.cursorY,
		X2: pageWidth - pageMargin, Y2: f.cursorY,
		Width: 0.4, Color: black,
	})
	f.cursorY += headerRuleGap
}

// contactLine 把非空的联系方式拼成一行。
func contactLine(c model.ContactInfo) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.Phone, c.Email, c.GitHub, c.LinkedIn} {
		if p != "" {
			parts = append(parts, sanitize.NormalizePlainText(p))
		}
	}
	return strings.Join(parts, "  •  ")
}

// sectionTitle 绘制分区标题条：强调色满宽矩形加居中的白色大写标题。
func (f *flow) sectionTitle(title string) {
	f.ensureSpace(titleBarSpace)
	acc := f.collector.curr()
	acc.rects = append(acc.rects, Rect{
		X: pageMargin, Y: f.cursorY,
		Width: contentWidth, Height: titleBarHeight,
		Fill: f.st.accent,
	})
	size := FromPt(9.5)
	label := strings.ToUpper(sanitize.NormalizePlainText(title))
	f.singleLine(label, pageMargin, f.cursorY+(titleBarHeight-size)/2, contentWidth, true, size, white, "center")
	f.cursorY += titleBarAdvance
}

// section 展开 sectionOrder 中的一个键。悬空的键静默跳过。
func (f *flow) section(doc *model.ResumeData, key string) error {
	switch key {
	case model.SectionEducation:
		if len(doc.Education) == 0 {
			return nil
		}
		f.sectionTitle("Education")
		return f.educationTable(doc.Education)

	case model.SectionAwards:
		if len(doc.Awards) == 0 {
			return nil
		}
		f.sectionTitle(sectionTitles[key])
		points := make([]string, len(doc.Awards))
		for i, a := range doc.Awards {
			points[i] = a.Point
		}
		if err := f.points(points); err != nil {
			return err
		}
		f.cursorY += itemGap
		return nil

	case model.SectionSkills:
		if len(doc.Skills) == 0 {
			return nil
		}
		f.sectionTitle(sectionTitles[key])
		f.skills(doc.Skills)
		return nil

	case model.SectionPublications:
		return f.entrySection(sectionTitles[key], entriesOf(doc.Publications))
	case model.SectionInternships:
		return f.entrySection(sectionTitles[key], entriesOf(doc.Internships))
	case model.SectionProjects:
		return f.entrySection(sectionTitles[key], entriesOf(doc.Projects))
	case model.SectionCompetitions:
		return f.entrySection(sectionTitles[key], entriesOf(doc.Competitions))
	case model.SectionResponsibilities:
		return f.entrySection(sectionTitles[key], entriesOf(doc.Responsibilities))

	default:
		if cs := doc.CustomSection(key); cs != nil && len(cs.Items) > 0 {
			f.sectionTitle(cs.Title)
			return f.entries(entriesOf(cs.Items))
		}
		return nil
	}
}

func (f *flow) entrySection(title string, items []model.Entry) error {
	if len(items) == 0 {
		return nil
	}
	f.sectionTitle(title)
	return f.entries(items)
}

func entriesOf[T interface{ Entry() model.Entry }](list []T) []model.Entry {
	out := make([]model.Entry, len(list))
	for i, item := range list {
		out[i] = item.Entry()
	}
	return out
}

// entries 绘制主分区条目：加粗的标题行（有日期时折行宽度缩进日期列，
// 日期右对齐在同一行）加要点列表。
func (f *flow) entries(items []model.Entry) error {
	titleSize := f.st.baseSize + FromPt(0.5)
	for _, item := range items {
		title := sanitize.NormalizePlainText(item.Title)
		secondary := sanitize.NormalizePlainText(item.Secondary)
		date := sanitize.NormalizePlainText(item.Date)

		f.ensureSpace(itemSpace)

		titleText := title
		if secondary != "" {
			titleText += " - " + secondary
		}
		wrapWidth := contentWidth
		if date != "" {
			wrapWidth -= dateReserve
		}
		lines, err := f.wrap(titleText, wrapWidth, f.fontRef(true), titleSize)
		if err != nil {
			return err
		}

		if date != "" {
			f.singleLine(date, pageMargin, f.cursorY, contentWidth, false, f.st.baseSize, black, "right")
		}
		f.block(lines, pageMargin, wrapWidth, true, titleSize, black)
		f.cursorY += float64(len(lines)) * f.st.lineSpacing

		if err := f.points(item.Points); err != nil {
			return err
		}
		f.cursorY += itemGap
	}
	return nil
}

// points 绘制要点列表。每个要点整体折行后作为一个块放置；
// 块高超过整页可用高度时退化为逐行放置。
func (f *flow) points(points []string) error {
	width := contentWidth - pointInset
	for _, point := range points {
		content := "- " + sanitize.FromHTML(point)
		lines, err := f.wrap(content, width, f.fontRef(false), f.st.baseSize)
		if err != nil {
			return err
		}
		blockHeight := float64(len(lines)) * f.st.lineSpacing
		if blockHeight+1 > f.collector.maxContentY()-f.collector.margin {
			f.longBlock(lines, width)
			continue
		}
		f.ensureSpace(blockHeight + 1)
		f.block(lines, pageMargin+pointIndent, width, false, f.st.baseSize, black)
		f.cursorY += blockHeight
	}
	return nil
}

// longBlock 逐行放置比整页还高的文本块，行间继续换页。
func (f *flow) longBlock(lines []TextLine, width float64) {
	if f.cursorY > f.collector.margin {
		f.pageBreak()
	}
	for _, line := range lines {
		if f.cursorY+f.st.lineSpacing > f.collector.maxContentY() && f.cursorY > f.collector.margin {
			f.pageBreak()
		}
		f.block([]TextLine{line}, pageMargin+pointIndent, width, false, f.st.baseSize, black)
		f.cursorY += f.st.lineSpacing
	}
}

// skills 绘制技能分区：加粗类别在左缘，列表在固定偏移处，各占一行。
func (f *flow) skills(skills []model.Skill) {
	size := f.st.baseSize - FromPt(0.5)
	for _, s := range skills {
		f.ensureSpace(f.st.lineSpacing)
		f.singleLine(sanitize.NormalizePlainText(s.Category), pageMargin, f.cursorY, skillListOffset, true, size, black, "")
		f.singleLine(sanitize.NormalizePlainText(s.List), pageMargin+skillListOffset, f.cursorY, contentWidth-skillListOffset, false, size, black, "")
		f.cursorY += f.st.lineSpacing
	}
	f.cursorY += itemGap
}

// educationTable 绘制教育经历表格。行高取各单元格折行后的最大高度，
// 跨页时当前页的表格先收尾，续页以重复的表头行开始新表格。
func (f *flow) educationTable(rows []model.Education) error {
	cellSize := f.st.baseSize - FromPt(1.5)
	cellSpacing := cellSize * 1.3
	widths := make([]float64, len(educationWeights))
	for i, w := range educationWeights {
		widths[i] = contentWidth * w
	}

	headerRow, err := f.tableRow(educationHeader, widths, cellSize, cellSpacing, true)
	if err != nil {
		return err
	}

	var pending []TableRow
	startY := f.cursorY
	flush := func() {
		if len(pending) == 0 {
			return
		}
		f.collector.curr().appendTable(TableBox{
			X: pageMargin, Y: startY, Width: contentWidth,
			ColumnWidths: widths, Rows: pending,
			BorderColor: black, HeaderFill: f.st.accent,
		})
		pending = nil
	}
	addRow := func(row TableRow) {
		if f.cursorY+row.Height > f.collector.maxContentY() && f.cursorY > f.collector.margin {
			flush()
			f.pageBreak()
			startY = f.cursorY
			if !row.IsHeader {
				repeated := headerRow
				repeated.Y = f.cursorY
				pending = append(pending, repeated)
				f.cursorY += repeated.Height
			}
		}
		if len(pending) == 0 {
			startY = f.cursorY
		}
		row.Y = f.cursorY
		pending = append(pending, row)
		f.cursorY += row.Height
	}

	addRow(headerRow)
	for _, e := range rows {
		row, err := f.tableRow([]string{e.Year, e.Degree, e.Institute, e.Score}, widths, cellSize, cellSpacing, false)
		if err != nil {
			return err
		}
		addRow(row)
	}
	flush()

	f.cursorY += tableGap
	return nil
}

// tableRow 排一行表格。单元格文本的坐标相对于表格左缘与行顶部。
func (f *flow) tableRow(cells []string, widths []float64, size, spacing float64, headerRow bool) (TableRow, error) {
	row := TableRow{IsHeader: headerRow}
	font := f.fontRef(headerRow)
	color := black
	if headerRow {
		color = white
	}

	maxLines := 1
	x := 0.0
	for i, content := range cells {
		inner := widths[i] - 2*cellPadding
		lines, err := f.wrap(sanitize.NormalizePlainText(content), inner, font, size)
		if err != nil {
			return TableRow{}, err
		}
		if len(lines) > maxLines {
			maxLines = len(lines)
		}
		row.Cells = append(row.Cells, TableCell{Text: TextBox{
			X: x + cellPadding, Y: cellPadding, Width: inner,
			FontSize: size, LineSpacing: spacing,
			Font: font, Color: color,
			Lines:  lines,
			Height: float64(len(lines)) * spacing,
		}})
		x += widths[i]
	}
	row.Height = float64(maxLines)*spacing + 2*cellPadding
	return row, nil
}

type pageAccumulator struct {
	texts  []TextBox
	images []ImageBox
	rects  []Rect
	lines  []Line
	tables []TableBox
}

func (p *pageAccumulator) appendText(tb TextBox) {
	p.texts = append(p.texts, tb)
}

func (p *pageAccumulator) appendImage(img ImageBox) {
	p.images = append(p.images, img)
}

func (p *pageAccumulator) appendTable(t TableBox) {
	p.tables = append(p.tables, t)
}

type pageCollector struct {
	width   float64
	height  float64
	margin  float64
	accs    []*pageAccumulator
	current int
}

func newPageCollector(width, height, margin float64) *pageCollector {
	pc := &pageCollector{width: width, height: height, margin: margin}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	if len(pc.accs) == 0 {
		return pc.newPage()
	}
	return pc.accs[pc.current]
}

// maxContentY 返回内容区底部的 Y 坐标。
func (pc *pageCollector) maxContentY() float64 {
	return pc.height - pc.margin
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:  pc.width,
			Height: pc.height,
			Margin: pc.margin,
			Texts:  acc.texts,
			Images: acc.images,
			Rects:  acc.rects,
			Lines:  acc.lines,
			Tables: acc.tables,
		}
	}
	return out
}
