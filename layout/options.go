package layout

// BuildOptions 配置布局阶段所需的依赖，例如排版后端。
type BuildOptions struct {
	Typesetter Typesetter
}

// Typesetter 负责按字体与宽度约束把文本折成可绘制的行。
// 折行只发生在空白处；单个超宽词独占一行并允许越过右边界。
type Typesetter interface {
	LayoutLines(content string, width float64, font FontRef, fontSize float64) ([]TextLine, error)
}
