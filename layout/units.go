package layout

// 布局内部统一使用毫米，只有字号在与字体交互的边界上才以 pt 表达。

// pt 与 mm 的换算常数。
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// FromPt 把以 pt 表达的长度换算为 mm。
func FromPt(pt float64) float64 { return pt * PtToMm }
