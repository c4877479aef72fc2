// Package export 把文档变成可下载的 PDF：布局、渲染、派生文件名。
// 同一时刻只允许一次导出在进行中。
package export

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"unicode"

	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/model"
	"github.com/ByLCY/cvpress/renderer"
	"github.com/ByLCY/cvpress/sanitize"
)

// ErrBusy 表示已有导出在进行中。
var ErrBusy = errors.New("导出正在进行中")

// Exporter 串联布局与渲染。busy 标志保证导出不并发，
// 无论成功或失败都会在结束时复位。
type Exporter struct {
	ts   layout.Typesetter
	rend renderer.Renderer
	busy atomic.Bool
}

// New 创建导出器。排版器与渲染器通常由同一个 canvas 渲染器同时充当。
func New(ts layout.Typesetter, rend renderer.Renderer) *Exporter {
	return &Exporter{ts: ts, rend: rend}
}

// Busy 报告当前是否有导出在进行中。
func (e *Exporter) Busy() bool { return e.busy.Load() }

// Export 对文档快照执行布局与渲染，返回下载文件名与 PDF 字节。
// 已有导出在进行时返回 ErrBusy。
func (e *Exporter) Export(doc *model.ResumeData) (string, []byte, error) {
	if !e.busy.CompareAndSwap(false, true) {
		return "", nil, ErrBusy
	}
	defer e.busy.Store(false)

	result, err := layout.Build(doc, layout.BuildOptions{Typesetter: e.ts})
	if err != nil {
		return "", nil, fmt.Errorf("布局失败: %w", err)
	}
	data, err := e.rend.Render(result)
	if err != nil {
		return "", nil, fmt.Errorf("渲染失败: %w", err)
	}
	return FileName(doc.Name), data, nil
}

// FileName 从姓名派生下载文件名：先去掉首个长/短破折号起的后缀
// （姓名后挂的学号一类标注），再做字符规范化，非字母数字的连续段
// 压成单个下划线。全部裁掉时退化为 Resume.pdf。
func FileName(name string) string {
	if idx := strings.IndexAny(name, "—–"); idx >= 0 {
		name = name[:idx]
	}
	name = sanitize.NormalizePlainText(name)

	var builder strings.Builder
	pendingGap := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingGap && builder.Len() > 0 {
				builder.WriteByte('_')
			}
			pendingGap = false
			builder.WriteRune(r)
			continue
		}
		pendingGap = true
	}

	base := builder.String()
	if base == "" {
		return "Resume.pdf"
	}
	return base + "_Resume.pdf"
}
