// Package fonts 提供渲染所需的内置字体字节。
// serif 取 Latin Modern Roman，sans 取 Go 字体，均来自 Go 源码包，
// 仓库内不携带字体二进制文件。
package fonts

import (
	"fmt"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	FamilySerif = "serif"
	FamilySans  = "sans"
)

// Load 按字体族与字重返回字体数据。
func Load(family string, bold bool) ([]byte, error) {
	switch family {
	case FamilySerif:
		if bold {
			return lmroman10bold.TTF, nil
		}
		return lmroman10regular.TTF, nil
	case FamilySans:
		if bold {
			return gobold.TTF, nil
		}
		return goregular.TTF, nil
	default:
		return nil, fmt.Errorf("未知的字体族：%s", family)
	}
}
