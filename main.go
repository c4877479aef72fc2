package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ByLCY/cvpress/export"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/model"
	canvasrenderer "github.com/ByLCY/cvpress/renderer/canvas"
	"github.com/ByLCY/cvpress/server"
	"github.com/ByLCY/cvpress/store"
)

func main() {
	storePath := flag.String("store", store.DefaultPath(), "文档存储文件路径")
	output := flag.String("out", "", "一次性导出 PDF 到指定路径后退出")
	debug := flag.String("debug", "", "布局调试 JSON 输出路径")
	addr := flag.String("serve", "127.0.0.1:8467", "编辑器接口监听地址")
	flag.Parse()

	if err := run(*storePath, *output, *debug, *addr); err != nil {
		log.Fatalf("启动失败: %v", err)
	}
}

// run 装配存储、渲染器与导出器；有 -out 时做一次性导出，否则起服务。
func run(storePath, outputPath, debugPath, addr string) error {
	st, err := store.New(storePath)
	if err != nil {
		return err
	}
	doc := st.Load()

	r := canvasrenderer.NewRenderer()
	exporter := export.New(r, r)

	if debugPath != "" {
		if err := writeDebug(doc, r, debugPath); err != nil {
			return err
		}
	}

	if outputPath != "" {
		return exportOnce(exporter, doc, outputPath)
	}

	app := server.New(doc, st, exporter).App()
	fmt.Printf("编辑器接口监听于 http://%s\n", addr)
	return app.Listen(addr)
}

// exportOnce 把当前文档导出为 PDF 文件。
func exportOnce(exporter *export.Exporter, doc *model.ResumeData, outputPath string) error {
	name, data, err := exporter.Export(doc)
	if err != nil {
		return fmt.Errorf("导出失败: %w", err)
	}
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	fmt.Printf("已生成 %s（下载名 %s）\n", outputPath, name)
	return nil
}

// writeDebug 输出布局结果的调试 JSON。
func writeDebug(doc *model.ResumeData, ts layout.Typesetter, debugPath string) error {
	result, err := layout.Build(doc, layout.BuildOptions{Typesetter: ts})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}
	if dir := filepath.Dir(debugPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建调试目录失败: %w", err)
		}
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}
