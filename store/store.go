// Package store 负责文档的本地持久化：磁盘上的一个 JSON 文件，
// 读入时先经过 JSON Schema 校验再反序列化。
package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"

	"github.com/ByLCY/cvpress/model"
)

//go:embed schema.json
var schemaBytes []byte

// Store 管理单个文档文件。
type Store struct {
	path   string
	schema *gojsonschema.Schema
}

// New 创建指向 path 的存储。
func New(path string) (*Store, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("解析文档模式失败: %w", err)
	}
	return &Store{path: path, schema: schema}, nil
}

// Path 返回存储文件位置。
func (s *Store) Path() string { return s.path }

// Load 读取持久化的文档。文件缺失、JSON 损坏或未通过模式校验时
// 静默回退到内置示例文档（只记日志不报错），应用总能启动。
func (s *Store) Load() *model.ResumeData {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("读取 %s 失败，使用内置示例文档: %v", s.path, err)
		}
		return model.Default()
	}

	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil || !result.Valid() {
		log.Printf("%s 未通过文档模式校验，使用内置示例文档", s.path)
		return model.Default()
	}

	var doc model.ResumeData
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("解析 %s 失败，使用内置示例文档: %v", s.path, err)
		return model.Default()
	}
	doc.RepairSectionOrder()
	return &doc
}

// Save 整体覆盖写入文档。先写临时文件再改名，避免写到一半的文件
// 在下次启动时被当成损坏数据。
func (s *Store) Save(doc *model.ResumeData) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化文档失败: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建存储目录失败: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("替换 %s 失败: %w", s.path, err)
	}
	return nil
}

// Reset 删除持久化文件并返回内置示例文档。
func (s *Store) Reset() (*model.ResumeData, error) {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("删除 %s 失败: %w", s.path, err)
	}
	return model.Default(), nil
}

// DefaultPath 返回默认存储位置（用户配置目录下）。
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "cvpress.json"
	}
	return filepath.Join(dir, "cvpress", "resume.json")
}
