// Package server 提供本地编辑器使用的 HTTP 接口。
// 文档的全部读写都在同一把锁内完成，每次修改后立即落盘。
package server

import (
	"errors"
	"log"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/ByLCY/cvpress/export"
	"github.com/ByLCY/cvpress/model"
	"github.com/ByLCY/cvpress/store"
)

// Server 把文档、存储与导出器接到 fiber 路由上。
type Server struct {
	mu       sync.Mutex
	doc      *model.ResumeData
	st       *store.Store
	exporter *export.Exporter
}

// New 创建服务。doc 通常来自 store.Load。
func New(doc *model.ResumeData, st *store.Store, exporter *export.Exporter) *Server {
	return &Server{doc: doc, st: st, exporter: exporter}
}

// App 组装 fiber 应用。
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api")
	api.Get("/resume", s.getResume)
	api.Put("/resume", s.putResume)
	api.Post("/reset", s.reset)

	api.Post("/sections/:key/move", s.moveSection)
	api.Post("/sections/:key/items", s.addItem)
	api.Delete("/sections/:key/items/:id", s.deleteItem)
	api.Post("/sections/:key/items/:id/move", s.moveItem)

	api.Post("/custom-sections", s.addCustomSection)
	api.Delete("/custom-sections/:id", s.deleteCustomSection)
	api.Post("/custom-sections/:id/items", s.addCustomItem)
	api.Delete("/custom-sections/:id/items/:item", s.deleteCustomItem)
	api.Post("/custom-sections/:id/items/:item/move", s.moveCustomItem)

	api.Post("/export", s.exportPDF)
	return app
}

type moveReq struct {
	Direction string `json:"direction"`
}

func parseDirection(c *fiber.Ctx) (model.Direction, bool) {
	var req moveReq
	if err := c.BodyParser(&req); err != nil {
		return "", false
	}
	dir := model.Direction(req.Direction)
	if dir != model.DirUp && dir != model.DirDown {
		return "", false
	}
	return dir, true
}

// save 在调用方持有锁的前提下落盘并返回响应体。
func (s *Server) save(c *fiber.Ctx, body any) error {
	if err := s.st.Save(s.doc); err != nil {
		log.Printf("保存文档失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save failed"})
	}
	return c.JSON(body)
}

func (s *Server) getResume(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.doc)
}

// putResume 整文档替换。sectionOrder 在替换时修复，
// 保持它始终是固定分区键与自定义分区 id 的一个排列。
func (s *Server) putResume(c *fiber.Ctx) error {
	var doc model.ResumeData
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	doc.RepairSectionOrder()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &doc
	return s.save(c, s.doc)
}

func (s *Server) reset(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, err := s.st.Reset()
	if err != nil {
		log.Printf("重置文档失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "reset failed"})
	}
	s.doc = doc
	return s.save(c, s.doc)
}

func (s *Server) moveSection(c *fiber.Ctx) error {
	dir, ok := parseDirection(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid direction"})
	}
	key := c.Params("key")

	s.mu.Lock()
	defer s.mu.Unlock()
	index := -1
	for i, k := range s.doc.SectionOrder {
		if k == key {
			index = i
			break
		}
	}
	if index < 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	s.doc.MoveSection(index, dir)
	return s.save(c, s.doc)
}

func (s *Server) addItem(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.doc.AddItem(c.Params("key"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, fiber.Map{"id": id})
}

func (s *Server) deleteItem(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.doc.DeleteItem(c.Params("key"), c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, s.doc)
}

func (s *Server) moveItem(c *fiber.Ctx) error {
	dir, ok := parseDirection(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid direction"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	section := c.Params("key")
	index, err := s.doc.ItemIndex(section, c.Params("id"))
	if err != nil || index < 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown item"})
	}
	if err := s.doc.MoveItem(section, index, dir); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, s.doc)
}

func (s *Server) addCustomSection(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	section := s.doc.AddCustomSection()
	return s.save(c, fiber.Map{"id": section.ID})
}

func (s *Server) deleteCustomSection(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.doc.DeleteCustomSection(c.Params("id")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, s.doc)
}

func (s *Server) addCustomItem(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.doc.AddCustomItem(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, fiber.Map{"id": id})
}

func (s *Server) deleteCustomItem(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.doc.DeleteCustomItem(c.Params("id"), c.Params("item")); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, s.doc)
}

func (s *Server) moveCustomItem(c *fiber.Ctx) error {
	dir, ok := parseDirection(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid direction"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sectionID := c.Params("id")
	index, err := s.doc.CustomItemIndex(sectionID, c.Params("item"))
	if err != nil || index < 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown item"})
	}
	if err := s.doc.MoveCustomItem(sectionID, index, dir); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown section"})
	}
	return s.save(c, s.doc)
}

// exportPDF 对文档快照导出。导出在锁外进行，编辑不会被长时间阻塞。
func (s *Server) exportPDF(c *fiber.Ctx) error {
	s.mu.Lock()
	snapshot := s.doc.Snapshot()
	s.mu.Unlock()

	name, data, err := s.exporter.Export(snapshot)
	if errors.Is(err, export.ErrBusy) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "export in progress"})
	}
	if err != nil {
		log.Printf("导出失败: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
