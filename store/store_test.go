package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ByLCY/cvpress/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "resume.json"))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return s
}

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s := newTestStore(t)
	doc := s.Load()
	if doc.Name != model.Default().Name {
		t.Fatalf("expected default document, got name %q", doc.Name)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	doc := model.Default()
	doc.Name = "Changed Name"
	section := doc.AddCustomSection()
	if _, err := doc.AddCustomItem(section.ID); err != nil {
		t.Fatalf("AddCustomItem error: %v", err)
	}

	if err := s.Save(doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	got := s.Load()
	if got.Name != "Changed Name" {
		t.Fatalf("name = %q", got.Name)
	}
	if got.CustomSection(section.ID) == nil {
		t.Fatal("custom section lost in round trip")
	}
	if got.SectionOrder[len(got.SectionOrder)-1] != section.ID {
		t.Fatalf("section order lost: %v", got.SectionOrder)
	}
}

func TestLoadCorruptJSONFallsBack(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{this is not json"), 0o644); err != nil {
		t.Fatalf("write error: %v", err)
	}
	doc := s.Load()
	if doc.Name != model.Default().Name {
		t.Fatalf("expected fallback to default, got %q", doc.Name)
	}
}

// JSON 合法但不符合文档模式（缺必填字段、类型不对）同样回退。
func TestLoadSchemaInvalidFallsBack(t *testing.T) {
	s := newTestStore(t)
	cases := []string{
		`{"name": 5}`,
		`{"title": "only a title"}`,
		`{"name": "x", "contact": {}, "settings": {"fontFamily": "Lato"}, "sectionOrder": []}`,
	}
	for _, blob := range cases {
		if err := os.WriteFile(s.Path(), []byte(blob), 0o644); err != nil {
			t.Fatalf("write error: %v", err)
		}
		doc := s.Load()
		if doc.Name != model.Default().Name {
			t.Fatalf("blob %q: expected fallback, got %q", blob, doc.Name)
		}
	}
}

// 读入时修复 sectionOrder：缺失的固定分区键补齐。
func TestLoadRepairsSectionOrder(t *testing.T) {
	s := newTestStore(t)
	doc := model.Default()
	doc.SectionOrder = []string{model.SectionSkills}
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got := s.Load()
	if len(got.SectionOrder) != len(model.FixedSections) {
		t.Fatalf("order not repaired: %v", got.SectionOrder)
	}
	if got.SectionOrder[0] != model.SectionSkills {
		t.Fatalf("surviving key must stay first: %v", got.SectionOrder)
	}
}

func TestReset(t *testing.T) {
	s := newTestStore(t)
	doc := model.Default()
	doc.Name = "Changed"
	if err := s.Save(doc); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset error: %v", err)
	}
	if got.Name != model.Default().Name {
		t.Fatalf("reset returned %q", got.Name)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Fatal("store file still present after reset")
	}
	// 文件不存在时再次重置不是错误
	if _, err := s.Reset(); err != nil {
		t.Fatalf("second Reset error: %v", err)
	}
}
