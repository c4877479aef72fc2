package model

import (
	"strings"
	"testing"
)

func TestAddItemShapesByCategory(t *testing.T) {
	doc := &ResumeData{}

	id, err := doc.AddItem(SectionAwards)
	if err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}
	if len(doc.Awards) != 1 || doc.Awards[0].Point != "New Award" {
		t.Fatalf("unexpected award shape: %+v", doc.Awards)
	}

	if _, err := doc.AddItem(SectionPublications); err != nil {
		t.Fatalf("AddItem error: %v", err)
	}
	if len(doc.Publications) != 1 || len(doc.Publications[0].Points) != 1 {
		t.Fatalf("publication should start with one empty point: %+v", doc.Publications)
	}

	if _, err := doc.AddItem("nonsense"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestAddItemGeneratesUniqueIDs(t *testing.T) {
	doc := &ResumeData{}
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := doc.AddItem(SectionProjects)
		if err != nil {
			t.Fatalf("AddItem error: %v", err)
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestDeleteItemRemovesOnlyTarget(t *testing.T) {
	doc := &ResumeData{Skills: []Skill{
		{ID: "a", Category: "One"},
		{ID: "b", Category: "Two"},
		{ID: "c", Category: "Three"},
	}}
	if err := doc.DeleteItem(SectionSkills, "b"); err != nil {
		t.Fatalf("DeleteItem error: %v", err)
	}
	if len(doc.Skills) != 2 || doc.Skills[0].ID != "a" || doc.Skills[1].ID != "c" {
		t.Fatalf("unexpected skills: %+v", doc.Skills)
	}
	// 不存在的 id 是空操作
	if err := doc.DeleteItem(SectionSkills, "zzz"); err != nil {
		t.Fatalf("DeleteItem error: %v", err)
	}
	if len(doc.Skills) != 2 {
		t.Fatalf("delete of missing id must not change the list: %+v", doc.Skills)
	}
}

func TestMoveItemBoundariesAreNoops(t *testing.T) {
	doc := &ResumeData{Awards: []Award{{ID: "1"}, {ID: "2"}, {ID: "3"}}}

	if err := doc.MoveItem(SectionAwards, 0, DirUp); err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}
	if doc.Awards[0].ID != "1" {
		t.Fatalf("first item moved up: %+v", doc.Awards)
	}

	if err := doc.MoveItem(SectionAwards, 2, DirDown); err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}
	if doc.Awards[2].ID != "3" {
		t.Fatalf("last item moved down: %+v", doc.Awards)
	}

	if err := doc.MoveItem(SectionAwards, 1, DirDown); err != nil {
		t.Fatalf("MoveItem error: %v", err)
	}
	if doc.Awards[1].ID != "3" || doc.Awards[2].ID != "2" {
		t.Fatalf("middle move failed: %+v", doc.Awards)
	}
}

func TestMoveSectionBoundaries(t *testing.T) {
	doc := &ResumeData{SectionOrder: []string{"a", "b", "c"}}

	doc.MoveSection(0, DirUp)
	if doc.SectionOrder[0] != "a" {
		t.Fatalf("boundary move changed order: %v", doc.SectionOrder)
	}
	doc.MoveSection(2, DirDown)
	if doc.SectionOrder[2] != "c" {
		t.Fatalf("boundary move changed order: %v", doc.SectionOrder)
	}
	doc.MoveSection(1, DirUp)
	if doc.SectionOrder[0] != "b" || doc.SectionOrder[1] != "a" {
		t.Fatalf("move up failed: %v", doc.SectionOrder)
	}
}

func TestCustomSectionLifecycle(t *testing.T) {
	doc := Default()
	before := len(doc.SectionOrder)

	section := doc.AddCustomSection()
	if !strings.HasPrefix(section.ID, "custom-") {
		t.Fatalf("unexpected custom id: %s", section.ID)
	}
	if len(doc.SectionOrder) != before+1 || doc.SectionOrder[before] != section.ID {
		t.Fatalf("custom key not appended to order: %v", doc.SectionOrder)
	}

	itemID, err := doc.AddCustomItem(section.ID)
	if err != nil {
		t.Fatalf("AddCustomItem error: %v", err)
	}
	if !strings.HasPrefix(itemID, "custom-item-") {
		t.Fatalf("unexpected item id: %s", itemID)
	}
	got := doc.CustomSection(section.ID)
	if got == nil || len(got.Items) != 1 || got.Items[0].Title != "New Title" {
		t.Fatalf("unexpected custom section state: %+v", got)
	}

	if err := doc.DeleteCustomItem(section.ID, itemID); err != nil {
		t.Fatalf("DeleteCustomItem error: %v", err)
	}
	if len(doc.CustomSection(section.ID).Items) != 0 {
		t.Fatal("item not deleted")
	}

	// 删除分区时 sectionOrder 中的键一并移除
	if err := doc.DeleteCustomSection(section.ID); err != nil {
		t.Fatalf("DeleteCustomSection error: %v", err)
	}
	if doc.CustomSection(section.ID) != nil {
		t.Fatal("section still present")
	}
	for _, key := range doc.SectionOrder {
		if key == section.ID {
			t.Fatalf("dangling key %s left in order", key)
		}
	}

	if err := doc.DeleteCustomSection("custom-missing"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestRepairSectionOrder(t *testing.T) {
	doc := &ResumeData{
		CustomSections: []CustomSection{{ID: "custom-1", Title: "X"}},
		SectionOrder:   []string{"skills", "skills", "ghost", "custom-1"},
	}
	doc.RepairSectionOrder()

	seen := map[string]int{}
	for _, key := range doc.SectionOrder {
		seen[key]++
	}
	if seen["ghost"] != 0 {
		t.Fatalf("unknown key survived: %v", doc.SectionOrder)
	}
	if seen["skills"] != 1 {
		t.Fatalf("duplicate not removed: %v", doc.SectionOrder)
	}
	for _, key := range FixedSections {
		if seen[key] != 1 {
			t.Fatalf("fixed key %s missing: %v", key, doc.SectionOrder)
		}
	}
	if seen["custom-1"] != 1 {
		t.Fatalf("custom key missing: %v", doc.SectionOrder)
	}
	if doc.SectionOrder[0] != "skills" {
		t.Fatalf("surviving keys must keep their relative order: %v", doc.SectionOrder)
	}
}

func TestItemIndex(t *testing.T) {
	doc := &ResumeData{Projects: []Project{{ID: "p1"}, {ID: "p2"}}}

	idx, err := doc.ItemIndex(SectionProjects, "p2")
	if err != nil || idx != 1 {
		t.Fatalf("ItemIndex = %d, %v", idx, err)
	}
	idx, err = doc.ItemIndex(SectionProjects, "missing")
	if err != nil || idx != -1 {
		t.Fatalf("ItemIndex for missing = %d, %v", idx, err)
	}
	if _, err := doc.ItemIndex("nonsense", "p1"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	doc := Default()
	snap := doc.Snapshot()

	doc.Publications[0].Points[0] = "changed"
	doc.Skills[0].Category = "changed"
	doc.SectionOrder[0] = "changed"
	if cs := doc.AddCustomSection(); cs == nil {
		t.Fatal("AddCustomSection returned nil")
	}

	if snap.Publications[0].Points[0] == "changed" {
		t.Fatal("snapshot shares point storage with the document")
	}
	if snap.Skills[0].Category == "changed" {
		t.Fatal("snapshot shares skills storage with the document")
	}
	if snap.SectionOrder[0] == "changed" {
		t.Fatal("snapshot shares section order with the document")
	}
	if len(snap.CustomSections) != 0 {
		t.Fatal("snapshot observed later mutation")
	}
}

func TestEntryNormalization(t *testing.T) {
	exp := Experience{Role: "Intern", Company: "Acme", Location: "Pune", Duration: "2024"}
	entry := exp.Entry()
	if entry.Secondary != "Acme, Pune" {
		t.Fatalf("secondary = %q", entry.Secondary)
	}

	exp.Company = ""
	if got := exp.Entry().Secondary; got != "" {
		t.Fatalf("company-less secondary = %q, want empty", got)
	}

	exp.Company = "Acme"
	exp.Location = ""
	if got := exp.Entry().Secondary; got != "Acme" {
		t.Fatalf("location-less secondary = %q", got)
	}

	comp := Competition{Title: "Challenge", Date: "May"}
	entry = comp.Entry()
	if entry.Secondary != "" || entry.Title != "Challenge" || entry.Date != "May" {
		t.Fatalf("competition entry = %+v", entry)
	}
}
