package model

// 编辑器操作：对文档的全部结构性修改都经由这里完成。
// 约定：每次修改都以新切片替换对应子结构（不做原地别名共享），
// 越界的移动是安全的空操作，id 在序列内唯一且删除后不复用。

import (
	"fmt"

	"github.com/google/uuid"
)

// Direction 列表移动方向。
type Direction string

const (
	DirUp   Direction = "up"
	DirDown Direction = "down"
)

func (dir Direction) delta() int {
	if dir == DirUp {
		return -1
	}
	return 1
}

// MoveSection 在 sectionOrder 中移动下标 index 处的分区键。
// 目标越界（如第一项上移）时保持顺序不变。
func (d *ResumeData) MoveSection(index int, dir Direction) {
	d.SectionOrder = moveAt(d.SectionOrder, index, index+dir.delta())
}

// AddItem 在固定分区末尾追加一个按类别成形的空条目，返回新 id。
func (d *ResumeData) AddItem(section string) (string, error) {
	id := uuid.NewString()
	switch section {
	case SectionEducation:
		d.Education = appendCopy(d.Education, Education{ID: id})
	case SectionPublications:
		d.Publications = appendCopy(d.Publications, Publication{ID: id, Points: []string{""}})
	case SectionInternships:
		d.Internships = appendCopy(d.Internships, Experience{ID: id, Points: []string{""}})
	case SectionProjects:
		d.Projects = appendCopy(d.Projects, Project{ID: id, Points: []string{""}})
	case SectionCompetitions:
		d.Competitions = appendCopy(d.Competitions, Competition{ID: id, Points: []string{""}})
	case SectionAwards:
		d.Awards = appendCopy(d.Awards, Award{ID: id, Point: "New Award"})
	case SectionSkills:
		d.Skills = appendCopy(d.Skills, Skill{ID: id})
	case SectionResponsibilities:
		d.Responsibilities = appendCopy(d.Responsibilities, Responsibility{ID: id, Points: []string{""}})
	default:
		return "", fmt.Errorf("未知的固定分区：%s", section)
	}
	return id, nil
}

// DeleteItem 按 id 删除固定分区中的条目。
func (d *ResumeData) DeleteItem(section, id string) error {
	switch section {
	case SectionEducation:
		d.Education = deleteByID(d.Education, id, func(e Education) string { return e.ID })
	case SectionPublications:
		d.Publications = deleteByID(d.Publications, id, func(p Publication) string { return p.ID })
	case SectionInternships:
		d.Internships = deleteByID(d.Internships, id, func(e Experience) string { return e.ID })
	case SectionProjects:
		d.Projects = deleteByID(d.Projects, id, func(p Project) string { return p.ID })
	case SectionCompetitions:
		d.Competitions = deleteByID(d.Competitions, id, func(c Competition) string { return c.ID })
	case SectionAwards:
		d.Awards = deleteByID(d.Awards, id, func(a Award) string { return a.ID })
	case SectionSkills:
		d.Skills = deleteByID(d.Skills, id, func(s Skill) string { return s.ID })
	case SectionResponsibilities:
		d.Responsibilities = deleteByID(d.Responsibilities, id, func(r Responsibility) string { return r.ID })
	default:
		return fmt.Errorf("未知的固定分区：%s", section)
	}
	return nil
}

// MoveItem 在固定分区内移动下标 index 处的条目；越界时为空操作。
func (d *ResumeData) MoveItem(section string, index int, dir Direction) error {
	to := index + dir.delta()
	switch section {
	case SectionEducation:
		d.Education = moveAt(d.Education, index, to)
	case SectionPublications:
		d.Publications = moveAt(d.Publications, index, to)
	case SectionInternships:
		d.Internships = moveAt(d.Internships, index, to)
	case SectionProjects:
		d.Projects = moveAt(d.Projects, index, to)
	case SectionCompetitions:
		d.Competitions = moveAt(d.Competitions, index, to)
	case SectionAwards:
		d.Awards = moveAt(d.Awards, index, to)
	case SectionSkills:
		d.Skills = moveAt(d.Skills, index, to)
	case SectionResponsibilities:
		d.Responsibilities = moveAt(d.Responsibilities, index, to)
	default:
		return fmt.Errorf("未知的固定分区：%s", section)
	}
	return nil
}

// AddCustomSection 新建一个空的自定义分区，并把它的键追加到 sectionOrder。
// 两处修改必须作为一个整体完成，保持 sectionOrder 的置换不变式。
func (d *ResumeData) AddCustomSection() *CustomSection {
	section := CustomSection{
		ID:    "custom-" + uuid.NewString(),
		Title: "New Section",
		Items: []CustomSectionItem{},
	}
	d.CustomSections = appendCopy(d.CustomSections, section)
	d.SectionOrder = appendCopy(d.SectionOrder, section.ID)
	return &d.CustomSections[len(d.CustomSections)-1]
}

// DeleteCustomSection 删除自定义分区，并原子地移除 sectionOrder 中对应的键。
func (d *ResumeData) DeleteCustomSection(id string) error {
	if d.CustomSection(id) == nil {
		return fmt.Errorf("自定义分区 %s 不存在", id)
	}
	d.CustomSections = deleteByID(d.CustomSections, id, func(s CustomSection) string { return s.ID })
	d.SectionOrder = deleteByID(d.SectionOrder, id, func(k string) string { return k })
	return nil
}

// AddCustomItem 在自定义分区末尾追加条目，返回新 id。
func (d *ResumeData) AddCustomItem(sectionID string) (string, error) {
	section := d.CustomSection(sectionID)
	if section == nil {
		return "", fmt.Errorf("自定义分区 %s 不存在", sectionID)
	}
	item := CustomSectionItem{
		ID:       "custom-item-" + uuid.NewString(),
		Title:    "New Title",
		Subtitle: "Subtitle",
		Date:     "Date",
		Points:   []string{"New point"},
	}
	section.Items = appendCopy(section.Items, item)
	return item.ID, nil
}

// DeleteCustomItem 删除自定义分区中的条目。
func (d *ResumeData) DeleteCustomItem(sectionID, itemID string) error {
	section := d.CustomSection(sectionID)
	if section == nil {
		return fmt.Errorf("自定义分区 %s 不存在", sectionID)
	}
	section.Items = deleteByID(section.Items, itemID, func(i CustomSectionItem) string { return i.ID })
	return nil
}

// MoveCustomItem 在自定义分区内移动条目；越界时为空操作。
func (d *ResumeData) MoveCustomItem(sectionID string, index int, dir Direction) error {
	section := d.CustomSection(sectionID)
	if section == nil {
		return fmt.Errorf("自定义分区 %s 不存在", sectionID)
	}
	section.Items = moveAt(section.Items, index, index+dir.delta())
	return nil
}

// RepairSectionOrder 在整文档替换后修复 sectionOrder：
// 去掉未知/重复的键，并把缺失的固定分区键与自定义分区 id 补到末尾。
func (d *ResumeData) RepairSectionOrder() {
	valid := map[string]bool{}
	for _, key := range FixedSections {
		valid[key] = true
	}
	for _, section := range d.CustomSections {
		valid[section.ID] = true
	}

	seen := map[string]bool{}
	order := make([]string, 0, len(valid))
	for _, key := range d.SectionOrder {
		if valid[key] && !seen[key] {
			order = append(order, key)
			seen[key] = true
		}
	}
	for _, key := range FixedSections {
		if !seen[key] {
			order = append(order, key)
			seen[key] = true
		}
	}
	for _, section := range d.CustomSections {
		if !seen[section.ID] {
			order = append(order, section.ID)
			seen[section.ID] = true
		}
	}
	d.SectionOrder = order
}

// ItemIndex 返回固定分区内 id 对应条目的下标；找不到时返回 -1。
func (d *ResumeData) ItemIndex(section, id string) (int, error) {
	switch section {
	case SectionEducation:
		return indexByID(d.Education, id, func(e Education) string { return e.ID }), nil
	case SectionPublications:
		return indexByID(d.Publications, id, func(p Publication) string { return p.ID }), nil
	case SectionInternships:
		return indexByID(d.Internships, id, func(e Experience) string { return e.ID }), nil
	case SectionProjects:
		return indexByID(d.Projects, id, func(p Project) string { return p.ID }), nil
	case SectionCompetitions:
		return indexByID(d.Competitions, id, func(c Competition) string { return c.ID }), nil
	case SectionAwards:
		return indexByID(d.Awards, id, func(a Award) string { return a.ID }), nil
	case SectionSkills:
		return indexByID(d.Skills, id, func(s Skill) string { return s.ID }), nil
	case SectionResponsibilities:
		return indexByID(d.Responsibilities, id, func(r Responsibility) string { return r.ID }), nil
	default:
		return -1, fmt.Errorf("未知的固定分区：%s", section)
	}
}

// CustomItemIndex 返回自定义分区内 id 对应条目的下标；找不到时返回 -1。
func (d *ResumeData) CustomItemIndex(sectionID, itemID string) (int, error) {
	section := d.CustomSection(sectionID)
	if section == nil {
		return -1, fmt.Errorf("自定义分区 %s 不存在", sectionID)
	}
	return indexByID(section.Items, itemID, func(i CustomSectionItem) string { return i.ID }), nil
}

func indexByID[T any](list []T, id string, key func(T) string) int {
	for i, item := range list {
		if key(item) == id {
			return i
		}
	}
	return -1
}

// appendCopy 以副本追加，避免与旧切片共享底层数组。
func appendCopy[T any](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, item)
}

func deleteByID[T any](list []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, item := range list {
		if key(item) != id {
			out = append(out, item)
		}
	}
	return out
}

// moveAt 返回移动后的新切片；from/to 任一越界时原样返回。
func moveAt[T any](list []T, from, to int) []T {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return list
	}
	out := append([]T(nil), list...)
	item := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{item}, out[to:]...)...)
	return out
}
