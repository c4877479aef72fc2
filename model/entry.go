package model

// 主分区条目在字段命名上彼此分歧（role/title、duration/date、
// company/group/details/subtitle），但结构同构。Entry 是布局引擎消费的
// 规范形态，每个类别提供一个显式的映射方法，渲染原语只认 Entry。

// Entry 规范化后的主分区条目：{标题, 副标题, 日期, 要点}。
type Entry struct {
	Title     string
	Secondary string
	Date      string
	Points    []string
}

// Entry 出版物：标题/详情/日期。
func (p Publication) Entry() Entry {
	return Entry{Title: p.Title, Secondary: p.Details, Date: p.Date, Points: p.Points}
}

// Entry 实习经历：职位/公司+地点/时长。公司为空时副标题整体为空。
func (e Experience) Entry() Entry {
	secondary := ""
	if e.Company != "" {
		secondary = e.Company
		if e.Location != "" {
			secondary += ", " + e.Location
		}
	}
	return Entry{Title: e.Role, Secondary: secondary, Date: e.Duration, Points: e.Points}
}

// Entry 项目：标题/详情/日期。
func (p Project) Entry() Entry {
	return Entry{Title: p.Title, Secondary: p.Details, Date: p.Date, Points: p.Points}
}

// Entry 竞赛：只有标题与日期。
func (c Competition) Entry() Entry {
	return Entry{Title: c.Title, Date: c.Date, Points: c.Points}
}

// Entry 职务：职位/组织/时长。
func (r Responsibility) Entry() Entry {
	return Entry{Title: r.Role, Secondary: r.Group, Date: r.Duration, Points: r.Points}
}

// Entry 自定义分区条目：标题/副标题/日期。
func (i CustomSectionItem) Entry() Entry {
	return Entry{Title: i.Title, Secondary: i.Subtitle, Date: i.Date, Points: i.Points}
}
