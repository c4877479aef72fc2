package model

// 该文件定义简历文档模型：所有实体均为纯数据记录，由编辑器独占修改，
// 布局引擎在一次导出中只读借用。JSON 标签与持久化 blob 的字段一一对应。

// 固定分区的键名。sectionOrder 中出现的键要么是这些常量之一，
// 要么是某个自定义分区的 id。
const (
	SectionEducation        = "education"
	SectionPublications     = "publications"
	SectionInternships      = "internships"
	SectionProjects         = "projects"
	SectionCompetitions     = "competitions"
	SectionAwards           = "awards"
	SectionSkills           = "skills"
	SectionResponsibilities = "responsibilities"
)

// FixedSections 按默认顺序列出全部固定分区键。
var FixedSections = []string{
	SectionEducation,
	SectionPublications,
	SectionInternships,
	SectionProjects,
	SectionCompetitions,
	SectionAwards,
	SectionSkills,
	SectionResponsibilities,
}

// ContactInfo 联系方式；空字段在渲染时整体省略。
type ContactInfo struct {
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

// Education 教育经历，顺序即展示顺序。
type Education struct {
	ID        string `json:"id"`
	Year      string `json:"year"`
	Degree    string `json:"degree"`
	Institute string `json:"institute"`
	Score     string `json:"score"`
}

// Publication 发表的论文/出版物。
type Publication struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Details string   `json:"details"`
	Date    string   `json:"date"`
	Points  []string `json:"points"`
}

// Experience 实习/工作经历。
type Experience struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
}

// Project 项目经历。
type Project struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Details string   `json:"details"`
	Date    string   `json:"date"`
	Points  []string `json:"points"`
}

// Competition 竞赛/会议经历。
type Competition struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Date   string   `json:"date"`
	Points []string `json:"points"`
}

// Award 获奖条目：只有一条富文本要点，没有标题与日期。
type Award struct {
	ID    string `json:"id"`
	Point string `json:"point"`
}

// Skill 技能条目：分类标签 + 逗号分隔的自由文本列表。
type Skill struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	List     string `json:"list"`
}

// Responsibility 担任职务。
type Responsibility struct {
	ID       string   `json:"id"`
	Role     string   `json:"role"`
	Group    string   `json:"group"`
	Duration string   `json:"duration"`
	Points   []string `json:"points"`
}

// CustomSectionItem 与主分区条目结构一致，用于用户自定义分区。
type CustomSectionItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle"`
	Date     string   `json:"date"`
	Points   []string `json:"points"`
}

// CustomSection 用户自定义分区；id 被 sectionOrder 引用。
type CustomSection struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Items []CustomSectionItem `json:"items"`
}

// 支持的界面字体族（导出引擎会把它们映射到 serif/sans 两类渲染字体）。
const (
	FontMerriweather = "Merriweather"
	FontLato         = "Lato"
	FontRaleway      = "Raleway"
	FontRobotoSlab   = "Roboto Slab"
)

// ResumeSettings 导出样式设置。FontSize 以字符串存储（沿用持久化格式），单位 pt。
type ResumeSettings struct {
	FontFamily  string `json:"fontFamily"`
	FontSize    string `json:"fontSize"`
	AccentColor string `json:"accentColor"`
}

// ResumeData 文档根。LogoURL/ProfileURL 保存可嵌入的 data-URI 图片数据。
type ResumeData struct {
	Name             string           `json:"name"`
	Title            string           `json:"title"`
	Specialization   string           `json:"specialization"`
	LogoURL          string           `json:"logoUrl"`
	ProfileURL       string           `json:"profileUrl"`
	Contact          ContactInfo      `json:"contact"`
	Education        []Education      `json:"education"`
	Publications     []Publication    `json:"publications"`
	Internships      []Experience     `json:"internships"`
	Projects         []Project        `json:"projects"`
	Competitions     []Competition    `json:"competitions"`
	Awards           []Award          `json:"awards"`
	Skills           []Skill          `json:"skills"`
	Responsibilities []Responsibility `json:"responsibilities"`
	CustomSections   []CustomSection  `json:"customSections"`
	SectionOrder     []string         `json:"sectionOrder"`
	Settings         ResumeSettings   `json:"settings"`
}

// CustomSection 按 id 查找自定义分区，找不到时返回 nil。
func (d *ResumeData) CustomSection(id string) *CustomSection {
	for i := range d.CustomSections {
		if d.CustomSections[i].ID == id {
			return &d.CustomSections[i]
		}
	}
	return nil
}

// Snapshot 返回文档的深拷贝。导出开始时捕获一次快照，
// 布局引擎只消费快照，避免与编辑中的文档产生数据竞争。
func (d *ResumeData) Snapshot() *ResumeData {
	out := *d
	out.Education = append([]Education(nil), d.Education...)
	out.Publications = clonePointed(d.Publications, func(p Publication) Publication {
		p.Points = append([]string(nil), p.Points...)
		return p
	})
	out.Internships = clonePointed(d.Internships, func(e Experience) Experience {
		e.Points = append([]string(nil), e.Points...)
		return e
	})
	out.Projects = clonePointed(d.Projects, func(p Project) Project {
		p.Points = append([]string(nil), p.Points...)
		return p
	})
	out.Competitions = clonePointed(d.Competitions, func(c Competition) Competition {
		c.Points = append([]string(nil), c.Points...)
		return c
	})
	out.Awards = append([]Award(nil), d.Awards...)
	out.Skills = append([]Skill(nil), d.Skills...)
	out.Responsibilities = clonePointed(d.Responsibilities, func(r Responsibility) Responsibility {
		r.Points = append([]string(nil), r.Points...)
		return r
	})
	out.CustomSections = clonePointed(d.CustomSections, func(s CustomSection) CustomSection {
		s.Items = clonePointed(s.Items, func(it CustomSectionItem) CustomSectionItem {
			it.Points = append([]string(nil), it.Points...)
			return it
		})
		return s
	})
	out.SectionOrder = append([]string(nil), d.SectionOrder...)
	return &out
}

func clonePointed[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}
