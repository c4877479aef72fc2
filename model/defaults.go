package model

// Default 返回内置的示例文档。首次启动或持久化数据损坏时使用。
// 示例文本沿用匿名化占位（含希腊字母形近字符），导出时由规范化器处理。
func Default() *ResumeData {
	return &ResumeData{
		Name:           "ΑΝΟΝ ΑΝΟΝ — 21AB00000",
		Title:          "ΑΝΟΝ ΑΝΟΝ (M.Tech Dual 5Y)",
		Specialization: "MICRO SPL. in ΑΝΟΝ INTELLIGENCE AND APPLICATIONS",
		Contact: ContactInfo{
			Phone:    "+91 1234567890",
			Email:    "anonemail@example.com",
			GitHub:   "anonhandle",
			LinkedIn: "anon-linkedin",
		},
		Settings: ResumeSettings{
			FontFamily:  FontMerriweather,
			FontSize:    "10",
			AccentColor: "#4A5568",
		},
		Education: []Education{
			{ID: "edu1", Year: "2026", Degree: "ΑΝΟΝ Dual Degree 5Y", Institute: "ΑΝΟΝ University", Score: "8.46 / 10"},
			{ID: "edu2", Year: "2021", Degree: "ΑΝΟΝ (School) Certificate", Institute: "ΑΝΟΝ Higher Secondary School", Score: "98.6%"},
			{ID: "edu3", Year: "2019", Degree: "ΑΝΟΝ Certificate of Secondary Education", Institute: "ΑΝΟΝ School", Score: "98.4%"},
		},
		Publications: []Publication{
			{
				ID:      "pub1",
				Title:   "ΑΝΟΝ: A Generalised Framework for Tooling",
				Details: "ΑΝΟΝ 2024 — ΑΝΟΝ, Greece",
				Date:    "May 2024",
				Points: []string{
					"Proposed a pipeline for ΑΝΟΝ usage, achieving a 20% improvement over current SoTA benchmarks.",
					"Employed ΑΝΟΝ techniques to fine-tune models, reducing computational costs by 30%.",
					"Developed synthetic datasets for diverse scenarios, increasing model adaptability by 15%.",
				},
			},
		},
		Internships: []Experience{
			{
				ID: "exp1", Role: "Data Science Intern", Company: "ΑΝΟΝ", Location: "Bengaluru",
				Duration: "Jul 2024 - Present",
				Points: []string{
					"Developed an ΑΝΟΝ model to estimate demand volume, enhancing forecasting capabilities.",
					"Achieved a 15% reduction in ΑΝΟΝ Error through advanced optimization techniques.",
				},
			},
			{
				ID: "exp2", Role: "Research Intern", Company: "ΑΝΟΝ", Location: "Bengaluru",
				Duration: "Jan 2024 - Mar 2024",
				Points: []string{
					"Published the paper “ΑΝΟΝ: A Generalised Framework for Tooling” detailing a pipeline for ΑΝΟΝ application.",
					"Conducted experiments achieving a 25% latency reduction using quantization methods.",
				},
			},
		},
		Projects: []Project{
			{
				ID: "proj1", Title: "ΑΝΟΝ: An AI-powered Chat Bot", Details: "Self Project", Date: "Feb 2024",
				Points: []string{
					"Developed ΑΝΟΝ using quantized ΑΝΟΝ models. Scraped data to create databases.",
					"Designed and deployed an app to showcase ΑΝΟΝ, ensuring seamless interaction.",
				},
			},
		},
		Competitions: []Competition{
			{
				ID: "comp1", Title: "ΑΝΟΝ Campus Challenge 2024", Date: "May 2024 - Present",
				Points: []string{"Ranked top 10 among teams in Round 1 by achieving 72% accuracy using models."},
			},
		},
		Awards: []Award{
			{ID: "award1", Point: "Recognized by ΑΝΟΝ for contributions and insights shared within the community."},
			{ID: "award2", Point: "Secured gold in Open ΑΝΟΝ 2024 with a project focused on analysis."},
		},
		Skills: []Skill{
			{ID: "skill1", Category: "Tools:", List: "ΑΝΟΝ, ΑΝΟΝ, ΑΝΟΝ, ΑΝΟΝ, ΑΝΟΝ"},
			{ID: "skill2", Category: "Languages & Libraries:", List: "ΑΝΟΝ, ΑΝΟΝ, ΑΝΟΝ, ΑΝΟΝ"},
		},
		Responsibilities: []Responsibility{
			{
				ID: "resp1", Role: "Executive Head", Group: "ΑΝΟΝ Group", Duration: "Jul 2023 - Jun 2024",
				Points: []string{
					"Organized ΑΝΟΝ Hackathon 2024, increasing registrations significantly.",
					"Conducted a Bootcamp, attracting participants, including international ones.",
				},
			},
		},
		CustomSections: []CustomSection{},
		SectionOrder:   append([]string(nil), FixedSections...),
	}
}
