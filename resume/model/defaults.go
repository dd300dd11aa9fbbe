package model

// Default returns the sample document a new session starts from. Each call
// returns an independent value.
func Default() ResumeDocument {
	return ResumeDocument{
		ContactInfo: ContactInfo{
			FullName:  "John Doe",
			Title:     "Software Engineer",
			Email:     "johndoe@example.com",
			Phone:     "(123) 456-7890",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/johndoe",
			Website:   "johndoe.com",
			Portfolio: "portfolio.johndoe.com",
			GitHub:    "github.com/johndoe",
			LeetCode:  "leetcode.com/johndoe",
			CodeChef:  "codechef.com/users/johndoe",
		},
		AboutContent: "Experienced software engineer with a passion for creating efficient and scalable applications. Skilled in React, TypeScript, and Node.js with a strong understanding of software development principles.",
		ExperienceItems: []ExperienceItem{
			{
				ID:          "exp1",
				Company:     "Tech Solutions Inc.",
				Position:    "Senior Software Engineer",
				StartDate:   "Jan 2020",
				EndDate:     "Present",
				Location:    "San Francisco, CA",
				Description: "Developed and maintained web applications using React and TypeScript. Led a team of 5 developers.",
			},
			{
				ID:          "exp2",
				Company:     "Digital Innovations Ltd",
				Position:    "Software Developer",
				StartDate:   "Jun 2017",
				EndDate:     "Dec 2019",
				Location:    "Boston, MA",
				Description: "Built RESTful APIs using Node.js and Express. Implemented CI/CD pipelines for automated testing and deployment.",
			},
		},
		EducationItems: []EducationItem{
			{
				ID:          "edu1",
				Institution: "University of Technology",
				Degree:      "Bachelor's",
				Field:       "Computer Science",
				StartDate:   "2013",
				EndDate:     "2017",
				Location:    "Boston, MA",
			},
		},
		ProjectItems: []ProjectItem{
			{
				ID:           "proj1",
				Title:        "E-commerce Platform",
				Description:  "Built a full-stack e-commerce platform with React, Node.js, and MongoDB",
				StartDate:    "Jan 2021",
				EndDate:      "Jun 2021",
				Link:         "github.com/johndoe/ecommerce",
				Technologies: "React, Node.js, Express, MongoDB",
			},
			{
				ID:           "proj2",
				Title:        "Portfolio Website",
				Description:  "Designed and developed a personal portfolio website",
				StartDate:    "Aug 2020",
				EndDate:      "Sep 2020",
				Link:         "johndoe.com",
				Technologies: "React, Tailwind CSS, Framer Motion",
			},
		},
		CertificationItems: []CertificationItem{
			{
				ID:           "cert1",
				Name:         "AWS Certified Developer",
				Organization: "Amazon Web Services",
				IssueDate:    "May 2022",
				ExpiryDate:   "May 2025",
				CredentialID: "AWS-12345",
				Link:         "aws.amazon.com/verification",
			},
			{
				ID:           "cert2",
				Name:         "React Advanced Patterns",
				Organization: "Frontend Masters",
				IssueDate:    "Jan 2021",
				Link:         "frontendmasters.com/certificates/12345",
			},
		},
		SkillItems: []SkillItem{
			{ID: "skill1", Name: "JavaScript", Category: CategoryLanguages},
			{ID: "skill2", Name: "TypeScript", Category: CategoryLanguages},
			{ID: "skill3", Name: "Python", Category: CategoryLanguages},
			{ID: "skill4", Name: "React", Category: CategoryFrontend},
			{ID: "skill5", Name: "HTML/CSS", Category: CategoryFrontend},
			{ID: "skill6", Name: "Node.js", Category: CategoryBackend},
			{ID: "skill7", Name: "Express", Category: CategoryFrameworks},
			{ID: "skill8", Name: "MongoDB", Category: CategoryDatabase},
			{ID: "skill9", Name: "PostgreSQL", Category: CategoryDatabase},
			{ID: "skill10", Name: "Docker", Category: CategoryTools},
			{ID: "skill11", Name: "Git", Category: CategoryVersionControl},
		},
		SelectedTemplate: DefaultTemplate,
	}
}
