package sheets

// DemoRecord returns the fixed record served when no endpoint is configured.
// Built fresh on every call so callers can never mutate a shared copy.
func DemoRecord() *StudentRecord {
	return &StudentRecord{
		StudentName: "Alex Johnson",
		StudentID:   "STU-2024-001",
		StudyMode:   "Computer Science",
		Semester:    "Spring 2025",
		Courses: []CourseRecord{
			{
				CourseID: "CS301", CourseName: "Data Structures & Algorithms",
				Credits: "3", Instructor: "Dr. Sarah Chen",
				Grade: "A", Score: "94", Attendance: intp(93), Attended: "28", Total: "30",
				Materials: []Material{
					{Title: "Lecture 1 – Introduction to DSA", URL: "https://drive.google.com", Type: "pdf"},
					{Title: "Problem Set 1", URL: "https://drive.google.com", Type: "doc"},
					{Title: "Chapter 2 Slides", URL: "https://drive.google.com", Type: "slides"},
				},
				Quizzes: []Quiz{
					{Title: "Quiz 1 – Arrays & Linked Lists", Date: "2025-02-10", Status: "Completed"},
					{Title: "Quiz 2 – Trees & Graphs", Date: "2025-03-15", Status: "Completed"},
					{Title: "Midterm Exam", Date: "2025-04-01", Status: "Upcoming", Link: strp("https://exam.university.edu")},
				},
			},
			{
				CourseID: "CS350", CourseName: "Operating Systems",
				Credits: "3", Instructor: "Prof. James Miller",
				Grade: "B+", Score: "88", Attendance: intp(73), Attended: "22", Total: "30",
				Materials: []Material{
					{Title: "OS Concepts – Week 1", URL: "https://drive.google.com", Type: "pdf"},
					{Title: "Lab Manual", URL: "https://drive.google.com", Type: "doc"},
				},
				Quizzes: []Quiz{
					{Title: "Quiz 1 – Process Management", Date: "2025-02-20", Status: "Completed"},
					{Title: "Midterm", Date: "2025-04-05", Status: "Upcoming", Link: strp("https://exam.university.edu")},
				},
			},
			{
				CourseID: "MATH201", CourseName: "Linear Algebra",
				Credits: "3", Instructor: "Dr. Emily Rodriguez",
				Grade: "A-", Score: "91", Attendance: intp(97), Attended: "29", Total: "30",
				Materials: []Material{
					{Title: "Linear Algebra Textbook Ch1", URL: "https://drive.google.com", Type: "pdf"},
				},
				Quizzes: []Quiz{
					{Title: "Vectors Quiz", Date: "2025-02-28", Status: "Completed"},
				},
			},
			{
				CourseID: "CS380", CourseName: "Web Development",
				Credits: "3", Instructor: "Prof. David Kim",
				Grade: "A", Score: "96", Attendance: intp(100), Attended: "30", Total: "30",
				Materials: []Material{
					{Title: "React Tutorial Video", URL: "https://drive.google.com", Type: "video"},
					{Title: "Project Guidelines", URL: "https://drive.google.com", Type: "doc"},
				},
				Quizzes: []Quiz{
					{Title: "HTML/CSS Assessment", Date: "2025-02-14", Status: "Completed"},
					{Title: "React Project Demo", Date: "2025-04-10", Status: "Upcoming"},
				},
			},
			{
				CourseID: "CS310", CourseName: "Database Systems",
				Credits: "3", Instructor: "Dr. Lisa Wang",
				Grade: "B", Score: "85", Attendance: intp(80), Attended: "24", Total: "30",
				Materials: []Material{
					{Title: "SQL Reference Sheet", URL: "https://drive.google.com", Type: "pdf"},
				},
				Quizzes: []Quiz{
					{Title: "SQL Fundamentals Quiz", Date: "2025-04-15", Status: "Upcoming"},
				},
			},
		},
	}
}

func intp(n int) *int       { return &n }
func strp(s string) *string { return &s }
