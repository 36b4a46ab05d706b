package portal

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// GradCredits is the credit total required to graduate.
const GradCredits = 120

// gradeProgress maps a letter grade to a course completion percent for the
// course-card progress bar. Ungraded courses show a fixed in-progress value.
var gradeProgress = map[string]int{
	"A+": 100, "A": 97, "A-": 93,
	"B+": 88, "B": 85, "B-": 82,
	"C+": 78, "C": 75, "C-": 72,
	"D": 65, "F": 0,
}

const inProgressPercent = 65

type DashboardView struct {
	Student           *Student `json:"student"`
	GPA               float64  `json:"gpa"`
	Standing          string   `json:"standing"`
	CourseCount       int      `json:"course_count"`
	AverageAttendance int      `json:"average_attendance"`
	TotalCredits      int      `json:"total_credits"`
	CreditsInProgress int      `json:"credits_in_progress"`
	CurrentSemester   string   `json:"current_semester"`
	RecentGrades      []Grade  `json:"recent_grades"`
	UsingMockData     bool     `json:"using_mock_data"`
}

type CourseView struct {
	Course
	Grade      string `json:"grade,omitempty"`
	Score      string `json:"score,omitempty"`
	Progress   int    `json:"progress"`
	InProgress bool   `json:"in_progress"`
}

type GradeRow struct {
	Grade
	CourseName string `json:"course_name"`
	Instructor string `json:"instructor"`
	Credits    string `json:"credits"`
}

type GradesView struct {
	Semester    string     `json:"semester"`
	Semesters   []string   `json:"semesters"`
	SemesterGPA float64    `json:"semester_gpa"`
	Grades      []GradeRow `json:"grades"`
}

type AttendanceView struct {
	Semester string       `json:"semester"`
	Average  int          `json:"average"`
	Rows     []Attendance `json:"rows"`
}

type SemesterCredits struct {
	Semester string `json:"semester"`
	Credits  int    `json:"credits"`
	Current  bool   `json:"current"`
}

type CreditsView struct {
	TotalEarned  int               `json:"total_earned"`
	InProgress   int               `json:"in_progress"`
	Remaining    int               `json:"remaining"`
	GradProgress int               `json:"grad_progress"`
	BySemester   []SemesterCredits `json:"by_semester"`
	Courses      []Course          `json:"courses"`
}

// DashboardView assembles the summary page: headline metrics plus the three
// most recent grades of the current term.
func (b Bundle) DashboardView() DashboardView {
	recent := make([]Grade, 0, 3)
	for _, g := range b.Grades {
		if g.Semester != b.CurrentSemester {
			continue
		}
		recent = append(recent, g)
		if len(recent) == 3 {
			break
		}
	}
	return DashboardView{
		Student:           b.Student,
		GPA:               b.GPA,
		Standing:          standing(b.GPA),
		CourseCount:       len(b.Courses),
		AverageAttendance: b.AverageAttendance,
		TotalCredits:      b.TotalCredits,
		CreditsInProgress: b.CreditsInProgress,
		CurrentSemester:   b.CurrentSemester,
		RecentGrades:      recent,
		UsingMockData:     b.UsingMockData,
	}
}

func standing(gpa float64) string {
	switch {
	case gpa >= 3.7:
		return "Dean's List"
	case gpa >= 3.0:
		return "Good Standing"
	case gpa >= 2.0:
		return "Satisfactory"
	default:
		return "Needs Improvement"
	}
}

// CoursesView joins each course with its current-term grade and a
// progress-bar percent.
func (b Bundle) CoursesView() []CourseView {
	byCourse := make(map[string]Grade, len(b.Grades))
	for _, g := range b.Grades {
		if g.Semester == b.CurrentSemester {
			byCourse[g.CourseID] = g
		}
	}
	out := make([]CourseView, 0, len(b.Courses))
	for _, c := range b.Courses {
		cv := CourseView{Course: c, Progress: inProgressPercent, InProgress: true}
		if g, ok := byCourse[c.CourseID]; ok {
			cv.Grade = g.Grade
			cv.Score = g.Score
			cv.Progress = gradeProgress[g.Grade]
			cv.InProgress = false
		}
		out = append(out, cv)
	}
	return out
}

// GradesView filters grade rows to one semester and computes that
// semester's GPA from the courses' stored credit values.
func (b Bundle) GradesView(semester string) GradesView {
	if semester == "" {
		semester = b.CurrentSemester
	}
	credits := make(map[string]string, len(b.Courses))
	names := make(map[string]Course, len(b.Courses))
	for _, c := range b.Courses {
		credits[c.CourseID] = c.Credits
		names[c.CourseID] = c
	}

	var rows []GradeRow
	var pts, cr float64
	for _, g := range b.Grades {
		if g.Semester != semester {
			continue
		}
		row := GradeRow{Grade: g, CourseName: g.CourseID, Instructor: "—", Credits: "3"}
		if c, ok := names[g.CourseID]; ok {
			row.CourseName = c.CourseName
			row.Instructor = c.Instructor
			row.Credits = c.Credits
		}
		rows = append(rows, row)

		w, err := strconv.ParseFloat(strings.TrimSpace(credits[g.CourseID]), 64)
		if err != nil || w == 0 {
			w = 3
		}
		pts += gradePoints[strings.ToUpper(g.Grade)] * w
		cr += w
	}

	gpa := 0.0
	if cr > 0 {
		gpa = math.Round(pts/cr*100) / 100
	}
	return GradesView{
		Semester:    semester,
		Semesters:   b.Semesters,
		SemesterGPA: gpa,
		Grades:      rows,
	}
}

// AttendanceView lists only the courses that track attendance together
// with the term average.
func (b Bundle) AttendanceView() AttendanceView {
	return AttendanceView{
		Semester: b.CurrentSemester,
		Average:  b.AverageAttendance,
		Rows:     b.Attendance,
	}
}

// CreditsView tracks graduation progress against the 120-credit requirement.
// Each grade row contributes 3 credits to its semester's breakdown.
func (b Bundle) CreditsView() CreditsView {
	bySem := map[string]int{}
	for _, g := range b.Grades {
		bySem[g.Semester] += 3
	}
	sems := make([]string, 0, len(bySem))
	for s := range bySem {
		sems = append(sems, s)
	}
	sort.Strings(sems)

	breakdown := make([]SemesterCredits, 0, len(sems))
	for _, s := range sems {
		breakdown = append(breakdown, SemesterCredits{
			Semester: s,
			Credits:  bySem[s],
			Current:  s == b.CurrentSemester,
		})
	}

	earned := b.TotalCredits
	inProgress := b.CreditsInProgress
	remaining := GradCredits - earned - inProgress
	if remaining < 0 {
		remaining = 0
	}
	return CreditsView{
		TotalEarned:  earned,
		InProgress:   inProgress,
		Remaining:    remaining,
		GradProgress: int(math.Round(float64(earned+inProgress) / GradCredits * 100)),
		BySemester:   breakdown,
		Courses:      b.Courses,
	}
}
