package portal

import (
	"math"
	"strconv"
	"strings"

	"github.com/auy-connect/student-portal/internal/sheets"
)

// defaultSemester labels an empty bundle before any record has loaded.
const defaultSemester = "Spring 2025"

// gradePoints maps letter grades to the 4.0 scale. Lookups are
// case-insensitive; a grade outside the table earns 0 points but its
// credits still count toward the denominator.
var gradePoints = map[string]float64{
	"A+": 4.0, "A": 4.0, "A-": 3.7,
	"B+": 3.3, "B": 3.0, "B-": 2.7,
	"C+": 2.3, "C": 2.0, "C-": 1.7,
	"D+": 1.3, "D": 1.0, "F": 0.0,
}

// Derive maps a raw record into the full view-model bundle. Pure: same
// inputs always yield the same bundle, no I/O.
func Derive(raw *sheets.StudentRecord, email string) Bundle {
	if raw == nil {
		return Bundle{CurrentSemester: defaultSemester, Semesters: []string{defaultSemester}}
	}
	semester := raw.Semester
	if semester == "" {
		semester = defaultSemester
	}

	b := Bundle{
		Student: &Student{
			Email:     email,
			Name:      raw.StudentName,
			StudentID: raw.StudentID,
			Semester:  raw.Semester,
			Program:   raw.StudyMode,
		},
		CurrentSemester: semester,
		Semesters:       []string{semester},
		GPA:             CalculateGPA(raw.Courses),
		// enrollment count at the standard 3 credits, not a sum of the
		// per-course credit field
		CreditsInProgress: len(raw.Courses) * 3,
		// the record shape carries no multi-term history
		TotalCredits: 0,
	}

	for _, c := range raw.Courses {
		b.Courses = append(b.Courses, Course{
			CourseID:   c.CourseID,
			CourseName: c.CourseName,
			Credits:    c.Credits,
			Instructor: c.Instructor,
		})
		if c.Grade != "" {
			b.Grades = append(b.Grades, Grade{
				CourseID: c.CourseID,
				Semester: semester,
				Grade:    c.Grade,
				Score:    c.Score,
			})
		}
		if c.Attendance != nil {
			b.Attendance = append(b.Attendance, Attendance{
				CourseID:   c.CourseID,
				Semester:   semester,
				Attended:   c.Attended,
				Total:      c.Total,
				Percentage: *c.Attendance,
			})
		}
		for _, m := range c.Materials {
			b.Materials = append(b.Materials, Material{
				CourseID: c.CourseID,
				Title:    m.Title,
				URL:      m.URL,
				Type:     m.Type,
				Icon:     iconKind(m.Type),
			})
		}
		for _, q := range c.Quizzes {
			b.Quizzes = append(b.Quizzes, Quiz{
				CourseID: c.CourseID,
				Title:    q.Title,
				Date:     q.Date,
				Status:   q.Status,
				Link:     q.Link,
				Semester: semester,
			})
		}
	}

	b.AverageAttendance = averageAttendance(b.Attendance)
	return b
}

// CalculateGPA computes the credit-weighted GPA over graded courses,
// rounded to two decimals. An empty graded set yields 0.
func CalculateGPA(courses []sheets.CourseRecord) float64 {
	var pts, cr float64
	for _, c := range courses {
		if c.Grade == "" {
			continue
		}
		credits := parseCredits(c.Credits)
		pts += gradePoints[strings.ToUpper(c.Grade)] * credits
		cr += credits
	}
	if cr == 0 {
		return 0
	}
	return math.Round(pts/cr*100) / 100
}

// parseCredits falls back to 3 when the stored text is not a usable number.
func parseCredits(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v == 0 {
		return 3
	}
	return v
}

// averageAttendance is the unweighted mean of attended/total ratios over
// courses that track attendance, as a whole percent. Courses without
// attendance data are excluded, not zero-filled.
func averageAttendance(rows []Attendance) int {
	if len(rows) == 0 {
		return 0
	}
	var sum float64
	for _, a := range rows {
		attended, err1 := strconv.ParseFloat(strings.TrimSpace(a.Attended), 64)
		total, err2 := strconv.ParseFloat(strings.TrimSpace(a.Total), 64)
		if err1 != nil || err2 != nil || total <= 0 {
			// session counts unusable, trust the sheet's percentage
			sum += float64(a.Percentage)
			continue
		}
		sum += attended / total * 100
	}
	return int(math.Round(sum / float64(len(rows))))
}

// iconKind folds the open set of material type tags into the icon classes
// the pages know about. Unknown tags degrade to a default, never fail.
func iconKind(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "pdf", "doc":
		return "document"
	case "slides", "slide":
		return "slide"
	case "video":
		return "video"
	default:
		return "other"
	}
}
