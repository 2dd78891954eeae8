// Package menu implements the interactive text front end.
//
// Every action follows the same cycle: load the document from the store,
// apply one domain mutation, save the document back. The loop keeps running
// after a failed action so a typo never costs the session.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/uniplan/uniplan/internal/planner/domain"
	"github.com/uniplan/uniplan/internal/planner/ical"
	"github.com/uniplan/uniplan/internal/planner/view"
	"github.com/uniplan/uniplan/internal/platform/errors"
	"github.com/uniplan/uniplan/internal/platform/errors/i18n"
	"github.com/uniplan/uniplan/internal/seed"
	"github.com/uniplan/uniplan/internal/storage"
)

// upcomingWindowDays is the dashboard lookahead for due assignments.
const upcomingWindowDays = 7

// Service drives the text menu over a document store.
type Service struct {
	store  storage.DocumentStore
	in     *bufio.Scanner
	out    io.Writer
	clock  func() time.Time
	locale string
}

// New builds a menu service reading commands from in and writing to out.
func New(store storage.DocumentStore, in io.Reader, out io.Writer) *Service {
	return &Service{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		clock:  time.Now,
		locale: i18n.BaseLocale,
	}
}

// WithClock overrides the wall clock, primarily for tests.
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

// Run loops over the main menu until the user exits or input ends.
func (s *Service) Run(ctx context.Context) error {
	if err := s.store.Ensure(ctx); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, ok := s.prompt("Choose an option: ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			s.addSubject(ctx)
		case "2":
			s.listSubjects(ctx)
		case "3":
			s.recordAttendance(ctx)
		case "4":
			s.attendanceReport(ctx)
		case "5":
			s.addAssignment(ctx)
		case "6":
			s.listAssignments(ctx)
		case "7":
			s.toggleAssignment(ctx)
		case "8":
			s.dashboard(ctx)
		case "9":
			s.exportData(ctx)
		case "10":
			s.importData(ctx)
		case "11":
			s.backupNow(ctx)
		case "12":
			s.initDemo(ctx)
		case "0":
			s.printf("Goodbye.")
			return nil
		default:
			s.printf("Invalid option. Enter a number from the menu.")
		}
	}
}

func (s *Service) printMenu() {
	s.printf("")
	s.printf("=== University Planner ===")
	s.printf("1) Add Subject")
	s.printf("2) List Subjects")
	s.printf("3) Record Attendance")
	s.printf("4) Attendance Report")
	s.printf("5) Add Assignment")
	s.printf("6) List Assignments")
	s.printf("7) Toggle Assignment Completion")
	s.printf("8) Dashboard")
	s.printf("9) Export Data")
	s.printf("10) Import Data")
	s.printf("11) Backup Data")
	s.printf("12) Init Demo Data")
	s.printf("0) Exit")
}

func (s *Service) addSubject(ctx context.Context) {
	name, ok := s.prompt("Subject name (e.g. Calculus): ")
	if !ok {
		return
	}
	code, ok := s.prompt("Code (optional, e.g. MA101): ")
	if !ok {
		return
	}
	prof, ok := s.prompt("Professor (optional): ")
	if !ok {
		return
	}
	schedule, ok := s.prompt("Schedule (e.g. Mon@09:00-10:30,Tue@11:00-12:30 Room201) [optional]: ")
	if !ok {
		return
	}

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	subject, err := doc.AddSubject(domain.SubjectInput{
		Name:         name,
		Code:         code,
		Prof:         prof,
		ScheduleText: schedule,
	}, s.clock, nil)
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.store.Save(ctx, doc); err != nil {
		s.fail(err)
		return
	}
	s.printf("Subject %q added.", subject.Name)
}

func (s *Service) listSubjects(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if len(doc.Subjects) == 0 {
		s.printf("No subjects found. Add one from the menu.")
		return
	}
	for i, subject := range doc.Subjects {
		line := fmt.Sprintf("%d. %s", i+1, subject.Name)
		if subject.Code != "" {
			line += " [" + subject.Code + "]"
		}
		line += " (id:" + subject.ID + ")"
		s.printf("%s", line)
		if subject.Prof != "" {
			s.printf("   Prof: %s", subject.Prof)
		}
		for _, slot := range subject.Schedule {
			loc := ""
			if slot.Location != "" {
				loc = " @ " + slot.Location
			}
			s.printf("   - %s %s-%s%s", slot.Day, slot.Start, slot.End, loc)
		}
	}
}

func (s *Service) recordAttendance(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	subject, ok := s.chooseSubject(doc, "Select subject to record attendance for:")
	if !ok {
		return
	}

	today := s.clock()
	dateText, ok := s.prompt(fmt.Sprintf("Date (YYYY-MM-DD) [default today %s]: ", today.Format(domain.DateLayout)))
	if !ok {
		return
	}
	date := today
	if dateText != "" {
		date, err = domain.ParseDate(dateText)
		if err != nil {
			s.fail(err)
			return
		}
	}

	presentText, ok := s.prompt("Present? (y/n) [default y]: ")
	if !ok {
		return
	}
	present := parseYes(presentText)

	if _, err := doc.RecordAttendance(subject.ID, date, present, s.clock, nil); err != nil {
		s.fail(err)
		return
	}
	if err := s.store.Save(ctx, doc); err != nil {
		s.fail(err)
		return
	}
	status := "Absent"
	if present {
		status = "Present"
	}
	s.printf("Recorded %s for %s on %s.", status, subject.Name, date.Format(domain.DateLayout))
}

func (s *Service) attendanceReport(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if len(doc.Subjects) == 0 {
		s.printf("No subjects.")
		return
	}
	for _, subject := range doc.Subjects {
		pct := view.AttendancePercent(doc, subject.ID)
		status := "OK"
		if pct < view.AlertThreshold {
			status = fmt.Sprintf("LOW (<%.0f%%)", view.AlertThreshold)
		}
		s.printf("- %s (%s): %.1f%% -> %s", subject.Name, subject.Code, pct, status)
	}
}

func (s *Service) addAssignment(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}

	var subjectID *string
	if len(doc.Subjects) > 0 {
		subject, picked := s.chooseSubjectOptional(doc, "Select subject (or press Enter for unassigned):")
		if picked {
			id := subject.ID
			subjectID = &id
		}
	}

	title, ok := s.prompt("Title: ")
	if !ok {
		return
	}
	description, ok := s.prompt("Description (optional): ")
	if !ok {
		return
	}
	due, ok := s.prompt("Due date (YYYY-MM-DD or YYYY-MM-DDTHH:MM) [optional]: ")
	if !ok {
		return
	}

	if _, err := doc.AddAssignment(domain.AssignmentInput{
		SubjectID:   subjectID,
		Title:       title,
		Description: description,
		DueAt:       due,
	}, s.clock, nil); err != nil {
		s.fail(err)
		return
	}
	if err := s.store.Save(ctx, doc); err != nil {
		s.fail(err)
		return
	}
	s.printf("Assignment added.")
}

func (s *Service) listAssignments(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if len(doc.Assignments) == 0 {
		s.printf("No assignments found.")
		return
	}
	for _, a := range doc.Assignments {
		status := "Pending"
		if a.Completed {
			status = "Done"
		}
		s.printf("- %s [%s] (id:%s)", a.Title, view.SubjectName(doc, a.SubjectID), a.ID)
		s.printf("   Due: %s   Status: %s", view.FormatDueDate(a.DueAt), status)
		if a.Description != "" {
			s.printf("   %s", a.Description)
		}
	}
}

func (s *Service) toggleAssignment(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	if len(doc.Assignments) == 0 {
		s.printf("No assignments.")
		return
	}
	for i, a := range doc.Assignments {
		status := "Pending"
		if a.Completed {
			status = "Done"
		}
		s.printf("%d. %s [%s] - %s", i+1, a.Title, view.SubjectName(doc, a.SubjectID), status)
	}
	choice, ok := s.prompt("Enter number to toggle: ")
	if !ok {
		return
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(doc.Assignments) {
		s.printf("Invalid input.")
		return
	}
	assignment, err := doc.ToggleAssignment(doc.Assignments[n-1].ID)
	if err != nil {
		s.fail(err)
		return
	}
	if err := s.store.Save(ctx, doc); err != nil {
		s.fail(err)
		return
	}
	status := "Pending"
	if assignment.Completed {
		status = "Done"
	}
	s.printf("Assignment %q is now %s.", assignment.Title, status)
}

func (s *Service) dashboard(ctx context.Context) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	now := s.clock()

	classes := view.TodaysClasses(doc, now)
	if len(classes) == 0 {
		s.printf("No classes scheduled for today.")
	} else {
		s.printf("Today's classes:")
		for _, c := range classes {
			loc := ""
			if c.Slot.Location != "" {
				loc = " @ " + c.Slot.Location
			}
			s.printf("- %s %s-%s%s", c.Subject.Name, c.Slot.Start, c.Slot.End, loc)
		}
	}

	upcoming := view.UpcomingAssignments(doc, now, upcomingWindowDays)
	if len(upcoming) == 0 {
		s.printf("No upcoming assignments in the next %d days.", upcomingWindowDays)
	} else {
		s.printf("Upcoming assignments (next %d days):", upcomingWindowDays)
		for _, due := range upcoming {
			s.printf("- %s [%s] due %s", due.Assignment.Title,
				view.SubjectName(doc, due.Assignment.SubjectID),
				due.DueAt.Format(domain.DateTimeLayout))
		}
	}

	alerts := view.AttendanceAlerts(doc)
	if len(alerts) == 0 {
		s.printf("No attendance alerts. You're safe.")
	} else {
		s.printf("Attendance alerts (below %.0f%%):", view.AlertThreshold)
		for _, alert := range alerts {
			s.printf("- %s: %.1f%%", alert.Subject.Name, alert.Percent)
		}
	}
}

// exportData writes the document to a file. A .ics target exports the
// calendar feed; anything else is a verbatim JSON copy.
func (s *Service) exportData(ctx context.Context) {
	target, ok := s.prompt("Filename to export to [default export_<timestamp>.json]: ")
	if !ok {
		return
	}
	if target == "" {
		target = "export_" + s.clock().Format("20060102_150405") + ".json"
	}

	if strings.HasSuffix(strings.ToLower(target), ".ics") {
		doc, err := s.store.Load(ctx)
		if err != nil {
			s.fail(err)
			return
		}
		if err := writeFile(target, ical.Export(doc, s.clock())); err != nil {
			s.fail(err)
			return
		}
	} else if err := s.store.Export(ctx, target); err != nil {
		s.fail(err)
		return
	}
	s.printf("Exported to %s.", target)
}

func (s *Service) importData(ctx context.Context) {
	path, ok := s.prompt("Path to JSON file to import: ")
	if !ok || path == "" {
		s.printf("File not found.")
		return
	}
	if err := s.store.Import(ctx, path); err != nil {
		s.fail(err)
		return
	}
	s.printf("Imported data and backed up the previous document.")
}

func (s *Service) backupNow(ctx context.Context) {
	dest, err := s.store.Backup(ctx)
	if err != nil {
		s.fail(err)
		return
	}
	s.printf("Backup created at %s.", dest)
}

func (s *Service) initDemo(ctx context.Context) {
	doc := seed.DemoDocument(s.clock, nil)
	if err := s.store.Save(ctx, doc); err != nil {
		s.fail(err)
		return
	}
	s.printf("Demo data created.")
}

// chooseSubject lists subjects and reads a 1-based pick.
func (s *Service) chooseSubject(doc domain.Document, label string) (domain.Subject, bool) {
	if len(doc.Subjects) == 0 {
		s.printf("No subjects available. Add subjects first.")
		return domain.Subject{}, false
	}
	return s.chooseSubjectOptional(doc, label)
}

func (s *Service) chooseSubjectOptional(doc domain.Document, label string) (domain.Subject, bool) {
	s.printf("%s", label)
	for i, subject := range doc.Subjects {
		s.printf("%d. %s (%s)", i+1, subject.Name, subject.Code)
	}
	choice, ok := s.prompt("Enter number: ")
	if !ok || choice == "" {
		return domain.Subject{}, false
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(doc.Subjects) {
		s.printf("Number out of range.")
		return domain.Subject{}, false
	}
	return doc.Subjects[n-1], true
}

func (s *Service) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Service) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *Service) fail(err error) {
	s.printf("Error: %s", errors.Localize(err, s.locale))
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}

func parseYes(value string) bool {
	switch strings.ToLower(value) {
	case "", "y", "yes":
		return true
	default:
		return false
	}
}
