// Package catalog loads the schedule-database JSON export into the model
// entity graph. All time and day validation happens here, upstream of the
// permutation engine.
package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/mapstructure"

	"courseplanner/internal/model"
)

// Database is one loaded schedule export: every department with its courses,
// sections and periods, wired with back-references.
type Database struct {
	Departments []*model.Department
	SchoolYear  int
	Generated   string
}

// FindCourse looks a course up by abbreviation ("CS2102") across all
// departments.
func (db *Database) FindCourse(abbreviation string) (*model.Course, bool) {
	for _, department := range db.Departments {
		for _, course := range department.Courses {
			if course.Abbreviation() == abbreviation {
				return course, true
			}
		}
	}
	return nil, false
}

type databaseNode struct {
	Departments []departmentNode
	SchoolYear  int `mapstructure:"schoolYear"`
	Generated   string
}

type departmentNode struct {
	Abbrev  string
	Name    string
	Courses []courseNode
}

type courseNode struct {
	Name        string
	Number      string
	Description string
	Sections    []sectionNode
}

type sectionNode struct {
	Number         string
	Seats          int
	AvailableSeats int    `mapstructure:"availableseats"`
	PartOfTerm     string `mapstructure:"partOfTerm"`
	Note           string
	ActualWaitlist int `mapstructure:"actual_waitlist"`
	MaxWaitlist    int `mapstructure:"max_waitlist"`
	Periods        []periodNode
}

type periodNode struct {
	Type           string
	Professor      string
	Starts         *int
	Ends           *int
	Location       string
	Days           []string
	Seats          int
	AvailableSeats int `mapstructure:"availableseats"`
	ActualWaitlist int `mapstructure:"actual_waitlist"`
	MaxWaitlist    int `mapstructure:"max_waitlist"`
}

func LoadFile(file string) (*Database, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read schedule database: %v", err)
	}
	return Load(data)
}

// Load decodes a schedule export: either a bare departments array or an
// object wrapping one under a "departments" key.
func Load(data []byte) (*Database, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("cannot parse schedule database: %v", err)
	}

	database := &Database{}
	var nodes []departmentNode

	switch raw.(type) {
	case []any:
		if err := decode(raw, &nodes); err != nil {
			return nil, fmt.Errorf("cannot decode schedule database: %v", err)
		}
	case map[string]any:
		var wrapper databaseNode
		if err := decode(raw, &wrapper); err != nil {
			return nil, fmt.Errorf("cannot decode schedule database: %v", err)
		}
		if wrapper.Departments == nil {
			return nil, fmt.Errorf("invalid schedule database: expected departments array")
		}
		nodes = wrapper.Departments
		database.SchoolYear = wrapper.SchoolYear
		database.Generated = wrapper.Generated
	default:
		return nil, fmt.Errorf("invalid schedule database: expected departments array")
	}

	for _, node := range nodes {
		department, err := readDepartmentNode(node)
		if err != nil {
			return nil, err
		}
		database.Departments = append(database.Departments, department)
	}

	return database, nil
}

// decode maps loosely-typed export JSON onto a node struct; exports are
// inconsistent about numbers-as-strings, hence the weak typing.
func decode(input any, output any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

func readDepartmentNode(node departmentNode) (*model.Department, error) {
	department := &model.Department{
		Abbreviation: node.Abbrev,
		Name:         node.Name,
	}

	for _, courseData := range node.Courses {
		course, err := readCourseNode(department, courseData)
		if err != nil {
			return nil, err
		}
		department.Courses = append(department.Courses, course)
	}

	return department, nil
}

func readCourseNode(department *model.Department, node courseNode) (*model.Course, error) {
	course := &model.Course{
		Department:  department,
		Name:        node.Name,
		Number:      node.Number,
		Description: node.Description,
	}

	for _, sectionData := range node.Sections {
		section, err := readSectionNode(course, sectionData)
		if err != nil {
			return nil, err
		}
		course.Sections = append(course.Sections, section)
	}

	return course, nil
}

func readSectionNode(course *model.Course, node sectionNode) (*model.Section, error) {
	section := &model.Section{
		Course:         course,
		Number:         node.Number,
		Seats:          node.Seats,
		SeatsAvailable: node.AvailableSeats,
		Term:           node.PartOfTerm,
		Note:           node.Note,
		ActualWaitlist: node.ActualWaitlist,
		MaxWaitlist:    node.MaxWaitlist,
	}

	for _, periodData := range node.Periods {
		period, err := readPeriodNode(section, periodData)
		if err != nil {
			return nil, err
		}
		section.Periods = append(section.Periods, period)
	}

	return section, nil
}

func readPeriodNode(section *model.Section, node periodNode) (*model.Period, error) {
	period := &model.Period{
		Section:        section,
		Type:           node.Type,
		Professor:      node.Professor,
		Location:       node.Location,
		Days:           map[model.Day]bool{},
		Seats:          node.Seats,
		SeatsAvailable: node.AvailableSeats,
		ActualWaitlist: node.ActualWaitlist,
		MaxWaitlist:    node.MaxWaitlist,
	}

	if node.Starts != nil && node.Ends != nil {
		start, err := readTime(*node.Starts)
		if err != nil {
			return nil, fmt.Errorf("section %v: %v", section.Number, err)
		}
		end, err := readTime(*node.Ends)
		if err != nil {
			return nil, fmt.Errorf("section %v: %v", section.Number, err)
		}
		period.StartTime, period.EndTime = &start, &end
	}

	// A single "UNKNOWN" entry is the export's sentinel for no day data
	if len(node.Days) == 1 && node.Days[0] == "UNKNOWN" {
		return period, nil
	}

	for _, name := range node.Days {
		day, err := model.DayByName(name)
		if err != nil {
			log.Printf("unknown day: %v", name)
			continue
		}
		period.Days[day] = true
	}

	return period, nil
}

// readTime converts an HHMM integer (1350 -> 1:50PM). Exports encode the
// twelve-o'clock hour as 0.
func readTime(value int) (model.Time, error) {
	minutes := value % 100
	hour := value / 100
	if hour == 0 {
		hour = 12
	}
	return model.NewTime(hour, minutes)
}
