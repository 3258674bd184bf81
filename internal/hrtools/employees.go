package hrtools

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

type Employee struct {
	EmployeeName string `json:"EmployeeName"`
	Position     string `json:"Position"`
	Email        string `json:"Email"`
	Table        string `json:"Table"`
	BloodGroup   string `json:"BloodGroup"`
}

type Coordinator struct {
	Name   string   `json:"Name"`
	Tables []string `json:"Tables"`
	Email  string   `json:"Email"`
}

type ManagementContact struct {
	Name     string `json:"Name"`
	Position string `json:"Position,omitempty"`
	Email    string `json:"Email"`
}

type EmployeeDetails struct {
	OperationTeam          []Employee          `json:"OperationTeam"`
	StrategicInterventions []Employee          `json:"StrategicInterventions"`
	AdditionalTeams        []Employee          `json:"AdditionalTeams"`
	ProjectCoordinators    []Coordinator       `json:"ProjectCoordinators"`
	ManagementTeamContacts []ManagementContact `json:"ManagementTeamContacts"`
}

// Directory is the parsed employee reference data. It is loaded once at
// startup and treated as read-only afterwards.
type Directory struct {
	EmployeeDetails EmployeeDetails `json:"EmployeeDetails"`
}

func ParseDirectory(data []byte) (*Directory, error) {
	var dir Directory
	if err := json.Unmarshal(data, &dir); err != nil {
		return nil, fmt.Errorf("could not parse employee data: %w", err)
	}
	return &dir, nil
}

type Team struct {
	Key     string // metadata key: operation, strategic, additional
	Label   string // display label
	Members []Employee
}

func (d *Directory) Teams() []Team {
	return []Team{
		{Key: "operation", Label: "Operation Team", Members: d.EmployeeDetails.OperationTeam},
		{Key: "strategic", Label: "Strategic Interventions", Members: d.EmployeeDetails.StrategicInterventions},
		{Key: "additional", Label: "Additional Teams", Members: d.EmployeeDetails.AdditionalTeams},
	}
}

type EmployeeFilter struct {
	Name     string
	Email    string
	Position string
	Table    string
}

func (f EmployeeFilter) empty() bool {
	return f.Name == "" && f.Email == "" && f.Position == "" && f.Table == ""
}

type EmployeeMatch struct {
	Employee
	Team string
}

// FindEmployees searches every team with case-insensitive substring matching
// on name, email, and position, and exact (case-insensitive) matching on
// table. Management contacts are included when filtering by position.
func (d *Directory) FindEmployees(filter EmployeeFilter) []EmployeeMatch {
	if filter.empty() {
		return nil
	}

	var results []EmployeeMatch
	for _, team := range d.Teams() {
		for _, emp := range team.Members {
			if matchesEmployee(emp, filter) {
				results = append(results, EmployeeMatch{Employee: emp, Team: team.Label})
			}
		}
	}

	if filter.Position != "" {
		for _, mgr := range d.EmployeeDetails.ManagementTeamContacts {
			if strings.Contains(strings.ToLower(mgr.Position), strings.ToLower(filter.Position)) {
				results = append(results, EmployeeMatch{
					Employee: Employee{EmployeeName: mgr.Name, Position: mgr.Position, Email: mgr.Email},
					Team:     "Management",
				})
			}
		}
	}

	return results
}

func matchesEmployee(emp Employee, filter EmployeeFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(emp.EmployeeName), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Email != "" && !strings.Contains(strings.ToLower(emp.Email), strings.ToLower(filter.Email)) {
		return false
	}
	if filter.Position != "" && !strings.Contains(strings.ToLower(emp.Position), strings.ToLower(filter.Position)) {
		return false
	}
	if filter.Table != "" && !strings.EqualFold(emp.Table, filter.Table) {
		return false
	}
	return true
}

// positionRank orders team listings by seniority within a table.
var positionRank = map[string]int{
	"Team Lead":           1,
	"Assistant Team Lead": 2,
	"Production Officer":  3,
}

// TeamMembers lists the operation-team members seated at a table, most
// senior position first.
func (d *Directory) TeamMembers(table string) []Employee {
	var members []Employee
	for _, emp := range d.EmployeeDetails.OperationTeam {
		if strings.EqualFold(emp.Table, table) {
			members = append(members, emp)
		}
	}

	sort.SliceStable(members, func(i, j int) bool {
		ri, ok := positionRank[members[i].Position]
		if !ok {
			ri = 99
		}
		rj, ok := positionRank[members[j].Position]
		if !ok {
			rj = 99
		}
		return ri < rj
	})

	return members
}

// projectCoordinators is the fixed table-to-coordinator assignment.
var projectCoordinators = map[string]string{
	"1-A": "Md Rashed Khan Milon",
	"1-B": "Md Rashed Khan Milon",
	"1-C": "Md Rashed Khan Milon",
	"2-A": "Tariqul Islam Bablu",
	"2-B": "Tariqul Islam Bablu",
	"2-C": "Tariqul Islam Bablu",
	"3-A": "Md Ramjan Islam",
	"3-B": "Md Ramjan Islam",
	"3-C": "Md Ramjan Islam",
}

func ProjectCoordinatorFor(table string) (string, bool) {
	name, ok := projectCoordinators[strings.ToUpper(table)]
	return name, ok
}

// CoordinatorEmail looks up a coordinator's email in the directory, falling
// back to empty when the coordinator record carries none.
func (d *Directory) CoordinatorEmail(name string) string {
	for _, c := range d.EmployeeDetails.ProjectCoordinators {
		if strings.EqualFold(c.Name, name) {
			return c.Email
		}
	}
	return ""
}
