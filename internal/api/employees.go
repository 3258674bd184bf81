package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hr-chatbot-backend/internal/hrtools"
	"hr-chatbot-backend/pkg/api"
)

// EmployeeService exposes directory lookups that the chatbot also answers,
// for clients that want structured data instead of prose.
type EmployeeService struct {
	directory *hrtools.Directory
}

func NewEmployeeService(directory *hrtools.Directory) *EmployeeService {
	return &EmployeeService{directory: directory}
}

func (s *EmployeeService) AddRoutes(r chi.Router) {
	r.Get("/employees", RestHandler(s.SearchEmployees))
	r.Get("/teams/{table}", RestHandler(s.GetTeam))
	r.Get("/coordinators/{table}", RestHandler(s.GetCoordinator))
}

func (s *EmployeeService) SearchEmployees(r *http.Request) (any, error) {
	query, err := ParseRequestQueryParams[api.EmployeeQuery](r)
	if err != nil {
		return nil, err
	}
	if query.Name == "" && query.Email == "" && query.Position == "" && query.Table == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "at least one of name, email, position, or table is required")
	}

	matches := s.directory.FindEmployees(hrtools.EmployeeFilter{
		Name:     query.Name,
		Email:    query.Email,
		Position: query.Position,
		Table:    query.Table,
	})

	results := make([]api.EmployeeInfo, len(matches))
	for i, m := range matches {
		results[i] = api.EmployeeInfo{
			Name:       m.EmployeeName,
			Position:   m.Position,
			Email:      m.Email,
			Table:      m.Table,
			BloodGroup: m.BloodGroup,
			Team:       m.Team,
		}
	}
	return results, nil
}

func (s *EmployeeService) GetTeam(r *http.Request) (any, error) {
	table := strings.ToUpper(chi.URLParam(r, "table"))
	if table == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "missing {table} url parameter")
	}

	members := s.directory.TeamMembers(table)
	if len(members) == 0 {
		return nil, CodedErrorf(http.StatusNotFound, "no team members found for table %s", table)
	}

	out := make([]api.EmployeeInfo, len(members))
	for i, m := range members {
		out[i] = api.EmployeeInfo{
			Name:       m.EmployeeName,
			Position:   m.Position,
			Email:      m.Email,
			Table:      m.Table,
			BloodGroup: m.BloodGroup,
		}
	}
	return api.TeamResponse{Table: table, Members: out}, nil
}

func (s *EmployeeService) GetCoordinator(r *http.Request) (any, error) {
	table := strings.ToUpper(chi.URLParam(r, "table"))
	if table == "" {
		return nil, CodedErrorf(http.StatusBadRequest, "missing {table} url parameter")
	}

	name, ok := hrtools.ProjectCoordinatorFor(table)
	if !ok {
		return nil, CodedErrorf(http.StatusNotFound, "no coordinator assigned to table %s", table)
	}

	return api.CoordinatorResponse{
		Table:       table,
		Coordinator: name,
		Email:       s.directory.CoordinatorEmail(name),
	}, nil
}
