package api_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backend "hr-chatbot-backend/internal/api"
	"hr-chatbot-backend/internal/hrtools"
	"hr-chatbot-backend/pkg/api"
)

func newEmployeeRouter(t *testing.T) chi.Router {
	t.Helper()
	dir, err := hrtools.ParseDirectory([]byte(`{
		"EmployeeDetails": {
			"OperationTeam": [
				{"EmployeeName": "Punom Chowdhury", "Position": "Team Lead", "Email": "punom@acmeai.tech", "Table": "1-A", "BloodGroup": "O+"},
				{"EmployeeName": "Rahim Uddin", "Position": "Production Officer", "Email": "rahim@acmeai.tech", "Table": "1-A", "BloodGroup": "A+"},
				{"EmployeeName": "Karim Hossain", "Position": "Assistant Team Lead", "Email": "karim@acmeai.tech", "Table": "1-A", "BloodGroup": "B+"}
			],
			"StrategicInterventions": [],
			"AdditionalTeams": [],
			"ProjectCoordinators": [
				{"Name": "Md Rashed Khan Milon", "Tables": ["1-A", "1-B", "1-C"], "Email": "milon@acmeai.tech"}
			],
			"ManagementTeamContacts": [
				{"Name": "Syed Sadhli Ahmed Roomy", "Position": "Chief Operating Officer", "Email": "roomy@acmeai.tech"}
			]
		}
	}`))
	require.NoError(t, err)

	service := backend.NewEmployeeService(dir)
	router := chi.NewRouter()
	service.AddRoutes(router)
	return router
}

func TestSearchEmployees(t *testing.T) {
	router := newEmployeeRouter(t)

	var results []api.EmployeeInfo
	rec := doJSON(t, router, http.MethodGet, "/employees?name=punom", nil, &results)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, results, 1)
	assert.Equal(t, "Punom Chowdhury", results[0].Name)
	assert.Equal(t, "Operation Team", results[0].Team)

	// Position filter includes management contacts.
	rec = doJSON(t, router, http.MethodGet, "/employees?position=chief", nil, &results)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, results, 1)
	assert.Equal(t, "Syed Sadhli Ahmed Roomy", results[0].Name)
	assert.Equal(t, "Management", results[0].Team)

	rec = doJSON(t, router, http.MethodGet, "/employees", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTeamOrdersBySeniority(t *testing.T) {
	router := newEmployeeRouter(t)

	var team api.TeamResponse
	rec := doJSON(t, router, http.MethodGet, "/teams/1-a", nil, &team)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1-A", team.Table)
	require.Len(t, team.Members, 3)
	assert.Equal(t, "Team Lead", team.Members[0].Position)
	assert.Equal(t, "Assistant Team Lead", team.Members[1].Position)
	assert.Equal(t, "Production Officer", team.Members[2].Position)

	rec = doJSON(t, router, http.MethodGet, "/teams/9-Z", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCoordinator(t *testing.T) {
	router := newEmployeeRouter(t)

	var coord api.CoordinatorResponse
	rec := doJSON(t, router, http.MethodGet, "/coordinators/1-b", nil, &coord)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Md Rashed Khan Milon", coord.Coordinator)
	assert.Equal(t, "milon@acmeai.tech", coord.Email)

	rec = doJSON(t, router, http.MethodGet, "/coordinators/4-A", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
