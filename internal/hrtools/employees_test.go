package hrtools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryFixture = `{
  "EmployeeDetails": {
    "OperationTeam": [
      {"EmployeeName": "Punom Chowdhury", "Position": "Team Lead", "Email": "punom.acmeai@gmail.com", "Table": "1-A", "BloodGroup": "O+"},
      {"EmployeeName": "Rahim Uddin", "Position": "Production Officer", "Email": "rahim.acmeai@gmail.com", "Table": "1-A", "BloodGroup": "A+"},
      {"EmployeeName": "Karim Hossain", "Position": "Assistant Team Lead", "Email": "karim.acmeai@gmail.com", "Table": "1-A", "BloodGroup": "B+"},
      {"EmployeeName": "Nusrat Jahan", "Position": "Team Lead", "Email": "nusrat.acmeai@gmail.com", "Table": "2-B", "BloodGroup": "AB+"}
    ],
    "StrategicInterventions": [
      {"EmployeeName": "Sadia Islam", "Position": "Analyst", "Email": "sadia.acmeai@gmail.com", "Table": "4-A", "BloodGroup": "O-"}
    ],
    "AdditionalTeams": [],
    "ProjectCoordinators": [
      {"Name": "Md Rashed Khan Milon", "Tables": ["1-A", "1-B", "1-C"], "Email": "rashed.acmeai@gmail.com"}
    ],
    "ManagementTeamContacts": [
      {"Name": "Syed Sadhli Ahmed Roomy", "Position": "COO & Co-Founder", "Email": "roomy@acmeai.tech"}
    ]
  }
}`

func loadFixture(t *testing.T) *Directory {
	t.Helper()
	dir, err := ParseDirectory([]byte(directoryFixture))
	require.NoError(t, err)
	return dir
}

func TestFindEmployees(t *testing.T) {
	dir := loadFixture(t)

	byName := dir.FindEmployees(EmployeeFilter{Name: "punom"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Punom Chowdhury", byName[0].EmployeeName)
	assert.Equal(t, "Operation Team", byName[0].Team)

	byTable := dir.FindEmployees(EmployeeFilter{Table: "1-a"})
	assert.Len(t, byTable, 3)

	byPosition := dir.FindEmployees(EmployeeFilter{Position: "coo"})
	require.Len(t, byPosition, 1)
	assert.Equal(t, "Syed Sadhli Ahmed Roomy", byPosition[0].EmployeeName)
	assert.Equal(t, "Management", byPosition[0].Team)

	assert.Empty(t, dir.FindEmployees(EmployeeFilter{}))
	assert.Empty(t, dir.FindEmployees(EmployeeFilter{Name: "nobody"}))
}

func TestTeamMembersOrdering(t *testing.T) {
	dir := loadFixture(t)

	members := dir.TeamMembers("1-A")
	require.Len(t, members, 3)
	assert.Equal(t, "Team Lead", members[0].Position)
	assert.Equal(t, "Assistant Team Lead", members[1].Position)
	assert.Equal(t, "Production Officer", members[2].Position)

	assert.Empty(t, dir.TeamMembers("9-Z"))
}

func TestProjectCoordinatorFor(t *testing.T) {
	name, ok := ProjectCoordinatorFor("1-a")
	assert.True(t, ok)
	assert.Equal(t, "Md Rashed Khan Milon", name)

	name, ok = ProjectCoordinatorFor("2-B")
	assert.True(t, ok)
	assert.Equal(t, "Tariqul Islam Bablu", name)

	_, ok = ProjectCoordinatorFor("9-Z")
	assert.False(t, ok)
}

func TestCoordinatorEmail(t *testing.T) {
	dir := loadFixture(t)
	assert.Equal(t, "rashed.acmeai@gmail.com", dir.CoordinatorEmail("Md Rashed Khan Milon"))
	assert.Equal(t, "", dir.CoordinatorEmail("Unknown"))
}
