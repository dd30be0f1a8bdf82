package delivery

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (s *HandlerSuite) TestCorrespondenceRoutes() {
	id := itoa(s.createChild())

	status, env := s.doJSON(http.MethodPost, "/child/"+id+"/correspondence",
		`{"correspondence_type":"card","subject":"Christmas","date_sent":"2023-12-20"}`, s.staffToken)
	s.Require().Equal(fiber.StatusCreated, status, env.Message)
	s.Equal("Card", env.Data.(map[string]interface{})["correspondence_type"])
	letterID := itoa(uint(env.Data.(map[string]interface{})["id"].(float64)))

	status, env = s.doJSON(http.MethodPost, "/child/"+id+"/correspondence", `{"subject":""}`, s.staffToken)
	s.Equal(fiber.StatusBadRequest, status)
	s.False(env.Success)

	status, env = s.doJSON(http.MethodGet, "/child/"+id+"/correspondence", "", s.staffToken)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(env.Data, 1)

	status, env = s.doJSON(http.MethodGet, "/child/"+id, "", s.staffToken)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(env.Data.(map[string]interface{})["correspondence"], 1)

	status, _ = s.doJSON(http.MethodGet, "/child/404/correspondence", "", s.staffToken)
	s.Equal(fiber.StatusNotFound, status)

	status, _ = s.doJSON(http.MethodDelete, "/child/correspondence/"+letterID, "", s.staffToken)
	s.Equal(fiber.StatusOK, status)
	status, _ = s.doJSON(http.MethodDelete, "/child/correspondence/"+letterID, "", s.staffToken)
	s.Equal(fiber.StatusNotFound, status)
}

func (s *HandlerSuite) TestIncidentRoutesRecordReporter() {
	id := itoa(s.createChild())

	status, env := s.doJSON(http.MethodPost, "/child/"+id+"/incident",
		`{"incident_date":"2024-03-04","location":"Dormitory","description":"Lost her shoes"}`, s.staffToken)
	s.Require().Equal(fiber.StatusCreated, status, env.Message)
	incident := env.Data.(map[string]interface{})
	s.Equal("staffer", incident["reported_by"])
	incidentID := itoa(uint(incident["id"].(float64)))

	status, env = s.doJSON(http.MethodGet, "/child/"+id+"/incident", "", s.staffToken)
	s.Require().Equal(fiber.StatusOK, status)
	s.Len(env.Data, 1)

	status, _ = s.doJSON(http.MethodPost, "/child/404/incident",
		`{"incident_date":"2024-03-04","description":"Nobody"}`, s.staffToken)
	s.Equal(fiber.StatusNotFound, status)

	status, _ = s.doJSON(http.MethodDelete, "/child/incident/abc", "", s.staffToken)
	s.Equal(fiber.StatusBadRequest, status)
	status, _ = s.doJSON(http.MethodDelete, "/child/incident/"+incidentID, "", s.staffToken)
	s.Equal(fiber.StatusOK, status)

	status, _ = s.doJSON(http.MethodGet, "/child/"+id+"/incident", "", "")
	s.Equal(fiber.StatusUnauthorized, status)
}
