package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/markusressel/fanplate/internal/control"
	"github.com/qdm12/reprint"
)

type ControllerDto struct {
	Statistics     control.Statistics         `json:"statistics"`
	Mappings       map[int]control.RampPolicy `json:"mappings"`
	DegradeCommand *int                       `json:"degradeCommand,omitempty"`
}

func registerControllerEndpoints(rest *echo.Echo) {
	group := rest.Group("/controller")

	group.GET("/", getControllers)
	group.GET("/:"+urlParamId+"/", getController)
}

// returns the current state of all running controllers
func getControllers(c echo.Context) error {
	data := map[string]ControllerDto{}
	for id, contr := range control.ControllerMap.Items() {
		data[id] = newControllerDto(contr)
	}
	return c.JSONPretty(http.StatusOK, reprint.This(data), indentationChar)
}

func getController(c echo.Context) error {
	id := c.Param(urlParamId)

	contr, exists := control.ControllerMap.Get(id)
	if !exists {
		return returnNotFound(c, id)
	} else {
		return c.JSONPretty(http.StatusOK, reprint.This(newControllerDto(contr)), indentationChar)
	}
}

func newControllerDto(contr *control.Controller) ControllerDto {
	resolver := contr.GetResolver()

	mappings := map[int]control.RampPolicy{}
	for _, command := range resolver.Commands() {
		policy, _ := resolver.Policy(command)
		mappings[command] = policy
	}

	dto := ControllerDto{
		Statistics: contr.GetStatistics(),
		Mappings:   mappings,
	}
	if command, enabled := resolver.DegradeCommand(); enabled {
		dto.DegradeCommand = &command
	}
	return dto
}
