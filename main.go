package main

import (
	"craftscape-character/character"
	"craftscape-character/database"
	"craftscape-character/equipment"
	"craftscape-character/equipment/slot"
	"craftscape-character/inventory"
	"craftscape-character/inventory/item"
	"craftscape-character/logger"
	"craftscape-character/modifier"
	"craftscape-character/service"
	"craftscape-character/skill"
	"craftscape-character/static"
	"craftscape-character/tracing"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/sirupsen/logrus"
)
import _ "net/http/pprof"

const serviceName = "craftscape-character"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/api/css/",
	}
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(character.Migration, equipment.Migration, inventory.Migration, item.Migration, static.Migration, skill.Migration, modifier.Migration))

	err = slot.LoadTable(l)
	if err != nil {
		l.WithError(err).Fatal("Unable to load equipment slot table.")
	}

	server.CreateService(l.(*logrus.Entry).Logger, tdm.Context(), tdm.WaitGroup(), GetServer().GetPrefix(),
		character.InitResource(GetServer())(db),
		equipment.InitResource(GetServer())(db),
		inventory.InitResource(GetServer())(db),
		item.InitResource(GetServer())(db),
		static.InitResource(GetServer())(db),
		skill.InitResource(GetServer())(db),
		modifier.InitResource(GetServer())(db))

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
