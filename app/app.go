package app

import (
	"github.com/Jrmarques7/ISABELA-TCC/config"
	"github.com/Jrmarques7/ISABELA-TCC/database"
)

type App struct {
	database.Store
	config.Config
}
