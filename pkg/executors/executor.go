package executors

import (
	"github.com/charmbracelet/log"

	"fabu/pkg/service"
)

type Executor struct {
	logger  *log.Logger
	service *service.Service
}

func New(logger *log.Logger, svc *service.Service) *Executor {
	return &Executor{
		logger:  logger,
		service: svc,
	}
}
