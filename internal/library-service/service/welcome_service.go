package service

import (
	"time"

	"Library_Demo_Service/internal/library-service/model"
)

const (
	WelcomeMessage = "Library management system started successfully!"
	IndexMessage   = "Welcome to the library management system!"
)

type WelcomeService interface {
	Welcome() model.Welcome
	IndexPage() model.IndexPage
}

type welcomeService struct {
	appName string
	now     func() time.Time
}

func (w *welcomeService) Welcome() model.Welcome {
	return model.Welcome{
		ApplicationName: w.appName,
		Message:         WelcomeMessage,
		Timestamp:       w.now().UnixMilli(),
	}
}

func (w *welcomeService) IndexPage() model.IndexPage {
	return model.IndexPage{
		AppName: w.appName,
		Message: IndexMessage,
	}
}

func NewWelcomeService(appName string) WelcomeService {
	return &welcomeService{
		appName: appName,
		now:     time.Now,
	}
}
