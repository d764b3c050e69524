package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWelcomeService_Welcome(t *testing.T) {
	s := NewWelcomeService("library-service")

	before := time.Now().UnixMilli()
	got := s.Welcome()
	after := time.Now().UnixMilli()

	assert.Equal(t, "library-service", got.ApplicationName)
	assert.Equal(t, WelcomeMessage, got.Message)
	assert.GreaterOrEqual(t, got.Timestamp, before)
	assert.LessOrEqual(t, got.Timestamp, after)
}

func TestWelcomeService_WelcomeFixedClock(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := &welcomeService{appName: "demo", now: func() time.Time { return fixed }}

	first := s.Welcome()
	second := s.Welcome()
	assert.Equal(t, first, second)
	assert.Equal(t, fixed.UnixMilli(), first.Timestamp)
}

func TestWelcomeService_IndexPage(t *testing.T) {
	got := NewWelcomeService("demo").IndexPage()

	assert.Equal(t, "demo", got.AppName)
	assert.Equal(t, IndexMessage, got.Message)
}
