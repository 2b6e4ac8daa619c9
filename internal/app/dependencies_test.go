package app

import (
	"context"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestNewDependenciesMemoryFallback(t *testing.T) {
	cfg := DefaultConfig()

	deps, err := NewDependencies(context.Background(), cfg, log.WithField("test", "deps"))
	if err != nil {
		t.Fatalf("NewDependencies failed: %v", err)
	}
	defer deps.Close()

	if deps.Store != nil {
		t.Error("expected nil Store for in-memory storage")
	}
	if deps.Customers == nil || deps.Categories == nil || deps.Products == nil || deps.Orders == nil {
		t.Error("all repositories must be initialized")
	}

	// Репозитории должны работать поверх одного хранилища.
	all, err := deps.Customers.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty storage, got %d customers", len(all))
	}
}

func TestDependenciesCloseIsNilSafe(t *testing.T) {
	deps := &Dependencies{Logger: log.WithField("test", "deps")}
	// Не должно паниковать без Store.
	deps.Close()
}
