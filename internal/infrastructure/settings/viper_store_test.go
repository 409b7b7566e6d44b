package settings

import (
	"os"
	"path/filepath"
	"testing"

	"nyumbanii_maintenance/internal/domain/entities"
)

func TestViperStore(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workflow.yaml")
		s, err := NewViperStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.CurrentConfig(); got != entities.DefaultWorkflowConfig() {
			t.Fatalf("expected defaults, got %+v", got)
		}
	})

	t.Run("reads the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workflow.yaml")
		content := "auto_approve_maintenance: true\nmaintenance_approval_limit: 2500\nquote_required_threshold: 0\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}

		s, err := NewViperStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := s.CurrentConfig()
		if !got.AutoApproveMaintenance || got.MaintenanceApprovalLimit != 2500 || got.QuoteRequiredThreshold != 0 {
			t.Fatalf("unexpected config: %+v", got)
		}
		if got.MonthlyMaintenanceBudget != 50000 {
			t.Fatalf("unset keys keep their defaults, got %+v", got)
		}
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		t.Setenv("WORKFLOW_MONTHLY_MAINTENANCE_BUDGET", "75000")
		s, err := NewViperStore(filepath.Join(t.TempDir(), "workflow.yaml"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := s.CurrentConfig().MonthlyMaintenanceBudget; got != 75000 {
			t.Fatalf("expected env value, got %v", got)
		}
	})

	t.Run("invalid file is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "workflow.yaml")
		if err := os.WriteFile(path, []byte("budget_alert_threshold: 3\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := NewViperStore(path); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("save persists and swaps the snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "workflow.yaml")
		s, err := NewViperStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		before := s.CurrentConfig()

		next := entities.DefaultWorkflowConfig()
		next.AutoApproveMaintenance = true
		next.MaintenanceApprovalLimit = 8000
		if err := s.Save(next); err != nil {
			t.Fatalf("save: %v", err)
		}
		if got := s.CurrentConfig(); got != next {
			t.Fatalf("expected saved snapshot, got %+v", got)
		}
		if before.AutoApproveMaintenance {
			t.Fatalf("earlier snapshot must not change")
		}

		reopened, err := NewViperStore(path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if got := reopened.CurrentConfig(); got != next {
			t.Fatalf("expected persisted config, got %+v", got)
		}
	})
}
