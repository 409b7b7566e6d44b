package settings

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFile = "configs/workflow.yaml"
	envPrefix   = "WORKFLOW"
)

// ViperStore owns the landlord automation settings. Readers get an immutable snapshot;
// Save and file reloads swap the snapshot atomically. WORKFLOW_* environment variables
// take precedence over the file.
type ViperStore struct {
	mu      sync.Mutex
	v       *viper.Viper
	path    string
	current atomic.Pointer[entities.AutomatedWorkflowConfig]
}

var _ interfaces.ISettingsStore = (*ViperStore)(nil)

// NewViperStore loads settings from path (DefaultFile when empty). A missing file is
// not an error: defaults apply until the first Save creates it.
func NewViperStore(path string) (*ViperStore, error) {
	if path == "" {
		path = DefaultFile
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	s := &ViperStore{v: v, path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	d := entities.DefaultWorkflowConfig()
	v.SetDefault("auto_approve_maintenance", d.AutoApproveMaintenance)
	v.SetDefault("maintenance_approval_limit", d.MaintenanceApprovalLimit)
	v.SetDefault("quote_required_threshold", d.QuoteRequiredThreshold)
	v.SetDefault("monthly_maintenance_budget", d.MonthlyMaintenanceBudget)
	v.SetDefault("budget_alerts_enabled", d.BudgetAlertsEnabled)
	v.SetDefault("budget_alert_threshold", d.BudgetAlertThreshold)
}

func (s *ViperStore) CurrentConfig() entities.AutomatedWorkflowConfig {
	return *s.current.Load()
}

func (s *ViperStore) Path() string {
	return s.path
}

// Reload re-reads the file and the environment. An invalid file keeps the previous
// snapshot.
func (s *ViperStore) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reloadLocked()
}

func (s *ViperStore) reloadLocked() error {
	if err := s.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(errors.Cause(err)) {
			return errors.Wrapf(err, "read settings %s", s.path)
		}
		log.Printf("[settings] file not found, using defaults and env path=%s", s.path)
	}

	var cfg entities.AutomatedWorkflowConfig
	if err := s.v.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "unmarshal settings")
	}
	if err := usecase.ValidateWorkflowConfig(cfg); err != nil {
		return errors.Wrapf(err, "settings %s", s.path)
	}
	s.current.Store(&cfg)
	return nil
}

// Save writes cfg to the settings file and publishes the new snapshot.
func (s *ViperStore) Save(cfg entities.AutomatedWorkflowConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshal settings")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create settings directory %s", dir)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return errors.Wrapf(err, "write settings %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "replace settings %s", s.path)
	}
	return s.reloadLocked()
}

// Watch reloads the snapshot whenever the settings file changes on disk.
func (s *ViperStore) Watch() {
	s.v.OnConfigChange(func(e fsnotify.Event) {
		if err := s.Reload(); err != nil {
			log.Printf("[settings] reload failed path=%s op=%s err=%v", e.Name, e.Op, err)
			return
		}
		cfg := s.CurrentConfig()
		log.Printf("[settings] reloaded path=%s auto_approve=%t limit=%.2f quote_threshold=%.2f",
			e.Name, cfg.AutoApproveMaintenance, cfg.MaintenanceApprovalLimit, cfg.QuoteRequiredThreshold)
	})
	s.v.WatchConfig()
}
