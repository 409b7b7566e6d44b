package interfaces

import "nyumbanii_maintenance/internal/domain/entities"

// ISettingsProvider hands out a read-only snapshot of the landlord's automation settings.
type ISettingsProvider interface {
	CurrentConfig() entities.AutomatedWorkflowConfig
}

// ISettingsStore is the owning side of the settings: it persists a new snapshot.
type ISettingsStore interface {
	ISettingsProvider
	Save(cfg entities.AutomatedWorkflowConfig) error
}
