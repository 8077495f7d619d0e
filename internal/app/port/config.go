package port

import "aurora_deployer/internal/domain/entity"

// SettingsProvider defines the interface for accessing the deployment settings.
type SettingsProvider interface {
	GetSettings() *entity.Settings
}
