package repository

import (
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
)

// ConfigRepository defines the interface for loading configuration files.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
	// LoadEnvironment reads APBA_* variables, after loading envFile when it exists.
	LoadEnvironment(envFile string) (*types.Config, error)
}
