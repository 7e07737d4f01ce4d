package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/diillson/apba-dashboard-go/internal/domain/repository"
	"github.com/diillson/apba-dashboard-go/internal/shared/types"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Variáveis de ambiente reconhecidas
const (
	EnvLedger     = "APBA_LEDGER"
	EnvGrants     = "APBA_GRANTS"
	EnvAid        = "APBA_AID"
	EnvOtsus      = "APBA_OTSUS"
	EnvReportDir  = "APBA_REPORT_DIR"
	EnvReportName = "APBA_REPORT_NAME"
	EnvLevel      = "APBA_LEVEL"
	EnvTop        = "APBA_TOP"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := filepath.Ext(filePath)
	fileExtension = strings.ToLower(fileExtension)

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := validateRanges(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadEnvironment carrega o .env (se existir) e lê as variáveis APBA_*.
func (r *ConfigRepositoryImpl) LoadEnvironment(envFile string) (*types.Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading env file %s: %w", envFile, err)
		}
	}

	config := &types.Config{
		Ledger:     os.Getenv(EnvLedger),
		Grants:     os.Getenv(EnvGrants),
		Aid:        os.Getenv(EnvAid),
		Otsus:      os.Getenv(EnvOtsus),
		Dir:        os.Getenv(EnvReportDir),
		ReportName: os.Getenv(EnvReportName),
	}

	var err error
	if config.Level, err = envInt(EnvLevel); err != nil {
		return nil, err
	}
	if config.Top, err = envInt(EnvTop); err != nil {
		return nil, err
	}
	return config, nil
}

func envInt(key string) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
	}
	return n, nil
}

// validateRanges rejeita intervalos invertidos; sobreposições são permitidas.
func validateRanges(config *types.Config) error {
	for _, u := range config.Units {
		if u.Name == "" {
			return fmt.Errorf("unit with page range [%d, %d] has no name", u.PageStart, u.PageEnd)
		}
		if u.PageStart > u.PageEnd {
			return fmt.Errorf("unit %q has page_start %d after page_end %d", u.Name, u.PageStart, u.PageEnd)
		}
	}
	return nil
}
