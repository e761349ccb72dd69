package initcmd

import (
	"fmt"
	"os"
)

// BackupConfig copies an existing config to <path>.bak before it is
// overwritten. It returns "" when there was nothing to back up.
func BackupConfig(configPath string) (string, error) {
	content, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read existing config: %w", err)
	}

	backupPath := configPath + ".bak"
	if err := os.WriteFile(backupPath, content, 0o644); err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}

	return backupPath, nil
}

// ConfigExists checks if a config file exists at the given path.
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return err == nil
}
