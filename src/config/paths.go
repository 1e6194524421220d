package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// StatePaths contains per-user state file locations.
type StatePaths struct {
	AuditDBPath string
	HistoryPath string
}

// DefaultStatePaths returns state locations under XDG_STATE_HOME.
func DefaultStatePaths() StatePaths {
	return StatePaths{
		AuditDBPath: filepath.Join(xdg.StateHome, "kube-agent", "audit.db"),
		HistoryPath: filepath.Join(xdg.StateHome, "kube-agent", "history"),
	}
}
