package cmd

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ssargent/tinyprs/pkg/config"
)

func TestSystemdUnit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Archive.DataDir = "/var/lib/tinyprs"

	unit := systemdUnit(cfg, "/etc/tinyprs/config.yaml", "tinyprs", "/usr/local/bin/tinyprs")

	assert.Contains(t, unit, "User=tinyprs\nGroup=tinyprs\n")
	assert.Contains(t, unit, "ExecStart=/usr/local/bin/tinyprs serve --config /etc/tinyprs/config.yaml --log-format json\n")
	assert.Contains(t, unit, "ReadWritePaths=/var/lib/tinyprs\n")
	assert.Contains(t, unit, "ReadWritePaths=/etc/tinyprs\n")
	assert.True(t, strings.HasSuffix(unit, "WantedBy=multi-user.target\n"))
}

func TestServiceInstall_RequiresRoot(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}
	cfgPath := writeConfig(t, t.TempDir())

	res := execute(t, nil, "--config", cfgPath, "service", "install")
	if assert.Error(t, res.err) {
		assert.Contains(t, res.err.Error(), "root privileges")
	}
}
