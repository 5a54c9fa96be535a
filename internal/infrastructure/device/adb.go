package device

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/RanaNomiRana/AFA-backend/internal/config"
	"github.com/RanaNomiRana/AFA-backend/internal/domain/models"
	"github.com/RanaNomiRana/AFA-backend/pkg/logger"
)

// ADBProvider pulls raw record dumps from a connected Android device by
// running content queries through the adb binary.
type ADBProvider struct {
	adbPath string
	serial  string
	timeout time.Duration
	logger  *logger.Logger
}

// NewADBProvider creates a new ADBProvider. serial selects the target
// device when more than one is attached; empty means the default device.
func NewADBProvider(cfg config.DeviceConfig, log *logger.Logger) *ADBProvider {
	return &ADBProvider{
		adbPath: cfg.ADBPath,
		serial:  cfg.Serial,
		timeout: cfg.CommandTimeout,
		logger:  log.WithComponent("adb"),
	}
}

// Fetch runs a content query on the device and returns its raw stdout. The
// projection is passed as a single colon-separated column list, the form
// the content tool expects.
func (p *ADBProvider) Fetch(ctx context.Context, query models.Query) (string, error) {
	args := p.baseArgs()
	args = append(args, "shell", "content", "query", "--uri", query.URI)
	if len(query.Projection) > 0 {
		args = append(args, "--projection", strings.Join(query.Projection, ":"))
	}

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.adbPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", query.URI, err)
	}

	p.logger.Debug().Str("uri", query.URI).Int("bytes", len(output)).Msg("content query completed")
	return string(output), nil
}

// ResolveIdentifier returns the device's serial number, sanitized for use
// as a store namespace.
func (p *ADBProvider) ResolveIdentifier(ctx context.Context) (string, error) {
	args := append(p.baseArgs(), "get-serialno")

	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.adbPath, args...)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to read device serial: %w", err)
	}

	serial := SanitizeIdentifier(strings.TrimSpace(string(output)))
	if serial == "" || serial == "unknown" {
		return "", fmt.Errorf("no usable device serial (got %q)", strings.TrimSpace(string(output)))
	}
	return serial, nil
}

func (p *ADBProvider) baseArgs() []string {
	if p.serial != "" {
		return []string{"-s", p.serial}
	}
	return nil
}

func (p *ADBProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

// SanitizeIdentifier strips every character outside [A-Za-z0-9_-] from id.
// Serial numbers become safe to embed in store keys and cache keys.
func SanitizeIdentifier(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
