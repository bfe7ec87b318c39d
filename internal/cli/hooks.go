package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pcietopo/pkg/observability"
)

// logHooks reports observability events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

// InstallHooks routes pipeline, cache and command events to the CLI logger.
func (c *CLI) InstallHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
	observability.SetCommandHooks(h)
}

func (h *logHooks) OnScanStart(_ context.Context, root string) {
	h.logger.Debug("scan started", "root", root)
}

func (h *logHooks) OnScanComplete(_ context.Context, root string, nodes int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("scan failed", "root", root, "duration", d, "err", err)
		return
	}
	h.logger.Debug("scan finished", "root", root, "nodes", nodes, "duration", d)
}

func (h *logHooks) OnGroupComplete(_ context.Context, added int, d time.Duration, err error) {
	h.logger.Debug("grouping finished", "synthetic", added, "duration", d, "err", err)
}

func (h *logHooks) OnFilterComplete(_ context.Context, kept, dropped int) {
	h.logger.Debug("filter finished", "kept", kept, "dropped", dropped)
}

func (h *logHooks) OnRenderStart(_ context.Context, partition string, formats []string) {
	h.logger.Debug("render started", "partition", partition, "formats", strings.Join(formats, ","))
}

func (h *logHooks) OnRenderComplete(_ context.Context, partition string, _ []string, d time.Duration, err error) {
	h.logger.Debug("render finished", "partition", partition, "duration", d, "err", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, kind string) {
	h.logger.Debug("name cache hit", "kind", kind)
}

func (h *logHooks) OnCacheMiss(_ context.Context, kind string) {
	h.logger.Debug("name cache miss", "kind", kind)
}

func (h *logHooks) OnCacheSet(_ context.Context, kind string, size int) {
	h.logger.Debug("name cached", "kind", kind, "bytes", size)
}

func (h *logHooks) OnCommand(_ context.Context, name string, args []string, d time.Duration, err error) {
	h.logger.Debug("ran command", "cmd", name+" "+strings.Join(args, " "), "duration", d, "err", err)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
	_ observability.CommandHooks  = (*logHooks)(nil)
)
