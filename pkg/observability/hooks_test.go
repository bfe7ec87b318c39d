package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	p := NoopPipelineHooks{}
	p.OnScanStart(ctx, "/sys/devices")
	p.OnScanComplete(ctx, "/sys/devices", 120, time.Second, nil)
	p.OnGroupComplete(ctx, 4, time.Millisecond, nil)
	p.OnFilterComplete(ctx, 3, 5)
	p.OnRenderStart(ctx, "numa_0", []string{"svg"})
	p.OnRenderComplete(ctx, "numa_0", []string{"svg"}, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "vendor")
	c.OnCacheMiss(ctx, "device")
	c.OnCacheSet(ctx, "device", 32)

	NoopCommandHooks{}.OnCommand(ctx, "lspci", []string{"-vmm"}, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := Command().(NoopCommandHooks); !ok {
		t.Error("Command() should return NoopCommandHooks by default")
	}

	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customCommand := &testCommandHooks{}
	SetCommandHooks(customCommand)
	if Command() != customCommand {
		t.Error("SetCommandHooks should set custom hooks")
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
	if _, ok := Command().(NoopCommandHooks); !ok {
		t.Error("Reset() should restore NoopCommandHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)
	SetPipelineHooks(nil)
	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testCommandHooks struct{ NoopCommandHooks }
