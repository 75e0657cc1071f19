package wire

import (
	"context"

	"github.com/xdriver/jsonwire/api"
	"github.com/xdriver/jsonwire/log"
)

// DebugExecutor is an execution strategy that wraps another executor and
// logs every command as it is dispatched and as it completes. The wrapped
// executor keeps all state; this layer only observes.
type DebugExecutor struct {
	Next   api.Executor
	Logger *log.Logger
}

var _ api.Executor = DebugExecutor{}

func (d DebugExecutor) Execute(ctx context.Context, method, path string, body, res any) error {
	d.Logger.Infof("DebugExecutor", "-> %s %s", method, path)
	err := d.Next.Execute(ctx, method, path, body, res)
	if err != nil {
		d.Logger.Errorf("DebugExecutor", "<- %s %s: %v", method, path, err)
		return err
	}
	d.Logger.Infof("DebugExecutor", "<- %s %s: ok", method, path)
	return nil
}
