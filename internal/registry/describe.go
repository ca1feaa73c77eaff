package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/vk/pixelgridgo/internal/schema"
)

// Description pairs an effect's display metadata with its built parameter
// schema. The host receives one Description per effect during the describe
// phase.
type Description struct {
	Info   Info
	Params *schema.List
}

// DescribeAll builds the parameter schema of every registered effect, in
// registration order. Build failures are collected and reported in
// aggregate, since a single pass should surface every broken table.
func (r *Registry) DescribeAll(ctx context.Context) ([]Description, error) {
	logger := ctxlog.FromContext(ctx)

	var errs []string
	descs := make([]Description, 0, len(r.order))
	for _, effectType := range r.order {
		e := r.effects[effectType]
		list, err := e.BuildParams()
		if err != nil {
			errs = append(errs, fmt.Sprintf("effect '%s': %v", effectType, err))
			continue
		}
		logger.Debug("Built parameter schema.", "effect", effectType, "params", list.Len())
		descs = append(descs, Description{Info: e.Info, Params: list})
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("schema build failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Info("All effect schemas built.", "effects", len(descs))
	return descs, nil
}
