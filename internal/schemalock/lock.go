package schemalock

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/vk/pixelgridgo/internal/schema"
)

// EffectParams pairs an effect type name with its built parameter list.
// The caller supplies these in the order effects were registered.
type EffectParams struct {
	Type   string
	Params *schema.List
}

// Lock is the parsed content of a lock file: per effect, the shipped
// parameter name to ID mapping.
type Lock struct {
	effects map[string]map[string]schema.ID
}

// lockFileSchema is the top-level structure of a lock file for decoding.
type lockFileSchema struct {
	Effects []*effectBlock `hcl:"effect,block"`
}

type effectBlock struct {
	Type   string        `hcl:"type,label"`
	Params []*paramBlock `hcl:"param,block"`
}

type paramBlock struct {
	Name string `hcl:"name,label"`
	ID   int64  `hcl:"id"`
}

// Load parses a lock file from disk.
func Load(ctx context.Context, path string) (*Lock, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading schema lock file.", "path", path)

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse lock file %s: %w", path, diags)
	}

	var raw lockFileSchema
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode lock file %s: %w", path, diags)
	}

	lk := &Lock{effects: make(map[string]map[string]schema.ID)}
	for _, eff := range raw.Effects {
		if _, exists := lk.effects[eff.Type]; exists {
			return nil, fmt.Errorf("lock file %s: duplicate effect block '%s'", path, eff.Type)
		}
		params := make(map[string]schema.ID, len(eff.Params))
		for _, p := range eff.Params {
			if _, exists := params[p.Name]; exists {
				return nil, fmt.Errorf("lock file %s: effect '%s' locks parameter '%s' twice", path, eff.Type, p.Name)
			}
			params[p.Name] = schema.ID(p.ID)
		}
		lk.effects[eff.Type] = params
	}

	logger.Debug("Schema lock file loaded.", "effects", len(lk.effects))
	return lk, nil
}

// Check verifies the built schemas against the lock. Every locked triple
// must still exist with the same ID; drift is collected and reported in
// aggregate. Parameters and effects absent from the lock are new and pass.
func (lk *Lock) Check(ctx context.Context, built []EffectParams) error {
	logger := ctxlog.FromContext(ctx)

	byType := make(map[string]*schema.List, len(built))
	for _, ep := range built {
		byType[ep.Type] = ep.Params
	}

	// Sorted iteration keeps the drift report stable across runs.
	effectTypes := make([]string, 0, len(lk.effects))
	for effectType := range lk.effects {
		effectTypes = append(effectTypes, effectType)
	}
	sort.Strings(effectTypes)

	var errs []string
	for _, effectType := range effectTypes {
		locked := lk.effects[effectType]
		list, ok := byType[effectType]
		if !ok {
			errs = append(errs, fmt.Sprintf("effect '%s' is locked but no longer registered", effectType))
			continue
		}

		names := make([]string, 0, len(locked))
		for name := range locked {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			id := locked[name]
			entry, ok := list.ByName(name)
			if !ok {
				errs = append(errs, fmt.Sprintf("effect '%s': locked parameter '%s' (ID %d) was removed", effectType, name, id))
				continue
			}
			if entry.ID != id {
				errs = append(errs, fmt.Sprintf("effect '%s': parameter '%s' shipped with ID %d but is now %d", effectType, name, id, entry.ID))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("schema lock check failed, persisted documents would break:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Info("Schema lock check passed.", "effects", len(lk.effects))
	return nil
}
