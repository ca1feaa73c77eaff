package schemalock

import (
	"context"
	"os"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/pixelgridgo/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Render serializes the built schemas into lock file form. Output order
// follows the input order, so writing is deterministic.
func Render(built []EffectParams) []byte {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, ep := range built {
		if i > 0 {
			root.AppendNewline()
		}
		effBody := root.AppendNewBlock("effect", []string{ep.Type}).Body()
		for _, entry := range ep.Params.Entries() {
			paramBody := effBody.AppendNewBlock("param", []string{entry.Name}).Body()
			paramBody.SetAttributeValue("id", cty.NumberIntVal(int64(entry.ID)))
		}
	}

	return f.Bytes()
}

// Save renders the built schemas and writes them to path, replacing any
// existing lock file.
func Save(ctx context.Context, path string, built []EffectParams) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.WriteFile(path, Render(built), 0o644); err != nil {
		return err
	}

	logger.Info("Schema lock file written.", "path", path, "effects", len(built))
	return nil
}
