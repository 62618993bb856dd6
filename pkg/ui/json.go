package ui

import (
	"io"

	"github.com/arthur-debert/mineflake/pkg/core"
	"github.com/arthur-debert/mineflake/pkg/document"
	"github.com/arthur-debert/mineflake/pkg/errors"
)

// jsonRenderer writes one JSON object per call.
type jsonRenderer struct {
	w io.Writer
}

func (j *jsonRenderer) RenderApplyResult(result *core.ApplyResult) error {
	return j.write(map[string]any{
		"directory": result.Directory,
		"server":    result.Server,
		"written":   document.Normalize(result.Written),
		"removed":   document.Normalize(result.Removed),
		"dry_run":   result.DryRun,
	})
}

func (j *jsonRenderer) RenderError(err error) error {
	out := map[string]any{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	if details := errors.GetErrorDetails(err); len(details) > 0 {
		out["details"] = document.Normalize(details)
	}
	return j.write(out)
}

func (j *jsonRenderer) RenderMessage(msg string) error {
	return j.write(map[string]any{"message": msg})
}

func (j *jsonRenderer) write(v map[string]any) error {
	data, err := document.EncodeJSON(v)
	if err != nil {
		return err
	}
	_, err = j.w.Write(data)
	return err
}
