package operations

import (
	"path/filepath"

	"github.com/arthur-debert/mineflake/pkg/document"
	"github.com/arthur-debert/mineflake/pkg/envsubst"
	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/paths"
	"github.com/arthur-debert/mineflake/pkg/state"
)

// Executor applies operations to a server directory.
type Executor struct {
	fs     filesystem.FS
	env    map[string]string
	dryRun bool
}

// NewExecutor creates an executor. env is the snapshot used to substitute
// placeholders in Raw content. In dry-run mode destinations are resolved
// and recorded but nothing is written.
func NewExecutor(fs filesystem.FS, env map[string]string, dryRun bool) *Executor {
	return &Executor{
		fs:     fs,
		env:    env,
		dryRun: dryRun,
	}
}

// Materialize applies ops in order under root and returns the state of the
// run: every resolved destination, in operation order.
// The first failing operation aborts the run; files written by earlier
// operations are left in place.
func (e *Executor) Materialize(root string, ops []Operation) (*state.ServerState, error) {
	logger := logging.GetLogger("operations.executor").With().
		Str("root", root).
		Int("operation_count", len(ops)).
		Bool("dry_run", e.dryRun).
		Logger()
	done := logging.LogOperationStart(logger, "materialize")
	defer done()

	current := state.New()
	for i, op := range ops {
		dest, err := paths.ResolveDestination(root, op.Destination())
		if err != nil {
			return current, errors.Wrapf(err, errors.ErrInvalidInput,
				"operation %d has an invalid destination", i).
				WithDetail("kind", op.Kind().String())
		}

		logger.Debug().
			Str("kind", op.Kind().String()).
			Str("destination", dest).
			Msg(Describe(op))

		current.Add(dest)
		if e.dryRun {
			continue
		}

		if err := e.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return current, errors.Wrapf(err, errors.ErrIO,
				"failed to create parent directory for %s", dest).
				WithDetail("destination", dest).
				WithDetail("kind", op.Kind().String())
		}

		if err := e.execute(op, dest); err != nil {
			logger.Error().Err(err).Str("destination", dest).Msg("operation failed")
			return current, err
		}
	}

	logger.Info().Int("paths", current.Len()).Msg("materialized server directory")
	return current, nil
}

// execute runs a single operation against its resolved destination.
func (e *Executor) execute(op Operation, dest string) error {
	switch o := op.(type) {
	case Copy:
		return e.copyFile(o.Mapping.Source(), dest)
	case Raw:
		return e.writeFile(dest, []byte(envsubst.Substitute(o.Content, e.env)), op.Kind())
	case MergeJSON:
		return e.mergeFile(dest, o.Fragment, op.Kind(), document.ParseJSON, document.EncodeJSON)
	case MergeYAML:
		return e.mergeFile(dest, o.Fragment, op.Kind(), document.ParseYAML, document.EncodeYAML)
	default:
		return errors.Newf(errors.ErrInternal, "unsupported operation %T", op).
			WithDetail("destination", dest)
	}
}

// copyFile copies source to dest and clears the read-only bit on dest so
// the next run can overwrite it.
func (e *Executor) copyFile(source, dest string) error {
	info, err := e.fs.Stat(source)
	if err != nil {
		return ioError(err, "failed to stat copy source", dest, KindCopy).
			WithDetail("source", source)
	}

	data, err := e.fs.ReadFile(source)
	if err != nil {
		return ioError(err, "failed to read copy source", dest, KindCopy).
			WithDetail("source", source)
	}

	if err := e.fs.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return ioError(err, "failed to write copy destination", dest, KindCopy).
			WithDetail("source", source)
	}

	written, err := e.fs.Stat(dest)
	if err != nil {
		return ioError(err, "failed to stat copy destination", dest, KindCopy)
	}
	if err := e.fs.Chmod(dest, written.Mode().Perm()|0200); err != nil {
		return ioError(err, "failed to make copy destination writable", dest, KindCopy)
	}
	return nil
}

func (e *Executor) writeFile(dest string, data []byte, kind Kind) error {
	if err := e.fs.WriteFile(dest, data, 0644); err != nil {
		return ioError(err, "failed to write file", dest, kind)
	}
	return nil
}

// mergeFile reads dest, merges fragment into it and writes it back.
// dest must already exist.
func (e *Executor) mergeFile(
	dest string,
	fragment any,
	kind Kind,
	parse func([]byte) (any, error),
	encode func(any) ([]byte, error),
) error {
	data, err := e.fs.ReadFile(dest)
	if err != nil {
		return ioError(err, "failed to read merge target", dest, kind)
	}

	existing, err := parse(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrParse, "failed to parse %s", dest).
			WithDetail("destination", dest).
			WithDetail("kind", kind.String())
	}

	merged := document.Merge(existing, document.Normalize(fragment))

	out, err := encode(merged)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to encode %s", dest).
			WithDetail("destination", dest).
			WithDetail("kind", kind.String())
	}

	return e.writeFile(dest, out, kind)
}

func ioError(err error, message, dest string, kind Kind) *errors.MineflakeError {
	return errors.Wrap(err, errors.ErrIO, message).
		WithDetail("destination", dest).
		WithDetail("kind", kind.String())
}
