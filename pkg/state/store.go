package state

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/mineflake/pkg/errors"
	"github.com/arthur-debert/mineflake/pkg/filesystem"
	"github.com/arthur-debert/mineflake/pkg/logging"
	"github.com/arthur-debert/mineflake/pkg/paths"
	toml "github.com/pelletier/go-toml/v2"
)

// formatVersion is written into every state file.
const formatVersion = 1

// stateFile is the on-disk form of a ServerState.
type stateFile struct {
	Version int      `toml:"version"`
	Paths   []string `toml:"paths"`
}

// Store persists server state inside a server directory.
type Store struct {
	fs   filesystem.FS
	path string
}

// NewStore returns a store for the server directory root.
func NewStore(fs filesystem.FS, root string) *Store {
	return &Store{fs: fs, path: paths.StatePath(root)}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the previously saved state. A missing state file yields an
// empty state, which is what the first run of a directory sees.
func (s *Store) Load() (*ServerState, error) {
	logger := logging.GetLogger("state.store").With().Str("path", s.path).Logger()

	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Msg("no previous state")
			return New(), nil
		}
		return nil, errors.Wrap(err, errors.ErrStateLoad, "failed to read state").
			WithDetail("path", s.path)
	}

	var file stateFile
	if err := toml.Unmarshal(data, &file); err != nil {
		parseErr := errors.Wrap(err, errors.ErrParse, "invalid state file")
		return nil, errors.Wrap(parseErr, errors.ErrStateLoad, "failed to load state").
			WithDetail("path", s.path)
	}

	logger.Debug().Int("paths", len(file.Paths)).Msg("loaded previous state")
	return New(file.Paths...), nil
}

// Save writes st, replacing any previous state. The file is written next to
// its final location and renamed into place.
func (s *Store) Save(st *ServerState) error {
	data, err := toml.Marshal(stateFile{Version: formatVersion, Paths: st.Paths()})
	if err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to encode state")
	}

	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to create state directory").
			WithDetail("path", s.path)
	}

	tmp := s.path + ".tmp"
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to write state").
			WithDetail("path", tmp)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, errors.ErrStateSave, "failed to replace state").
			WithDetail("path", s.path)
	}

	logger := logging.GetLogger("state.store")
	logger.Debug().
		Str("path", s.path).
		Int("paths", st.Len()).
		Msg("saved state")
	return nil
}
