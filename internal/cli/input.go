package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/wrap3/pkg/wrap"
)

// ErrEmptyInput is returned when the input document has no content.
var ErrEmptyInput = errors.New("empty input")

// readInput reads the document named by the first argument, or standard
// input when no argument is given or the argument is "-".
func (app *App) readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, "", err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, "", ErrEmptyInput
	}

	format := detectFormat(app.cfg.Format, name, data)
	app.log.Debug("read input",
		zap.String("source", name),
		zap.String("format", format),
		zap.Int("bytes", len(data)))
	return data, format, nil
}

func detectFormat(configured, name string, data []byte) string {
	if configured != FormatAuto {
		return configured
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	switch bytes.TrimSpace(data)[0] {
	case '{', '[':
		return FormatJSON
	}
	return FormatYAML
}

// loadCollection reads the input document into a collection, keeping the
// key order of the source.
func (app *App) loadCollection(cmd *cobra.Command, args []string) (*wrap.Collection, error) {
	data, format, err := app.readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	c := wrap.NewCollection()
	if format == FormatJSON {
		err = json.Unmarshal(data, c)
	} else {
		err = yaml.Unmarshal(data, c)
	}
	if err != nil {
		return nil, err
	}
	app.log.Debug("loaded collection", zap.Int("size", c.Size()))
	return c, nil
}

// loadValue reads the input document into a plain Go value.
func (app *App) loadValue(cmd *cobra.Command, args []string) (any, error) {
	data, format, err := app.readInput(cmd, args)
	if err != nil {
		return nil, err
	}

	var v any
	if format == FormatJSON {
		err = json.Unmarshal(data, &v)
	} else {
		err = yaml.Unmarshal(data, &v)
	}
	return v, err
}
