package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/wrap3/pkg/wrap"
)

// ErrNoValue is returned by at when the index addresses no entry.
var ErrNoValue = errors.New("no value at index")

func visualizeCmd(app *App) *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "visualize [FILE]",
		Short: "Print the debug rendering of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args)
			if err != nil {
				return err
			}
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), c.VisualizeShort())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.Visualize())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the kind and size")
	return cmd
}

func jsonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "json [FILE]",
		Short: "Convert a document to JSON keeping key order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args)
			if err != nil {
				return err
			}
			return app.printJSON(cmd, c)
		},
	}
}

func yamlCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "yaml [FILE]",
		Short: "Convert a document to YAML keeping key order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			if app.cfg.Indent > 0 {
				enc.SetIndent(app.cfg.Indent)
			}
			if err := enc.Encode(c); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func flattenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [FILE]",
		Short: "Print every leaf of a document as a JSON list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args)
			if err != nil {
				return err
			}
			return app.printJSON(cmd, c.Flatten())
		},
	}
}

func keysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keys [FILE]",
		Short: "Print the top level keys of a document, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args)
			if err != nil {
				return err
			}
			for k := range c.All() {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
}

func searchCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search NEEDLE [FILE]",
		Short: "Print the key path to the first leaf equal to NEEDLE",
		Long: "Print the key path to the first leaf equal to NEEDLE as a JSON list.\n" +
			"NEEDLE is read as null, a boolean, a number or else a string.\n" +
			"The list is empty when nothing matches.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.loadCollection(cmd, args[1:])
			if err != nil {
				return err
			}

			needle := parseNeedle(args[0])
			path := c.SearchRecursive(needle, app.cfg.MinDepth, app.cfg.Strict)
			app.log.Info("search finished",
				zap.Any("needle", needle),
				zap.Int("min_depth", app.cfg.MinDepth),
				zap.Bool("strict", app.cfg.Strict),
				zap.Int("path_length", len(path)))

			keys := wrap.NewCollection()
			for _, k := range path {
				keys.Push(k.Raw())
			}
			return app.printJSON(cmd, keys)
		},
	}
	flags := cmd.Flags()
	flags.Bool("strict", false, "compare Go types as well as values")
	flags.Int("min-depth", 0, "skip leaves shallower than this depth")
	bindFlag(app.v, "strict", flags.Lookup("strict"))
	bindFlag(app.v, "min_depth", flags.Lookup("min-depth"))
	return cmd
}

func atCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "at INDEX [FILE]",
		Short: "Print the top level value at a position as JSON",
		Long:  "Print the top level value at a position as JSON. Negative positions count from the end.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			c, err := app.loadCollection(cmd, args[1:])
			if err != nil {
				return err
			}

			v, ok := c.At(index)
			if !ok {
				return fmt.Errorf("%w: %d", ErrNoValue, index)
			}
			w, err := wrap.WrapRaw(v)
			if err != nil {
				return err
			}
			if nested, ok := w.(*wrap.Collection); ok {
				return app.printJSON(cmd, nested)
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.ToJSON())
			return nil
		},
	}
}

func kindCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "kind [FILE]",
		Short: "Print the wrapper kind of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.loadValue(cmd, args)
			if err != nil {
				return err
			}
			w, err := wrap.Wrap(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), w.Kind())
			return nil
		},
	}
}

func (app *App) printJSON(cmd *cobra.Command, c *wrap.Collection) error {
	out := c.ToJSON().String()
	if app.cfg.Indent <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(out), "", strings.Repeat(" ", app.cfg.Indent)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), buf.String())
	return nil
}

// parseNeedle reads a command line value the way a JSON or YAML scalar
// would be read.
func parseNeedle(s string) any {
	switch s {
	case "null", "~":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
