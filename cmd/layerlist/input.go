package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrewpillar/layerlist"
)

// inputFlags are shared by the commands that take layer list strings.
type inputFlags struct {
	presets string
	preset  string
	env     bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.presets, "presets", "", "Preset file (.yaml, .yml or .toml)")
	flags.StringVar(&f.preset, "preset", "", "Use the named preset from the preset file as input")
	flags.BoolVar(&f.env, "env", false, "Expand ${VAR} references in the preset file")
}

func (f *inputFlags) options() []layerlist.Option {
	if f.env {
		return []layerlist.Option{layerlist.Envvars}
	}
	return nil
}

// inputs returns the layer list strings to work on. Arguments are joined
// into a single string, otherwise the named preset is used, otherwise each
// line of standard input is a separate string.
func (f *inputFlags) inputs(a *app, cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	if f.preset != "" {
		if f.presets == "" {
			return nil, errors.New("--preset requires --presets")
		}

		presets, err := layerlist.LoadPresets(f.presets, f.options()...)

		if err != nil {
			return nil, err
		}

		l, ok := presets.Lookup(f.preset)

		if !ok {
			return nil, fmt.Errorf("no such preset %q in %s", f.preset, f.presets)
		}

		a.log.WithFields(logrus.Fields{
			"file":   f.presets,
			"preset": f.preset,
			"layers": len(l),
		}).Debug("loaded preset")

		return []string{l.String()}, nil
	}

	ss := make([]string, 0)

	sc := bufio.NewScanner(cmd.InOrStdin())

	for sc.Scan() {
		ss = append(ss, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ss, nil
}
