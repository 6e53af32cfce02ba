package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/andrewpillar/layerlist"
)

func newPresetsCommand(a *app) *cobra.Command {
	var env bool

	cmd := &cobra.Command{
		Use:   "presets <file>",
		Short: "List the presets in a preset file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []layerlist.Option

			if env {
				opts = append(opts, layerlist.Envvars)
			}

			presets, err := layerlist.LoadPresets(args[0], opts...)

			if err != nil {
				return err
			}

			a.log.WithField("file", args[0]).Debugf("loaded %d preset(s)", len(presets))

			for _, name := range presets.Names() {
				l, _ := presets.Lookup(name)

				fmt.Fprintln(cmd.OutOrStdout(), lipgloss.NewStyle().Width(nameWidth).Render(name)+l.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&env, "env", false, "Expand ${VAR} references in the preset file")

	return cmd
}
