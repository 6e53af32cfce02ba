package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/andrewpillar/layerlist"
)

func newParseCommand(a *app) *cobra.Command {
	var (
		in     inputFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "parse [list...]",
		Short: "Parse a layer list and print its layers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := in.inputs(a, cmd, args)

			if err != nil {
				return err
			}

			var all layerlist.List

			for _, s := range ss {
				l, err := layerlist.Parse(s)

				if err != nil {
					writeErrors(cmd.ErrOrStderr(), s, err)
					return fmt.Errorf("invalid layer list %q", s)
				}

				a.log.WithFields(logrus.Fields{
					"input":  s,
					"layers": len(l),
				}).Debug("parsed layer list")

				all = append(all, l...)
			}
			return writeList(cmd.OutOrStdout(), output, all)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func newFormatCommand(a *app) *cobra.Command {
	var in inputFlags

	cmd := &cobra.Command{
		Use:   "format [list...]",
		Short: "Print the canonical form of a layer list",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := in.inputs(a, cmd, args)

			if err != nil {
				return err
			}

			for _, s := range ss {
				l, err := layerlist.Parse(s)

				if err != nil {
					writeErrors(cmd.ErrOrStderr(), s, err)
					return fmt.Errorf("invalid layer list %q", s)
				}
				fmt.Fprintln(cmd.OutOrStdout(), layerlist.Format(l))
			}
			return nil
		},
	}

	in.register(cmd)

	return cmd
}

func newCheckCommand(a *app) *cobra.Command {
	var (
		in    inputFlags
		quiet bool
	)

	cmd := &cobra.Command{
		Use:   "check [list...]",
		Short: "Validate layer lists, reporting every error",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := in.inputs(a, cmd, args)

			if err != nil {
				return err
			}

			invalid := 0

			for _, s := range ss {
				if layerlist.Valid(s) {
					if !quiet {
						fmt.Fprintln(cmd.OutOrStdout(), "ok", s)
					}
					continue
				}

				invalid++

				_, err := layerlist.Parse(s)

				if !quiet {
					writeErrors(cmd.OutOrStdout(), s, err)
				}
				a.log.WithField("input", s).Debug("invalid layer list")
			}

			if invalid > 0 {
				return fmt.Errorf("%d invalid layer list(s)", invalid)
			}
			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report through the exit status")

	return cmd
}
