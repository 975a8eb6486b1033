package main

import (
	"fmt"

	"github.com/desertwitch/bestls/internal/theme"
	"github.com/spf13/cobra"
)

func newThemeCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Manage the theme configuration file",
		Args:  noArgs,
	}

	cmd.AddCommand(newThemeInitCommand(app))
	cmd.AddCommand(newThemePathCommand(app))
	cmd.AddCommand(newThemeResetCommand(app))

	return cmd
}

func themeStore(app *App) (*theme.Store, error) {
	path, err := app.ThemePath()
	if err != nil {
		return nil, err
	}

	return theme.NewStore(path), nil
}

func newThemeInitCommand(app *App) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the theme configuration file with the sample theme",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := themeStore(app)
			if err != nil {
				return err
			}

			created, err := store.Init()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if created {
				fmt.Fprintf(w, "Created theme configuration at %s\n", store.Path)
			} else {
				fmt.Fprintf(w, "Theme configuration already exists at %s\n", store.Path)
			}

			if show {
				data, err := store.Read()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\n%s", data)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the configuration file afterwards")

	return cmd
}

func newThemePathCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the location of the theme configuration file",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := app.ThemePath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

func newThemeResetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Overwrite the theme configuration file with the sample theme",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := themeStore(app)
			if err != nil {
				return err
			}

			if err := store.Reset(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset theme configuration at %s\n", store.Path)

			return nil
		},
	}
}
