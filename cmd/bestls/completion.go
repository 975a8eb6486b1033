package main

import (
	"github.com/spf13/cobra"
)

func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate a shell completion script",
		Long: `Generate the completion script of bestls for the given shell.

Usage Examples:
  bestls completion bash > ~/.local/share/bash-completion/completions/bestls
  bestls completion zsh > ~/.zfunc/_bestls
  bestls completion fish > ~/.config/fish/completions/bestls.fish`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(1)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			if err := cobra.OnlyValidArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			w := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(w, true)
			case "zsh":
				return root.GenZshCompletion(w)
			case "fish":
				return root.GenFishCompletion(w, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(w)
			default:
				return newUsageError("unsupported shell %q", args[0])
			}
		},
	}
}
