package cli

import "github.com/spf13/cobra"

// completionShells lists the shells cobra can generate scripts for.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for slidegrid and write it to stdout.

Load it for the current session:

  $ source <(slidegrid completion bash)
  $ slidegrid completion fish | source

Or install it once:

  $ slidegrid completion bash > /etc/bash_completion.d/slidegrid
  $ slidegrid completion zsh > "${fpath[1]}/_slidegrid"
  $ slidegrid completion fish > ~/.config/fish/completions/slidegrid.fish
  PS> slidegrid completion powershell > slidegrid.ps1

Zsh needs compinit enabled ("autoload -U compinit; compinit" in ~/.zshrc).
Document arguments complete to .toml, .yaml, .yml and .json files.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "zsh":
				return root.GenZshCompletion(stdout)
			case "fish":
				return root.GenFishCompletion(stdout, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(stdout)
			default:
				return root.GenBashCompletion(stdout)
			}
		},
	}
}

// documentArgs completes the single document argument of resolve, render
// and inspect to layout files.
func documentArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"toml", "yaml", "yml", "json"}, cobra.ShellCompDirectiveFilterFileExt
}
