package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for gedgraph. Person IDs complete from the
file given as the first argument of query commands.

  $ source <(gedgraph completion bash)
  $ gedgraph completion zsh > "${fpath[1]}/_gedgraph"
  $ gedgraph completion fish | source
  PS> gedgraph completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completePersonIDs completes the input file as the first argument and
// person IDs, described by display name, for up to ids further arguments.
func (c *CLI) completePersonIDs(ids int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return []string{"ged", "json"}, cobra.ShellCompDirectiveFilterFileExt
		}
		if len(args) > ids {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		res, err := c.loadArtifact(cmd.Context(), args[0], buildFlags{})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		prefix := strings.TrimPrefix(toComplete, "@")
		var out []string
		for _, p := range res.Artifact.People {
			if strings.HasPrefix(p.ID, prefix) {
				out = append(out, p.ID+"\t"+p.DisplayName)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
