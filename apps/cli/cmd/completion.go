package cmd

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for envkit.

To load completions:

Bash:
  $ source <(envkit completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ envkit completion bash > /etc/bash_completion.d/envkit
  # macOS:
  $ envkit completion bash > $(brew --prefix)/etc/bash_completion.d/envkit

Zsh:
  $ envkit completion zsh > "${fpath[1]}/_envkit"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ envkit completion fish | source

PowerShell:
  PS> envkit completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		// Completion skips config loading and env preloading.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
