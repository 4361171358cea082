package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const exampleQuests = `# Global headers, params and vars apply to every quest.
# A quest's own entries win over these, and -v/-H/-p win over both.
headers:
  - key: hello
    value: world
  - key: x-secret-key
    valueFrom:
      env: SUPER_SECRET
params:
  - key: param1
    value: value

quests:
  - name: get
    method: get
    url: https://httpbin.org/${path-param}
    vars:
      - key: path-param
        value: get
    params:
      - key: get-param
        value: value

  - name: post
    method: post
    url: https://httpbin.org/post
    json:
      quest: post
      items: [1, 2, 3]
`

const exampleEnv = `SUPER_SECRET=keepitsecretkeepissafe
`

func newInitCmd(global *globalOptions) *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example quest file",
		Long: `Write an example quest file, settings file and env file.

This creates:
  - .quests            - Example quests (or the path given with -f)
  - .env               - The secret the example reads (or the path given with -e)
  - quest.config.yaml  - Settings, in the working directory where later runs
                         find it; it records the quest and env file paths

Examples:
  quest init
  quest init -f ./api.quests --force`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.load(cmd)
			if err != nil {
				return err
			}

			questFile := s.cfg.QuestFile
			configFile := "quest.config.yaml"
			envFile := s.cfg.EnvFile

			if !force {
				for _, f := range []string{questFile, configFile, envFile} {
					if _, err := os.Stat(f); err == nil {
						return usageError(fmt.Errorf("file already exists: %s (use --force to overwrite)", f))
					}
				}
			}

			settings := map[string]any{
				"file":             questFile,
				"env_file":         envFile,
				"timeout":          s.cfg.Timeout,
				"follow_redirects": s.cfg.GetFollowRedirects(),
				"max_redirects":    s.cfg.MaxRedirects,
				"insecure":         s.cfg.GetInsecure(),
				"gzip":             s.cfg.GetGzip(),
				"deflate":          s.cfg.GetDeflate(),
				"brotli":           s.cfg.GetBrotli(),
			}
			settingsYAML, err := yaml.Marshal(settings)
			if err != nil {
				return err
			}

			files := []struct {
				path    string
				content []byte
				mode    os.FileMode
			}{
				{questFile, []byte(exampleQuests), 0644},
				{configFile, settingsYAML, 0644},
				{envFile, []byte(exampleEnv), 0600},
			}
			for _, f := range files {
				if err := os.WriteFile(f.path, f.content, f.mode); err != nil {
					return fmt.Errorf("failed to create %s: %w", f.path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", f.path)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nRun 'quest ls' to see the example quests, then 'quest go get'.\n")
			return nil
		},
	}

	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return initCmd
}
