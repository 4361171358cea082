package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(global *globalOptions) *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the quests in the quest file",
		Long: `List every quest with its method and the vars its URL can use.

Examples:
  quest ls
  quest ls -f ./api.quests
  quest ls -o json`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.load(cmd)
			if err != nil {
				return err
			}
			f, err := s.formatter(cmd, format)
			if err != nil {
				return err
			}
			doc, err := s.document()
			if err != nil {
				return err
			}
			f.FormatQuests(s.cfg.QuestFile, doc)
			return nil
		},
	}

	listCmd.Flags().StringVarP(&format, "output", "o", "console", "Output format: console, json")
	return listCmd
}
