package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/quest/packages/core/parser"
	"github.com/spf13/cobra"
)

func newValidateCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the quest file without sending anything",
		Long: `Validate the quest file: YAML syntax, the file schema, duplicate quest
names, URL placeholders with no declared var and JSON bodies that do
not parse.

Examples:
  quest validate
  quest validate -f ./api.quests`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.load(cmd)
			if err != nil {
				return err
			}
			doc, err := s.document()
			if err != nil {
				return err
			}

			problems := parser.Check(doc)
			s.console(cmd).FormatProblems(s.cfg.QuestFile, problems)
			if len(problems) > 0 {
				return &exitError{
					code: ExitParseError,
					err:  fmt.Errorf("validation failed: %d problem(s) in %s", len(problems), s.cfg.QuestFile),
				}
			}
			return nil
		},
	}
}
