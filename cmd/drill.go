package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/logger"
	"github.com/abhisek/mathdrill/internal/practice"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/score"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice line by line on stdin/stdout",
	Long: `Print one problem at a time and read answers from stdin.

A wrong answer keeps the same problem; a correct one moves on at once.
Works in pipes and terminals without cursor control.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		count, _ := cmd.Flags().GetInt("count")
		if count < 0 {
			return fmt.Errorf("invalid --count %d: must be zero or positive", count)
		}

		log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		session := practice.New(problemgen.New(), practice.Options{
			Settings:     cfg.Settings(),
			AdvanceDelay: cfg.AdvanceDelay,
			Logger:       &log,
		})
		return runDrill(cmd.InOrStdin(), cmd.OutOrStdout(), session, count)
	},
}

func init() {
	drillCmd.Flags().Int("count", 0, "Number of problems to solve (0 = until EOF)")
}

// runDrill asks problems until count are solved or in is exhausted,
// then prints the final score.
func runDrill(in io.Reader, out io.Writer, session *practice.Session, count int) error {
	scanner := bufio.NewScanner(in)
	set := session.Settings()
	fmt.Fprintf(out, "%s %s: answer each problem and press Enter.\n\n",
		set.Difficulty.Label(), set.Operation.Label())

	solved := 0
	for count == 0 || solved < count {
		fmt.Fprintf(out, "%s = ", session.Current())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}

		res := session.Submit(scanner.Text())
		fmt.Fprintln(out, res.Outcome.Message())
		if res.Outcome.Kind == score.Correct {
			solved++
			// No one is waiting on a line-mode screen, so advance at once.
			session.Advance(*res.Advance)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	st := session.Score()
	fmt.Fprintf(out, "\nCorrect: %d  Incorrect: %d  Total: %d\n", st.Correct, st.Incorrect, st.Total())
	return nil
}
