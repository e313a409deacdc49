package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/zerohall/internal/journey"
	"github.com/abhisek/zerohall/internal/quiz"
	"github.com/abhisek/zerohall/internal/reflection"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Take the gift quiz without opening the hall",
	Example: `  zerohall quiz
  zerohall quiz --answers 0,1,0,1 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		raw, _ := cmd.Flags().GetString("answers")
		asJSON, _ := cmd.Flags().GetBool("json")
		record, _ := cmd.Flags().GetBool("record")
		reflect, _ := cmd.Flags().GetBool("reflect")

		var answers []int
		var err error
		if raw != "" {
			answers, err = parseAnswers(raw)
		} else {
			answers, err = promptAnswers(os.Stdin, os.Stdout)
		}
		if err != nil {
			return err
		}

		engine := quiz.NewEngine(logger)
		if record {
			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			rec := journey.NewRecorder(st.EventRepo(), logger)
			defer rec.Close()
			engine.OnResult(rec.QuizCompleted)
		}

		res, err := runQuiz(engine, answers)
		if err != nil {
			return err
		}

		var ref *reflection.Reflection
		if reflect {
			ref, err = reflectOn(ctx, res)
			if err != nil {
				fmt.Fprintln(os.Stderr, "reflection unavailable:", err)
			}
		}

		if asJSON {
			return writeJSON(quizOutput{Answers: answers, Result: res, Reflection: ref})
		}
		printResult(res, ref)
		return nil
	},
}

type quizOutput struct {
	Answers    []int                  `json:"answers"`
	Result     *quiz.Result           `json:"result"`
	Reflection *reflection.Reflection `json:"reflection,omitempty"`
}

// parseAnswers reads a comma-separated list of option indices.
func parseAnswers(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	answers := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		answers = append(answers, n)
	}
	if len(answers) != quiz.QuestionCount {
		return nil, fmt.Errorf("need %d answers, got %d", quiz.QuestionCount, len(answers))
	}
	return answers, quiz.Validate(answers)
}

// promptAnswers asks each question on out and reads A/B (or 1/2) from in.
func promptAnswers(in io.Reader, out io.Writer) ([]int, error) {
	sc := bufio.NewScanner(in)
	answers := make([]int, 0, quiz.QuestionCount)
	for _, q := range quiz.Questions() {
		fmt.Fprintf(out, "\n%s %s\n  A) %s\n  B) %s\n", q.Line1, q.Line2, q.Options[0], q.Options[1])
		for {
			fmt.Fprint(out, "> ")
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("read answer: %w", err)
				}
				return nil, errors.New("quiz aborted")
			}
			if opt, ok := parseOption(sc.Text()); ok {
				answers = append(answers, opt)
				break
			}
			fmt.Fprintln(out, "Please answer A or B.")
		}
	}
	return answers, nil
}

func parseOption(s string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a", "1":
		return 0, true
	case "b", "2":
		return 1, true
	}
	return 0, false
}

// runQuiz feeds answers through the engine so result hooks fire.
func runQuiz(engine *quiz.Engine, answers []int) (*quiz.Result, error) {
	engine.OpenQuiz()
	engine.StartQuiz()
	for _, a := range answers {
		if err := engine.AnswerQuizQuestion(a); err != nil {
			return nil, err
		}
	}
	st := engine.State()
	if st.Result == nil {
		return nil, fmt.Errorf("quiz incomplete: %d of %d answered", len(st.Answers), quiz.QuestionCount)
	}
	return st.Result, nil
}

func reflectOn(ctx context.Context, res *quiz.Result) (*reflection.Reflection, error) {
	if !cfg.LLMEnabled {
		return nil, reflection.ErrDisabled
	}
	st, err := openStore()
	if err != nil {
		return nil, err
	}
	defer st.Close()
	svc, err := newReflectionService(ctx, st.EventRepo(), logger)
	if err != nil {
		return nil, err
	}
	return svc.Reflect(ctx, res)
}

func printResult(res *quiz.Result, ref *reflection.Reflection) {
	primary := res.Primary.Profile()
	fmt.Println()
	fmt.Println(strings.ToUpper(primary.Name))
	fmt.Printf("With underlying characteristics of %s.\n\n", res.Secondary.Name())
	fmt.Println(primary.Description)
	fmt.Println()
	for _, t := range res.Ranked() {
		pct := res.Scores[t]
		fmt.Printf("  %-16s %s %3d%%\n", t.Name(), strings.Repeat("█", pct/4), pct)
	}
	if ref != nil {
		fmt.Printf("\n%s\n%s\n", ref.Headline, ref.Paragraph)
		for _, p := range ref.Paths {
			fmt.Printf("  • %s\n", p)
		}
	}
}

func init() {
	quizCmd.Flags().String("answers", "", "Comma-separated option indices, e.g. 0,1,0,1")
	quizCmd.Flags().Bool("json", false, "Print JSON")
	quizCmd.Flags().Bool("record", true, "Record the result in the journey log")
	quizCmd.Flags().Bool("reflect", false, "Ask the configured LLM for a gift reflection")
}
