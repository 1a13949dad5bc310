package main

import (
	"context"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"answerlog/internal/adapters/answersvc"
	"answerlog/internal/platform/config"
	perr "answerlog/internal/platform/errors"
	pnet "answerlog/internal/platform/net"
	logicsvc "answerlog/internal/services/answerlogic/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// rootFlags are the persistent connection flags; env supplies the defaults
type rootFlags struct {
	url     string
	user    string
	pass    string
	timeout time.Duration
	minDate string
}

func newRootCmd(out io.Writer) *cobra.Command {
	env := config.New().Prefix("ANSWER_LOGIC_REMOTE_")
	f := &rootFlags{}

	root := &cobra.Command{
		Use:           "answerlog-query",
		Short:         "Evaluate answer log selections against a running answers API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.url, "url", env.MayString("URL", "http://localhost:4000/api/v1"), "answers API base url")
	pf.StringVar(&f.user, "user", env.MayString("USER", ""), "basic auth user")
	pf.StringVar(&f.pass, "pass", env.MayString("PASS", ""), "basic auth password")
	pf.DurationVar(&f.timeout, "timeout", env.MayDuration("TIMEOUT", 10*time.Second), "per request timeout")
	pf.StringVar(&f.minDate, "min-date", "", "inclusive answer date floor, YYYY-MM-DD (default 2000-01-01)")

	run := func(fn func(ctx context.Context, s logicsvc.Service, args []string) (any, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			client, err := answersvc.NewClient(answersvc.Options{
				BaseURL:   f.url,
				User:      f.user,
				Pass:      f.pass,
				Timeout:   f.timeout,
				UserAgent: "answerlog-query",
			})
			if err != nil {
				return err
			}
			// one correlation id for every fetch of this invocation
			ctx := pnet.WithRequestID(cmd.Context(), "cli-"+uuid.NewString())
			res, err := fn(ctx, logicsvc.New(client), args)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
	}

	cmds := []*cobra.Command{
		{
			Use: "map", Short: "current answers of every user", Args: cobra.NoArgs,
			RunE: run(func(ctx context.Context, s logicsvc.Service, _ []string) (any, error) {
				return s.MapAll(ctx)
			}),
		},
		{
			Use: "map-user <userId>", Short: "current answers of one user", Args: cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				id, err := parseID(a[0], "userId")
				if err != nil {
					return nil, err
				}
				return s.MapByUser(ctx, id)
			}),
		},
		{
			Use: "map-question <questionId>", Short: "current answers to one question grouped by text", Args: cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				id, err := parseID(a[0], "questionId")
				if err != nil {
					return nil, err
				}
				return s.MapByQuestion(ctx, id)
			}),
		},
		intCmd("younger-than <years>", "users strictly younger than years", "years", run,
			func(ctx context.Context, s logicsvc.Service, n int) (any, error) { return s.YoungerThan(ctx, n) }),
		intCmd("at-least-age <years>", "users aged years or more", "years", run,
			func(ctx context.Context, s logicsvc.Service, n int) (any, error) { return s.AtLeastAge(ctx, n) }),
		intCmd("under-height <inches>", "users strictly shorter than inches", "inches", run,
			func(ctx context.Context, s logicsvc.Service, n int) (any, error) { return s.UnderHeight(ctx, n) }),
		intCmd("at-least-height <inches>", "users inches tall or more", "inches", run,
			func(ctx context.Context, s logicsvc.Service, n int) (any, error) { return s.AtLeastHeight(ctx, n) }),
		floatCmd("under-bmi <bmi>", "users with BMI strictly below bmi", "bmi", run,
			func(ctx context.Context, s logicsvc.Service, x float64) (any, error) { return s.UnderBMI(ctx, x) }),
		floatCmd("at-least-bmi <bmi>", "users with BMI of bmi or more", "bmi", run,
			func(ctx context.Context, s logicsvc.Service, x float64) (any, error) { return s.AtLeastBMI(ctx, x) }),
		{
			Use: "answer-equals <questionId> <answer>", Short: "users whose current answer equals answer", Args: cobra.ExactArgs(2),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				id, err := parseID(a[0], "questionId")
				if err != nil {
					return nil, err
				}
				return s.AnswerEquals(ctx, id, a[1], f.minDate)
			}),
		},
		{
			Use: "answer-in <questionId~value~value>", Short: "users whose current answer is one of the values", Args: cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				return s.AnswerIn(ctx, a[0], f.minDate)
			}),
		},
		{
			Use: "numeric-at-least <questionId> <min>", Short: "users whose current numeric answer is min or more", Args: cobra.ExactArgs(2),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				id, v, err := idAndNumber(a)
				if err != nil {
					return nil, err
				}
				return s.NumericAtLeast(ctx, id, v, f.minDate)
			}),
		},
		{
			Use: "numeric-under <questionId> <max>", Short: "users whose current numeric answer is below max", Args: cobra.ExactArgs(2),
			RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
				id, v, err := idAndNumber(a)
				if err != nil {
					return nil, err
				}
				return s.NumericUnder(ctx, id, v, f.minDate)
			}),
		},
	}
	root.AddCommand(cmds...)
	return root
}

type runner = func(func(ctx context.Context, s logicsvc.Service, args []string) (any, error)) func(*cobra.Command, []string) error

func intCmd(use, short, field string, run runner, fn func(context.Context, logicsvc.Service, int) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use: use, Short: short, Args: cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
			n, err := strconv.Atoi(strings.TrimSpace(a[0]))
			if err != nil {
				return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s: %q is not an integer", field, a[0]), field)
			}
			return fn(ctx, s, n)
		}),
	}
}

func floatCmd(use, short, field string, run runner, fn func(context.Context, logicsvc.Service, float64) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use: use, Short: short, Args: cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, s logicsvc.Service, a []string) (any, error) {
			x, err := strconv.ParseFloat(strings.TrimSpace(a[0]), 64)
			if err != nil {
				return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s: %q is not a number", field, a[0]), field)
			}
			return fn(ctx, s, x)
		}),
	}
}

func parseID(s, field string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s: %q is not an integer", field, s), field)
	}
	return id, nil
}

func idAndNumber(a []string) (int64, float64, error) {
	id, err := parseID(a[0], "questionId")
	if err != nil {
		return 0, 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a[1]), 64)
	if err != nil {
		return 0, 0, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "value: %q is not a number", a[1]), "value")
	}
	return id, v, nil
}
