// Command client is a small terminal companion for the innerpath server.
// It drives the full journey loop over the REST API: onboarding, fetching
// the daily passage, rating it, and reading progress and reports.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/velichkin/innerpath/internal/adapter"
	"github.com/velichkin/innerpath/internal/logger"
	"github.com/velichkin/innerpath/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: client [-a address] <command> [arguments]

commands:
  create <tradition>[,<tradition>...]   onboard a new user
  get <user_hash>                       show the user record
  daily <user_hash> <day>               fetch the passage of a journey day
  rate <user_hash> <day> <passage_id> <rating>
                                        submit or overwrite a day's rating
  reflect <user_hash> <day> <text>      attach an end of day reflection
  progress <user_hash>                  show journey progress
  report <user_hash>                    generate the alignment report
`

func main() {
	printBuildInfo()

	log := logger.Nop()

	address := flag.String("a", "localhost:8080", "server address")
	timeout := flag.Duration("t", 30*time.Second, "request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*address, *timeout, log)
	if err != nil {
		fatalf("create adapter: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err = run(ctx, serverAdapter, args); err != nil {
		fatalf("%v", err)
	}
}

func run(ctx context.Context, server adapter.ServerAdapter, args []string) error {
	command, rest := args[0], args[1:]

	switch command {
	case "create":
		var traditions []string
		if len(rest) > 0 {
			traditions = strings.Split(rest[0], ",")
		}
		user, err := server.CreateUser(ctx, models.UserOnboarding{SelectedTraditions: traditions})
		if err != nil {
			return err
		}
		return print(user)

	case "get":
		if len(rest) < 1 {
			return fmt.Errorf("get: user_hash required")
		}
		user, err := server.GetUser(ctx, rest[0])
		if err != nil {
			return err
		}
		return print(user)

	case "daily":
		if len(rest) < 2 {
			return fmt.Errorf("daily: user_hash and day required")
		}
		day, err := parseDay(rest[1])
		if err != nil {
			return err
		}
		content, err := server.DailyContent(ctx, rest[0], day)
		if err != nil {
			return err
		}
		return print(content)

	case "rate":
		if len(rest) < 4 {
			return fmt.Errorf("rate: user_hash, day, passage_id and rating required")
		}
		day, err := parseDay(rest[1])
		if err != nil {
			return err
		}
		var passageID, score int
		if _, err = fmt.Sscanf(rest[2], "%d", &passageID); err != nil {
			return fmt.Errorf("rate: bad passage_id %q", rest[2])
		}
		if _, err = fmt.Sscanf(rest[3], "%d", &score); err != nil {
			return fmt.Errorf("rate: bad rating %q", rest[3])
		}
		rating, err := server.SubmitRating(ctx, models.RatingSubmission{
			UserHash:   rest[0],
			JourneyDay: day,
			PassageID:  passageID,
			Score:      score,
		})
		if err != nil {
			return err
		}
		return print(rating)

	case "reflect":
		if len(rest) < 3 {
			return fmt.Errorf("reflect: user_hash, day and text required")
		}
		day, err := parseDay(rest[1])
		if err != nil {
			return err
		}
		text := strings.Join(rest[2:], " ")
		rating, err := server.UpdateEngagement(ctx, rest[0], day, models.EngagementUpdate{Reflection: &text})
		if err != nil {
			return err
		}
		return print(rating)

	case "progress":
		if len(rest) < 1 {
			return fmt.Errorf("progress: user_hash required")
		}
		progress, err := server.Progress(ctx, rest[0])
		if err != nil {
			return err
		}
		return print(progress)

	case "report":
		if len(rest) < 1 {
			return fmt.Errorf("report: user_hash required")
		}
		report, err := server.GenerateReport(ctx, rest[0])
		if err != nil {
			return err
		}
		return print(report)

	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func parseDay(raw string) (int, error) {
	var day int
	if _, err := fmt.Sscanf(raw, "%d", &day); err != nil {
		return 0, fmt.Errorf("bad day %q", raw)
	}
	return day, nil
}

func print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
