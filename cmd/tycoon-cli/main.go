package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/0xRadioAc7iv/go-kyototycoon/internal/utils"
	"github.com/0xRadioAc7iv/go-kyototycoon/tycoon"
)

const callTimeout = 10 * time.Second

const helpText = `
Available Commands:

GET <key>
  Retrieve the value stored under key.
  Response: value | (nil)

SET <key> <value> [xt]
  Store a value, optionally expiring after xt seconds
  (a negative xt is an absolute epoch time).
  Response: OK

INCR <key> [delta] [orig]
  Add delta (default 1) to an integer record.
  Response: integer

INCRF <key> <delta>
  Add delta to a decimal record.
  Response: number

REMOVE <key>
  Delete a record.
  Response: OK

REPORT | STATUS
  Show server report or database status.

VOID
  Do nothing; checks the server answers.

HELP
  Show this help message.

EXIT
  Quit.
`

func main() {
	inputs, err := utils.HandleClientInputs()
	if err != nil {
		log.Fatal(err)
	}

	client, err := tycoon.New(
		tycoon.WithHost(inputs.Host),
		tycoon.WithPort(inputs.Port),
		tycoon.WithEncoding(inputs.Encoding),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Using %v:%d (%s columns)\n", inputs.Host, inputs.Port, inputs.Encoding)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if line == "exit" {
			return
		}

		cmd, args, err := utils.SplitCommandLine(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		resp, err := execute(ctx, client, cmd, args)
		cancel()

		if err != nil {
			fmt.Println("error:", err)
			continue
		}

		fmt.Println(resp)
	}
}

func execute(ctx context.Context, client *tycoon.Client, cmd string, args []string) (string, error) {
	switch cmd {
	case "help":
		return strings.TrimSpace(helpText), nil

	case "get":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: GET <key>")
		}
		val, ok, err := client.Get(ctx, args[0])
		if err != nil {
			return "", err
		}
		if !ok {
			return "(nil)", nil
		}
		return val, nil

	case "set":
		if len(args) < 2 || len(args) > 3 {
			return "", fmt.Errorf("usage: SET <key> <value> [xt]")
		}
		var opts []tycoon.CallOption
		if len(args) == 3 {
			xt, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return "", fmt.Errorf("invalid xt: %w", err)
			}
			opts = append(opts, tycoon.Expire(xt))
		}
		if err := client.Set(ctx, args[0], args[1], opts...); err != nil {
			return "", err
		}
		return "OK", nil

	case "incr":
		if len(args) < 1 || len(args) > 3 {
			return "", fmt.Errorf("usage: INCR <key> [delta] [orig]")
		}
		delta, err := utils.ParseInt64Arg(args, 1, 1)
		if err != nil {
			return "", fmt.Errorf("invalid delta: %w", err)
		}
		var opts []tycoon.CallOption
		if len(args) == 3 {
			orig, err := utils.ParseInt64Arg(args, 2, 0)
			if err != nil {
				return "", fmt.Errorf("invalid orig: %w", err)
			}
			opts = append(opts, tycoon.Origin(orig))
		}
		n, err := client.Increment(ctx, args[0], delta, opts...)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(n, 10), nil

	case "incrf":
		if len(args) != 2 {
			return "", fmt.Errorf("usage: INCRF <key> <delta>")
		}
		delta, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return "", fmt.Errorf("invalid delta: %w", err)
		}
		f, err := client.IncrementDouble(ctx, args[0], delta)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil

	case "remove":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: REMOVE <key>")
		}
		if err := client.Remove(ctx, args[0]); err != nil {
			return "", err
		}
		return "OK", nil

	case "report", "status":
		var res tycoon.Pairs
		var err error
		if cmd == "report" {
			res, err = client.Report(ctx)
		} else {
			res, err = client.Status(ctx)
		}
		if err != nil {
			return "", err
		}
		return formatPairs(res), nil

	case "void":
		if err := client.Void(ctx); err != nil {
			return "", err
		}
		return "OK", nil

	default:
		return "", fmt.Errorf("unknown command %q, type 'help'", cmd)
	}
}

func formatPairs(pairs tycoon.Pairs) string {
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, p.Key+": "+p.Value)
	}
	return strings.Join(lines, "\n")
}
