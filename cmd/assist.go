package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/coinclarity/cryptotax"
	"github.com/coinclarity/cryptotax/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	year    int
	method  string
	state   string
	bracket float64
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant about the tax report" }
func (*assistCmd) Usage() string {
	return `cryptotax assist [-year <year>] [-method <method>] [<question>]

  Starts an interactive session with the AI assistant. The assistant
  reads the generated report through function tools; it never gives
  tax advice, only explanations of the computed figures.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", time.Now().Year()-1, "Tax year to discuss")
	f.StringVar(&c.method, "method", "fifo", "Cost basis method (fifo, lifo, hifo)")
	f.StringVar(&c.state, "state", "", "2-letter state code for the state tax estimate")
	f.Float64Var(&c.bracket, "bracket", 22, "Marginal federal bracket for ordinary income, in percent")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	method, err := cryptotax.ParseCostBasisMethod(c.method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	report, err := cryptotax.GenerateReport(ledger, c.year, method, c.state, cryptotax.Percent(c.bracket))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	advisor := agent.NewTaxAdvisor(report)
	if err := advisor.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting assistant:", err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		question := strings.Join(f.Args(), " ")
		if status := c.ask(ctx, advisor, question); status != subcommands.ExitSuccess {
			return status
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		if question == "" || question == "exit" || question == "quit" {
			break
		}
		if status := c.ask(ctx, advisor, question); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Print("> ")
	}
	return subcommands.ExitSuccess
}

func (c *assistCmd) ask(ctx context.Context, advisor *agent.Expert, question string) subcommands.ExitStatus {
	answer, err := advisor.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	for _, part := range answer.Parts {
		if part.Text != "" {
			printMarkdown(part.Text)
		}
	}
	return subcommands.ExitSuccess
}
