package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fingrid-tools/gridview/internal/config"
	"github.com/fingrid-tools/gridview/internal/display"
	"github.com/fingrid-tools/gridview/internal/faults"
	"github.com/fingrid-tools/gridview/internal/fingrid"
	"github.com/fingrid-tools/gridview/internal/input"
	"github.com/fingrid-tools/gridview/internal/logger"
	"github.com/fingrid-tools/gridview/internal/models"
	"github.com/fingrid-tools/gridview/internal/processor"
	"github.com/fingrid-tools/gridview/internal/telegram"
)

var configPath = flag.String("config", "configs/config.yaml", "Path to configuration file")

// command is the closed set of menu actions.
type command int

const (
	cmdUnknown command = iota
	cmdView
	cmdVariables
	cmdDemo
	cmdExit
)

// parseCommand maps a raw menu selection to a command.
func parseCommand(raw string) command {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "view":
		return cmdView
	case "2", "variables":
		return cmdVariables
	case "3", "demo":
		return cmdDemo
	case "4", "exit", "quit", "q":
		return cmdExit
	default:
		return cmdUnknown
	}
}

type app struct {
	cfg      *config.Config
	client   *fingrid.Client
	notifier *telegram.Client
	scanner  *bufio.Scanner
	eof      bool
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Configuration loaded from %s", *configPath)

	client := fingrid.NewClient(cfg.Fingrid.APIBaseURL, cfg.Fingrid.APIKey, cfg.Fingrid.Timeout)

	var notifier *telegram.Client
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Warn("Telegram disabled: %v", err)
		}
	}

	a := &app{
		cfg:      cfg,
		client:   client,
		notifier: notifier,
		scanner:  bufio.NewScanner(os.Stdin),
	}

	fmt.Println("Welcome to Fingrid Open Data Viewer!")
	fmt.Println("Retrieve and analyze Finland's electricity data.")

	a.run()
}

// run drives the interactive menu until exit or stdin EOF. Faults never
// terminate the process; they are rendered and the menu is shown again.
func (a *app) run() {
	for !a.eof {
		printMenu()
		choice := a.prompt("Select option (1-4): ")
		if a.eof {
			break
		}

		switch parseCommand(choice) {
		case cmdView:
			a.viewData()
		case cmdVariables:
			display.PrintVariables(fingrid.CommonVariables())
		case cmdDemo:
			a.runDemo()
		case cmdExit:
			fmt.Println("\nGoodbye!")
			return
		default:
			fmt.Println("Invalid option. Please select 1-4.")
		}
	}
}

func printMenu() {
	fmt.Println("\n==================================================")
	fmt.Println("  Fingrid Open Data Viewer")
	fmt.Println("==================================================")
	fmt.Println("1. View electricity data")
	fmt.Println("2. Show available variables")
	fmt.Println("3. Demo mode (with sample data)")
	fmt.Println("4. Exit")
	fmt.Println("==================================================")
}

// viewData runs one query through the full pipeline: validate input, fetch,
// process, display.
func (a *app) viewData() {
	variableID, ok := a.promptVariableID()
	if !ok {
		return
	}

	fmt.Println("\nEnter time range for data retrieval:")
	startRaw, ok := a.promptTimestamp("Start time (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ): ")
	if !ok {
		return
	}
	endRaw, ok := a.promptTimestamp("End time (YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ): ")
	if !ok {
		return
	}

	tr, err := input.ParseTimeRange(startRaw, endRaw)
	if err != nil {
		renderFault(err)
		return
	}

	fmt.Println("\nFetching data from Fingrid API...")
	ds, err := a.client.FetchSeries(context.Background(), variableID, tr)
	if err != nil {
		renderFault(err)
		return
	}

	a.showResults(ds)
}

// promptVariableID reads a variable ID, handling the "list" sentinel before
// the validator sees it.
func (a *app) promptVariableID() (int, bool) {
	for {
		raw := a.prompt("Enter variable ID (e.g., 124 for Hydro, or 'list' to see all): ")
		if a.eof {
			return 0, false
		}
		if strings.EqualFold(raw, "list") {
			display.PrintVariables(fingrid.CommonVariables())
			continue
		}
		id, err := input.ParseVariableID(raw)
		if err != nil {
			renderFault(err)
			continue
		}
		return id, true
	}
}

// promptTimestamp reads one timestamp string, reprompting until it parses.
// The raw string is returned so the range check can name the exact input.
func (a *app) promptTimestamp(label string) (string, bool) {
	for {
		raw := a.prompt(label)
		if a.eof {
			return "", false
		}
		if _, err := input.ParseTimestamp(raw); err != nil {
			renderFault(err)
			continue
		}
		return raw, true
	}
}

// showResults prints the table, statistics, and optional chart and Telegram
// summary for a fetched dataset.
func (a *app) showResults(ds *models.DataSet) {
	display.PrintTable(ds, a.cfg.Display.MaxTableRows)
	if ds.Empty() {
		return
	}

	stats, err := processor.ComputeStatistics(ds)
	if err != nil {
		renderFault(err)
		return
	}
	display.PrintStatistics(stats)

	if a.confirm("\nGenerate chart? (y/n): ") {
		title := fmt.Sprintf("Fingrid Variable %d - Electricity Data", ds.VariableID)
		display.PrintChart(ds, title, a.cfg.Display.ChartWidth, a.cfg.Display.ChartHeight)
	}

	if a.notifier != nil && a.confirm("\nSend summary to Telegram? (y/n): ") {
		if err := a.notifier.SendSummary(ds, stats); err != nil {
			logger.Error("Failed to send Telegram summary: %v", err)
			fmt.Println("Could not send the Telegram summary.")
		} else {
			fmt.Println("Summary sent to Telegram.")
		}
	}
}

func (a *app) prompt(label string) string {
	fmt.Print(label)
	if !a.scanner.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

func (a *app) confirm(label string) bool {
	return strings.EqualFold(a.prompt(label), "y")
}

// renderFault converts a fault into the one-line user-facing message plus an
// optional details line. This is the only place faults become display text.
func renderFault(err error) {
	headline := "Something went wrong. Please try again."
	switch faults.KindOf(err) {
	case faults.KindAuthentication:
		headline = "Authentication failed. Please check your API key."
	case faults.KindNetwork:
		headline = "Network error. Please check your internet connection."
	case faults.KindValidation:
		headline = "Invalid input. Please check the provided parameters."
	case faults.KindDataProcessing:
		headline = "Error processing data. Please try again."
	}

	fmt.Printf("\nError: %s\n", headline)

	var f *faults.Fault
	if errors.As(err, &f) && f.Error() != headline {
		fmt.Printf("   Details: %s\n", f.Error())
	}
}
