package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/api"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/extractor"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/logger"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/models"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/parser"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/security"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/validate"
	"github.com/Kasim-09/AI-Powered-Financial-Entry-Automation-Tool/internal/writer"
)

const version = "1.0.0"

func main() {
	passwordFlag := flag.String("password", "", "Password for encrypted statement PDFs")
	outputFlag := flag.String("output", "", "Output CSV file path (defaults to input filename with .csv extension)")
	forceFlag := flag.Bool("force", false, "Write the CSV even when validation errors exist")
	serveFlag := flag.Bool("serve", false, "Run the HTTP upload API instead of converting files")
	addrFlag := flag.String("addr", "", "Listen address for --serve (default :8080, or ADDR env)")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Financial Entry Automation Tool

Converts bank statement PDFs into a strict eight-column CSV
(Serial No, Transaction Date, Value Date, Description,
Cheque Number, Debit, Credit, Balance), validating every row
and refusing to export while errors remain.

Usage:
  financial-entry-automation [flags] <input.pdf> [input2.pdf ...]
  financial-entry-automation --serve [--addr :8080]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a statement
  financial-entry-automation statement.pdf

  # Encrypted statement
  financial-entry-automation --password=SECRET statement.pdf

  # Custom output path
  financial-entry-automation --output=transactions.csv statement.pdf

  # Run the upload API
  financial-entry-automation --serve --addr :8080
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("financial-entry-automation v%s\n", version)
		os.Exit(0)
	}

	if *serveFlag {
		serve(*addrFlag)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *passwordFlag, *outputFlag, *forceFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(inputPath, password, outputPath string, force bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	f, reader, decryption, err := security.Open(inputPath, password)
	if err != nil {
		return err
	}
	defer f.Close()

	if decryption.WasDecrypted {
		fmt.Println("  Encrypted statement: password accepted")
	}

	doc := extractor.NewDocument(reader)
	fmt.Printf("  Opened %d page(s)\n", len(doc.Pages()))

	records, issues := parser.Extract(doc, extractor.DefaultTableGeometry())
	records, validationIssues := validate.Records(records)
	issues = append(issues, validationIssues...)
	summary := models.Summarize(issues)

	fmt.Printf("  Found %d transaction(s)\n", len(records))
	printIssues(issues)

	totals := models.SumAmounts(records)
	fmt.Printf("  Total debit: %s  Total credit: %s\n",
		totals.Debit.StringFixed(2), totals.Credit.StringFixed(2))

	if !summary.ExportAllowed() && !force {
		return fmt.Errorf("%d validation error(s) found; fix the statement or rerun with --force", summary.Errors)
	}

	outPath := outputPath
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}
	if err := writer.WriteToFile(outPath, records); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	fmt.Println("  Done.")
	return nil
}

func printIssues(issues []models.Issue) {
	for _, issue := range issues {
		where := "document"
		if issue.SerialNo != nil {
			where = fmt.Sprintf("serial %d", *issue.SerialNo)
		}
		fmt.Printf("  [%s] %s: %s\n", issue.Level, where, issue.Message)
	}
}

func serve(addr string) {
	// .env is optional; an explicit --addr flag wins over the environment.
	_ = godotenv.Load()

	log := logger.New()

	if addr == "" {
		addr = os.Getenv("ADDR")
	}
	if addr == "" {
		addr = ":8080"
	}

	app := fiber.New(fiber.Config{
		AppName:   "financial-entry-automation v" + version,
		BodyLimit: 32 << 20,
	})

	h := &api.Handler{
		Log: log,
		Geo: extractor.DefaultTableGeometry(),
	}
	h.RegisterRoutes(app)

	if staticDir := os.Getenv("STATIC_DIR"); staticDir != "" {
		app.Static("/", staticDir)
	}

	log.Info().Str("addr", addr).Msg("starting upload API")
	if err := app.Listen(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
