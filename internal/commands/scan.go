package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/idlespectre/internal/aws"
	"github.com/ppiankov/idlespectre/internal/classify"
	"github.com/ppiankov/idlespectre/internal/config"
	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/notify"
	"github.com/ppiankov/idlespectre/internal/pricing"
	"github.com/ppiankov/idlespectre/internal/report"
	"github.com/ppiankov/idlespectre/internal/scan"
)

const (
	defaultFormat  = "text"
	defaultTimeout = 10 * time.Minute
)

var scanFlags struct {
	region     string
	profile    string
	ageDays    int
	bucket     string
	prefix     string
	topicARN   string
	currency   string
	outputDir  string
	dryRun     bool
	format     string
	outputFile string
	noProgress bool
	timeout    time.Duration
	excludeIDs []string
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan an AWS account for idle resources",
	Long: `Scan one AWS region for idle resources, write a CSV report to S3 (or a local
directory with --output-dir) and publish a summary to an SNS topic (or print it
with --dry-run). Each finding includes a flat estimated monthly saving.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanFlags.region, "region", "", "AWS region (default: from AWS config)")
	scanCmd.Flags().StringVar(&scanFlags.profile, "profile", "", "AWS profile name")
	scanCmd.Flags().IntVar(&scanFlags.ageDays, "age-days", classify.DefaultAgeThresholdDays, "Minimum age in days for unattached volumes")
	scanCmd.Flags().StringVar(&scanFlags.bucket, "bucket", "", "S3 bucket for the CSV report")
	scanCmd.Flags().StringVar(&scanFlags.prefix, "prefix", report.DefaultArtifactPrefix, "Key prefix for the CSV report")
	scanCmd.Flags().StringVar(&scanFlags.topicARN, "topic-arn", "", "SNS topic ARN for the summary notification")
	scanCmd.Flags().StringVar(&scanFlags.currency, "currency", pricing.DefaultCurrency, "Currency symbol for amounts")
	scanCmd.Flags().StringVar(&scanFlags.outputDir, "output-dir", "", "Write the CSV report to this directory instead of S3")
	scanCmd.Flags().BoolVar(&scanFlags.dryRun, "dry-run", false, "Print the notification instead of publishing it")
	scanCmd.Flags().StringVar(&scanFlags.format, "format", defaultFormat, "Output format: text, json, sarif")
	scanCmd.Flags().StringVarP(&scanFlags.outputFile, "output", "o", "", "Output file path (default: stdout)")
	scanCmd.Flags().BoolVar(&scanFlags.noProgress, "no-progress", false, "Disable progress output")
	scanCmd.Flags().DurationVar(&scanFlags.timeout, "timeout", defaultTimeout, "Scan timeout")
	scanCmd.Flags().StringSliceVar(&scanFlags.excludeIDs, "exclude", nil, "Resource IDs to leave out of the report (comma-separated)")
}

func runScan(cmd *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyScanConfigDefaults(cfg)

	if err := checkScanFlags(); err != nil {
		return err
	}
	if err := checkSinks(); err != nil {
		return err
	}

	out, closeOut, err := openOutput(scanFlags.outputFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeOut(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()
	reporter, err := selectReporter(scanFlags.format, out)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if scanFlags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanFlags.timeout)
		defer cancel()
	}

	client, err := aws.NewClient(ctx, scanFlags.profile, scanFlags.region)
	if err != nil {
		return enhanceError("initialize AWS client", err)
	}

	region := client.Region()
	if region == "" {
		return fmt.Errorf("no AWS region configured; use --region or set AWS_REGION")
	}
	account, err := client.AccountID(ctx)
	if err != nil {
		slog.Warn("Could not resolve account ID", "error", err)
		account = scanFlags.profile
	}
	slog.Info("Scanning account", "account", account, "region", region)

	deps := scan.Deps{
		Provider: client.NewProvider(),
		Store:    selectStore(client),
		Notifier: selectNotifier(client, cmd.ErrOrStderr()),
	}
	if !scanFlags.noProgress {
		deps.Progress = func(p inventory.ScanProgress) {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", p.Region, p.Message)
		}
	}

	rules := classify.Rules{
		AgeThresholdDays: scanFlags.ageDays,
		Costs:            cfg.MonthlyCosts(),
	}
	opts := scan.Options{
		Rules:          rules,
		Currency:       scanFlags.currency,
		ArtifactPrefix: scanFlags.prefix,
		Region:         region,
		ExcludeIDs:     excludeSet(cfg.Exclude.ResourceIDs, scanFlags.excludeIDs),
	}

	result, err := scan.Run(ctx, deps, opts)
	if err != nil {
		return enhanceError("scan", err)
	}

	data := report.NewData(result.Report)
	data.Tool = "idlespectre"
	data.Version = version
	data.Timestamp = time.Now().UTC()
	data.Target = report.Target{
		Type:    "aws-account",
		URIHash: computeTargetHash("aws", region, account),
	}
	data.Config = report.ReportConfig{
		Provider:         "aws",
		Region:           region,
		AgeThresholdDays: rules.AgeThresholdDays,
		Currency:         scanFlags.currency,
		Costs:            rules.Costs,
	}
	data.Artifact = result.Artifact
	data.Errors = result.Errors

	return reporter.Generate(data)
}

func applyScanConfigDefaults(cfg config.Config) {
	if scanFlags.profile == "" {
		scanFlags.profile = cfg.Profile
	}
	if scanFlags.region == "" {
		scanFlags.region = cfg.Region
	}
	if scanFlags.format == defaultFormat && cfg.Format != "" {
		scanFlags.format = cfg.Format
	}
	if scanFlags.ageDays == classify.DefaultAgeThresholdDays {
		scanFlags.ageDays = cfg.AgeThreshold()
	}
	if scanFlags.bucket == "" {
		scanFlags.bucket = cfg.Artifact.Bucket
	}
	if scanFlags.prefix == report.DefaultArtifactPrefix && cfg.Artifact.Prefix != "" {
		scanFlags.prefix = cfg.Artifact.Prefix
	}
	if scanFlags.topicARN == "" {
		scanFlags.topicARN = cfg.Notification.TopicARN
	}
	if scanFlags.currency == pricing.DefaultCurrency && cfg.Currency != "" {
		scanFlags.currency = cfg.Currency
	}
	if scanFlags.timeout == defaultTimeout && cfg.TimeoutDuration() > 0 {
		scanFlags.timeout = cfg.TimeoutDuration()
	}
}

// checkScanFlags rejects flag values that would otherwise only fail after the
// report has been delivered.
func checkScanFlags() error {
	if scanFlags.ageDays < 0 {
		return fmt.Errorf("invalid --age-days %d: must be 0 or greater", scanFlags.ageDays)
	}
	if _, err := selectReporter(scanFlags.format, io.Discard); err != nil {
		return err
	}
	return nil
}

// checkSinks fails fast when a run would have nowhere to put its output.
func checkSinks() error {
	if scanFlags.bucket == "" && scanFlags.outputDir == "" {
		return fmt.Errorf("no report destination; use --bucket, --output-dir or set artifact.bucket")
	}
	if scanFlags.topicARN == "" && !scanFlags.dryRun {
		return fmt.Errorf("no notification topic; use --topic-arn, --dry-run or set notification.topic_arn")
	}
	return nil
}

func selectStore(client *aws.Client) scan.ArtifactStore {
	if scanFlags.outputDir != "" {
		return &report.FileStore{Dir: scanFlags.outputDir}
	}
	return client.NewArtifactStore(scanFlags.bucket)
}

func selectNotifier(client *aws.Client, w io.Writer) notify.Notifier {
	if scanFlags.dryRun {
		return &notify.WriterNotifier{Writer: w}
	}
	return client.NewTopicNotifier(scanFlags.topicARN)
}

func excludeSet(configIDs, flagIDs []string) map[string]bool {
	ids := make(map[string]bool, len(configIDs)+len(flagIDs))
	for _, id := range configIDs {
		ids[id] = true
	}
	for _, id := range flagIDs {
		ids[id] = true
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}

// openOutput returns the terminal report destination and a func that closes
// it. Stdout is never closed.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

func selectReporter(format string, w io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "text":
		return &report.TextReporter{Writer: w}, nil
	case "sarif":
		return &report.SARIFReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, or sarif)", format)
	}
}
