package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initFlags struct {
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate sample config and IAM policy",
	Long: `Creates a sample .idlespectre.yaml config file and an IAM policy covering the
read-only inventory calls plus report upload and notification publish.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initFlags.force, "force", false, "Overwrite existing files")
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := ".idlespectre.yaml"
	policyPath := "idlespectre-policy.json"

	if err := writeIfNotExists(configPath, sampleConfig, initFlags.force); err != nil {
		return err
	}
	if err := writeIfNotExists(policyPath, sampleIAMPolicy, initFlags.force); err != nil {
		return err
	}

	fmt.Printf("Created %s and %s\n", configPath, policyPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit .idlespectre.yaml to set region, artifact.bucket and notification.topic_arn")
	fmt.Println("  2. Apply idlespectre-policy.json to the IAM role/user running the scan")
	fmt.Println("  3. Run: idlespectre scan  (or idlespectre scan --output-dir=. --dry-run to try it locally)")
	return nil
}

func writeIfNotExists(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Skipping %s (already exists, use --force to overwrite)\n", path)
			return nil
		}
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, []byte(content), 0o644)
}

const sampleConfig = `# idlespectre configuration
# See: https://github.com/ppiankov/idlespectre

# AWS profile (or set AWS_PROFILE env var)
# profile: default

# Region to scan
# region: ap-south-1

# Unattached volumes younger than this are not reported
age_threshold_days: 30

# Flat monthly estimates per idle resource (omitted types keep the defaults)
# costs:
#   volume: 800
#   floating_ip: 350
#   load_balancer: 1300
#   managed_database: 1500

# Currency symbol used in the notification and terminal output
currency: "₹"

# CSV report destination. One file per day: <prefix>unused_resources_YYYY-MM-DD.csv
artifact:
  bucket: my-cost-reports
  prefix: reports/

# Summary notification
notification:
  topic_arn: arn:aws:sns:ap-south-1:123456789012:cost-optimization

# Terminal output format: text, json, or sarif
format: text

# Scan timeout
timeout: 10m

# Resources to leave out of the report
# exclude:
#   resource_ids:
#     - i-0123456789abcdef0
`

const sampleIAMPolicy = `{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Sid": "IdleSpectreInventory",
      "Effect": "Allow",
      "Action": [
        "ec2:DescribeInstances",
        "ec2:DescribeVolumes",
        "ec2:DescribeAddresses",
        "ec2:DescribeSecurityGroups",
        "ec2:DescribeNetworkInterfaces",
        "elasticloadbalancing:DescribeLoadBalancers",
        "elasticloadbalancing:DescribeTargetGroups",
        "rds:DescribeDBInstances",
        "sts:GetCallerIdentity"
      ],
      "Resource": "*"
    },
    {
      "Sid": "IdleSpectreReport",
      "Effect": "Allow",
      "Action": "s3:PutObject",
      "Resource": "arn:aws:s3:::my-cost-reports/reports/*"
    },
    {
      "Sid": "IdleSpectreNotify",
      "Effect": "Allow",
      "Action": "sns:Publish",
      "Resource": "arn:aws:sns:ap-south-1:123456789012:cost-optimization"
    }
  ]
}
`
