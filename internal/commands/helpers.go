package commands

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/ppiankov/idlespectre/internal/aws"
)

// enhanceError wraps an error with context and suggestions for common AWS issues.
func enhanceError(action string, err error) error {
	msg := err.Error()
	code := aws.ErrorCode(err)

	var hint string
	switch {
	case strings.Contains(msg, "NoCredentialProviders") || strings.Contains(msg, "failed to retrieve credentials"):
		hint = "Configure AWS credentials: set AWS_PROFILE, AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY, or run 'aws configure'"
	case code == "ExpiredToken" || strings.Contains(msg, "ExpiredToken"):
		hint = "AWS session token expired. Refresh credentials or run 'aws sso login'"
	case code == "AccessDenied" || code == "AuthorizationError" || code == "UnauthorizedOperation" ||
		strings.Contains(msg, "AccessDenied") || strings.Contains(msg, "UnauthorizedOperation"):
		hint = "Insufficient permissions. Apply the IAM policy from 'idlespectre init' to your role/user"
	case code == "NoSuchBucket" || strings.Contains(msg, "NoSuchBucket"):
		hint = "Report bucket does not exist. Check artifact.bucket or --bucket"
	case code == "NotFound" || strings.Contains(msg, "Topic does not exist"):
		hint = "Notification topic not found. Check notification.topic_arn or --topic-arn"
	case code == "RequestExpired" || strings.Contains(msg, "RequestExpired"):
		hint = "Request expired. Check system clock synchronization"
	case strings.Contains(msg, "Throttling"):
		hint = "API rate limit hit. Retry later or increase timeout"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// computeTargetHash generates a SHA256 hash for the target URI.
func computeTargetHash(provider, region, account string) string {
	input := fmt.Sprintf("provider:%s,region:%s,account:%s", provider, region, account)
	h := sha256.Sum256([]byte(input))
	return fmt.Sprintf("sha256:%x", h)
}
