package aws

import (
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

// RDSAPI defines the subset of the RDS API used by the provider.
type RDSAPI interface {
	DescribeDBInstances(ctx context.Context, input *rds.DescribeDBInstancesInput, opts ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

// ListDatabases returns every RDS instance with its status.
func ListDatabases(ctx context.Context, client RDSAPI) ([]inventory.Database, error) {
	var dbs []inventory.Database
	input := &rds.DescribeDBInstancesInput{}

	for {
		out, err := client.DescribeDBInstances(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}
		for _, db := range out.DBInstances {
			dbs = append(dbs, inventory.Database{
				ID:     awssdk.ToString(db.DBInstanceIdentifier),
				Status: awssdk.ToString(db.DBInstanceStatus),
			})
		}
		if out.Marker == nil {
			break
		}
		input.Marker = out.Marker
	}

	slog.Debug("Listed RDS instances", "count", len(dbs))
	return dbs, nil
}
