package aws

import (
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

// ELBAPI defines the subset of the ELBv2 API used by the provider.
type ELBAPI interface {
	DescribeLoadBalancers(ctx context.Context, input *elbv2.DescribeLoadBalancersInput, opts ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	DescribeTargetGroups(ctx context.Context, input *elbv2.DescribeTargetGroupsInput, opts ...func(*elbv2.Options)) (*elbv2.DescribeTargetGroupsOutput, error)
}

// ListLoadBalancers returns every load balancer together with the target
// groups attached to it, using one target group lookup per load balancer.
func ListLoadBalancers(ctx context.Context, client ELBAPI) ([]inventory.LoadBalancer, error) {
	var lbs []inventory.LoadBalancer
	input := &elbv2.DescribeLoadBalancersInput{}

	for {
		out, err := client.DescribeLoadBalancers(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}
		for _, lb := range out.LoadBalancers {
			arn := awssdk.ToString(lb.LoadBalancerArn)
			tgs, err := ListTargetGroups(ctx, client, arn)
			if err != nil {
				return nil, err
			}
			lbs = append(lbs, inventory.LoadBalancer{
				ARN:          arn,
				Name:         awssdk.ToString(lb.LoadBalancerName),
				TargetGroups: tgs,
			})
		}
		if out.NextMarker == nil {
			break
		}
		input.Marker = out.NextMarker
	}

	slog.Debug("Listed load balancers", "count", len(lbs))
	return lbs, nil
}

// ListTargetGroups returns the ARNs of target groups attached to lbARN.
func ListTargetGroups(ctx context.Context, client ELBAPI, lbARN string) ([]string, error) {
	var arns []string
	input := &elbv2.DescribeTargetGroupsInput{
		LoadBalancerArn: awssdk.String(lbARN),
	}

	for {
		out, err := client.DescribeTargetGroups(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe target groups for %s: %w", lbARN, err)
		}
		for _, tg := range out.TargetGroups {
			arns = append(arns, awssdk.ToString(tg.TargetGroupArn))
		}
		if out.NextMarker == nil {
			break
		}
		input.Marker = out.NextMarker
	}

	return arns, nil
}
