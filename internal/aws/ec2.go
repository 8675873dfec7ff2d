package aws

import (
	"context"
	"fmt"
	"log/slog"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

// EC2API defines the subset of the EC2 API used by the provider.
type EC2API interface {
	DescribeInstances(ctx context.Context, input *ec2.DescribeInstancesInput, opts ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	DescribeVolumes(ctx context.Context, input *ec2.DescribeVolumesInput, opts ...func(*ec2.Options)) (*ec2.DescribeVolumesOutput, error)
	DescribeAddresses(ctx context.Context, input *ec2.DescribeAddressesInput, opts ...func(*ec2.Options)) (*ec2.DescribeAddressesOutput, error)
	DescribeSecurityGroups(ctx context.Context, input *ec2.DescribeSecurityGroupsInput, opts ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, input *ec2.DescribeNetworkInterfacesInput, opts ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
}

// ListInstances returns every instance across all reservations.
func ListInstances(ctx context.Context, client EC2API) ([]inventory.Instance, error) {
	var instances []inventory.Instance
	input := &ec2.DescribeInstancesInput{}

	for {
		out, err := client.DescribeInstances(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}
		for _, r := range out.Reservations {
			for _, inst := range r.Instances {
				var state string
				if inst.State != nil {
					state = string(inst.State.Name)
				}
				instances = append(instances, inventory.Instance{
					ID:    awssdk.ToString(inst.InstanceId),
					State: state,
				})
			}
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	slog.Debug("Listed EC2 instances", "count", len(instances))
	return instances, nil
}

// ListVolumes returns unattached volumes. Filtering on status=available
// happens server-side.
func ListVolumes(ctx context.Context, client EC2API) ([]inventory.Volume, error) {
	var volumes []inventory.Volume
	input := &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			{
				Name:   awssdk.String("status"),
				Values: []string{inventory.VolumeAvailable},
			},
		},
	}

	for {
		out, err := client.DescribeVolumes(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe volumes: %w", err)
		}
		for _, v := range out.Volumes {
			volumes = append(volumes, inventory.Volume{
				ID:        awssdk.ToString(v.VolumeId),
				Status:    string(v.State),
				CreatedAt: awssdk.ToTime(v.CreateTime),
			})
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	slog.Debug("Listed EBS volumes", "count", len(volumes))
	return volumes, nil
}

// ListAddresses returns every elastic IP allocation.
func ListAddresses(ctx context.Context, client EC2API) ([]inventory.Address, error) {
	out, err := client.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("describe addresses: %w", err)
	}

	addresses := make([]inventory.Address, 0, len(out.Addresses))
	for _, a := range out.Addresses {
		addresses = append(addresses, inventory.Address{
			AllocationID: awssdk.ToString(a.AllocationId),
			PublicIP:     awssdk.ToString(a.PublicIp),
			InstanceID:   a.InstanceId,
		})
	}

	slog.Debug("Listed elastic IPs", "count", len(addresses))
	return addresses, nil
}

// ListSecurityGroups returns every security group.
func ListSecurityGroups(ctx context.Context, client EC2API) ([]inventory.SecurityGroup, error) {
	var groups []inventory.SecurityGroup
	input := &ec2.DescribeSecurityGroupsInput{}

	for {
		out, err := client.DescribeSecurityGroups(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe security groups: %w", err)
		}
		for _, g := range out.SecurityGroups {
			groups = append(groups, inventory.SecurityGroup{
				ID:   awssdk.ToString(g.GroupId),
				Name: awssdk.ToString(g.GroupName),
			})
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	slog.Debug("Listed security groups", "count", len(groups))
	return groups, nil
}

// ListNetworkInterfaces returns every interface with its attached groups.
func ListNetworkInterfaces(ctx context.Context, client EC2API) ([]inventory.NetworkInterface, error) {
	var interfaces []inventory.NetworkInterface
	input := &ec2.DescribeNetworkInterfacesInput{}

	for {
		out, err := client.DescribeNetworkInterfaces(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("describe network interfaces: %w", err)
		}
		for _, ni := range out.NetworkInterfaces {
			groupIDs := make([]string, 0, len(ni.Groups))
			for _, g := range ni.Groups {
				groupIDs = append(groupIDs, awssdk.ToString(g.GroupId))
			}
			interfaces = append(interfaces, inventory.NetworkInterface{
				ID:       awssdk.ToString(ni.NetworkInterfaceId),
				GroupIDs: groupIDs,
			})
		}
		if out.NextToken == nil {
			break
		}
		input.NextToken = out.NextToken
	}

	slog.Debug("Listed network interfaces", "count", len(interfaces))
	return interfaces, nil
}
