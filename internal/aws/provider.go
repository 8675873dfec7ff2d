package aws

import (
	"context"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

// Provider implements inventory.Provider on top of the EC2, ELBv2 and RDS APIs.
type Provider struct {
	ec2 EC2API
	elb ELBAPI
	rds RDSAPI
}

var _ inventory.Provider = (*Provider)(nil)

// NewProvider creates a provider from service clients.
func NewProvider(ec2 EC2API, elb ELBAPI, rds RDSAPI) *Provider {
	return &Provider{ec2: ec2, elb: elb, rds: rds}
}

func (p *Provider) ListInstances(ctx context.Context) ([]inventory.Instance, error) {
	return ListInstances(ctx, p.ec2)
}

func (p *Provider) ListVolumes(ctx context.Context) ([]inventory.Volume, error) {
	return ListVolumes(ctx, p.ec2)
}

func (p *Provider) ListAddresses(ctx context.Context) ([]inventory.Address, error) {
	return ListAddresses(ctx, p.ec2)
}

func (p *Provider) ListSecurityGroups(ctx context.Context) ([]inventory.SecurityGroup, error) {
	return ListSecurityGroups(ctx, p.ec2)
}

func (p *Provider) ListNetworkInterfaces(ctx context.Context) ([]inventory.NetworkInterface, error) {
	return ListNetworkInterfaces(ctx, p.ec2)
}

func (p *Provider) ListLoadBalancers(ctx context.Context) ([]inventory.LoadBalancer, error) {
	return ListLoadBalancers(ctx, p.elb)
}

func (p *Provider) ListDatabases(ctx context.Context) ([]inventory.Database, error) {
	return ListDatabases(ctx, p.rds)
}
