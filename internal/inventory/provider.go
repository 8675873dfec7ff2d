package inventory

import "context"

// Provider lists the current state of every tracked resource type. Each call
// is independent; a failure in one listing says nothing about the others.
type Provider interface {
	ListInstances(ctx context.Context) ([]Instance, error)
	ListVolumes(ctx context.Context) ([]Volume, error)
	ListAddresses(ctx context.Context) ([]Address, error)
	ListSecurityGroups(ctx context.Context) ([]SecurityGroup, error)
	ListNetworkInterfaces(ctx context.Context) ([]NetworkInterface, error)
	ListLoadBalancers(ctx context.Context) ([]LoadBalancer, error)
	ListDatabases(ctx context.Context) ([]Database, error)
}
