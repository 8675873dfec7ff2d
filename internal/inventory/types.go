package inventory

import "time"

// ResourceType identifies the kind of cloud resource a finding refers to.
type ResourceType string

const (
	ResourceComputeInstance ResourceType = "ComputeInstance"
	ResourceVolume          ResourceType = "Volume"
	ResourceFloatingIP      ResourceType = "FloatingIP"
	ResourceSecurityGroup   ResourceType = "SecurityGroup"
	ResourceLoadBalancer    ResourceType = "LoadBalancer"
	ResourceManagedDatabase ResourceType = "ManagedDatabase"
)

// ResourceTypes lists every tracked type in evaluation order. Reports keep
// findings grouped in this order.
var ResourceTypes = []ResourceType{
	ResourceComputeInstance,
	ResourceVolume,
	ResourceFloatingIP,
	ResourceSecurityGroup,
	ResourceLoadBalancer,
	ResourceManagedDatabase,
}

// Finding represents a single idle resource and what it costs per month.
type Finding struct {
	ResourceType         ResourceType `json:"resource_type"`
	ResourceID           string       `json:"resource_id"`
	EstimatedMonthlyCost float64      `json:"estimated_monthly_cost"`
	Reason               string       `json:"reason"`
}

// Lifecycle values the classifiers look for.
const (
	StateStopped    = "stopped"
	VolumeAvailable = "available"
	DefaultGroup    = "default"
)

// Instance is a compute instance as listed by the provider.
type Instance struct {
	ID    string
	State string
}

// Volume is a block storage volume.
type Volume struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

// Address is a floating (elastic) IP allocation. InstanceID is nil when the
// address is not associated with any instance.
type Address struct {
	AllocationID string
	PublicIP     string
	InstanceID   *string
}

// SecurityGroup is a network security group.
type SecurityGroup struct {
	ID   string
	Name string
}

// NetworkInterface carries the security groups attached to one interface.
type NetworkInterface struct {
	ID       string
	GroupIDs []string
}

// LoadBalancer holds a load balancer with the target groups registered to it.
type LoadBalancer struct {
	ARN          string
	Name         string
	TargetGroups []string
}

// Database is a managed database instance.
type Database struct {
	ID     string
	Status string
}

// ScanProgress reports scanning progress to callers.
type ScanProgress struct {
	Region    string
	Stage     string
	Message   string
	Timestamp time.Time
}
