package pricing

import "github.com/ppiankov/idlespectre/internal/inventory"

// Costs holds the flat monthly estimate applied to every finding of a type.
type Costs struct {
	ComputeInstance float64 `json:"compute_instance"`
	Volume          float64 `json:"volume"`
	FloatingIP      float64 `json:"floating_ip"`
	SecurityGroup   float64 `json:"security_group"`
	LoadBalancer    float64 `json:"load_balancer"`
	ManagedDatabase float64 `json:"managed_database"`
}

// Overrides holds configured per-type estimates. A nil field keeps the
// default; an explicit 0 means no estimate for that type.
type Overrides struct {
	ComputeInstance *float64 `yaml:"compute_instance" validate:"omitempty,gte=0"`
	Volume          *float64 `yaml:"volume" validate:"omitempty,gte=0"`
	FloatingIP      *float64 `yaml:"floating_ip" validate:"omitempty,gte=0"`
	SecurityGroup   *float64 `yaml:"security_group" validate:"omitempty,gte=0"`
	LoadBalancer    *float64 `yaml:"load_balancer" validate:"omitempty,gte=0"`
	ManagedDatabase *float64 `yaml:"managed_database" validate:"omitempty,gte=0"`
}

// For returns the flat estimate for a resource type. Unknown types cost 0.
func (c Costs) For(rt inventory.ResourceType) float64 {
	switch rt {
	case inventory.ResourceComputeInstance:
		return nonNegative(c.ComputeInstance)
	case inventory.ResourceVolume:
		return nonNegative(c.Volume)
	case inventory.ResourceFloatingIP:
		return nonNegative(c.FloatingIP)
	case inventory.ResourceSecurityGroup:
		return nonNegative(c.SecurityGroup)
	case inventory.ResourceLoadBalancer:
		return nonNegative(c.LoadBalancer)
	case inventory.ResourceManagedDatabase:
		return nonNegative(c.ManagedDatabase)
	default:
		return 0
	}
}

// Merge returns c with every set, non-negative override applied on top.
func (c Costs) Merge(o Overrides) Costs {
	merged := c
	apply(&merged.ComputeInstance, o.ComputeInstance)
	apply(&merged.Volume, o.Volume)
	apply(&merged.FloatingIP, o.FloatingIP)
	apply(&merged.SecurityGroup, o.SecurityGroup)
	apply(&merged.LoadBalancer, o.LoadBalancer)
	apply(&merged.ManagedDatabase, o.ManagedDatabase)
	return merged
}

func apply(dst *float64, v *float64) {
	if v != nil && *v >= 0 {
		*dst = *v
	}
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
