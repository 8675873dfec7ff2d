// Package classify turns provider snapshots into findings. Every rule is a
// pure function of its inputs: no I/O, no shared mutable state.
package classify

import (
	"fmt"
	"time"

	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/pricing"
)

// DefaultAgeThresholdDays is the minimum age of an unattached volume before it
// is reported.
const DefaultAgeThresholdDays = 30

// Rules holds the static parameters shared by all classifiers.
type Rules struct {
	AgeThresholdDays int
	Costs            pricing.Costs
}

// DefaultRules returns the rules used when nothing is configured.
func DefaultRules() Rules {
	return Rules{
		AgeThresholdDays: DefaultAgeThresholdDays,
		Costs:            pricing.DefaultCosts,
	}
}

// GroupSet is the set of security group IDs referenced by network interfaces.
// It is built once by UsedGroups and only read afterwards.
type GroupSet map[string]struct{}

// Has reports whether id is referenced.
func (s GroupSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// UsedGroups collects every security group ID attached to any interface.
func UsedGroups(interfaces []inventory.NetworkInterface) GroupSet {
	used := make(GroupSet)
	for _, ni := range interfaces {
		for _, id := range ni.GroupIDs {
			used[id] = struct{}{}
		}
	}
	return used
}

// Instances flags every stopped compute instance. There is no age threshold.
func (r Rules) Instances(instances []inventory.Instance) []inventory.Finding {
	var findings []inventory.Finding
	for _, inst := range instances {
		if inst.State != inventory.StateStopped {
			continue
		}
		findings = append(findings, r.finding(inventory.ResourceComputeInstance, inst.ID, "stopped"))
	}
	return findings
}

// Volumes flags available volumes whose age in whole days is at least the
// threshold. A volume exactly at the threshold counts.
func (r Rules) Volumes(volumes []inventory.Volume, now time.Time) []inventory.Finding {
	var findings []inventory.Finding
	for _, v := range volumes {
		if v.Status != inventory.VolumeAvailable {
			continue
		}
		if AgeDays(v.CreatedAt, now) < r.AgeThresholdDays {
			continue
		}
		reason := fmt.Sprintf("unattached (%d+ days)", r.AgeThresholdDays)
		findings = append(findings, r.finding(inventory.ResourceVolume, v.ID, reason))
	}
	return findings
}

// Addresses flags floating IPs with no instance reference at all.
func (r Rules) Addresses(addresses []inventory.Address) []inventory.Finding {
	var findings []inventory.Finding
	for _, a := range addresses {
		if a.InstanceID != nil {
			continue
		}
		findings = append(findings, r.finding(inventory.ResourceFloatingIP, a.AllocationID, "unattached"))
	}
	return findings
}

// SecurityGroups flags groups no interface references. The default group is
// never reported.
func (r Rules) SecurityGroups(groups []inventory.SecurityGroup, used GroupSet) []inventory.Finding {
	var findings []inventory.Finding
	for _, g := range groups {
		if g.Name == inventory.DefaultGroup || used.Has(g.ID) {
			continue
		}
		findings = append(findings, r.finding(inventory.ResourceSecurityGroup, g.ID, "unused"))
	}
	return findings
}

// LoadBalancers flags load balancers whose target group listing is empty.
// Target health is not considered.
func (r Rules) LoadBalancers(lbs []inventory.LoadBalancer) []inventory.Finding {
	var findings []inventory.Finding
	for _, lb := range lbs {
		if len(lb.TargetGroups) > 0 {
			continue
		}
		findings = append(findings, r.finding(inventory.ResourceLoadBalancer, lb.Name, "without target groups"))
	}
	return findings
}

// Databases flags stopped managed databases.
func (r Rules) Databases(dbs []inventory.Database) []inventory.Finding {
	var findings []inventory.Finding
	for _, db := range dbs {
		if db.Status != inventory.StateStopped {
			continue
		}
		findings = append(findings, r.finding(inventory.ResourceManagedDatabase, db.ID, "stopped"))
	}
	return findings
}

// AgeDays returns whole days elapsed between created and now, truncated.
func AgeDays(created, now time.Time) int {
	return int(now.Sub(created).Hours() / 24)
}

func (r Rules) finding(rt inventory.ResourceType, id, reason string) inventory.Finding {
	return inventory.Finding{
		ResourceType:         rt,
		ResourceID:           id,
		EstimatedMonthlyCost: r.Costs.For(rt),
		Reason:               reason,
	}
}
