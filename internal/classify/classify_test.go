package classify

import (
	"testing"
	"time"

	"github.com/ppiankov/idlespectre/internal/inventory"
)

var now = time.Date(2026, 2, 28, 12, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestInstancesStoppedOnly(t *testing.T) {
	findings := DefaultRules().Instances([]inventory.Instance{
		{ID: "i-1", State: "stopped"},
		{ID: "i-2", State: "running"},
		{ID: "i-3", State: "stopping"},
		{ID: "i-4", State: "stopped"},
	})

	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].ResourceID != "i-1" || findings[1].ResourceID != "i-4" {
		t.Errorf("order = %q, %q; want i-1, i-4", findings[0].ResourceID, findings[1].ResourceID)
	}
	for _, f := range findings {
		if f.ResourceType != inventory.ResourceComputeInstance {
			t.Errorf("type = %q, want ComputeInstance", f.ResourceType)
		}
		if f.EstimatedMonthlyCost != 0 {
			t.Errorf("cost = %v, want 0", f.EstimatedMonthlyCost)
		}
		if f.Reason != "stopped" {
			t.Errorf("reason = %q, want stopped", f.Reason)
		}
	}
}

func TestVolumesThresholdBoundary(t *testing.T) {
	tests := []struct {
		name    string
		age     int
		status  string
		flagged bool
	}{
		{"exactly threshold", 30, "available", true},
		{"one day below", 29, "available", false},
		{"well above", 40, "available", true},
		{"attached old volume", 400, "in-use", false},
		{"created today", 0, "available", false},
	}
	for _, tt := range tests {
		vols := []inventory.Volume{{ID: "vol-1", Status: tt.status, CreatedAt: now.AddDate(0, 0, -tt.age)}}
		findings := DefaultRules().Volumes(vols, now)
		if got := len(findings) == 1; got != tt.flagged {
			t.Errorf("%s: flagged = %v, want %v", tt.name, got, tt.flagged)
		}
	}
}

func TestVolumesPartialDayTruncates(t *testing.T) {
	// 29 days and 23 hours is still 29 whole days.
	vols := []inventory.Volume{{ID: "vol-1", Status: "available", CreatedAt: now.Add(-(30*24 - 1) * time.Hour)}}
	if findings := DefaultRules().Volumes(vols, now); len(findings) != 0 {
		t.Errorf("expected no finding for 29.96 days, got %d", len(findings))
	}
}

func TestVolumesCostAndReason(t *testing.T) {
	vols := []inventory.Volume{{ID: "vol-1", Status: "available", CreatedAt: now.AddDate(0, 0, -40)}}
	findings := DefaultRules().Volumes(vols, now)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].EstimatedMonthlyCost != 800 {
		t.Errorf("cost = %v, want 800", findings[0].EstimatedMonthlyCost)
	}
	if findings[0].Reason != "unattached (30+ days)" {
		t.Errorf("reason = %q", findings[0].Reason)
	}
}

func TestVolumesCustomThreshold(t *testing.T) {
	r := DefaultRules()
	r.AgeThresholdDays = 7
	vols := []inventory.Volume{{ID: "vol-1", Status: "available", CreatedAt: now.AddDate(0, 0, -7)}}
	if findings := r.Volumes(vols, now); len(findings) != 1 {
		t.Errorf("expected 1 finding with 7-day threshold, got %d", len(findings))
	}
}

func TestAddressesUnattachedOnly(t *testing.T) {
	findings := DefaultRules().Addresses([]inventory.Address{
		{AllocationID: "eipalloc-1"},
		{AllocationID: "eipalloc-2", InstanceID: strPtr("i-1")},
		{AllocationID: "eipalloc-3", InstanceID: strPtr("")},
	})

	if len(findings) != 1 {
		t.Fatalf("expected exactly 1 finding, got %d", len(findings))
	}
	if findings[0].ResourceID != "eipalloc-1" {
		t.Errorf("id = %q, want eipalloc-1", findings[0].ResourceID)
	}
	if findings[0].EstimatedMonthlyCost != 350 {
		t.Errorf("cost = %v, want 350", findings[0].EstimatedMonthlyCost)
	}
}

func TestUsedGroups(t *testing.T) {
	used := UsedGroups([]inventory.NetworkInterface{
		{ID: "eni-1", GroupIDs: []string{"sg-1", "sg-2"}},
		{ID: "eni-2", GroupIDs: []string{"sg-2"}},
		{ID: "eni-3"},
	})
	if len(used) != 2 {
		t.Errorf("len = %d, want 2", len(used))
	}
	if !used.Has("sg-1") || !used.Has("sg-2") {
		t.Error("missing expected group")
	}
	if used.Has("sg-3") {
		t.Error("unexpected group sg-3")
	}
}

func TestSecurityGroups(t *testing.T) {
	used := GroupSet{"sg-used": {}, "sg-default-used": {}}
	findings := DefaultRules().SecurityGroups([]inventory.SecurityGroup{
		{ID: "sg-used", Name: "web"},
		{ID: "sg-free", Name: "legacy"},
		{ID: "sg-default", Name: "default"},
		{ID: "sg-default-used", Name: "default"},
		{ID: "sg-used", Name: "whatever"},
	}, used)

	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].ResourceID != "sg-free" {
		t.Errorf("id = %q, want sg-free", findings[0].ResourceID)
	}
	if findings[0].EstimatedMonthlyCost != 0 {
		t.Errorf("cost = %v, want 0", findings[0].EstimatedMonthlyCost)
	}
}

func TestSecurityGroupsNilUsedSet(t *testing.T) {
	findings := DefaultRules().SecurityGroups([]inventory.SecurityGroup{{ID: "sg-1", Name: "app"}}, nil)
	if len(findings) != 1 {
		t.Errorf("expected 1 finding with empty used set, got %d", len(findings))
	}
}

func TestLoadBalancers(t *testing.T) {
	findings := DefaultRules().LoadBalancers([]inventory.LoadBalancer{
		{ARN: "arn:1", Name: "empty-lb"},
		{ARN: "arn:2", Name: "busy-lb", TargetGroups: []string{"tg-unhealthy"}},
		{ARN: "arn:3", Name: "empty-slice-lb", TargetGroups: []string{}},
	})

	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].ResourceID != "empty-lb" || findings[1].ResourceID != "empty-slice-lb" {
		t.Errorf("ids = %q, %q", findings[0].ResourceID, findings[1].ResourceID)
	}
	if findings[0].EstimatedMonthlyCost != 1300 {
		t.Errorf("cost = %v, want 1300", findings[0].EstimatedMonthlyCost)
	}
}

func TestDatabases(t *testing.T) {
	findings := DefaultRules().Databases([]inventory.Database{
		{ID: "db-1", Status: "stopped"},
		{ID: "db-2", Status: "available"},
		{ID: "db-3", Status: "stopping"},
	})
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].ResourceID != "db-1" || findings[0].EstimatedMonthlyCost != 1500 {
		t.Errorf("finding = %+v", findings[0])
	}
}

func TestEmptyInputsYieldNoFindings(t *testing.T) {
	r := DefaultRules()
	if n := len(r.Instances(nil)) + len(r.Volumes(nil, now)) + len(r.Addresses(nil)) +
		len(r.SecurityGroups(nil, nil)) + len(r.LoadBalancers(nil)) + len(r.Databases(nil)); n != 0 {
		t.Errorf("expected 0 findings, got %d", n)
	}
}

func TestAgeDays(t *testing.T) {
	tests := []struct {
		created time.Time
		want    int
	}{
		{now, 0},
		{now.Add(-23 * time.Hour), 0},
		{now.Add(-24 * time.Hour), 1},
		{now.AddDate(0, 0, -30), 30},
		{now.Add(48 * time.Hour), -2},
	}
	for _, tt := range tests {
		if got := AgeDays(tt.created, now); got != tt.want {
			t.Errorf("AgeDays(%v) = %d, want %d", tt.created, got, tt.want)
		}
	}
}
