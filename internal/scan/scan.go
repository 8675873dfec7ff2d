// Package scan runs one idle-resource scan: read inventory, classify,
// aggregate, store the CSV artifact and send the notification.
package scan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/idlespectre/internal/analyzer"
	"github.com/ppiankov/idlespectre/internal/classify"
	"github.com/ppiankov/idlespectre/internal/inventory"
	"github.com/ppiankov/idlespectre/internal/notify"
	"github.com/ppiankov/idlespectre/internal/report"
)

type snapshot struct {
	instances  []inventory.Instance
	volumes    []inventory.Volume
	addresses  []inventory.Address
	groups     []inventory.SecurityGroup
	interfaces []inventory.NetworkInterface
	lbs        []inventory.LoadBalancer
	dbs        []inventory.Database

	instancesErr  error
	volumesErr    error
	addressesErr  error
	groupsErr     error
	interfacesErr error
	lbsErr        error
	dbsErr        error
}

// snapshotListings is the number of independent provider calls per scan.
const snapshotListings = 7

// failures returns the failed listings' errors in fetch order.
func (s *snapshot) failures() []error {
	var errs []error
	for _, err := range []error{
		s.instancesErr, s.volumesErr, s.addressesErr, s.groupsErr,
		s.interfacesErr, s.lbsErr, s.dbsErr,
	} {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// Run executes a full scan. Inventory read failures are isolated per resource
// type and reported in Result.Errors, unless every listing failed. Artifact
// and notification failures abort the run.
func Run(ctx context.Context, deps Deps, opts Options) (*Result, error) {
	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	scanTime := now()

	progress(deps, opts, now(), StageInventory, "Listing resources")
	snap := fetch(ctx, deps.Provider)
	if err := ctx.Err(); err != nil {
		return nil, &StageError{Stage: StageInventory, Err: err}
	}
	if errs := snap.failures(); len(errs) == snapshotListings {
		return nil, &StageError{Stage: StageInventory, Err: errors.Join(errs...)}
	}

	result := &Result{}
	rules := opts.Rules
	var outputs [][]inventory.Finding

	record := func(rt inventory.ResourceType, err error) bool {
		if err == nil {
			return true
		}
		serr := &StageError{Stage: StageInventory, ResourceType: rt, Err: err}
		slog.Warn("Inventory read failed", "type", rt, "error", err)
		result.Errors = append(result.Errors, serr.Error())
		return false
	}

	if record(inventory.ResourceComputeInstance, snap.instancesErr) {
		outputs = append(outputs, rules.Instances(snap.instances))
	}
	if record(inventory.ResourceVolume, snap.volumesErr) {
		outputs = append(outputs, rules.Volumes(snap.volumes, scanTime))
	}
	if record(inventory.ResourceFloatingIP, snap.addressesErr) {
		outputs = append(outputs, rules.Addresses(snap.addresses))
	}
	// Without the interface listing every group would look unused.
	groupsOK := record(inventory.ResourceSecurityGroup, snap.groupsErr)
	interfacesOK := record(inventory.ResourceSecurityGroup, snap.interfacesErr)
	if groupsOK && interfacesOK {
		outputs = append(outputs, rules.SecurityGroups(snap.groups, classify.UsedGroups(snap.interfaces)))
	}
	if record(inventory.ResourceLoadBalancer, snap.lbsErr) {
		outputs = append(outputs, rules.LoadBalancers(snap.lbs))
	}
	if record(inventory.ResourceManagedDatabase, snap.dbsErr) {
		outputs = append(outputs, rules.Databases(snap.dbs))
	}

	for i := range outputs {
		outputs[i] = exclude(outputs[i], opts.ExcludeIDs)
	}
	rep := analyzer.Aggregate(outputs...)
	slog.Debug("Classified resources", "findings", rep.Len(), "total", rep.TotalMonthlyCost())

	progress(deps, opts, now(), StageArtifact, fmt.Sprintf("Writing report with %d findings", rep.Len()))
	data, err := report.RenderCSV(rep)
	if err != nil {
		return nil, &StageError{Stage: StageArtifact, Err: err}
	}
	name := report.ArtifactName(opts.ArtifactPrefix, scanTime)
	if err := deps.Store.Put(ctx, name, data); err != nil {
		return nil, &StageError{Stage: StageArtifact, Err: err}
	}

	progress(deps, opts, now(), StageNotify, "Sending notification")
	if err := deps.Notifier.Send(ctx, notify.Compose(rep, opts.Currency)); err != nil {
		return nil, &StageError{Stage: StageNotify, Err: err}
	}

	result.Status = StatusSuccess
	result.ResourcesFound = rep.Len()
	result.EstimatedSaving = rep.TotalMonthlyCost()
	result.Artifact = deps.Store.Location(name)
	result.Report = rep
	return result, nil
}

// fetch reads every snapshot concurrently. Each listing writes only its own
// fields, so no locking is needed.
func fetch(ctx context.Context, p inventory.Provider) *snapshot {
	s := &snapshot{}
	var g errgroup.Group

	g.Go(func() error {
		s.instances, s.instancesErr = p.ListInstances(ctx)
		return nil
	})
	g.Go(func() error {
		s.volumes, s.volumesErr = p.ListVolumes(ctx)
		return nil
	})
	g.Go(func() error {
		s.addresses, s.addressesErr = p.ListAddresses(ctx)
		return nil
	})
	g.Go(func() error {
		s.groups, s.groupsErr = p.ListSecurityGroups(ctx)
		return nil
	})
	g.Go(func() error {
		s.interfaces, s.interfacesErr = p.ListNetworkInterfaces(ctx)
		return nil
	})
	g.Go(func() error {
		s.lbs, s.lbsErr = p.ListLoadBalancers(ctx)
		return nil
	})
	g.Go(func() error {
		s.dbs, s.dbsErr = p.ListDatabases(ctx)
		return nil
	})

	_ = g.Wait()
	return s
}

func exclude(findings []inventory.Finding, ids map[string]bool) []inventory.Finding {
	if len(ids) == 0 {
		return findings
	}
	kept := make([]inventory.Finding, 0, len(findings))
	for _, f := range findings {
		if ids[f.ResourceID] {
			slog.Debug("Excluded resource", "type", f.ResourceType, "id", f.ResourceID)
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

func progress(deps Deps, opts Options, at time.Time, stage Stage, msg string) {
	if deps.Progress == nil {
		return
	}
	deps.Progress(inventory.ScanProgress{
		Region:    opts.Region,
		Stage:     string(stage),
		Message:   msg,
		Timestamp: at,
	})
}
