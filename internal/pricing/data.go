package pricing

// DefaultCosts are flat monthly estimates per idle resource, in the
// deployment's currency (INR by default). Compute instances and security
// groups carry no estimate without usage history.
var DefaultCosts = Costs{
	ComputeInstance: 0,
	Volume:          800,
	FloatingIP:      350,
	SecurityGroup:   0,
	LoadBalancer:    1300,
	ManagedDatabase: 1500,
}

// DefaultCurrency prefixes amounts in human-readable output.
const DefaultCurrency = "₹"
