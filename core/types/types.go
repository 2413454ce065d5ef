// Package types defines the commercial catalog domain: SKU identifiers,
// the fixed ECS flavor and service enumerations, and the derived order model.
package types

// SKUID uniquely identifies a purchasable catalog entry.
type SKUID string

// Currency is the billing currency for all unit prices.
const Currency = "USD"

// BillingMode describes the billing cycle every unit price is quoted in.
const BillingMode = "Monthly"

// Flavor describes an ECS compute configuration.
type Flavor struct {
	ID    SKUID
	VCPU  int
	RAMGB int
	Label string
}

// Service describes a fixed add-on service SKU with its BOQ presentation
// labels.
type Service struct {
	ID       SKUID
	Category string
	Name     string
	Config   string
}

// Labels shared by every compute line item.
const (
	CategoryCompute    = "Compute Services (ECS)"
	NameVirtualMachine = "Virtual Machine"
)

// Flavors is the authoritative ECS flavor enumeration. Order is significant:
// the BOQ projects flavors in exactly this order.
var Flavors = []Flavor{
	{ID: "flavor_1_1", VCPU: 1, RAMGB: 1, Label: "1 vCPU 1 GB RAM"},
	{ID: "flavor_1_2", VCPU: 1, RAMGB: 2, Label: "1 vCPU 2 GB RAM"},
	{ID: "flavor_2_4", VCPU: 2, RAMGB: 4, Label: "2 vCPU 4 GB RAM"},
	{ID: "flavor_4_4", VCPU: 4, RAMGB: 4, Label: "4 vCPU 4 GB RAM"},
	{ID: "flavor_2_8", VCPU: 2, RAMGB: 8, Label: "2 vCPU 8 GB RAM"},
	{ID: "flavor_4_8", VCPU: 4, RAMGB: 8, Label: "4 vCPU 8 GB RAM"},
	{ID: "flavor_4_16", VCPU: 4, RAMGB: 16, Label: "4 vCPU 16 GB RAM"},
	{ID: "flavor_8_16", VCPU: 8, RAMGB: 16, Label: "8 vCPU 16 GB RAM"},
	{ID: "flavor_8_32", VCPU: 8, RAMGB: 32, Label: "8 vCPU 32 GB RAM"},
	{ID: "flavor_16_32", VCPU: 16, RAMGB: 32, Label: "16 vCPU 32 GB RAM"},
	{ID: "flavor_16_64", VCPU: 16, RAMGB: 64, Label: "16 vCPU 64 GB RAM"},
	{ID: "flavor_32_64", VCPU: 32, RAMGB: 64, Label: "32 vCPU 64 GB RAM"},
	{ID: "flavor_32_128", VCPU: 32, RAMGB: 128, Label: "32 vCPU 128 GB RAM"},
	{ID: "flavor_32_256", VCPU: 32, RAMGB: 256, Label: "32 vCPU 256 GB RAM"},
	{ID: "flavor_48_160", VCPU: 48, RAMGB: 160, Label: "48 vCPU 160 GB RAM"},
	{ID: "flavor_48_192", VCPU: 48, RAMGB: 192, Label: "48 vCPU 192 GB RAM"},
	{ID: "flavor_64_256", VCPU: 64, RAMGB: 256, Label: "64 vCPU 256 GB RAM"},
}

// Services is the authoritative add-on service enumeration. Order is
// significant: the BOQ projects services in exactly this order, after all
// flavors.
var Services = []Service{
	{ID: "evs", Category: "Storage Services", Name: "EVS Disk", Config: "Elastic Volume Storage (GB)"},
	{ID: "csdr", Category: "Disaster Recovery", Name: "CSDR Node", Config: "Disaster Recovery License"},
	{ID: "hss", Category: "Security Services", Name: "HSS Agent", Config: "Host Security Service (Number of ECS)"},
	{ID: "waf", Category: "Security Services", Name: "WAF 100M", Config: "Web App Firewall (Per 100 Mbps)"},
	{ID: "edge_fw", Category: "Security Services", Name: "Edge Firewall", Config: "Per vCPU of protected ECS"},
	{ID: "cloud_fw", Category: "Security Services", Name: "Cloud Firewall CFW", Config: "Per vCPU of protected ECS"},
	{ID: "hsm_kms", Category: "Security Services", Name: "HSM/KMS", Config: "Number of Keys"},
	{ID: "cce_vcpu", Category: "Container Services", Name: "CCE Worker", Config: "CCE Cluster (Total vCPU of Worker Nodes)"},
	{ID: "db_instance", Category: "Database as a Service", Name: "DB Instance", Config: "Managed RDS Instance"},
	{ID: "eip", Category: "Network Services", Name: "Elastic IP", Config: "EIP (Number)"},
	{ID: "bandwidth", Category: "Network Services", Name: "Bandwidth", Config: "Bandwidth (MB)"},
}

var (
	flavorIndex  = make(map[SKUID]Flavor, len(Flavors))
	serviceIndex = make(map[SKUID]Service, len(Services))
)

func init() {
	for _, f := range Flavors {
		flavorIndex[f.ID] = f
	}
	for _, s := range Services {
		serviceIndex[s.ID] = s
	}
}

// FlavorByID returns the flavor for a SKU, if it names one.
func FlavorByID(id SKUID) (Flavor, bool) {
	f, ok := flavorIndex[id]
	return f, ok
}

// ServiceByID returns the service for a SKU, if it names one.
func ServiceByID(id SKUID) (Service, bool) {
	s, ok := serviceIndex[id]
	return s, ok
}

// IsSKU reports whether id names a catalog entry.
func IsSKU(id SKUID) bool {
	_, flavor := flavorIndex[id]
	_, service := serviceIndex[id]
	return flavor || service
}

// AllSKUs returns every SKU identifier in projection order: flavors first,
// then services.
func AllSKUs() []SKUID {
	ids := make([]SKUID, 0, len(Flavors)+len(Services))
	for _, f := range Flavors {
		ids = append(ids, f.ID)
	}
	for _, s := range Services {
		ids = append(ids, s.ID)
	}
	return ids
}
