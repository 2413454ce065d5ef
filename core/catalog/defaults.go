package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/yhussainn/Meeza-Huawei-HCS-Calculator/core/types"
)

// defaultPrices is the contract baseline: these exact monthly unit prices
// must be reproduced by every reset.
var defaultPrices = map[types.SKUID]string{
	"evs":         "0.15",
	"csdr":        "15.00",
	"hss":         "5.00",
	"waf":         "45.00",
	"edge_fw":     "0.85",
	"cloud_fw":    "0.75",
	"hsm_kms":     "2.50",
	"cce_vcpu":    "1.20",
	"db_instance": "22.00",
	"eip":         "3.00",
	"bandwidth":   "5.50",

	"flavor_1_1":    "15.00",
	"flavor_1_2":    "22.00",
	"flavor_2_4":    "35.00",
	"flavor_4_4":    "45.00",
	"flavor_2_8":    "55.00",
	"flavor_4_8":    "65.00",
	"flavor_4_16":   "85.00",
	"flavor_8_16":   "110.00",
	"flavor_8_32":   "150.00",
	"flavor_16_32":  "210.00",
	"flavor_16_64":  "290.00",
	"flavor_32_64":  "410.00",
	"flavor_32_128": "580.00",
	"flavor_32_256": "850.00",
	"flavor_48_160": "950.00",
	"flavor_48_192": "1100.00",
	"flavor_64_256": "1450.00",
}

// Defaults returns the built-in default catalog. Each call returns an
// independent catalog; no amount of editing elsewhere can change it.
func Defaults() Catalog {
	prices := make(map[types.SKUID]decimal.Decimal, len(defaultPrices))
	for id, raw := range defaultPrices {
		prices[id] = decimal.RequireFromString(raw)
	}
	c, err := New(prices)
	if err != nil {
		panic("catalog: default catalog invalid: " + err.Error())
	}
	return c
}
