// Copyright (c) 2017-2018 The qitmeer developers
// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package params

import "fmt"

// ByName maps a network name to its Params instance, the set a caller may
// select among. It intentionally excludes any notion of a single active
// network: every consensus function in this module takes a *Params
// argument explicitly (§9's "Model as an explicit handle" resolution),
// so there is no hidden global for consensus code to read.
var ByName = map[string]*Params{
	MainNetParams.Name:       MainNetParams,
	TestNetParams.Name:       TestNetParams,
	RegressionNetParams.Name: RegressionNetParams,
}

// Select resolves a network name to its Params handle. Callers own the
// resulting pointer for the lifetime of the process; this package never
// mutates it except through the caller's own OverrideDeployment calls.
func Select(network string) (*Params, error) {
	p, ok := ByName[network]
	if !ok {
		return nil, fmt.Errorf("params: unknown network %q", network)
	}
	return p, nil
}

// MustSelect is the panicking convenience form of Select, for call sites
// (test harnesses, cmd/ entry points) that treat an unknown network name
// as a programmer error rather than a recoverable condition.
func MustSelect(network string) *Params {
	p, err := Select(network)
	if err != nil {
		panic(err)
	}
	return p
}
