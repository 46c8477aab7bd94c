// Copyright (c) 2018 The Bitcoin Interest developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command powcheck is a small demonstration front-end for the
// consensus core: it prints a network's derived difficulty quantities
// and its genesis header hash, the way a developer would sanity-check a
// params table against the deployed chain without spinning up a node.
package main

import (
	"fmt"
	"os"

	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/pow"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/core/types"
	"github.com/BitcoinInterestOfficial/BitcoinInterest/params"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "powcheck",
		Usage: "inspect a network's PoW consensus parameters",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "network",
				Value: "main",
				Usage: "main, test, or regtest",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	p, err := params.Select(c.String("network"))
	if err != nil {
		return err
	}

	fmt.Printf("network:                    %s\n", p.Name)
	fmt.Printf("difficulty adjust interval: %d blocks\n", p.DifficultyAdjustmentInterval())
	fmt.Printf("averaging window timespan:  %d s\n", p.AveragingWindowTimespan())
	fmt.Printf("pow limit (postfork) bits:  0x%08x\n", types.BigToCompact(p.PowLimitPostfork))

	h, err := pow.HashHeader(p.Genesis, p, nil)
	if err != nil {
		return err
	}
	fmt.Printf("genesis hash:               %s\n", h)
	return nil
}
