package main

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"fincheck/internal/property"
	"fincheck/internal/report"
)

var (
	timeoutMS     int64
	scenarioName  string
	initialSupply int64
	numOperations int
	bridgeAmount  int64
	poolBalance   int64
	feeBps        int64
	lockPeriod    int64
	numValidators int
	sigThreshold  int
)

var verifyCommand = &cobra.Command{
	Use:   "verify",
	Short: "run the property verification suite",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		if err := verifyExec(); err != nil {
			fmt.Printf("service err: %v", err)
		}
	},
}

func init() {
	verifyCommand.Flags().Int64Var(&timeoutMS, "timeout-ms", 30000, "solver time budget per property in milliseconds")
	verifyCommand.Flags().StringVar(&scenarioName, "scenario", "", "run a single scenario by name")
	verifyCommand.Flags().Int64Var(&initialSupply, "supply", 1000000, "initial token supply")
	verifyCommand.Flags().IntVar(&numOperations, "ops", 3, "number of transfers in the conservation chain")
	verifyCommand.Flags().Int64Var(&bridgeAmount, "amount", 1000, "bridged amount")
	verifyCommand.Flags().Int64Var(&poolBalance, "pool", 100000, "initial liquidity pool balance")
	verifyCommand.Flags().Int64Var(&feeBps, "fee-bps", 30, "pool fee in basis points")
	verifyCommand.Flags().Int64Var(&lockPeriod, "lock-period", 50400, "timelock challenge period in blocks")
	verifyCommand.Flags().IntVar(&numValidators, "validators", 9, "bridge validator count")
	verifyCommand.Flags().IntVar(&sigThreshold, "threshold", 5, "signature threshold")
}

func verifyExec() error {
	yices2.Init()
	defer yices2.Exit()

	checker := property.NewChecker(
		property.WithTimeout(time.Duration(timeoutMS) * time.Millisecond))
	defer checker.Close()

	type scenario struct {
		name string
		run  func() (*report.Finding, error)
	}
	scenarios := []scenario{
		{"erc20-conservation", func() (*report.Finding, error) {
			return checker.CheckConservation(initialSupply, numOperations)
		}},
		{"bridge-conservation", func() (*report.Finding, error) {
			return checker.CheckBridgeConservation(bridgeAmount)
		}},
		{"integer-overflow", func() (*report.Finding, error) {
			return checker.CheckOverflow(nil)
		}},
		{"bridge-replay", func() (*report.Finding, error) {
			return checker.CheckReplayVulnerability()
		}},
		{"multihop-bridge", func() (*report.Finding, error) {
			return checker.CheckMultiHopBridge(bridgeAmount)
		}},
		{"pool-fee-conservation", func() (*report.Finding, error) {
			return checker.CheckPoolWithFees(poolBalance, feeBps)
		}},
		{"timelock-safety", func() (*report.Finding, error) {
			return checker.CheckTimelock(lockPeriod)
		}},
		{"byzantine-threshold", func() (*report.Finding, error) {
			return checker.CheckByzantineThreshold(numValidators, sigThreshold)
		}},
		{"atomic-swap-fairness", func() (*report.Finding, error) {
			return checker.CheckAtomicSwapFairness()
		}},
	}

	startTime := time.Now()
	var findings []*report.Finding
	for _, sc := range scenarios {
		if scenarioName != "" && sc.name != scenarioName {
			continue
		}
		finding, err := sc.run()
		if err != nil {
			return errors.Wrapf(err, "scenario %s", sc.name)
		}
		fmt.Println(finding)
		findings = append(findings, finding)
	}
	if len(findings) == 0 {
		return errors.Errorf("unknown scenario %q", scenarioName)
	}

	fmt.Println(report.Summary(findings))
	fmt.Println("verify time used: ", time.Since(startTime).Seconds())
	return nil
}
