package main

import (
	"fmt"
	"time"

	yices2 "github.com/ianamason/yices2_go_bindings/yices_api"
	"github.com/spf13/cobra"

	"fincheck/internal/engine"
	"fincheck/internal/hoare"
	"fincheck/internal/report"
)

var (
	proveTimeoutMS int64
	proveBalance   int64
	proveAmount    int64
)

var proveCommand = &cobra.Command{
	Use:   "prove",
	Short: "discharge the Hoare style proof obligations",
	Long:  ``,
	Run: func(*cobra.Command, []string) {
		if err := proveExec(); err != nil {
			fmt.Printf("service err: %v", err)
		}
	},
}

func init() {
	proveCommand.Flags().Int64Var(&proveTimeoutMS, "timeout-ms", 30000, "solver time budget per obligation in milliseconds")
	proveCommand.Flags().Int64Var(&proveBalance, "balance", 100, "concrete pre-transfer balance")
	proveCommand.Flags().Int64Var(&proveAmount, "transfer", 50, "concrete transfer amount")
}

func proveExec() error {
	yices2.Init()
	defer yices2.Exit()

	prover := hoare.NewProver(
		hoare.WithTimeout(time.Duration(proveTimeoutMS) * time.Millisecond))
	defer prover.Close()

	transfer, err := prover.ProveTransferSafety(proveBalance, proveAmount)
	if err != nil {
		return err
	}
	printObligation(transfer)

	proof, err := prover.ProveBridgeInductive()
	if err != nil {
		return err
	}
	printObligation(proof.Base)
	printObligation(proof.UnpairedStep)
	if !proof.UnpairedStep.Valid {
		fmt.Println("  an unpaired lock breaks the invariant; the mint must be paired")
	}
	printObligation(proof.PairedStep)

	fmt.Printf("bridge invariant inductive: %t\n", proof.Valid())
	return nil
}

func printObligation(result *hoare.ObligationResult) {
	colour := 32
	if !result.Valid {
		colour = 31
	}
	fmt.Print(report.Colour(colour, fmt.Sprintf("[%s] %s\n", result.Outcome, result.Name)))
	if result.Outcome == engine.Violated {
		for _, a := range result.Witness {
			fmt.Printf("  %-16s %s\n", a.Name, a.Value)
		}
	}
}
