// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epigraphia/liberalitas/corpus"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics over the collection",
}

var statsLocationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Record counts per findspot",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		collection, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		for _, entry := range collection.LocationFrequency() {
			fmt.Printf("%5d  %s\n", entry.Count, entry.Label)
		}

		return nil
	},
}

var statsWordsTop int

var statsWordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Word frequency over all transcriptions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		collection, cfg, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		for _, entry := range collection.WordFrequency(cfg.StopwordSet(), statsWordsTop) {
			fmt.Printf("%5d  %s\n", entry.Count, entry.Word)
		}

		return nil
	},
}

var statsCompletenessCmd = &cobra.Command{
	Use:   "completeness",
	Short: "Fraction of records with each field filled",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		collection, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		fields := corpus.Fields()

		fractions, err := collection.Completeness(fields)
		if err != nil {
			return err
		}

		for _, field := range fields {
			fmt.Printf("%6.1f%%  %s\n", fractions[field]*100, field)
		}

		return nil
	},
}

var statsCellsRes int

var statsCellsCmd = &cobra.Command{
	Use:   "cells",
	Short: "Resolved records binned into H3 cells",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		collection, _, err := runPipeline(cmd)
		if err != nil {
			return err
		}

		cells, err := collection.CellFrequency(statsCellsRes)
		if err != nil {
			return err
		}

		for _, entry := range cells {
			fmt.Printf("%5d  %s\n", entry.Count, entry.Cell)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsLocationsCmd)
	statsCmd.AddCommand(statsWordsCmd)
	statsCmd.AddCommand(statsCompletenessCmd)
	statsCmd.AddCommand(statsCellsCmd)
	statsWordsCmd.Flags().IntVar(
		&statsWordsTop,
		"top",
		20,
		"Number of entries to show (0 shows all)",
	)
	statsCellsCmd.Flags().IntVar(
		&statsCellsRes,
		"res",
		3,
		"H3 resolution for the binning",
	)
}
