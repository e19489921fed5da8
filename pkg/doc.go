// Package pkg provides the core libraries for the cleardef definitions client.
//
// # Overview
//
// cleardef is a client-side data layer for a component definitions service:
// it parses component coordinates, builds bounded batch requests, and decodes
// definition records tolerantly so one malformed block never sinks a batch.
// The pkg directory is organized into five areas:
//
//  1. [coordinate] - Coordinate texts, shapes, providers, and versions
//  2. [definitions] - Definition records, tolerant decoding, requests, client
//  3. [errors] - Structured error codes shared across packages
//  4. [config] - TOML configuration with XDG path resolution
//  5. [observability] - Request and decode hooks for callers that want telemetry
//
// # Architecture
//
// The typical data flow through a lookup:
//
//	Coordinate texts
//	         ↓
//	    [coordinate] package (parse + validate)
//	         ↓
//	    [definitions] package (chunk → POST → tolerant decode)
//	         ↓
//	    Definition records (pending or harvested)
//
// # Quick Start
//
//	coord, err := coordinate.Parse("crate/cratesio/-/syn/1.0.14")
//	if err != nil {
//		return err
//	}
//
//	client := definitions.NewClient(definitions.Options{})
//	defs, err := client.Definitions(ctx, 500, slices.Values([]coordinate.Coordinate{coord}))
package pkg
