// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for the datacontract tool.
//
// # Overview
//
// The datacontract CLI checks tabular datasets against declarative data
// contracts. It is designed for data engineers gating pipelines on data
// quality: a contract names the columns a dataset must carry and the rules
// each column must satisfy, and the tool reports every violation it finds.
//
// # Commands
//
// validate - Check datasets against a contract:
//
//	datacontract validate --contract users.yaml --dataset users.csv
//	datacontract validate -c users.yaml -d day1.csv -d day2.csv --format json
//	datacontract validate -c users.yaml -d users.csv --output report.yaml
//
// Loads the contract, reads each dataset file, and evaluates every field
// rule. Multiple datasets are validated concurrently; reports keep the
// order the files were given on the command line. The command exits
// non-zero when any dataset has violations unless --fail-on-error=false.
//
// lint - Check a contract document without data:
//
//	datacontract lint --contract users.yaml
//
// Runs the contract construction checks only: unknown type tags, invalid
// patterns, incompatible or reversed bounds, duplicate field names.
//
// serve - Run the validation HTTP API:
//
//	datacontract serve --port 8080
//
// Exposes POST /v1/validate and /v1/lint plus health, readiness and
// Prometheus metrics endpoints.
//
// # Global flags
//
//	--debug      enable debug logging
//	--log-json   emit logs as JSON
package cli
