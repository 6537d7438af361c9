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

// Package server hosts the InfraWatch HTTP API.
//
// The server owns the transport concerns and nothing else; package api
// registers the engine routes through WithHandler.
//
// # Routes
//
// System routes are served without middleware:
//
//	GET /          service name, version, readiness and route list
//	GET /health    liveness, always 200
//	GET /ready     readiness, 503 until Start has bound the listener
//	GET /metrics   Prometheus exposition
//
// API routes registered with WithHandler run behind, outermost first:
//
//   - Prometheus RED metrics labeled by route pattern
//   - API version negotiation via Accept: application/vnd.infrawatch.v1+json,
//     echoed in X-API-Version
//   - request IDs: a valid X-Request-Id UUID is kept, anything else replaced
//   - panic recovery returning a 500 ErrorResponse
//   - a token bucket rate limit (golang.org/x/time/rate) returning 429 with
//     Retry-After
//   - debug request logging
//
// # Errors
//
// Every API error has the same body:
//
//	{
//	  "code": "COLLECTION_FAILED",
//	  "message": "Failed to get Docker info",
//	  "details": {"error": "Command timed out"},
//	  "requestId": "3f0c...",
//	  "timestamp": "2026-01-02T15:04:05Z",
//	  "retryable": true
//	}
//
// WriteErrorFromErr derives status, code and retryability from a
// StructuredError in the error chain.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("infrawatchd"),
//	    server.WithVersion(version),
//	    server.WithAddress("", 8080),
//	    server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns after SIGINT or SIGTERM once in-flight requests drain or the
// shutdown timeout elapses.
package server
