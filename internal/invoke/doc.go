// SPDX-License-Identifier: MPL-2.0

// Package invoke builds synthetic invocations for registered targets.
//
// HTTP-style targets are driven through net/http/httptest, the in-process
// harness the standard library provides for exercising handlers without a
// socket. Message-style targets receive a base64 payload envelope plus a
// generated delivery metadata record.
package invoke
