// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package scoped provides deterministic teardown of externally owned resources.

A Resource wraps exactly one host-managed handle, such as a scheduled task, a
scene-graph node, or a registered listener, behind an idempotent Release.  A
Bundle groups any number of Resources so a single Release tears all of them
down in insertion order, continuing past individual failures and reporting
them together at the end.

Explicit release is the primary mechanism.  A Resource can optionally arm a
finalizer backstop, which is best-effort diagnostics for neglected resources:
it logs a leak warning and then attempts the release.  Hosts must document
which resource kinds are safe to release from a finalizer goroutine.
*/
package scoped
