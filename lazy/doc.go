// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package lazy provides a thread-safe, memoizing lazy value.

A Lazy is constructed with an initializer and shared across its consumers.
The initializer runs at most once no matter how many goroutines request the
value concurrently; every caller observes the same result.
*/
package lazy
