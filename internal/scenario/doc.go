// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package scenario turns a raw scenario document into an immutable, validated
// Model.
//
// Validation runs once, before any sampling, and is all-or-nothing: Build
// either returns a Model in which every distribution is known to be sampleable,
// or a *Error naming the first offending variable and field.
package scenario
