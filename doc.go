// Package paramhist is a toolkit for binned, parametrised shape functions:
// a function over a 1..3 dimensional discretised domain whose value in each
// cell is a free parameter, as used for per-bin scale factors in binned
// likelihood fits.
//
// 🚀 What is paramhist?
//
//	A small library that brings together:
//		• Binnings: uniform and variable-width boundaries, coordinate lookup
//		• Grids: up to three named dimensions, cell volumes, histograms
//		• Indexing: conversion between the two flat cell orders in use
//		• Parameters: one adjustable value per cell, with constant flags
//		• Evaluation: scalar and allocation-free batch paths
//		• Integration: exact Σ parameter·volume with memoised weights
//
// Under the hood, everything is organised under five subpackages:
//
//	binning/  Binning, Grid and Histogram: the discretised space
//	indexer/  Counts: grid index (last dimension fastest) ⇄ table index (first fastest)
//	param/    ScalarParameter, RealVar and the cell-ordered Table
//	integral/ Manager: integral configurations keyed by variable sets
//	histfunc/ Func: the binned parametrised function itself
//
// Quick ASCII example, a 3×2 domain:
//
//	   y
//	1  │ γ₃ │ γ₄ │ γ₅ │
//	0  │ γ₀ │ γ₁ │ γ₂ │
//	     0    1    2   x
//
// The point (2.5, 0.5) falls in cell (2,0) and evaluates to γ₂.
//
//	go get github.com/katalvlaran/paramhist
package paramhist
