// SPDX-License-Identifier: MIT
// Package: dtwalign/store

// Package store persists alignment runs and parsed keylog sessions in SQLite.
//
// The schema lives in embedded SQL migrations applied with golang-migrate on
// Open. Sequences and warping paths are stored as JSON text so a run can be
// reloaded and re-rendered without recomputing the table.
//
//	s, err := store.Open("runs.db")
//	if err != nil { ... }
//	defer s.Close()
//	run := &store.Run{Label: "demo", Template: tpl, Input: in, Path: path, Cost: cost}
//	err = s.SaveAlignment(ctx, run) // run.ID is filled in
package store
