// Package journal defines the fitness log's state shape and the pure helpers
// used to build and summarize it.
//
// A State holds four independent sequences: weights and pushups in append
// order, rides and meals newest first. Entries carry a stable ID assigned when
// they are created so a single entry can be addressed even when several share
// every displayed field.
//
// User submissions arrive as the raw strings typed into a form (WeightInput,
// PushupInput, RideInput, MealInput). Each input validates its own fields and
// reports ok=false when the submission must be dropped; callers never see an
// error for bad input.
package journal
