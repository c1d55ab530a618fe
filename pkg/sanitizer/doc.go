// Package sanitizer provides small, focused helpers for normalising user
// input before it is validated: trimming, case folding, whitespace
// collapsing and similar cleanup.
//
// Validation in this module never mutates the value it checks, so any
// normalisation has to happen up front. The intended pattern is to
// sanitize once, then thread the cleaned value through a validation
// chain. The higher-order Apply and Compose helpers build reusable
// pipelines:
//
//	cleanEmail := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//	form.Email = cleanEmail(form.Email)
//
// The package is stateless and depends only on the standard library; all
// helpers are pure functions safe for concurrent use.
package sanitizer
