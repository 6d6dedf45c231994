// Package property implements typed, observable, validated value containers.
//
// A container holds one strongly typed value plus presentation metadata
// (label, description, user-visibility, enabled state). Containers register
// into a Group at construction time; every mutation then runs the
// set-validate-notify protocol: the new value is assigned in place, the
// group's validators decide whether the new state is acceptable, and on
// success the group's observers are notified. On rejection the previous value
// is restored before the error is returned, so observers never see an invalid
// intermediate state.
//
// Groups support scoped suppression of change notifications (mutations still
// validate and commit, only observer dispatch is skipped) and may be nested;
// events bubble from a group to its parent after local dispatch.
//
// Numeric containers optionally carry ScalarConstraints, an advisory
// minimum/maximum/step intended for editors. The protocol never clamps a
// value against them.
//
// The package performs no internal locking. A group and its containers belong
// to a single owner; hosts that share them across goroutines must serialize
// all access themselves. Observer and validator hooks run synchronously on
// the mutating call stack and may re-enter the framework; no recursion guard
// is provided, so a hook that mutates the container it observes is
// responsible for terminating the cycle.
package property
